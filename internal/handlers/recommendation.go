package handlers

//go:generate mockgen -source=recommendation.go -destination=recommendation_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-career-consult/internal/logger"
	"github.com/sbilibin2017/gw-career-consult/internal/models"
	"github.com/sbilibin2017/gw-career-consult/internal/services"
	"github.com/sbilibin2017/gw-career-consult/internal/validation"
)

// RecommendationGenerator defines the interface that the service must implement.
type RecommendationGenerator interface {
	Generate(ctx context.Context, input models.AssessmentInput) ([]models.CareerRecommendation, error)
}

// RecommendationsResponse represents generated career recommendations
// swagger:model RecommendationsResponse
type RecommendationsResponse struct {
	// Recommendations, possibly empty
	Recommendations []models.CareerRecommendation `json:"recommendations"`
}

// NewCareerRecommendationsHandler returns an HTTP handler generating career recommendations.
// @Summary Generate career recommendations
// @Description Builds a prompt from the assessment and asks the AI provider for 3-4 career paths
// @Tags career
// @Accept json
// @Produce json
// @Param request body models.AssessmentInput true "Career assessment"
// @Success 200 {object} handlers.RecommendationsResponse "Generated recommendations"
// @Failure 400 {object} handlers.ValidationErrorResponse "Validation error"
// @Failure 500 {object} handlers.ErrorResponse "Failed to generate recommendations"
// @Router /career-recommendations [post]
func NewCareerRecommendationsHandler(svc RecommendationGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.AssessmentInput
		if err := validation.DecodeAndValidate(r.Body, &input); err != nil {
			if writeValidationError(w, r, err) {
				return
			}
			logger.Log.Errorw("failed to validate assessment", "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Message: msgRecommendationsErr})
			return
		}

		recommendations, err := svc.Generate(r.Context(), input)
		if err != nil {
			// Quota and generic failures share one client-facing response.
			switch {
			case errors.Is(err, services.ErrQuotaExceeded):
				logger.Log.Errorw("career recommendations unavailable: provider quota", "error", err)
			default:
				logger.Log.Errorw("career recommendations error", "error", err)
			}
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Message: msgRecommendationsErr})
			return
		}

		if recommendations == nil {
			recommendations = []models.CareerRecommendation{}
		}
		writeJSON(w, http.StatusOK, RecommendationsResponse{Recommendations: recommendations})
	}
}
