package handlers

//go:generate mockgen -source=consultation.go -destination=consultation_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-career-consult/internal/logger"
	"github.com/sbilibin2017/gw-career-consult/internal/models"
	"github.com/sbilibin2017/gw-career-consult/internal/validation"
)

// ConsultationSubmitter defines the interface that the service must implement.
type ConsultationSubmitter interface {
	Submit(ctx context.Context, input models.ConsultationRequestInput) (*models.ConsultationRequest, error)
}

// ConsultationLister defines the interface that the service must implement.
type ConsultationLister interface {
	List(ctx context.Context) ([]models.ConsultationRequest, error)
}

// SubmitConsultationResponse represents a successful submission
// swagger:model SubmitConsultationResponse
type SubmitConsultationResponse struct {
	// Success message
	// default: Consultation request submitted successfully
	Message string `json:"message"`

	// Identifier of the stored request
	// default: 1
	ID int64 `json:"id"`
}

// NewSubmitConsultationHandler returns an HTTP handler for consultation intake.
// @Summary Submit a consultation request
// @Description Validates and stores a consultation request. id and createdAt are assigned by the server.
// @Tags consultation
// @Accept json
// @Produce json
// @Param request body models.ConsultationRequestInput true "Consultation request"
// @Success 200 {object} handlers.SubmitConsultationResponse "Consultation request submitted successfully"
// @Failure 400 {object} handlers.ValidationErrorResponse "Validation error"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /consultation [post]
func NewSubmitConsultationHandler(svc ConsultationSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.ConsultationRequestInput
		if err := validation.DecodeAndValidate(r.Body, &input); err != nil {
			if writeValidationError(w, r, err) {
				return
			}
			logger.Log.Errorw("failed to validate consultation request", "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Message: msgInternalError})
			return
		}

		req, err := svc.Submit(r.Context(), input)
		if err != nil {
			logger.Log.Errorw("failed to submit consultation request", "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Message: msgInternalError})
			return
		}

		writeJSON(w, http.StatusOK, SubmitConsultationResponse{
			Message: "Consultation request submitted successfully",
			ID:      req.ID,
		})
	}
}

// NewListConsultationsHandler returns an HTTP handler listing consultation requests.
// @Summary List consultation requests
// @Description Returns every stored consultation request in insertion order
// @Tags consultation
// @Produce json
// @Success 200 {array} models.ConsultationRequest "Stored consultation requests"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /consultation [get]
func NewListConsultationsHandler(svc ConsultationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requests, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list consultation requests", "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Message: msgInternalError})
			return
		}

		if requests == nil {
			requests = []models.ConsultationRequest{}
		}
		writeJSON(w, http.StatusOK, requests)
	}
}
