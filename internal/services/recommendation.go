package services

//go:generate mockgen -source=recommendation.go -destination=recommendation_mock.go -package=services

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"text/template"

	"github.com/sbilibin2017/gw-career-consult/internal/logger"
	"github.com/sbilibin2017/gw-career-consult/internal/models"
	"github.com/sbilibin2017/gw-career-consult/internal/validation"
	"google.golang.org/genai"
)

// Error variables
var (
	ErrQuotaExceeded    = errors.New("ai provider quota exceeded, check billing and usage limits of the provider account")
	ErrGenerationFailed = errors.New("failed to generate career recommendations, please try again")
)

const careerAdvisorInstruction = "You are an expert career advisor and talent acquisition specialist. " +
	"Provide practical, actionable career guidance based on real market insights."

const responsePreviewLength = 200

//go:embed prompt.tmpl
var careerPromptRaw string

var careerPromptTemplate = template.Must(template.New("career_prompt").
	Funcs(template.FuncMap{"join": func(items []string) string { return strings.Join(items, ", ") }}).
	Parse(careerPromptRaw))

// ContentGenerator produces a JSON completion for a prompt.
type ContentGenerator interface {
	GenerateJSON(ctx context.Context, systemInstruction, prompt string) (string, error)
}

// RecommendationService turns a career assessment into AI-generated recommendations.
type RecommendationService struct {
	generator ContentGenerator
}

// NewRecommendationService creates a new RecommendationService.
func NewRecommendationService(generator ContentGenerator) *RecommendationService {
	return &RecommendationService{generator: generator}
}

// Generate renders the assessment prompt, calls the provider and returns the
// recommendations that match the expected shape. Provider failures are
// reported as ErrQuotaExceeded or ErrGenerationFailed.
func (s *RecommendationService) Generate(ctx context.Context, input models.AssessmentInput) ([]models.CareerRecommendation, error) {
	prompt, err := buildCareerPrompt(input)
	if err != nil {
		logger.Log.Errorw("failed to render career prompt", "error", err)
		return nil, ErrGenerationFailed
	}

	raw, err := s.generator.GenerateJSON(ctx, careerAdvisorInstruction, prompt)
	if err != nil {
		if isQuotaError(err) {
			logger.Log.Errorw("ai provider quota exceeded", "error", err)
			return nil, ErrQuotaExceeded
		}
		logger.Log.Errorw("failed to generate career recommendations", "error", err)
		return nil, ErrGenerationFailed
	}

	recommendations, err := parseRecommendations(raw)
	if err != nil {
		logger.Log.Errorw("failed to generate career recommendations",
			"error", err,
			"response_preview", logger.TruncateForLog(raw, responsePreviewLength),
		)
		return nil, ErrGenerationFailed
	}

	logger.Log.Infow("career recommendations generated", "count", len(recommendations))
	return recommendations, nil
}

func buildCareerPrompt(input models.AssessmentInput) (string, error) {
	var b strings.Builder
	if err := careerPromptTemplate.Execute(&b, input); err != nil {
		return "", err
	}
	return b.String(), nil
}

type recommendationsEnvelope struct {
	Recommendations []json.RawMessage `json:"recommendations"`
}

// parseRecommendations decodes {"recommendations": [...]} and drops items that
// do not match the CareerRecommendation schema. An empty body yields no items.
func parseRecommendations(raw string) ([]models.CareerRecommendation, error) {
	out := []models.CareerRecommendation{}

	cleaned := extractJSON(raw)
	if cleaned == "" {
		return out, nil
	}

	var envelope recommendationsEnvelope
	if err := json.Unmarshal([]byte(cleaned), &envelope); err != nil {
		return nil, fmt.Errorf("parse provider response: %w", err)
	}

	for i, item := range envelope.Recommendations {
		var rec models.CareerRecommendation
		if err := json.Unmarshal(item, &rec); err != nil {
			logger.Log.Warnw("dropping malformed recommendation", "index", i, "error", err)
			continue
		}
		if err := validation.Struct(&rec); err != nil {
			logger.Log.Warnw("dropping invalid recommendation", "index", i, "error", err)
			continue
		}
		out = append(out, rec)
	}

	return out, nil
}

// extractJSON strips markdown code fences some models wrap around JSON.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.TrimSpace(raw)
}

func isQuotaError(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && isQuotaStatus(apiErr) {
		return true
	}

	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil && isQuotaStatus(*apiErrPtr) {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "quota") || strings.Contains(msg, "429")
}

func isQuotaStatus(apiErr genai.APIError) bool {
	return apiErr.Code == http.StatusTooManyRequests || apiErr.Status == "RESOURCE_EXHAUSTED"
}
