package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-career-consult/internal/logger"
	"github.com/sbilibin2017/gw-career-consult/internal/validation"
)

const (
	msgValidationError    = "Validation error"
	msgInternalError      = "Internal server error"
	msgRecommendationsErr = "Failed to generate recommendations. Please try again."
)

// ErrorResponse represents a generic error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Message string `json:"message"`
}

// ValidationErrorResponse represents a request that failed validation
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	// Error message
	// default: Validation error
	Message string `json:"message"`

	// Violated fields
	Errors []validation.FieldError `json:"errors"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

// writeValidationError writes a 400 response when err is a validation error
// and reports whether it did.
func writeValidationError(w http.ResponseWriter, r *http.Request, err error) bool {
	var verr *validation.ValidationError
	if !errors.As(err, &verr) {
		return false
	}

	logger.Log.Warnw("request validation failed", "uri", r.RequestURI, "errors", verr.Errors)
	writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{
		Message: msgValidationError,
		Errors:  verr.Errors,
	})
	return true
}
