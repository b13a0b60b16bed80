package models

import (
	"encoding/json"
	"time"
)

// ConsultationRequestInput represents the JSON body for a consultation request
// swagger:model ConsultationRequestInput
type ConsultationRequestInput struct {
	// First name
	// required: true
	// example: Ada
	FirstName string `json:"firstName" validate:"required"`

	// Last name
	// required: true
	// example: Lovelace
	LastName string `json:"lastName" validate:"required"`

	// Contact email
	// required: true
	// example: ada@example.com
	Email string `json:"email" validate:"required"`

	// Company name
	// required: true
	// example: Analytical Engines Ltd
	Company string `json:"company" validate:"required"`

	// Service the client is interested in
	// required: true
	// example: Talent acquisition
	ServiceInterest string `json:"serviceInterest" validate:"required"`

	// Optional free-form message
	// example: We are hiring three backend engineers.
	Message *string `json:"message,omitempty"`

	// Server-assigned fields, rejected when supplied by the client.
	ID        *json.RawMessage `json:"id,omitempty" validate:"isdefault" swaggerignore:"true"`
	CreatedAt *json.RawMessage `json:"createdAt,omitempty" validate:"isdefault" swaggerignore:"true"`
}

// ConsultationRequest represents a stored consultation request
// swagger:model ConsultationRequest
type ConsultationRequest struct {
	ID              int64     `json:"id"`              // Auto-incrementing identifier
	FirstName       string    `json:"firstName"`       // First name
	LastName        string    `json:"lastName"`        // Last name
	Email           string    `json:"email"`           // Contact email
	Company         string    `json:"company"`         // Company name
	ServiceInterest string    `json:"serviceInterest"` // Requested service
	Message         *string   `json:"message"`         // Null when not provided
	CreatedAt       time.Time `json:"createdAt"`       // Server-assigned creation time
}
