package models

// AssessmentInput represents the career self-assessment submitted by a visitor
// swagger:model AssessmentInput
type AssessmentInput struct {
	// Current job title
	// required: true
	// example: Backend Engineer
	CurrentRole string `json:"currentRole" validate:"required"`

	// Experience level
	// required: true
	// example: 3-5 years
	Experience string `json:"experience" validate:"required"`

	// Current industry
	// required: true
	// example: Fintech
	Industry string `json:"industry" validate:"required"`

	// Skills, at least one
	// required: true
	// example: ["Go","PostgreSQL"]
	Skills []string `json:"skills" validate:"required,min=1,dive,required"`

	// Interests, at least one
	// required: true
	// example: ["Distributed systems"]
	Interests []string `json:"interests" validate:"required,min=1,dive,required"`

	// Career goals
	// required: true
	// example: Move into a staff engineer role
	CareerGoals string `json:"careerGoals" validate:"required"`

	// Desired transition timeframe
	// required: true
	// example: 1-2 years
	Timeframe string `json:"timeframe" validate:"required"`

	// Location
	// required: true
	// example: Bangalore, India
	Location string `json:"location" validate:"required"`

	// Preferred work style
	// required: true
	// example: Remote
	WorkStyle string `json:"workStyle" validate:"required"`
}
