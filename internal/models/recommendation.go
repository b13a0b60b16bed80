package models

// CareerRecommendation is a single AI-generated career path
// swagger:model CareerRecommendation
type CareerRecommendation struct {
	Title            string   `json:"title" validate:"required"`
	Description      string   `json:"description" validate:"required"`
	SkillsNeeded     []string `json:"skillsNeeded" validate:"required,min=1"`
	TimeToTransition string   `json:"timeToTransition" validate:"required"`
	SalaryRange      string   `json:"salaryRange" validate:"required"`
	GrowthPotential  string   `json:"growthPotential" validate:"required"`
	NextSteps        []string `json:"nextSteps" validate:"required,min=1"`
	Reasoning        string   `json:"reasoning" validate:"required"`
}

// ConsultationSubmittedEvent is published after a consultation request is stored.
type ConsultationSubmittedEvent struct {
	Type      string              `json:"type"`
	Request   ConsultationRequest `json:"request"`
	Timestamp int64               `json:"timestamp"`
}
