package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-career-consult/internal/models"
	"github.com/sbilibin2017/gw-career-consult/internal/services"
	"github.com/stretchr/testify/assert"
)

func assessmentBody(skills string) string {
	return fmt.Sprintf(`{
		"currentRole": "Backend Engineer",
		"experience": "3-5 years",
		"industry": "Fintech",
		"skills": %s,
		"interests": ["Distributed systems"],
		"careerGoals": "Staff engineer",
		"timeframe": "1-2 years",
		"location": "Remote",
		"workStyle": "Remote"
	}`, skills)
}

func TestCareerRecommendationsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := models.CareerRecommendation{
		Title:            "Staff Engineer",
		Description:      "Lead technical direction",
		SkillsNeeded:     []string{"Architecture"},
		TimeToTransition: "12-18 months",
		SalaryRange:      "$150k-$200k",
		GrowthPotential:  "High",
		NextSteps:        []string{"Lead a cross-team project"},
		Reasoning:        "Strong backend background",
	}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockRecommendationGenerator)
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: assessmentBody(`["Go","PostgreSQL"]`),
			mockSetup: func(m *MockRecommendationGenerator) {
				m.EXPECT().
					Generate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, in models.AssessmentInput) ([]models.CareerRecommendation, error) {
						assert.Equal(t, []string{"Go", "PostgreSQL"}, in.Skills)
						return []models.CareerRecommendation{rec}, nil
					})
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"recommendations":[{
				"title":"Staff Engineer",
				"description":"Lead technical direction",
				"skillsNeeded":["Architecture"],
				"timeToTransition":"12-18 months",
				"salaryRange":"$150k-$200k",
				"growthPotential":"High",
				"nextSteps":["Lead a cross-team project"],
				"reasoning":"Strong backend background"
			}]}`,
		},
		{
			name: "provider returned nothing",
			body: assessmentBody(`["Go"]`),
			mockSetup: func(m *MockRecommendationGenerator) {
				m.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"recommendations":[]}`,
		},
		{
			name:         "empty skills",
			body:         assessmentBody(`[]`),
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Validation error","errors":[{"field":"skills","reason":"must contain at least 1 item(s)"}]}`,
		},
		{
			name:         "skills of wrong type",
			body:         assessmentBody(`"Go"`),
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Validation error","errors":[{"field":"skills","reason":"expected array, got string"}]}`,
		},
		{
			name: "quota exceeded",
			body: assessmentBody(`["Go"]`),
			mockSetup: func(m *MockRecommendationGenerator) {
				m.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil, services.ErrQuotaExceeded)
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Failed to generate recommendations. Please try again."}`,
		},
		{
			name: "generation failed",
			body: assessmentBody(`["Go"]`),
			mockSetup: func(m *MockRecommendationGenerator) {
				m.EXPECT().Generate(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: bad json", services.ErrGenerationFailed))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Failed to generate recommendations. Please try again."}`,
		},
		{
			name: "unexpected error",
			body: assessmentBody(`["Go"]`),
			mockSetup: func(m *MockRecommendationGenerator) {
				m.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil, errors.New("secret upstream detail"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Failed to generate recommendations. Please try again."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRecommendationGenerator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCareerRecommendationsHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/career-recommendations", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
