package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-career-consult/internal/logger"
	"github.com/sbilibin2017/gw-career-consult/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/genai"
)

const (
	quotaLogMessage   = "ai provider quota exceeded"
	genericLogMessage = "failed to generate career recommendations"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	original := logger.Log
	logger.Log = zap.New(core).Sugar()
	t.Cleanup(func() { logger.Log = original })

	return logs
}

func testAssessment() models.AssessmentInput {
	return models.AssessmentInput{
		CurrentRole: "Backend Engineer",
		Experience:  "3-5 years",
		Industry:    "Fintech",
		Skills:      []string{"Go", "PostgreSQL", "Kubernetes"},
		Interests:   []string{"Distributed systems", "Mentoring"},
		CareerGoals: "Become a staff engineer",
		Timeframe:   "1-2 years",
		Location:    "Bangalore, India",
		WorkStyle:   "Hybrid",
	}
}

const validRecommendation = `{
	"title": "Staff Engineer",
	"description": "Own platform architecture.",
	"skillsNeeded": ["System design"],
	"timeToTransition": "1-2 years",
	"salaryRange": "₹45-70 LPA",
	"growthPotential": "Principal track",
	"nextSteps": ["Lead a cross-team initiative"],
	"reasoning": "Deep backend experience."
}`

func TestBuildCareerPrompt(t *testing.T) {
	prompt, err := buildCareerPrompt(testAssessment())
	require.NoError(t, err)

	for _, want := range []string{
		"- Current Role: Backend Engineer",
		"- Experience Level: 3-5 years",
		"- Industry: Fintech",
		"- Skills: Go, PostgreSQL, Kubernetes",
		"- Interests: Distributed systems, Mentoring",
		"- Career Goals: Become a staff engineer",
		"- Desired Timeframe: 1-2 years",
		"- Location: Bangalore, India",
		"- Work Style: Hybrid",
		`"recommendations": [`,
		"Provide diverse options",
	} {
		assert.Contains(t, prompt, want)
	}

	again, err := buildCareerPrompt(testAssessment())
	require.NoError(t, err)
	assert.Equal(t, prompt, again, "prompt must be deterministic")
}

func TestRecommendationService_Generate(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		genErr    error
		wantCount int
		wantErr   error
		wantLog   string
	}{
		{
			name:      "valid response",
			raw:       fmt.Sprintf(`{"recommendations":[%s,%s]}`, validRecommendation, validRecommendation),
			wantCount: 2,
		},
		{
			name:      "fenced response",
			raw:       "```json\n" + fmt.Sprintf(`{"recommendations":[%s]}`, validRecommendation) + "\n```",
			wantCount: 1,
		},
		{
			name:      "invalid items dropped",
			raw:       fmt.Sprintf(`{"recommendations":[%s,{"title":"Only a title"},"not an object"]}`, validRecommendation),
			wantCount: 1,
		},
		{
			name:      "empty response yields no recommendations",
			raw:       "",
			wantCount: 0,
		},
		{
			name:      "missing recommendations key",
			raw:       `{"other":true}`,
			wantCount: 0,
		},
		{
			name:    "malformed body",
			raw:     "this is not json",
			wantErr: ErrGenerationFailed,
			wantLog: genericLogMessage,
		},
		{
			name:    "quota api error",
			genErr:  fmt.Errorf("generate content: %w", genai.APIError{Code: http.StatusTooManyRequests, Status: "RESOURCE_EXHAUSTED"}),
			wantErr: ErrQuotaExceeded,
			wantLog: quotaLogMessage,
		},
		{
			name:    "quota mentioned in message",
			genErr:  errors.New("You exceeded your current quota"),
			wantErr: ErrQuotaExceeded,
			wantLog: quotaLogMessage,
		},
		{
			name:    "status 429 mentioned in message",
			genErr:  errors.New("request failed with status 429"),
			wantErr: ErrQuotaExceeded,
			wantLog: quotaLogMessage,
		},
		{
			name:    "generic provider error",
			genErr:  genai.APIError{Code: http.StatusInternalServerError, Status: "INTERNAL"},
			wantErr: ErrGenerationFailed,
			wantLog: genericLogMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			logs := observeLogs(t)

			generator := NewMockContentGenerator(ctrl)
			generator.EXPECT().
				GenerateJSON(gomock.Any(), careerAdvisorInstruction, gomock.Any()).
				Return(tt.raw, tt.genErr)

			svc := NewRecommendationService(generator)
			recs, err := svc.Generate(context.Background(), testAssessment())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, recs)
				assert.Equal(t, 1, logs.FilterMessage(tt.wantLog).Len())
				return
			}

			require.NoError(t, err)
			require.NotNil(t, recs)
			assert.Len(t, recs, tt.wantCount)
			for _, rec := range recs {
				assert.Equal(t, "Staff Engineer", rec.Title)
				assert.Equal(t, []string{"Lead a cross-team initiative"}, rec.NextSteps)
			}
		})
	}
}

func TestRecommendationService_QuotaAndGenericLogsDiffer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logs := observeLogs(t)

	generator := NewMockContentGenerator(ctrl)
	gomock.InOrder(
		generator.EXPECT().GenerateJSON(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", genai.APIError{Code: http.StatusTooManyRequests}),
		generator.EXPECT().GenerateJSON(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("<html>oops</html>", nil),
	)

	svc := NewRecommendationService(generator)

	_, err := svc.Generate(context.Background(), testAssessment())
	assert.ErrorIs(t, err, ErrQuotaExceeded)
	_, err = svc.Generate(context.Background(), testAssessment())
	assert.ErrorIs(t, err, ErrGenerationFailed)

	quota := logs.FilterMessage(quotaLogMessage).All()
	generic := logs.FilterMessage(genericLogMessage).All()
	require.Len(t, quota, 1)
	require.Len(t, generic, 1)
	assert.Equal(t, zapcore.ErrorLevel, quota[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, generic[0].Level)
}

func TestRecommendationService_ProviderDetailNotLeaked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	generator := NewMockContentGenerator(ctrl)
	generator.EXPECT().GenerateJSON(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("secret upstream detail"))

	_, err := NewRecommendationService(generator).Generate(context.Background(), testAssessment())
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret upstream detail")
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: ` {"a":1} `, want: `{"a":1}`},
		{name: "json fence", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", in: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "empty", in: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.in))
		})
	}
}
