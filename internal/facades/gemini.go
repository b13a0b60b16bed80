package facades

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/sbilibin2017/gw-career-consult/internal/logger"
	"google.golang.org/genai"
)

const (
	// DefaultGeminiModel is used when no model is configured.
	DefaultGeminiModel = "gemini-2.5-flash"

	generationTemperature float32 = 0.7
	maxOutputTokens       int32   = 2000
	jsonMIMEType                  = "application/json"
	previewLength                 = 200
)

// ErrMissingAPIKey is returned on first use when no API key was configured.
var ErrMissingAPIKey = errors.New("gemini api key is required")

// contentModel is the subset of *genai.Models used by the facade.
type contentModel interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiFacade generates structured JSON completions through the Gemini API.
// The underlying client is created on first use.
type GeminiFacade struct {
	apiKey string
	model  string

	mu        sync.Mutex
	models    contentModel
	newModels func(ctx context.Context, apiKey string) (contentModel, error)
}

// NewGeminiFacade creates a facade. A missing key is reported by the first call.
func NewGeminiFacade(apiKey, model string) *GeminiFacade {
	if model = strings.TrimSpace(model); model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiFacade{
		apiKey:    strings.TrimSpace(apiKey),
		model:     model,
		newModels: newGenAIModels,
	}
}

func newGenAIModels(ctx context.Context, apiKey string) (contentModel, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return client.Models, nil
}

// Model returns the configured model name.
func (f *GeminiFacade) Model() string {
	return f.model
}

// GenerateJSON sends the prompt with the given system instruction and returns
// the concatenated text of the response. The model is asked for JSON output.
func (f *GeminiFacade) GenerateJSON(ctx context.Context, systemInstruction, prompt string) (string, error) {
	models, err := f.client(ctx)
	if err != nil {
		return "", err
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
		ResponseMIMEType: jsonMIMEType,
		Temperature:      genai.Ptr(generationTemperature),
		MaxOutputTokens:  maxOutputTokens,
	}

	logger.Log.Debugw("gemini generate content request",
		"model", f.model,
		"prompt_length", utf8.RuneCountInString(prompt),
		"prompt_preview", logger.TruncateForLog(prompt, previewLength),
	)

	resp, err := models.GenerateContent(ctx, f.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	output := responseText(resp)

	logger.Log.Debugw("gemini generate content response",
		"model", f.model,
		"response_length", utf8.RuneCountInString(output),
		"response_preview", logger.TruncateForLog(output, previewLength),
	)

	return output, nil
}

func (f *GeminiFacade) client(ctx context.Context) (contentModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.models != nil {
		return f.models, nil
	}
	if f.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	models, err := f.newModels(ctx, f.apiKey)
	if err != nil {
		return nil, err
	}
	f.models = models
	return models, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil || part.Thought {
				continue
			}
			builder.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(builder.String())
}
