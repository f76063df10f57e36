package ai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

const (
	ProviderCohere = "cohere"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// ProviderConfig selects and authenticates a Generator.
type ProviderConfig struct {
	Name    string
	APIKey  string
	BaseURL string

	// HTTPClient is used by providers that accept one; nil keeps the SDK default.
	HTTPClient *http.Client
}

// NewGenerator builds the Generator for pc.Name.
func NewGenerator(ctx context.Context, pc ProviderConfig) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(pc.Name)) {
	case ProviderCohere, "":
		return NewCohereClient(pc.APIKey, pc.BaseURL, pc.HTTPClient), nil
	case ProviderOpenAI:
		return NewOpenAIClient(pc.APIKey, pc.BaseURL, pc.HTTPClient), nil
	case ProviderGemini:
		return NewGeminiClient(ctx, pc.APIKey, pc.BaseURL, pc.HTTPClient)
	default:
		return nil, fmt.Errorf("ai: unknown provider %q", pc.Name)
	}
}
