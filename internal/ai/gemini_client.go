package ai

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient builds a Gemini client. An empty baseURL keeps the SDK
// default. A non-nil httpClient replaces the SDK transport, so the API key is
// attached by apiKeyTransport instead.
func NewGeminiClient(ctx context.Context, apiKey, baseURL string, httpClient *http.Client) (*GeminiClient, error) {
	if apiKey == "" {
		log.Println("[ai] GEMINI_API_KEY not set, requests will be rejected by the provider")
	}

	opts := []option.ClientOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithEndpoint(baseURL))
	}
	if httpClient != nil {
		hc := *httpClient
		hc.Transport = &apiKeyTransport{key: apiKey, base: httpClient.Transport}
		opts = append(opts, option.WithHTTPClient(&hc))
	}

	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{client: client}, nil
}

type apiKeyTransport struct {
	key  string
	base http.RoundTripper
}

func (t *apiKeyTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	r = r.Clone(r.Context())
	r.Header.Set("x-goog-api-key", t.key)
	return base.RoundTrip(r)
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}

func (c *GeminiClient) Generate(ctx context.Context, req GenerateRequest) (*Generation, error) {
	// модель на каждый запрос: параметры живут на *GenerativeModel
	model := c.client.GenerativeModel(req.Model)
	model.SetMaxOutputTokens(int32(req.MaxTokens))
	model.SetTemperature(float32(req.Temperature))

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		log.Println("[ai] Gemini error:", err)
		return nil, fmt.Errorf("Gemini API error: %w", err)
	}

	return generationFromGemini(resp)
}

func generationFromGemini(resp *genai.GenerateContentResponse) (*Generation, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		log.Println("[ai] empty candidates")
		return nil, ErrNoGenerations
	}

	out := &Generation{Generations: make([]Candidate, 0, len(resp.Candidates))}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		var sb strings.Builder
		for _, part := range cand.Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				sb.WriteString(string(txt))
			}
		}
		out.Generations = append(out.Generations, Candidate{Text: sb.String()})
	}
	if len(out.Generations) == 0 {
		return nil, ErrNoGenerations
	}

	return out, nil
}
