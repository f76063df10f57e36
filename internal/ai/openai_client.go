package ai

import (
	"context"
	"log"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIClient struct {
	client *openai.Client
}

// NewOpenAIClient talks to any OpenAI-compatible chat completions endpoint.
// An empty baseURL keeps the SDK default.
func NewOpenAIClient(apiKey, baseURL string, httpClient *http.Client) *OpenAIClient {
	if apiKey == "" {
		log.Println("[ai] OPENAI_API_KEY not set, requests will be rejected by the provider")
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
	}
}

func (c *OpenAIClient) Generate(ctx context.Context, req GenerateRequest) (*Generation, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
	})
	if err != nil {
		log.Println("[ai] OpenAI error:", err)
		return nil, err
	}

	if len(resp.Choices) == 0 {
		log.Println("[ai] empty choices")
		return nil, ErrNoGenerations
	}

	out := &Generation{Generations: make([]Candidate, 0, len(resp.Choices))}
	for _, ch := range resp.Choices {
		out.Generations = append(out.Generations, Candidate{Text: ch.Message.Content})
	}

	return out, nil
}
