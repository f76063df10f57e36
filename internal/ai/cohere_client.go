package ai

import (
	"context"
	"log"
	"net/http"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
	"github.com/cohere-ai/cohere-go/v2/option"
)

type CohereClient struct {
	client *cohereclient.Client
}

// NewCohereClient uses Cohere's native generate endpoint.
// An empty baseURL keeps the SDK default.
func NewCohereClient(apiKey, baseURL string, httpClient *http.Client) *CohereClient {
	if apiKey == "" {
		log.Println("[ai] COHERE_API_KEY not set, requests will be rejected by the provider")
	}

	opts := []option.RequestOption{option.WithToken(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	return &CohereClient{
		client: cohereclient.NewClient(opts...),
	}
}

func (c *CohereClient) Generate(ctx context.Context, req GenerateRequest) (*Generation, error) {
	resp, err := c.client.Generate(ctx, &cohere.GenerateRequest{
		Prompt:      req.Prompt,
		Model:       cohere.String(req.Model),
		MaxTokens:   cohere.Int(req.MaxTokens),
		Temperature: cohere.Float64(req.Temperature),
	})
	if err != nil {
		log.Println("[ai] Cohere error:", err)
		return nil, err
	}

	if resp == nil || len(resp.Generations) == 0 {
		log.Println("[ai] empty generations")
		return nil, ErrNoGenerations
	}

	out := &Generation{Generations: make([]Candidate, 0, len(resp.Generations))}
	for _, g := range resp.Generations {
		if g == nil {
			continue
		}
		out.Generations = append(out.Generations, Candidate{Text: g.Text})
	}
	if len(out.Generations) == 0 {
		return nil, ErrNoGenerations
	}

	return out, nil
}
