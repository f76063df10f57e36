package ai

import (
	"context"
	"errors"
)

// ErrNoGenerations is returned when a provider answers without any candidate.
var ErrNoGenerations = errors.New("ai: provider returned no generations")

// Generator — внешний генератор текста, ничего не знает про HTTP и персону
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (*Generation, error)
}

// GenerateRequest is a single-shot completion request.
type GenerateRequest struct {
	Model       string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// Generation holds the candidates a provider returned, in provider order.
type Generation struct {
	Generations []Candidate
}

type Candidate struct {
	Text string
}

// First returns the text of the first candidate.
func (g *Generation) First() (string, error) {
	if g == nil || len(g.Generations) == 0 {
		return "", ErrNoGenerations
	}
	return g.Generations[0].Text, nil
}
