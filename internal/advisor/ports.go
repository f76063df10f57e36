package advisor

import (
	"context"
	"errors"
	"time"
)

// ErrMissingPrompt is returned by Service.Reply for an empty prompt.
var ErrMissingPrompt = errors.New("advisor: missing prompt")

const (
	// фиксированные параметры генерации
	MaxTokens   = 250
	Temperature = 0.5
)

type Outcome string

const (
	OutcomeGreeting      Outcome = "greeting"
	OutcomeMissingPrompt Outcome = "missing_prompt"
	OutcomeGenerated     Outcome = "generated"
	OutcomeProviderError Outcome = "provider_error"
)

type ChatRequest struct {
	Prompt string `json:"prompt"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// Exchange is one audited request/response pair.
type Exchange struct {
	ID        string
	Prompt    string
	Reply     string
	Outcome   Outcome
	Provider  string
	Model     string
	Duration  time.Duration
	CreatedAt time.Time
}

// Repo — write-only audit log, never read back
type Repo interface {
	SaveExchange(ctx context.Context, ex *Exchange) error
}

// Service — ветвление greeting / empty / генерация
type Service interface {
	Reply(ctx context.Context, prompt string) (string, error)
}
