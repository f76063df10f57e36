package advisor

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Vovarama1992/insight-advisor-bridge/internal/ai"
)

type service struct {
	repo     Repo
	gen      ai.Generator
	provider string
	model    string
	now      func() time.Time
}

// NewService wires the generator for the given provider/model.
// A nil repo disables the audit log.
func NewService(repo Repo, gen ai.Generator, provider, model string) Service {
	if repo == nil {
		repo = NopRepo{}
	}
	return &service{
		repo:     repo,
		gen:      gen,
		provider: provider,
		model:    model,
		now:      time.Now,
	}
}

func (s *service) Reply(ctx context.Context, prompt string) (string, error) {
	started := s.now()

	if prompt == "" {
		s.record(ctx, started, prompt, MissingPromptReply, OutcomeMissingPrompt)
		return "", ErrMissingPrompt
	}

	if IsGreeting(prompt) {
		s.record(ctx, started, prompt, GreetingReply, OutcomeGreeting)
		return GreetingReply, nil
	}

	reply, err := s.generate(ctx, prompt)
	if err != nil {
		log.Printf("[advisor] provider=%s model=%s error: %v", s.provider, s.model, err)
		s.record(ctx, started, prompt, "", OutcomeProviderError)
		return "", err
	}

	s.record(ctx, started, prompt, reply, OutcomeGenerated)
	return reply, nil
}

func (s *service) generate(ctx context.Context, prompt string) (string, error) {
	gen, err := s.gen.Generate(ctx, ai.GenerateRequest{
		Model:       s.model,
		Prompt:      BuildPrompt(prompt),
		MaxTokens:   MaxTokens,
		Temperature: Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}

	text, err := gen.First()
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}

	return strings.TrimSpace(text), nil
}

func (s *service) record(ctx context.Context, started time.Time, prompt, reply string, outcome Outcome) {
	ex := &Exchange{
		ID:        uuid.New().String(),
		Prompt:    prompt,
		Reply:     reply,
		Outcome:   outcome,
		Provider:  s.provider,
		Model:     s.model,
		Duration:  s.now().Sub(started),
		CreatedAt: started,
	}

	// клиент мог уже отвалиться, запись всё равно нужна
	if err := s.repo.SaveExchange(context.WithoutCancel(ctx), ex); err != nil {
		log.Printf("[advisor] save exchange %s: %v", ex.ID, err)
	}
}
