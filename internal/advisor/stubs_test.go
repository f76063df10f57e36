package advisor

import (
	"context"
	"sync"

	"github.com/Vovarama1992/insight-advisor-bridge/internal/ai"
)

type stubGenerator struct {
	mu    sync.Mutex
	calls []ai.GenerateRequest
	gen   *ai.Generation
	err   error
}

func (s *stubGenerator) Generate(ctx context.Context, req ai.GenerateRequest) (*ai.Generation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, req)
	if s.err != nil {
		return nil, s.err
	}
	return s.gen, nil
}

func (s *stubGenerator) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func replyWith(texts ...string) *stubGenerator {
	g := &ai.Generation{}
	for _, t := range texts {
		g.Generations = append(g.Generations, ai.Candidate{Text: t})
	}
	return &stubGenerator{gen: g}
}

type stubRepo struct {
	saved []*Exchange
	err   error
}

func (s *stubRepo) SaveExchange(ctx context.Context, ex *Exchange) error {
	s.saved = append(s.saved, ex)
	return s.err
}
