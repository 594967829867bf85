package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/abhisek/statlab/internal/llm"
)

// Service generates missed-question explanations asynchronously.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Explanation
	err     error
	ready   bool
}

// NewService creates an explanation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// RequestExplanation starts async generation. Only one explanation is
// in-flight at a time; a new request replaces a pending one.
func (s *Service) RequestExplanation(ctx context.Context, input Input) {
	go func() {
		expl, err := s.generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = expl
		s.err = err
		s.ready = true
	}()
}

// ConsumeExplanation returns the pending explanation if one is ready.
// Returns (nil, false) while generation is still in flight or after a
// failed generation. The pending slot is cleared on consumption.
func (s *Service) ConsumeExplanation() (*Explanation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	expl := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return expl, expl != nil
}

type explanationOutput struct {
	WhyWrong string `json:"why_wrong"`
	WhyRight string `json:"why_right"`
	StudyTip string `json:"study_tip"`
}

func (s *Service) generate(ctx context.Context, input Input) (*Explanation, error) {
	ctx = llm.WithPurpose(ctx, "explanation")

	req := llm.Request{
		System: explanationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildExplanationUserMessage(input)},
		},
		Schema:      ExplanationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("explanation generation: %w", err)
	}

	var out explanationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse explanation response: %w", err)
	}

	return &Explanation{
		WhyWrong: out.WhyWrong,
		WhyRight: out.WhyRight,
		StudyTip: out.StudyTip,
	}, nil
}
