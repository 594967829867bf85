package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/statlab/internal/catalog"
	"github.com/abhisek/statlab/internal/quiz"
)

// Config tunes progression rules.
type Config struct {
	// PassThreshold is the score (0-100) required to mark a quiz attempt as
	// passed. Evaluated once at submission; gating later reads the stored
	// flag and never re-derives it.
	PassThreshold int
}

// DefaultConfig matches the product default.
func DefaultConfig() Config {
	return Config{PassThreshold: 70}
}

// Service wraps a Store with the progression rules: step marking, the pass
// threshold, and the cross-lesson soft lock.
type Service struct {
	store Store
	cfg   Config
	now   func() time.Time
}

// NewService creates a Service over store.
func NewService(store Store, cfg Config) *Service {
	if cfg.PassThreshold <= 0 || cfg.PassThreshold > 100 {
		cfg.PassThreshold = DefaultConfig().PassThreshold
	}
	return &Service{store: store, cfg: cfg, now: time.Now}
}

// Store exposes the underlying store for reads the service doesn't wrap.
func (s *Service) Store() Store { return s.store }

// PassThreshold returns the configured pass threshold.
func (s *Service) PassThreshold() int { return s.cfg.PassThreshold }

// Get reads a lesson's progress; missing records read as the zero value.
func (s *Service) Get(ctx context.Context, slug string) (LessonProgress, error) {
	return s.store.Get(ctx, slug)
}

// MarkLessonViewed records completion of the slide deck.
func (s *Service) MarkLessonViewed(ctx context.Context, slug string) (LessonProgress, error) {
	return s.store.Set(ctx, slug, Update{
		ViewedLesson: boolPtr(true),
		LastStep:     stepPtr(StepLesson),
	})
}

// MarkSummaryViewed records that the summary step was seen.
func (s *Service) MarkSummaryViewed(ctx context.Context, slug string) (LessonProgress, error) {
	return s.store.Set(ctx, slug, Update{
		ViewedSummary: boolPtr(true),
		LastStep:      stepPtr(StepSummary),
	})
}

// MarkQuizAttempted records a finished quiz attempt. Score and the pass
// verdict are both pinned here so later reads never re-derive them.
func (s *Service) MarkQuizAttempted(ctx context.Context, slug string, result quiz.Result) (LessonProgress, error) {
	passed := result.Score >= s.cfg.PassThreshold
	return s.store.Set(ctx, slug, Update{
		QuizAttempted: boolPtr(true),
		Score:         intPtr(result.Score),
		Passed:        boolPtr(passed),
		LastStep:      stepPtr(StepResult),
		CompletedAt:   timePtr(s.now()),
	})
}

// IsLessonLocked reports whether slug is soft-locked: locked iff the lesson
// immediately before it in catalog order has no recorded quiz attempt.
// Locked lessons stay viewable; only progression credit is withheld.
func (s *Service) IsLessonLocked(ctx context.Context, slug string) (bool, error) {
	prev, ok := catalog.Previous(slug)
	if !ok {
		return false, nil // first lesson, or unknown slug: never locked
	}
	p, err := s.store.Get(ctx, prev.Slug)
	if err != nil {
		return false, fmt.Errorf("read progress for %q: %w", prev.Slug, err)
	}
	return !CanCompleteLesson(p), nil
}

// CanAdvanceToNextLesson reports whether the learner may move from slug's
// result screen into the next lesson: the current lesson must have earned
// credit and a next lesson must exist.
func (s *Service) CanAdvanceToNextLesson(ctx context.Context, slug string) (bool, error) {
	if _, ok := catalog.Next(slug); !ok {
		return false, nil
	}
	p, err := s.store.Get(ctx, slug)
	if err != nil {
		return false, fmt.Errorf("read progress for %q: %w", slug, err)
	}
	return CanCompleteLesson(p), nil
}
