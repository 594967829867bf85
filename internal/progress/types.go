// Package progress persists per-lesson progress and enforces the soft lock.
//
// Progress is best-effort state, not a gate on content: a missing or corrupt
// record reads as the zero value and never blocks navigation. Only
// progression credit (XP, unlocking the next lesson) depends on it.
package progress

import (
	"context"
	"time"
)

// Step is a stage of the lesson flow. The flow controller owns transitions;
// progress owns the gating rules between steps.
type Step string

const (
	StepLesson  Step = "lesson"
	StepSummary Step = "summary"
	StepQuiz    Step = "quiz"
	StepResult  Step = "result"
)

// LessonProgress is the persisted per-lesson record. The zero value is the
// canonical "never opened" state.
type LessonProgress struct {
	ViewedLesson  bool
	ViewedSummary bool
	QuizAttempted bool
	Score         *int  // set iff QuizAttempted
	Passed        *bool // set iff QuizAttempted; evaluated once, at submission
	LastStep      Step
	CompletedAt   *time.Time
}

// Update is a partial LessonProgress; nil fields are left untouched by Set.
type Update struct {
	ViewedLesson  *bool
	ViewedSummary *bool
	QuizAttempted *bool
	Score         *int
	Passed        *bool
	LastStep      *Step
	CompletedAt   *time.Time
}

// Apply merges u into p and returns the result. Nil fields leave the
// corresponding field of p untouched.
func (u Update) Apply(p LessonProgress) LessonProgress {
	if u.ViewedLesson != nil {
		p.ViewedLesson = *u.ViewedLesson
	}
	if u.ViewedSummary != nil {
		p.ViewedSummary = *u.ViewedSummary
	}
	if u.QuizAttempted != nil {
		p.QuizAttempted = *u.QuizAttempted
	}
	if u.Score != nil {
		score := *u.Score
		p.Score = &score
	}
	if u.Passed != nil {
		passed := *u.Passed
		p.Passed = &passed
	}
	if u.LastStep != nil {
		p.LastStep = *u.LastStep
	}
	if u.CompletedAt != nil {
		at := *u.CompletedAt
		p.CompletedAt = &at
	}
	return p
}

// Store is the persistence surface for lesson progress. Implementations are
// keyed by lesson slug; Get on an unknown or unreadable record returns the
// zero value, never an error the caller has to branch on for navigation.
type Store interface {
	Get(ctx context.Context, slug string) (LessonProgress, error)
	Set(ctx context.Context, slug string, u Update) (LessonProgress, error)
	All(ctx context.Context) (map[string]LessonProgress, error)
	Reset(ctx context.Context, slug string) error
	ResetAll(ctx context.Context) error
}

func boolPtr(b bool) *bool           { return &b }
func intPtr(n int) *int              { return &n }
func stepPtr(s Step) *Step           { return &s }
func timePtr(t time.Time) *time.Time { return &t }
