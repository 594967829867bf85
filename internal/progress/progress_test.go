package progress

import (
	"context"
	"testing"

	"github.com/abhisek/statlab/internal/quiz"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewMemoryStore(), DefaultConfig())
}

func TestGetMissingReturnsZeroValue(t *testing.T) {
	s := newTestService(t)
	p, err := s.Get(context.Background(), "never-opened")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.ViewedLesson || p.ViewedSummary || p.QuizAttempted {
		t.Errorf("zero value expected, got %+v", p)
	}
	if p.Score != nil || p.Passed != nil || p.CompletedAt != nil {
		t.Errorf("optional fields should be nil: %+v", p)
	}
}

func TestSetMergesNotReplaces(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	if _, err := s.MarkLessonViewed(ctx, "l1"); err != nil {
		t.Fatalf("MarkLessonViewed: %v", err)
	}
	if _, err := s.MarkSummaryViewed(ctx, "l1"); err != nil {
		t.Fatalf("MarkSummaryViewed: %v", err)
	}

	p, _ := s.Get(ctx, "l1")
	if !p.ViewedLesson || !p.ViewedSummary {
		t.Errorf("earlier flags lost on merge: %+v", p)
	}
	if p.LastStep != StepSummary {
		t.Errorf("LastStep = %q, want summary", p.LastStep)
	}
}

func TestMarkQuizAttemptedSetsScoreAndVerdict(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	p, err := s.MarkQuizAttempted(ctx, "l1", quiz.Result{Score: 80, TotalQuestions: 5, CorrectAnswers: 4})
	if err != nil {
		t.Fatalf("MarkQuizAttempted: %v", err)
	}

	if !p.QuizAttempted {
		t.Error("QuizAttempted not set")
	}
	if p.Score == nil || *p.Score != 80 {
		t.Errorf("Score = %v, want 80", p.Score)
	}
	if p.Passed == nil || !*p.Passed {
		t.Errorf("Passed = %v, want true at threshold 70", p.Passed)
	}
	if p.CompletedAt == nil {
		t.Error("CompletedAt not set")
	}
}

func TestPassThresholdEvaluatedAtSubmission(t *testing.T) {
	s := NewService(NewMemoryStore(), Config{PassThreshold: 90})
	ctx := context.Background()

	p, _ := s.MarkQuizAttempted(ctx, "l1", quiz.Result{Score: 80})
	if p.Passed == nil || *p.Passed {
		t.Errorf("80 should fail a 90 threshold: %v", p.Passed)
	}
}

func TestCanAdvanceToStepMonotonicGating(t *testing.T) {
	all := LessonProgress{ViewedLesson: true, ViewedSummary: true, QuizAttempted: true}

	tests := []struct {
		name string
		p    LessonProgress
		step Step
		want bool
	}{
		{"fresh to lesson", LessonProgress{}, StepLesson, true},
		{"fresh to summary", LessonProgress{}, StepSummary, false},
		{"fresh to quiz", LessonProgress{}, StepQuiz, false},
		{"fresh to result", LessonProgress{}, StepResult, false},
		{"viewed to summary", LessonProgress{ViewedLesson: true}, StepSummary, true},
		{"viewed to quiz", LessonProgress{ViewedLesson: true}, StepQuiz, false},
		{"summary skipped to quiz", LessonProgress{ViewedSummary: true}, StepQuiz, false},
		{"late flag alone to result", LessonProgress{QuizAttempted: true}, StepResult, false},
		{"all to result", all, StepResult, true},
		{"unknown step", all, Step("bogus"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAdvanceToStep(tt.step, tt.p); got != tt.want {
				t.Errorf("CanAdvanceToStep(%q, %+v) = %v, want %v", tt.step, tt.p, got, tt.want)
			}
		})
	}
}

func TestStepProgressPercentages(t *testing.T) {
	want := map[Step]int{StepLesson: 25, StepSummary: 50, StepQuiz: 75, StepResult: 100}
	for step, pct := range want {
		if got := StepProgress(step); got != pct {
			t.Errorf("StepProgress(%q) = %d, want %d", step, got, pct)
		}
	}
	if StepProgress(Step("bogus")) != 0 {
		t.Error("unknown step should map to 0")
	}
}

func TestSoftLock(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	// First lesson is never locked.
	locked, err := s.IsLessonLocked(ctx, "intro-to-statistics")
	if err != nil || locked {
		t.Errorf("first lesson locked = %v, err %v", locked, err)
	}

	// Second lesson locked until the first records a quiz attempt.
	locked, _ = s.IsLessonLocked(ctx, "mean-median-mode")
	if !locked {
		t.Error("second lesson should be locked with no prior attempt")
	}

	// A failing attempt still unlocks: credit requires an attempt, not a pass.
	s.MarkQuizAttempted(ctx, "intro-to-statistics", quiz.Result{Score: 20})
	locked, _ = s.IsLessonLocked(ctx, "mean-median-mode")
	if locked {
		t.Error("attempted previous lesson should unlock the next")
	}

	// Only the immediately preceding lesson matters.
	locked, _ = s.IsLessonLocked(ctx, "variance-std-dev")
	if !locked {
		t.Error("third lesson should still be locked")
	}
}

func TestCanAdvanceToNextLesson(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	ok, _ := s.CanAdvanceToNextLesson(ctx, "intro-to-statistics")
	if ok {
		t.Error("no attempt yet: advance should be refused")
	}

	s.MarkQuizAttempted(ctx, "intro-to-statistics", quiz.Result{Score: 100})
	ok, _ = s.CanAdvanceToNextLesson(ctx, "intro-to-statistics")
	if !ok {
		t.Error("attempted lesson should allow advancing")
	}

	// Last catalog lesson has nowhere to advance to.
	s.MarkQuizAttempted(ctx, "hypothesis-testing", quiz.Result{Score: 100})
	ok, _ = s.CanAdvanceToNextLesson(ctx, "hypothesis-testing")
	if ok {
		t.Error("last lesson should not advance")
	}
}

func TestResetScopedToOneLesson(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	s.MarkLessonViewed(ctx, "l1")
	s.MarkLessonViewed(ctx, "l2")

	if err := s.Store().Reset(ctx, "l1"); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	p1, _ := s.Get(ctx, "l1")
	p2, _ := s.Get(ctx, "l2")
	if p1.ViewedLesson {
		t.Error("l1 should be reset")
	}
	if !p2.ViewedLesson {
		t.Error("l2 should be untouched")
	}
}
