package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/statlab/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProgressGetMissingReturnsZero(t *testing.T) {
	s := openTestStore(t)
	ps := s.ProgressStore()

	p, err := ps.Get(context.Background(), "never-opened")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p != (progress.LessonProgress{}) {
		t.Errorf("expected zero value, got %+v", p)
	}
}

func TestProgressSetCreatesThenMerges(t *testing.T) {
	s := openTestStore(t)
	ps := s.ProgressStore()
	ctx := context.Background()

	viewed := true
	step := progress.StepLesson
	p, err := ps.Set(ctx, "mean-median-mode", progress.Update{
		ViewedLesson: &viewed,
		LastStep:     &step,
	})
	if err != nil {
		t.Fatalf("set (create): %v", err)
	}
	if !p.ViewedLesson || p.LastStep != progress.StepLesson {
		t.Errorf("after create: %+v", p)
	}

	// A later partial update must not clobber earlier fields.
	score := 80
	passed := true
	attempted := true
	p, err = ps.Set(ctx, "mean-median-mode", progress.Update{
		QuizAttempted: &attempted,
		Score:         &score,
		Passed:        &passed,
	})
	if err != nil {
		t.Fatalf("set (merge): %v", err)
	}
	if !p.ViewedLesson {
		t.Error("merge dropped ViewedLesson")
	}
	if p.Score == nil || *p.Score != 80 {
		t.Errorf("score = %v, want 80", p.Score)
	}
	if p.Passed == nil || !*p.Passed {
		t.Errorf("passed = %v, want true", p.Passed)
	}

	// Round-trip through a fresh read.
	got, err := ps.Get(ctx, "mean-median-mode")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Score == nil || *got.Score != 80 || !got.QuizAttempted {
		t.Errorf("round-trip: %+v", got)
	}
}

func TestProgressCompletedAtRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ps := s.ProgressStore()
	ctx := context.Background()

	at := time.Now().UTC().Truncate(time.Second)
	_, err := ps.Set(ctx, "variance-std-dev", progress.Update{CompletedAt: &at})
	if err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := ps.Get(ctx, "variance-std-dev")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(at) {
		t.Errorf("completed_at = %v, want %v", got.CompletedAt, at)
	}
}

func TestProgressResetScope(t *testing.T) {
	s := openTestStore(t)
	ps := s.ProgressStore()
	ctx := context.Background()

	viewed := true
	for _, slug := range []string{"intro-to-statistics", "mean-median-mode"} {
		if _, err := ps.Set(ctx, slug, progress.Update{ViewedLesson: &viewed}); err != nil {
			t.Fatalf("set %s: %v", slug, err)
		}
	}

	if err := ps.Reset(ctx, "intro-to-statistics"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	all, err := ps.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if _, ok := all["intro-to-statistics"]; ok {
		t.Error("reset lesson still present")
	}
	if _, ok := all["mean-median-mode"]; !ok {
		t.Error("reset removed an unrelated lesson")
	}

	if err := ps.ResetAll(ctx); err != nil {
		t.Fatalf("reset all: %v", err)
	}
	all, err = ps.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected empty store, got %d records", len(all))
	}
}

func TestQuizEventsSequenceAndHistory(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendQuiz(ctx, QuizEventData{
			LessonSlug:     "percentiles-quartiles",
			AttemptID:      "attempt-" + string(rune('a'+i)),
			Score:          60 + 10*i,
			TotalQuestions: 5,
			CorrectAnswers: 3 + i,
			HeartsLeft:     i,
			Passed:         i > 0,
			Answers: []AnswerData{
				{QuestionID: "q1", Correct: true, TimeMs: 1200},
			},
		})
		if err != nil {
			t.Fatalf("append quiz %d: %v", i, err)
		}
	}

	n, err := repo.AttemptCount(ctx, "percentiles-quartiles")
	if err != nil {
		t.Fatalf("attempt count: %v", err)
	}
	if n != 3 {
		t.Errorf("attempt count = %d, want 3", n)
	}

	n, err = repo.AttemptCount(ctx, "hypothesis-testing")
	if err != nil {
		t.Fatalf("attempt count (other): %v", err)
	}
	if n != 0 {
		t.Errorf("attempt count for untouched lesson = %d, want 0", n)
	}

	attempts, err := repo.RecentAttempts(ctx, 2)
	if err != nil {
		t.Fatalf("recent attempts: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("len(attempts) = %d, want 2", len(attempts))
	}
	// Newest first.
	if attempts[0].Score != 80 || attempts[1].Score != 70 {
		t.Errorf("scores = %d, %d; want 80, 70", attempts[0].Score, attempts[1].Score)
	}
	if len(attempts[0].Answers) != 1 || attempts[0].Answers[0].QuestionID != "q1" {
		t.Errorf("answers not round-tripped: %+v", attempts[0].Answers)
	}
}

func TestTotalXP(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	total, err := repo.TotalXP(ctx)
	if err != nil {
		t.Fatalf("total xp (empty): %v", err)
	}
	if total != 0 {
		t.Errorf("total xp = %d, want 0", total)
	}

	awards := []XPEventData{
		{LessonSlug: "intro-to-statistics", AttemptID: "a1", Tier: "good", Amount: 40},
		{LessonSlug: "mean-median-mode", AttemptID: "a2", Tier: "perfect", Amount: 100},
	}
	for _, a := range awards {
		if err := repo.AppendXP(ctx, a); err != nil {
			t.Fatalf("append xp: %v", err)
		}
	}

	total, err = repo.TotalXP(ctx)
	if err != nil {
		t.Fatalf("total xp: %v", err)
	}
	if total != 140 {
		t.Errorf("total xp = %d, want 140", total)
	}
}

func TestLLMRequestEventAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()

	err := repo.AppendLLMRequest(context.Background(), LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-sonnet-4-5",
		Purpose:      "explanation",
		InputTokens:  250,
		OutputTokens: 120,
		LatencyMs:    900,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append llm request: %v", err)
	}
}
