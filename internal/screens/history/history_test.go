package history

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/statlab/internal/router"
	"github.com/abhisek/statlab/internal/store"
)

// mockEventRepo implements store.EventRepo with canned attempts.
type mockEventRepo struct {
	attempts []store.QuizAttempt
}

func (m *mockEventRepo) AppendQuiz(_ context.Context, _ store.QuizEventData) error { return nil }
func (m *mockEventRepo) AppendXP(_ context.Context, _ store.XPEventData) error     { return nil }
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) TotalXP(_ context.Context) (int, error)                { return 0, nil }
func (m *mockEventRepo) AttemptCount(_ context.Context, _ string) (int, error) { return 0, nil }
func (m *mockEventRepo) RecentAttempts(_ context.Context, limit int) ([]store.QuizAttempt, error) {
	if limit < len(m.attempts) {
		return m.attempts[:limit], nil
	}
	return m.attempts, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStats, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testAttempt(score int, passed bool) store.QuizAttempt {
	return store.QuizAttempt{
		QuizEventData: store.QuizEventData{
			LessonSlug:     "mean-median-mode",
			Score:          score,
			TotalQuestions: 5,
			CorrectAnswers: score / 20,
			HeartsLeft:     2,
			BestStreak:     3,
			TimeSpentSecs:  95,
			Passed:         passed,
			Answers: []store.AnswerData{
				{QuestionID: "q1", Correct: true},
				{QuestionID: "q2", Correct: false},
			},
		},
		Timestamp: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}
}

func testHistoryScreen(t *testing.T, attempts ...store.QuizAttempt) *HistoryScreen {
	t.Helper()
	s := New(&mockEventRepo{attempts: attempts})
	msg := s.Init()()
	s.Update(msg)
	return s
}

func TestEmptyHistory(t *testing.T) {
	s := testHistoryScreen(t)
	view := s.View(100, 30)
	if !strings.Contains(view, "No quiz attempts yet") {
		t.Error("expected empty-state message")
	}
}

func TestAttemptRowRendered(t *testing.T) {
	s := testHistoryScreen(t, testAttempt(80, true))

	view := s.View(120, 30)
	if !strings.Contains(view, "80%") {
		t.Error("expected score in row")
	}
	if !strings.Contains(view, "1:35") {
		t.Error("expected duration in row")
	}
	if !strings.Contains(view, "passed") {
		t.Error("expected outcome in row")
	}
}

func TestEnterTogglesDetail(t *testing.T) {
	s := testHistoryScreen(t, testAttempt(60, false))

	s.Update(specialKey(tea.KeyEnter))
	view := s.View(120, 30)
	if !strings.Contains(view, "q2") {
		t.Error("expected per-question detail after expand")
	}
	if !strings.Contains(view, "best streak 3") {
		t.Error("expected attempt stats in detail")
	}

	s.Update(specialKey(tea.KeyEnter))
	if strings.Contains(s.View(120, 30), "best streak 3") {
		t.Error("expected detail collapsed after second enter")
	}
}

func TestEscPops(t *testing.T) {
	s := testHistoryScreen(t, testAttempt(80, true))

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a command on esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on esc")
	}
}
