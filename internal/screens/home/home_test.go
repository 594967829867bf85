package home

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/statlab/internal/catalog"
	"github.com/abhisek/statlab/internal/progress"
	"github.com/abhisek/statlab/internal/quiz"
	"github.com/abhisek/statlab/internal/router"
	"github.com/abhisek/statlab/internal/screen"
	"github.com/abhisek/statlab/internal/screens/history"
	learnscreen "github.com/abhisek/statlab/internal/screens/learn"
	"github.com/abhisek/statlab/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	xp int
}

func (m *mockEventRepo) AppendQuiz(_ context.Context, _ store.QuizEventData) error { return nil }
func (m *mockEventRepo) AppendXP(_ context.Context, _ store.XPEventData) error     { return nil }
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) TotalXP(_ context.Context) (int, error)              { return m.xp, nil }
func (m *mockEventRepo) AttemptCount(_ context.Context, _ string) (int, error) { return 0, nil }
func (m *mockEventRepo) RecentAttempts(_ context.Context, _ int) ([]store.QuizAttempt, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStats, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testHomeScreen(t *testing.T) (*HomeScreen, *progress.Service) {
	t.Helper()
	svc := progress.NewService(progress.NewMemoryStore(), progress.DefaultConfig())
	h := New(nil, svc, &mockEventRepo{xp: 120}, nil, quiz.DefaultConfig())

	msg := h.Init()()
	h.Update(msg)
	return h, svc
}

func TestLoadBuildsCatalogRows(t *testing.T) {
	h, _ := testHomeScreen(t)

	if !h.loaded {
		t.Fatal("expected screen loaded after init message")
	}
	if len(h.rows) != catalog.Count() {
		t.Fatalf("rows = %d, want %d", len(h.rows), catalog.Count())
	}
	if h.rows[0].Locked {
		t.Error("first lesson must never be locked")
	}
	if !h.rows[1].Locked {
		t.Error("second lesson should be locked before the first has a quiz attempt")
	}
	if h.xp != 120 {
		t.Errorf("xp = %d, want 120", h.xp)
	}

	view := h.View(100, 30)
	if !strings.Contains(view, "✦ 120 XP") {
		t.Error("expected XP tally in view")
	}
	if !strings.Contains(view, "lessons passed") {
		t.Error("expected pass tally in view")
	}
}

func TestEnterOpensUnlockedLesson(t *testing.T) {
	h, _ := testHomeScreen(t)

	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected push command for unlocked lesson")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := push.Screen.(*learnscreen.LearnScreen); !ok {
		t.Errorf("pushed screen = %T, want *learn.LearnScreen", push.Screen)
	}
}

func TestEnterBlocksLockedLesson(t *testing.T) {
	h, _ := testHomeScreen(t)

	h.Update(keyPress('j'))
	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no command for a locked lesson")
	}
	if h.notice == "" {
		t.Error("expected unlock notice for a locked lesson")
	}
	if !strings.Contains(h.View(100, 30), h.notice) {
		t.Error("expected notice rendered in view")
	}
}

func TestLockClearsAfterQuizAttempt(t *testing.T) {
	h, svc := testHomeScreen(t)

	_, err := svc.MarkQuizAttempted(context.Background(), catalog.All()[0].Slug, quiz.Result{Score: 80})
	if err != nil {
		t.Fatalf("MarkQuizAttempted: %v", err)
	}

	// RefreshMsg re-runs the load; feed the resulting message back.
	_, cmd := h.Update(screen.RefreshMsg{})
	if cmd == nil {
		t.Fatal("expected reload command on refresh")
	}
	h.Update(cmd())

	if h.rows[1].Locked {
		t.Error("second lesson should unlock after the first records an attempt")
	}
}

func TestHistoryKeyPushesHistory(t *testing.T) {
	h, _ := testHomeScreen(t)

	_, cmd := h.Update(keyPress('h'))
	if cmd == nil {
		t.Fatal("expected push command for history")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := push.Screen.(*history.HistoryScreen); !ok {
		t.Errorf("pushed screen = %T, want *history.HistoryScreen", push.Screen)
	}
}

func TestSelectionStopsAtEdges(t *testing.T) {
	h, _ := testHomeScreen(t)

	h.Update(keyPress('k'))
	if h.selected != 0 {
		t.Errorf("selected = %d after up at top, want 0", h.selected)
	}

	for i := 0; i < len(h.rows)+3; i++ {
		h.Update(keyPress('j'))
	}
	if h.selected != len(h.rows)-1 {
		t.Errorf("selected = %d after down past end, want %d", h.selected, len(h.rows)-1)
	}
}

func TestKeyHintsPresent(t *testing.T) {
	h, _ := testHomeScreen(t)
	if len(h.KeyHints()) == 0 {
		t.Error("expected footer key hints")
	}
}
