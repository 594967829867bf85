package learn

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/statlab/internal/catalog"
	"github.com/abhisek/statlab/internal/flow"
	"github.com/abhisek/statlab/internal/progress"
	"github.com/abhisek/statlab/internal/quiz"
	"github.com/abhisek/statlab/internal/router"
	"github.com/abhisek/statlab/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	quizEvents []store.QuizEventData
	xpEvents   []store.XPEventData
}

func (m *mockEventRepo) AppendQuiz(_ context.Context, data store.QuizEventData) error {
	m.quizEvents = append(m.quizEvents, data)
	return nil
}
func (m *mockEventRepo) AppendXP(_ context.Context, data store.XPEventData) error {
	m.xpEvents = append(m.xpEvents, data)
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) TotalXP(_ context.Context) (int, error) {
	total := 0
	for _, e := range m.xpEvents {
		total += e.Amount
	}
	return total, nil
}
func (m *mockEventRepo) AttemptCount(_ context.Context, _ string) (int, error) {
	return len(m.quizEvents), nil
}
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

// testLearnScreen creates a screen over the first catalog lesson with no
// backend, so it always runs on canned content.
func testLearnScreen(t *testing.T) (*LearnScreen, *mockEventRepo) {
	t.Helper()
	lesson := catalog.All()[0]
	svc := progress.NewService(progress.NewMemoryStore(), progress.DefaultConfig())
	repo := &mockEventRepo{}
	s := New(lesson, nil, svc, repo, nil, quiz.DefaultConfig())

	// Run the fetch command inline and feed its message back.
	msg := s.Init()()
	s.Update(msg)
	return s, repo
}

// walkToSummary pages through every slide and finishes the deck.
func walkToSummary(t *testing.T, s *LearnScreen) {
	t.Helper()
	for i := 0; i < len(s.ctrl.Deck())+2; i++ {
		if s.ctrl.Phase() != flow.PhaseLesson {
			return
		}
		s.Update(specialKey(tea.KeyEnter))
	}
	if s.ctrl.Phase() != flow.PhaseSummary {
		t.Fatalf("expected summary after walking the deck, got phase %v", s.ctrl.Phase())
	}
}

// answerAllCorrectly drives the quiz with correct answers until scoring, then
// feeds the scored message back into the screen.
func answerAllCorrectly(t *testing.T, s *LearnScreen) {
	t.Helper()
	if s.ctrl.Phase() != flow.PhaseQuiz {
		t.Fatalf("expected quiz phase, got %v", s.ctrl.Phase())
	}
	engine := s.ctrl.Engine()
	for i := 0; i < engine.Total()*2+2; i++ {
		q, ok := engine.Current()
		if !ok {
			break
		}
		switch q.Type {
		case quiz.TypeMCQ:
			s.mcSelected = q.CorrectIndex
			s.Update(specialKey(tea.KeyEnter))
		case quiz.TypeTF:
			if q.CorrectBool {
				s.mcSelected = 0
			} else {
				s.mcSelected = 1
			}
			s.Update(specialKey(tea.KeyEnter))
		case quiz.TypeFill:
			s.input.Model.SetValue(q.CorrectText)
			s.Update(specialKey(tea.KeyEnter))
		default:
			t.Fatalf("unexpected question type %q in canned quiz", q.Type)
		}
		if !s.showFeedback {
			t.Fatal("expected feedback overlay after submit")
		}
		// Dismiss feedback; on the final question this returns the
		// scoring command.
		_, cmd := s.Update(keyPress(' '))
		if cmd != nil && engine.Done() {
			s.Update(cmd())
		}
	}
}

func TestOpensAtDeckOnCannedContent(t *testing.T) {
	s, _ := testLearnScreen(t)

	if s.ctrl.Phase() != flow.PhaseLesson {
		t.Fatalf("expected lesson phase after content load, got %v", s.ctrl.Phase())
	}
	if !s.ctrl.Offline() {
		t.Error("expected offline content with no backend")
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "OFFLINE") {
		t.Error("expected offline badge in view")
	}
	if !strings.Contains(view, "Slide 1/") {
		t.Error("expected slide position in view")
	}
}

func TestDeckWalkReachesSummaryThenQuiz(t *testing.T) {
	s, _ := testLearnScreen(t)
	walkToSummary(t, s)

	view := s.View(100, 30)
	if !strings.Contains(view, "What you just learned") {
		t.Error("expected recap heading in summary view")
	}

	s.Update(specialKey(tea.KeyEnter))
	if s.ctrl.Phase() != flow.PhaseQuiz {
		t.Fatalf("expected quiz phase after summary, got %v", s.ctrl.Phase())
	}
	view = s.View(100, 30)
	if !strings.Contains(view, "♥") {
		t.Error("expected hearts display in quiz view")
	}
}

func TestPerfectRunReachesResultAndRecordsEvents(t *testing.T) {
	s, repo := testLearnScreen(t)
	walkToSummary(t, s)
	s.Update(specialKey(tea.KeyEnter))

	answerAllCorrectly(t, s)

	if s.ctrl.Phase() != flow.PhaseResult {
		t.Fatalf("expected result phase, got %v", s.ctrl.Phase())
	}
	if len(repo.quizEvents) != 1 {
		t.Fatalf("quiz events = %d, want 1", len(repo.quizEvents))
	}
	if repo.quizEvents[0].Score != 100 {
		t.Errorf("recorded score = %d, want 100", repo.quizEvents[0].Score)
	}
	if len(repo.xpEvents) != 1 {
		t.Fatalf("xp events = %d, want 1", len(repo.xpEvents))
	}

	view := s.View(100, 40)
	if !strings.Contains(view, "PERFECT") {
		t.Error("expected tier name in result view")
	}
	if !strings.Contains(view, fmt.Sprintf("+%d XP", repo.xpEvents[0].Amount)) {
		t.Error("expected awarded XP in result view")
	}
}

func TestQuitConfirmOnEsc(t *testing.T) {
	s, _ := testLearnScreen(t)

	s.Update(specialKey(tea.KeyEscape))
	if !s.showQuitConfirm {
		t.Fatal("expected quit confirmation after esc")
	}

	s.Update(keyPress('n'))
	if s.showQuitConfirm {
		t.Error("expected quit confirmation dismissed by n")
	}

	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after confirming quit")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg after confirming quit")
	}
	if err := s.ctrl.FinishLesson(context.Background()); !errors.Is(err, flow.ErrClosed) {
		t.Errorf("FinishLesson after leave = %v, want ErrClosed", err)
	}
}

func TestWrongAnswerCostsAHeart(t *testing.T) {
	s, _ := testLearnScreen(t)
	walkToSummary(t, s)
	s.Update(specialKey(tea.KeyEnter))

	engine := s.ctrl.Engine()
	before := engine.Hearts()

	q, ok := engine.Current()
	if !ok {
		t.Fatal("expected a current question")
	}
	// Pick a deliberately wrong answer.
	switch q.Type {
	case quiz.TypeMCQ:
		s.mcSelected = (q.CorrectIndex + 1) % len(q.Choices)
	case quiz.TypeTF:
		if q.CorrectBool {
			s.mcSelected = 1
		} else {
			s.mcSelected = 0
		}
	case quiz.TypeFill:
		s.input.Model.SetValue("definitely wrong")
	}
	s.Update(specialKey(tea.KeyEnter))

	if engine.Hearts() != before-1 {
		t.Errorf("hearts = %d, want %d", engine.Hearts(), before-1)
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "Not quite") {
		t.Error("expected incorrect feedback in view")
	}
	if !strings.Contains(view, "Correct answer:") {
		t.Error("expected correct answer reveal in view")
	}
}

func TestResultHintsOmitExplainWithoutTutor(t *testing.T) {
	s, _ := testLearnScreen(t)
	walkToSummary(t, s)
	s.Update(specialKey(tea.KeyEnter))
	answerAllCorrectly(t, s)

	for _, h := range s.KeyHints() {
		if h.Key == "E" {
			t.Error("explain hint should be hidden without a tutor service")
		}
	}
}

