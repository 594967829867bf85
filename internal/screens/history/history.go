package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/statlab/internal/catalog"
	"github.com/abhisek/statlab/internal/router"
	"github.com/abhisek/statlab/internal/screen"
	"github.com/abhisek/statlab/internal/store"
	"github.com/abhisek/statlab/internal/ui/layout"
	"github.com/abhisek/statlab/internal/ui/theme"
)

type historyLoadedMsg struct {
	Attempts []store.QuizAttempt
	Err      error
}

// HistoryScreen displays past quiz attempts, newest first.
type HistoryScreen struct {
	eventRepo store.EventRepo
	attempts  []store.QuizAttempt
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		attempts, err := s.eventRepo.RecentAttempts(context.Background(), 50)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Attempts: attempts}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.attempts = msg.Attempts
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.attempts) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No quiz attempts yet. Start a lesson!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, a := range s.attempts {
		dateStr := a.Timestamp.Format("Jan 02, 2006")

		title := a.LessonSlug
		if l, ok := catalog.Get(a.LessonSlug); ok {
			title = l.Title
		}

		mins := a.TimeSpentSecs / 60
		secs := a.TimeSpentSecs % 60
		durationStr := fmt.Sprintf("%d:%02d", mins, secs)

		outcome := "passed"
		outcomeStyle := lipgloss.NewStyle().Foreground(theme.Success)
		switch {
		case a.Exhausted:
			outcome = "out of hearts"
			outcomeStyle = outcomeStyle.Foreground(theme.Error)
		case !a.Passed:
			outcome = "not passed"
			outcomeStyle = outcomeStyle.Foreground(theme.Accent)
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %d%%  %d/%d correct  %s  %s",
			prefix, dateStr, title, a.Score, a.CorrectAnswers, a.TotalQuestions,
			durationStr, outcomeStyle.Render(outcome))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		// Show expanded per-question detail.
		if s.expanded[i] {
			if len(a.Answers) == 0 {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
						Render("    No answer detail recorded")))
				b.WriteString("\n")
			}
			for _, ans := range a.Answers {
				mark := lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
				if !ans.Correct {
					mark = lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
				}
				detail := fmt.Sprintf("    %s %s", mark, ans.QuestionID)
				if ans.TimeMs > 0 {
					detail += fmt.Sprintf("  %.1fs", float64(ans.TimeMs)/1000)
				}
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
				b.WriteString("\n")
			}
			statLine := fmt.Sprintf("    best streak %d   hearts left %d",
				a.BestStreak, a.HeartsLeft)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(statLine)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
