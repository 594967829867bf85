package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/statlab/internal/api"
	"github.com/abhisek/statlab/internal/catalog"
	"github.com/abhisek/statlab/internal/progress"
	"github.com/abhisek/statlab/internal/quiz"
	"github.com/abhisek/statlab/internal/router"
	"github.com/abhisek/statlab/internal/screen"
	"github.com/abhisek/statlab/internal/screens/history"
	learnscreen "github.com/abhisek/statlab/internal/screens/learn"
	"github.com/abhisek/statlab/internal/store"
	"github.com/abhisek/statlab/internal/tutor"
	"github.com/abhisek/statlab/internal/ui/layout"
	"github.com/abhisek/statlab/internal/ui/theme"
)

// lessonRow is one catalog entry with its load-time progress state.
type lessonRow struct {
	Lesson   catalog.Lesson
	Progress progress.LessonProgress
	Locked   bool
}

type homeLoadedMsg struct {
	Rows []lessonRow
	XP   int
	Err  error
}

// HomeScreen lists the curriculum with per-lesson lock and completion state.
type HomeScreen struct {
	client      *api.Client
	progressSvc *progress.Service
	events      store.EventRepo
	tutorSvc    *tutor.Service
	quizCfg     quiz.Config

	rows     []lessonRow
	xp       int
	selected int
	loaded   bool
	notice   string
	errMsg   string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen with injected dependencies. tutorSvc may be nil
// when no LLM provider is configured.
func New(client *api.Client, progressSvc *progress.Service, events store.EventRepo, tutorSvc *tutor.Service, quizCfg quiz.Config) *HomeScreen {
	return &HomeScreen{
		client:      client,
		progressSvc: progressSvc,
		events:      events,
		tutorSvc:    tutorSvc,
		quizCfg:     quizCfg,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.load()
}

func (h *HomeScreen) Title() string {
	return "Lessons"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start lesson"},
		{Key: "H", Description: "History"},
		{Key: "Q", Description: "Quit"},
	}
}

// load queries progress and XP for every catalog entry.
func (h *HomeScreen) load() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		rows := make([]lessonRow, 0, catalog.Count())
		for _, l := range catalog.All() {
			p, err := h.progressSvc.Get(ctx, l.Slug)
			if err != nil {
				return homeLoadedMsg{Err: err}
			}
			locked, err := h.progressSvc.IsLessonLocked(ctx, l.Slug)
			if err != nil {
				return homeLoadedMsg{Err: err}
			}
			rows = append(rows, lessonRow{Lesson: l, Progress: p, Locked: locked})
		}

		var xp int
		if h.events != nil {
			xp, _ = h.events.TotalXP(ctx)
		}

		return homeLoadedMsg{Rows: rows, XP: xp}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case homeLoadedMsg:
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			h.loaded = true
			return h, nil
		}
		h.rows = msg.Rows
		h.xp = msg.XP
		if h.selected >= len(h.rows) {
			h.selected = len(h.rows) - 1
		}
		h.loaded = true
		return h, nil

	case screen.RefreshMsg:
		return h, h.load()

	case tea.KeyMsg:
		return h.handleKey(msg)
	}
	return h, nil
}

func (h *HomeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if !h.loaded {
		return h, nil
	}
	h.notice = ""

	switch msg.String() {
	case "up", "k":
		if h.selected > 0 {
			h.selected--
		}
	case "down", "j":
		if h.selected < len(h.rows)-1 {
			h.selected++
		}
	case "enter":
		return h.openSelected()
	case "h", "H":
		if h.events == nil {
			return h, nil
		}
		repo := h.events
		return h, func() tea.Msg {
			return router.PushScreenMsg{Screen: history.New(repo)}
		}
	case "q", "Q":
		return h, tea.Quit
	}
	return h, nil
}

func (h *HomeScreen) openSelected() (screen.Screen, tea.Cmd) {
	if h.selected < 0 || h.selected >= len(h.rows) {
		return h, nil
	}
	row := h.rows[h.selected]
	if row.Locked {
		h.notice = fmt.Sprintf("Pass the previous quiz to unlock %q.", row.Lesson.Title)
		return h, nil
	}
	ls := learnscreen.New(row.Lesson, h.client, h.progressSvc, h.events, h.tutorSvc, h.quizCfg)
	return h, func() tea.Msg {
		return router.PushScreenMsg{Screen: ls}
	}
}

func (h *HomeScreen) View(width, height int) string {
	if h.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", h.errMsg))
	}
	if !h.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading curriculum...")
	}

	var b strings.Builder
	b.WriteString("\n")

	// Completed / XP tally line.
	completed := 0
	for _, r := range h.rows {
		if r.Progress.Passed != nil && *r.Progress.Passed {
			completed++
		}
	}
	statsLine := fmt.Sprintf("%d/%d lessons passed   ✦ %d XP", completed, len(h.rows), h.xp)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(statsLine)))
	b.WriteString("\n\n")

	var currentUnit catalog.Unit
	for i, row := range h.rows {
		if row.Lesson.Unit != currentUnit {
			currentUnit = row.Lesson.Unit
			unitLine := lipgloss.NewStyle().
				Foreground(theme.Secondary).
				Bold(true).
				Render(currentUnit.DisplayName())
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, unitLine))
			b.WriteString("\n")
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.renderRow(i, row)))
		b.WriteString("\n")
	}

	if h.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).Italic(true).Render(h.notice)))
		b.WriteString("\n")
	}

	return b.String()
}

// renderRow renders one lesson line at a fixed width so the list aligns.
func (h *HomeScreen) renderRow(i int, row lessonRow) string {
	badge := "○"
	badgeStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	switch {
	case row.Progress.Passed != nil && *row.Progress.Passed:
		badge = "★"
		badgeStyle = badgeStyle.Foreground(theme.Highlight)
	case row.Progress.QuizAttempted:
		badge = "◐"
		badgeStyle = badgeStyle.Foreground(theme.Accent)
	case row.Locked:
		badge = "✖"
	}

	title := row.Lesson.Title
	suffix := fmt.Sprintf("  ~%d min", row.Lesson.EstimatedMins)
	if row.Progress.Score != nil {
		suffix = fmt.Sprintf("  %d%%", *row.Progress.Score)
	}

	prefix := "  "
	if i == h.selected {
		prefix = "▸ "
	}

	line := fmt.Sprintf("%s%s  %-34s%s", prefix, badgeStyle.Render(badge), title, suffix)

	style := lipgloss.NewStyle().Foreground(theme.Text)
	if row.Locked {
		style = style.Foreground(theme.TextDim)
	}
	if i == h.selected {
		style = style.Foreground(theme.Primary).Bold(true)
		if row.Locked {
			style = lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true)
		}
	}
	return style.Render(line)
}
