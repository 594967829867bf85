package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/statlab/internal/api"
	"github.com/abhisek/statlab/internal/progress"
	"github.com/abhisek/statlab/internal/quiz"
	"github.com/abhisek/statlab/internal/router"
	"github.com/abhisek/statlab/internal/screen"
	"github.com/abhisek/statlab/internal/screens/home"
	"github.com/abhisek/statlab/internal/screens/welcome"
	"github.com/abhisek/statlab/internal/store"
	"github.com/abhisek/statlab/internal/tutor"
	"github.com/abhisek/statlab/internal/ui/layout"
)

// Deps is the backend wiring the TUI runs on. Client may be nil, in which
// case lessons run on the canned offline content. Tutor may be nil, which
// hides the explain action on the result screen.
type Deps struct {
	Client   *api.Client
	Progress *progress.Service
	Events   store.EventRepo
	Tutor    *tutor.Service
	QuizCfg  quiz.Config

	// SkipSplash opens straight on the lesson list.
	SkipSplash bool
}

// xpLoadedMsg carries the total XP shown in the header.
type xpLoadedMsg struct {
	xp int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	deps   Deps
	width  int
	height int
	xp     int
}

func newAppModel(deps Deps) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(deps.Client, deps.Progress, deps.Events, deps.Tutor, deps.QuizCfg)
	}

	var first screen.Screen
	if deps.SkipSplash {
		first = homeFactory()
	} else {
		first = welcome.New(homeFactory)
	}

	return AppModel{
		router: router.New(first),
		deps:   deps,
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.loadXP())
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case xpLoadedMsg:
		m.xp = msg.xp
		return m, nil

	case router.PopScreenMsg:
		// Handled here rather than in the router so the revealed screen
		// reloads its data and the header XP stays current.
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, refreshActiveCmd(), m.loadXP())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscHandler); ok && h.HandlesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				cmd := m.router.Update(router.PopScreenMsg{})
				return m, tea.Batch(cmd, refreshActiveCmd(), m.loadXP())
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.xp, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints prefers the active screen's own hints over the stock set.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return hints
		}
	}

	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m AppModel) loadXP() tea.Cmd {
	repo := m.deps.Events
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		total, err := repo.TotalXP(context.Background())
		if err != nil {
			return xpLoadedMsg{}
		}
		return xpLoadedMsg{xp: total}
	}
}

func refreshActiveCmd() tea.Cmd {
	return func() tea.Msg { return screen.RefreshMsg{} }
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
