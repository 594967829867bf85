package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/statlab/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// EscHandler is an optional interface for screens that manage the Esc key
// themselves, e.g. to confirm before leaving. The app only pops screens
// that do not claim it.
type EscHandler interface {
	HandlesEsc() bool
}

// RefreshMsg tells the active screen to reload its data. The app sends it
// after a screen is popped, so the screen underneath picks up any progress
// recorded while it was covered.
type RefreshMsg struct{}
