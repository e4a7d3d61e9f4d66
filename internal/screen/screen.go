package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/keyquiz/keyquiz/internal/ui/layout"
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

// Focusable is an optional interface for screens that hold live work
// (timers, fetches) while on top of the stack. Blur is called when another
// screen covers or replaces it; Focus when it becomes the top again.
type Focusable interface {
	Focus() tea.Cmd
	Blur()
}

// BackInterceptor is an optional interface for screens that consume Esc
// themselves while InterceptBack reports true (an open modal, for example).
type BackInterceptor interface {
	InterceptBack() bool
}
