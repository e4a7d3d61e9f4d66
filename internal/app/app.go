package app

import (
	"log/slog"
	"math/rand/v2"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/keyquiz/keyquiz/internal/docs"
	"github.com/keyquiz/keyquiz/internal/profile"
	"github.com/keyquiz/keyquiz/internal/router"
	"github.com/keyquiz/keyquiz/internal/screen"
	"github.com/keyquiz/keyquiz/internal/screens/home"
	sessionscreen "github.com/keyquiz/keyquiz/internal/screens/session"
	"github.com/keyquiz/keyquiz/internal/screens/welcome"
	"github.com/keyquiz/keyquiz/internal/store"
	"github.com/keyquiz/keyquiz/internal/ui/layout"
)

// Options holds the dependencies for the TUI.
type Options struct {
	Keywords docs.KeywordSource
	Answers  docs.AnswerSource
	Events   store.EventRepo
	Profile  profile.Profile

	// DurationSeconds is the quiz countdown; zero uses the default.
	DurationSeconds int

	// NewRand seeds each quiz session. Nil seeds randomly.
	NewRand func() *rand.Rand

	Logger *slog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	profile profile.Profile
	width   int
	height  int
}

// newAppModel creates a new AppModel starting at the welcome splash.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	deps := home.Deps{
		Quiz: sessionscreen.Config{
			Keywords:        opts.Keywords,
			Events:          opts.Events,
			Profile:         opts.Profile,
			DurationSeconds: opts.DurationSeconds,
			NewRand:         opts.NewRand,
			Logger:          opts.Logger,
		},
		Answers: opts.Answers,
		Events:  opts.Events,
	}
	splash := welcome.New(func() screen.Screen { return home.New(deps) })
	return AppModel{
		router:  router.New(splash),
		profile: opts.Profile,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if bi, ok := m.router.Active().(screen.BackInterceptor); ok && bi.InterceptBack() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
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
	header := layout.RenderHeader(active.Title(), m.profile.DisplayName(), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
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

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		if opts.Logger != nil {
			opts.Logger.Error("tui exited", "err", err)
		}
		return err
	}
	return nil
}
