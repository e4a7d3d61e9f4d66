package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/samber/lo"

	"github.com/keyquiz/keyquiz/internal/docs"
	"github.com/keyquiz/keyquiz/internal/router"
	"github.com/keyquiz/keyquiz/internal/screen"
	"github.com/keyquiz/keyquiz/internal/screens/answer"
	"github.com/keyquiz/keyquiz/internal/screens/placeholder"
	"github.com/keyquiz/keyquiz/internal/screens/records"
	sessionscreen "github.com/keyquiz/keyquiz/internal/screens/session"
	"github.com/keyquiz/keyquiz/internal/store"
	"github.com/keyquiz/keyquiz/internal/ui/components"
	"github.com/keyquiz/keyquiz/internal/ui/layout"
)

// Deps are the services reachable from the home menu.
type Deps struct {
	Quiz    sessionscreen.Config
	Answers docs.AnswerSource
	Events  store.EventRepo
}

type statsLoadedMsg struct {
	Stats Stats
	Err   error
}

// Stats summarises finished games for the home dashboard.
type Stats struct {
	Played      int
	BestScore   int
	LastOutcome string
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps  Deps
	menu  components.Menu
	stats Stats
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Focusable = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	items := []components.MenuItem{
		{Label: "QUIZ GAME", Action: func() tea.Cmd {
			if deps.Quiz.Keywords == nil {
				return push(placeholder.New("Quiz Game"))
			}
			return push(sessionscreen.New(deps.Quiz))
		}},
		{Label: "ANSWER LOOKUP", Action: func() tea.Cmd {
			return push(answer.New(deps.Answers))
		}},
		{Label: "RECORDS", Action: func() tea.Cmd {
			return push(records.New(deps.Events))
		}},
		{Label: "BOARD", Action: func() tea.Cmd {
			return push(placeholder.New("Board"))
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

// Focus refreshes the dashboard after returning from a game.
func (h *HomeScreen) Focus() tea.Cmd {
	return h.loadStats()
}

func (h *HomeScreen) Blur() {}

func (h *HomeScreen) loadStats() tea.Cmd {
	repo := h.deps.Events
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		recs, err := repo.QuerySessionSummaries(context.Background(), store.QueryOpts{})
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		return statsLoadedMsg{Stats: computeStats(recs)}
	}
}

// computeStats expects records newest first.
func computeStats(recs []store.SessionRecord) Stats {
	if len(recs) == 0 {
		return Stats{}
	}
	best := lo.MaxBy(recs, func(a, b store.SessionRecord) bool { return a.Score > b.Score })
	return Stats{
		Played:      len(recs),
		BestScore:   best.Score,
		LastOutcome: recs[0].Outcome,
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(statsLoadedMsg); ok {
		// The dashboard keeps its last values when the query fails.
		if msg.Err == nil {
			h.stats = msg.Stats
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer.
	compact := layout.IsCompactHeight(height+8) || width < 100
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderEmblemBox(emblemFor(h.stats.LastOutcome), cw))
	}
	sections = append(sections, renderStatsBar(h.stats, cw, compact))
	sections = append(sections, renderMenu(h.menu, cw))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height, false)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
