package session

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/keyquiz/keyquiz/internal/docs"
	"github.com/keyquiz/keyquiz/internal/profile"
	"github.com/keyquiz/keyquiz/internal/router"
	"github.com/keyquiz/keyquiz/internal/screen"
	"github.com/keyquiz/keyquiz/internal/screens/unsolved"
	sess "github.com/keyquiz/keyquiz/internal/session"
	"github.com/keyquiz/keyquiz/internal/store"
	"github.com/keyquiz/keyquiz/internal/ui/components"
	"github.com/keyquiz/keyquiz/internal/ui/layout"
)

const (
	flashSteps    = 4
	flashInterval = 100 * time.Millisecond
)

// Config carries the dependencies of the quiz screen.
type Config struct {
	Keywords docs.KeywordSource
	Events   store.EventRepo
	Profile  profile.Profile

	// DurationSeconds is the countdown length; zero uses the default.
	DurationSeconds int

	// NewRand returns the generator for a new session. Nil seeds randomly.
	NewRand func() *rand.Rand

	Logger *slog.Logger
}

// SessionScreen runs the keyword quiz game.
type SessionScreen struct {
	cfg Config

	game      *sess.Session
	sessionID string
	startedAt time.Time
	epoch     int

	flashSeq  int
	flashStep int

	ending bool
	menu   components.Menu
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.Focusable = (*SessionScreen)(nil)

// New creates a quiz screen. The session starts when the screen is
// initialised and restarts every time it regains focus.
func New(cfg Config) *SessionScreen {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return &SessionScreen{cfg: cfg}
}

func (s *SessionScreen) Init() tea.Cmd {
	return s.start()
}

// Focus discards whatever ran before and starts a fresh session.
func (s *SessionScreen) Focus() tea.Cmd {
	return s.start()
}

// Blur stops the running session. Pending ticks and fetches are dropped
// when they arrive.
func (s *SessionScreen) Blur() {
	s.epoch++
	s.game = nil
	s.ending = false
	s.flashStep = 0
}

func (s *SessionScreen) Title() string {
	return "Quiz Game"
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.ending {
		if s.cfg.Profile.Web {
			return []layout.KeyHint{{Key: "Enter", Description: "OK"}}
		}
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
		}
	}
	return []layout.KeyHint{
		{Key: "Q-B", Description: "Press letter"},
		{Key: "N", Description: "Skip"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SessionScreen) start() tea.Cmd {
	s.epoch++
	var rng *rand.Rand
	if s.cfg.NewRand != nil {
		rng = s.cfg.NewRand()
	}
	s.game = sess.NewSession(rng, s.cfg.DurationSeconds)
	s.sessionID = uuid.New().String()
	s.ending = false
	s.flashSeq = 0
	s.flashStep = 0
	return s.fetchKeywords(s.epoch)
}

func (s *SessionScreen) fetchKeywords(epoch int) tea.Cmd {
	src := s.cfg.Keywords
	return func() tea.Msg {
		if src == nil {
			return keywordsLoadedMsg{Epoch: epoch, Err: docs.ErrNotFound}
		}
		entries, err := src.FetchKeywords(context.Background())
		return keywordsLoadedMsg{Epoch: epoch, Entries: entries, Err: err}
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case keywordsLoadedMsg:
		return s.handleLoaded(msg)
	case timerTickMsg:
		return s.handleTick(msg)
	case flashMsg:
		return s.handleFlash(msg)
	case persistEventMsg:
		if msg.Err != nil {
			s.cfg.Logger.Error("persist session event", "session", s.sessionID, "err", msg.Err)
		}
		return s, nil
	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SessionScreen) handleLoaded(msg keywordsLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Epoch != s.epoch || s.game == nil {
		return s, nil
	}
	if msg.Err != nil {
		s.cfg.Logger.Error("fetch keywords", "err", msg.Err)
		return s, nil
	}

	s.game.Load(msg.Entries)
	s.startedAt = time.Now()
	s.cfg.Logger.Info("session started", "session", s.sessionID, "entries", len(msg.Entries))

	startEvent := s.persist(store.SessionEventData{
		SessionID: s.sessionID,
		Action:    store.ActionStart,
		Total:     s.game.Total(),
	})
	if s.game.Ended() {
		return s, tea.Batch(startEvent, s.enterEnding())
	}
	return s, tea.Batch(startEvent, tickCmd(s.epoch))
}

func (s *SessionScreen) handleTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if msg.Epoch != s.epoch || s.game == nil || s.game.Phase() != sess.PhaseActive {
		return s, nil
	}
	if s.game.Tick() {
		return s, s.enterEnding()
	}
	return s, tickCmd(s.epoch)
}

func (s *SessionScreen) handleFlash(msg flashMsg) (screen.Screen, tea.Cmd) {
	if msg.Epoch != s.epoch || msg.Seq != s.flashSeq {
		return s, nil
	}
	s.flashStep = msg.Step
	if msg.Step >= flashSteps {
		s.flashStep = 0
		return s, nil
	}
	return s, flashCmd(s.epoch, s.flashSeq, msg.Step+1)
}

func (s *SessionScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.ending {
		return s.handleEndingKey(msg)
	}

	key := msg.String()
	if key == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.game == nil || s.game.Phase() != sess.PhaseActive {
		return s, nil
	}

	if key == "n" {
		s.game.Skip()
		if s.game.Ended() {
			return s, s.enterEnding()
		}
		return s, nil
	}

	pos := components.KeypadPosition(key)
	if pos < 0 {
		return s, nil
	}

	switch s.game.Select(pos) {
	case sess.SelectIncorrect:
		s.flashSeq++
		s.flashStep = 1
		return s, flashCmd(s.epoch, s.flashSeq, 2)
	case sess.SelectCorrect:
		if s.game.Ended() {
			return s, s.enterEnding()
		}
	}
	return s, nil
}

func (s *SessionScreen) handleEndingKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.cfg.Profile.Web {
		if msg.String() == "enter" {
			return s, s.confirmWeb()
		}
		return s, nil
	}

	switch msg.String() {
	case "b":
		return s, navigate(router.PopScreenMsg{})
	case "r":
		if sk := s.game.Skipped(); len(sk) > 0 {
			return s, navigate(router.PushScreenMsg{Screen: unsolved.New(sk)})
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

// confirmWeb resolves the single-button end dialog.
func (s *SessionScreen) confirmWeb() tea.Cmd {
	sk := s.game.Skipped()
	switch {
	case s.game.Phase() == sess.PhaseExhausted:
		return navigate(router.PopToRootMsg{})
	case len(sk) > 0:
		return navigate(router.PushScreenMsg{Screen: unsolved.New(sk)})
	default:
		return navigate(router.PopScreenMsg{})
	}
}

// enterEnding shows the end dialog and records the result.
func (s *SessionScreen) enterEnding() tea.Cmd {
	s.ending = true
	s.flashStep = 0

	summary := s.game.Summary()
	items := []components.MenuItem{
		{Label: "[B] BACK", Action: func() tea.Cmd { return navigate(router.PopScreenMsg{}) }},
	}
	if summary.CanReview() {
		skipped := summary.Skipped
		items = append(items, components.MenuItem{
			Label:  "[R] REVIEW SKIPPED",
			Action: func() tea.Cmd { return navigate(router.PushScreenMsg{Screen: unsolved.New(skipped)}) },
		})
	}
	s.menu = components.NewMenu(items)

	s.cfg.Logger.Info("session ended",
		"session", s.sessionID,
		"outcome", summary.Outcome.String(),
		"score", summary.Score,
		"total", summary.Total,
	)

	return s.persist(store.SessionEventData{
		SessionID:    s.sessionID,
		Action:       store.ActionEnd,
		Outcome:      summary.Outcome.String(),
		Score:        summary.Score,
		Total:        summary.Total,
		Resolved:     summary.Resolved,
		Skipped:      len(summary.Skipped),
		DurationSecs: int(time.Since(s.startedAt).Seconds()),
	})
}

func (s *SessionScreen) persist(data store.SessionEventData) tea.Cmd {
	repo := s.cfg.Events
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		return persistEventMsg{Err: repo.AppendSessionEvent(context.Background(), data)}
	}
}

func navigate(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func tickCmd(epoch int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{Epoch: epoch}
	})
}

func flashCmd(epoch, seq, step int) tea.Cmd {
	return tea.Tick(flashInterval, func(time.Time) tea.Msg {
		return flashMsg{Epoch: epoch, Seq: seq, Step: step}
	})
}

// flashing reports whether the frame border shows the error colour.
func (s *SessionScreen) flashing() bool {
	return s.flashStep%2 == 1
}
