package session

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/keyquiz/keyquiz/internal/profile"
	"github.com/keyquiz/keyquiz/internal/router"
	"github.com/keyquiz/keyquiz/internal/screen"
	"github.com/keyquiz/keyquiz/internal/screens/unsolved"
	sess "github.com/keyquiz/keyquiz/internal/session"
	"github.com/keyquiz/keyquiz/internal/store"
	"github.com/keyquiz/keyquiz/internal/ui/components"
)

// mockKeywords implements docs.KeywordSource for testing.
type mockKeywords struct {
	entries []sess.Entry
	err     error
}

func (m *mockKeywords) FetchKeywords(_ context.Context) ([]sess.Entry, error) {
	return m.entries, m.err
}

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	sessionEvents []store.SessionEventData
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}

func (m *mockEventRepo) QuerySessionSummaries(_ context.Context, _ store.QueryOpts) ([]store.SessionRecord, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testEntries() []sess.Entry {
	return []sess.Entry{
		{Keyword: "고려", Explanation: "왕건이 세운 나라"},
		{Keyword: "조선", Explanation: "이성계가 세운 나라"},
		{Keyword: "백제", Explanation: "온조가 세운 나라"},
	}
}

func testSessionScreen(entries []sess.Entry, web bool, duration int) (*SessionScreen, *mockEventRepo) {
	events := &mockEventRepo{}
	s := New(Config{
		Keywords:        &mockKeywords{entries: entries},
		Events:          events,
		Profile:         profile.Profile{Email: "a@b.c", Web: web},
		DurationSeconds: duration,
		NewRand:         func() *rand.Rand { return rand.New(rand.NewPCG(1, 2)) },
	})
	return s, events
}

// load runs the initial fetch and delivers its result.
func load(t *testing.T, s *SessionScreen) tea.Cmd {
	t.Helper()
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected fetch command from Init")
	}
	_, next := s.Update(cmd())
	return next
}

// runPersist executes a command expected to write one session event.
func runPersist(t *testing.T, s *SessionScreen, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected persist command")
	}
	msg, ok := cmd().(persistEventMsg)
	if !ok {
		t.Fatal("expected persistEventMsg")
	}
	s.Update(msg)
}

// solveCurrent presses the keypad keys spelling the current keyword.
func solveCurrent(t *testing.T, s *SessionScreen) tea.Cmd {
	t.Helper()
	entry, ok := s.game.Current()
	if !ok {
		t.Fatal("no current entry")
	}
	var cmd tea.Cmd
	for _, pos := range positionsFor(t, s.game.Keypad(), []rune(entry.Keyword)) {
		_, cmd = s.Update(keyPress(rune(components.KeypadKeys[pos][0])))
	}
	return cmd
}

func positionsFor(t *testing.T, keypad, word []rune) []int {
	t.Helper()
	taken := make(map[int]bool)
	var out []int
	for _, r := range word {
		found := -1
		for i, k := range keypad {
			if k == r && !taken[i] {
				found = i
				break
			}
		}
		if found < 0 {
			t.Fatalf("letter %q missing from keypad %q", r, string(keypad))
		}
		taken[found] = true
		out = append(out, found)
	}
	return out
}

func TestSessionScreen_Title(t *testing.T) {
	s, _ := testSessionScreen(testEntries(), false, 0)
	if s.Title() != "Quiz Game" {
		t.Errorf("Title = %q, want %q", s.Title(), "Quiz Game")
	}
}

func TestSessionScreen_LoadStartsGame(t *testing.T) {
	s, _ := testSessionScreen(testEntries(), false, 0)
	if cmd := load(t, s); cmd == nil {
		t.Error("expected start event and tick commands")
	}

	if s.game.Phase() != sess.PhaseActive {
		t.Fatalf("phase = %v, want active", s.game.Phase())
	}
	if s.game.Remaining() != sess.DefaultDurationSeconds {
		t.Errorf("remaining = %d, want %d", s.game.Remaining(), sess.DefaultDurationSeconds)
	}
	if s.View(80, 30) == "" {
		t.Error("expected non-empty question view")
	}
}

func TestSessionScreen_FetchErrorStaysLoading(t *testing.T) {
	s := New(Config{Keywords: &mockKeywords{err: errors.New("offline")}})
	load(t, s)

	if s.game.Phase() != sess.PhaseLoading {
		t.Errorf("phase = %v, want loading", s.game.Phase())
	}
}

func TestSessionScreen_StaleMessagesDropped(t *testing.T) {
	s, _ := testSessionScreen(testEntries(), false, 0)
	s.Init()

	s.Update(keywordsLoadedMsg{Epoch: s.epoch - 1, Entries: testEntries()})
	if s.game.Phase() != sess.PhaseLoading {
		t.Fatal("stale load was applied")
	}

	s.Update(keywordsLoadedMsg{Epoch: s.epoch, Entries: testEntries()})
	s.Update(timerTickMsg{Epoch: s.epoch - 1})
	if s.game.Remaining() != sess.DefaultDurationSeconds {
		t.Error("stale tick consumed time")
	}

	_, cmd := s.Update(timerTickMsg{Epoch: s.epoch})
	if s.game.Remaining() != sess.DefaultDurationSeconds-1 {
		t.Errorf("remaining = %d after tick", s.game.Remaining())
	}
	if cmd == nil {
		t.Error("expected next tick")
	}
}

func TestSessionScreen_TimeoutEndsSession(t *testing.T) {
	s, events := testSessionScreen(testEntries(), false, 2)
	load(t, s)

	s.Update(timerTickMsg{Epoch: s.epoch})
	_, cmd := s.Update(timerTickMsg{Epoch: s.epoch})

	if !s.ending {
		t.Fatal("expected end dialog after timeout")
	}
	if s.game.Phase() != sess.PhaseTimedOut {
		t.Fatalf("phase = %v, want timed out", s.game.Phase())
	}

	runPersist(t, s, cmd)
	if len(events.sessionEvents) != 1 {
		t.Fatalf("events = %d, want 1", len(events.sessionEvents))
	}
	ev := events.sessionEvents[0]
	if ev.Action != store.ActionEnd || ev.Outcome != "timed_out" {
		t.Errorf("event = %+v", ev)
	}

	// Further ticks do nothing once ended.
	if _, cmd := s.Update(timerTickMsg{Epoch: s.epoch}); cmd != nil {
		t.Error("expected no tick after timeout")
	}
}

func TestSessionScreen_SolveAllExhausts(t *testing.T) {
	entries := testEntries()
	s, events := testSessionScreen(entries, false, 0)
	load(t, s)

	var cmd tea.Cmd
	for range entries {
		cmd = solveCurrent(t, s)
	}

	if !s.ending {
		t.Fatal("expected end dialog")
	}
	if s.game.Score() != len(entries) {
		t.Errorf("score = %d, want %d", s.game.Score(), len(entries))
	}
	if len(s.menu.Items) != 1 {
		t.Errorf("menu items = %d, want 1 with nothing skipped", len(s.menu.Items))
	}

	runPersist(t, s, cmd)
	ev := events.sessionEvents[len(events.sessionEvents)-1]
	if ev.Outcome != "exhausted" || ev.Score != len(entries) || ev.Skipped != 0 {
		t.Errorf("end event = %+v", ev)
	}
}

func TestSessionScreen_IncorrectGuessFlashes(t *testing.T) {
	s, _ := testSessionScreen(testEntries(), false, 0)
	load(t, s)

	entry, _ := s.game.Current()
	pos := positionsFor(t, s.game.Keypad(), []rune(entry.Keyword))
	// Press the keyword letters in reverse to complete a wrong guess.
	var cmd tea.Cmd
	for i := len(pos) - 1; i >= 0; i-- {
		_, cmd = s.Update(keyPress(rune(components.KeypadKeys[pos[i]][0])))
	}

	if !s.flashing() {
		t.Fatal("expected flash after incorrect guess")
	}
	if cmd == nil {
		t.Fatal("expected flash command")
	}
	if s.game.Filled() != 0 {
		t.Errorf("filled = %d, want 0 after incorrect guess", s.game.Filled())
	}

	s.Update(flashMsg{Epoch: s.epoch, Seq: s.flashSeq - 1, Step: 2})
	if !s.flashing() {
		t.Error("stale flash step was applied")
	}

	s.Update(flashMsg{Epoch: s.epoch, Seq: s.flashSeq, Step: flashSteps})
	if s.flashing() {
		t.Error("flash should end after last step")
	}
}

func TestSessionScreen_SkipOffersReview(t *testing.T) {
	entries := testEntries()
	s, _ := testSessionScreen(entries, false, 0)
	load(t, s)

	s.Update(keyPress('n'))
	for range entries[1:] {
		solveCurrent(t, s)
	}

	if !s.ending {
		t.Fatal("expected end dialog")
	}
	if len(s.menu.Items) != 2 {
		t.Fatalf("menu items = %d, want 2", len(s.menu.Items))
	}

	var scr screen.Screen = s
	_, cmd := scr.Update(keyPress('r'))
	if cmd == nil {
		t.Fatal("expected navigation command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := push.Screen.(*unsolved.UnsolvedScreen); !ok {
		t.Errorf("pushed %T, want review screen", push.Screen)
	}
}

func TestSessionScreen_EmptyCollectionEndsImmediately(t *testing.T) {
	s, _ := testSessionScreen(nil, false, 0)
	load(t, s)

	if !s.ending {
		t.Fatal("expected end dialog for empty collection")
	}
	if s.game.Phase() != sess.PhaseExhausted {
		t.Errorf("phase = %v, want exhausted", s.game.Phase())
	}
}

func TestSessionScreen_WebConfirm(t *testing.T) {
	t.Run("exhausted returns home", func(t *testing.T) {
		s, _ := testSessionScreen(testEntries()[:1], true, 0)
		load(t, s)
		solveCurrent(t, s)

		_, cmd := s.Update(specialKey(tea.KeyEnter))
		if _, ok := cmd().(router.PopToRootMsg); !ok {
			t.Error("expected PopToRootMsg")
		}
	})

	t.Run("timeout without skips goes back", func(t *testing.T) {
		s, _ := testSessionScreen(testEntries(), true, 1)
		load(t, s)
		s.Update(timerTickMsg{Epoch: s.epoch})

		_, cmd := s.Update(specialKey(tea.KeyEnter))
		if _, ok := cmd().(router.PopScreenMsg); !ok {
			t.Error("expected PopScreenMsg")
		}
	})

	t.Run("timeout with skips reviews", func(t *testing.T) {
		s, _ := testSessionScreen(testEntries(), true, 1)
		load(t, s)
		s.Update(keyPress('n'))
		s.Update(timerTickMsg{Epoch: s.epoch})

		_, cmd := s.Update(specialKey(tea.KeyEnter))
		if _, ok := cmd().(router.PushScreenMsg); !ok {
			t.Error("expected PushScreenMsg")
		}
	})
}

func TestSessionScreen_BlurAndFocusRestart(t *testing.T) {
	s, _ := testSessionScreen(testEntries(), false, 0)
	load(t, s)
	firstID := s.sessionID
	epoch := s.epoch

	s.Blur()
	if s.game != nil {
		t.Fatal("expected session discarded on blur")
	}
	s.Update(timerTickMsg{Epoch: epoch})

	cmd := s.Focus()
	if cmd == nil {
		t.Fatal("expected fetch on focus")
	}
	if s.sessionID == firstID {
		t.Error("expected a new session id after refocus")
	}
	s.Update(cmd())
	if s.game.Phase() != sess.PhaseActive {
		t.Errorf("phase = %v, want active", s.game.Phase())
	}
}

func TestSessionScreen_EscGoesBack(t *testing.T) {
	s, _ := testSessionScreen(testEntries(), false, 0)
	load(t, s)

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{120, "Time left: 2m 0s"},
		{61, "Time left: 1m 1s"},
		{60, "Time left: 60s"},
		{5, "Time left: 5s"},
	}
	for _, tt := range tests {
		if got := formatRemaining(tt.secs); got != tt.want {
			t.Errorf("formatRemaining(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestSessionScreen_KeyHints(t *testing.T) {
	s, _ := testSessionScreen(testEntries(), false, 0)
	load(t, s)
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
}
