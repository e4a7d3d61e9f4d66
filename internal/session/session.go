package session

import (
	"math/rand/v2"
	"strings"
)

// NewSession creates a session in the loading phase. A nil rng gets a
// randomly seeded generator; a non-positive duration uses the default.
func NewSession(rng *rand.Rand, durationSeconds int) *Session {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if durationSeconds <= 0 {
		durationSeconds = DefaultDurationSeconds
	}
	return &Session{
		rng:       rng,
		remaining: durationSeconds,
		phase:     PhaseLoading,
	}
}

// Load installs the fetched entries and starts the game. An empty
// collection ends the session immediately. Load is a no-op outside the
// loading phase.
func (s *Session) Load(entries []Entry) {
	if s.phase != PhaseLoading {
		return
	}

	s.entries = append([]Entry(nil), entries...)
	s.order = Permutation(s.rng, len(s.entries))
	s.cursor = 0
	s.score = 0
	s.resolved = 0
	s.skipped = nil

	if len(s.entries) == 0 {
		s.phase = PhaseExhausted
		return
	}
	s.phase = PhaseActive
	s.prepare()
}

// Select presses the keypad position. Presses on used positions, out of
// range positions, or while the guess is full are ignored.
func (s *Session) Select(position int) SelectResult {
	if s.phase != PhaseActive {
		return SelectIgnored
	}
	if position < 0 || position >= len(s.keypad) || s.used[position] {
		return SelectIgnored
	}
	if s.filled >= len(s.slots) {
		return SelectIgnored
	}

	s.used[position] = true
	s.slots[s.filled] = s.keypad[position]
	s.filled++

	if s.filled < len(s.slots) {
		return SelectFilled
	}

	correct := string(s.slots) == string(s.keyword)
	s.resetGuess()
	if !correct {
		return SelectIncorrect
	}
	s.score++
	s.advance()
	return SelectCorrect
}

// Skip records the current entry as skipped and moves on.
func (s *Session) Skip() bool {
	if s.phase != PhaseActive {
		return false
	}
	s.skipped = append(s.skipped, s.entries[s.order[s.cursor]])
	s.resetGuess()
	s.advance()
	return true
}

// Tick consumes one second of the countdown. It returns true exactly when
// the tick ends the session.
func (s *Session) Tick() bool {
	if s.phase != PhaseActive {
		return false
	}
	if s.remaining > 0 {
		s.remaining--
	}
	if s.remaining == 0 {
		s.phase = PhaseTimedOut
		return true
	}
	return false
}

func (s *Session) advance() {
	s.cursor++
	s.resolved++
	if s.resolved >= len(s.entries) || s.cursor >= len(s.order) {
		s.phase = PhaseExhausted
		return
	}
	s.prepare()
}

// prepare derives the keypad for the entry under the cursor.
func (s *Session) prepare() {
	cur := s.entries[s.order[s.cursor]]
	s.keyword = []rune(cur.Keyword)
	s.keypad = DeriveKeypad(s.rng, s.entries, cur)
	s.resetGuess()
}

func (s *Session) resetGuess() {
	s.slots = make([]rune, len(s.keyword))
	s.filled = 0
	s.used = [KeypadSize]bool{}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Ended reports whether the session reached a terminal phase.
func (s *Session) Ended() bool { return s.phase.Terminal() }

// Current returns the entry being guessed.
func (s *Session) Current() (Entry, bool) {
	if s.phase != PhaseActive {
		return Entry{}, false
	}
	return s.entries[s.order[s.cursor]], true
}

// Keypad returns a copy of the current keypad letters.
func (s *Session) Keypad() []rune { return append([]rune(nil), s.keypad...) }

// Used reports whether the keypad position has been pressed for the
// current guess.
func (s *Session) Used(position int) bool {
	if position < 0 || position >= KeypadSize {
		return false
	}
	return s.used[position]
}

// Slots returns a copy of the guess slots; zero runes are blank.
func (s *Session) Slots() []rune { return append([]rune(nil), s.slots...) }

// Guess renders the guess slots with BlankGlyph for empty ones.
func (s *Session) Guess() string {
	var b strings.Builder
	for _, r := range s.slots {
		if r == 0 {
			r = BlankGlyph
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *Session) Filled() int    { return s.filled }
func (s *Session) Score() int     { return s.score }
func (s *Session) Resolved() int  { return s.resolved }
func (s *Session) Total() int     { return len(s.entries) }
func (s *Session) Remaining() int { return s.remaining }

// Skipped returns a copy of the skipped entries in skip order.
func (s *Session) Skipped() []Entry { return append([]Entry(nil), s.skipped...) }

// Order returns a copy of the entry permutation.
func (s *Session) Order() []int { return append([]int(nil), s.order...) }
