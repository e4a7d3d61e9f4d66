package session

import "math/rand/v2"

// Phase represents the current phase of a quiz session.
type Phase int

const (
	PhaseLoading   Phase = iota // Waiting for the keyword collection
	PhaseActive                 // Accepting keypad input
	PhaseExhausted              // Every entry solved or skipped
	PhaseTimedOut               // Countdown reached zero
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseActive:
		return "active"
	case PhaseExhausted:
		return "exhausted"
	case PhaseTimedOut:
		return "timed_out"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further input is accepted.
func (p Phase) Terminal() bool {
	return p == PhaseExhausted || p == PhaseTimedOut
}

const (
	// KeypadSize is the fixed number of keypad positions.
	KeypadSize = 15

	// MaxDecoyEntries caps how many entries are sampled for decoy letters.
	MaxDecoyEntries = 8

	// DefaultDurationSeconds is the countdown a session starts with.
	DefaultDurationSeconds = 120

	// BlankGlyph marks an unfilled guess slot.
	BlankGlyph = '□'
)

// Entry is one keyword/explanation pair from the keyword collection.
type Entry struct {
	Keyword     string `json:"keyword"`
	Explanation string `json:"explanation"`
}

// SelectResult describes what a keypad press did.
type SelectResult int

const (
	SelectIgnored   SelectResult = iota // Press had no effect
	SelectFilled                        // A slot was filled, guess not yet complete
	SelectCorrect                       // Guess completed and matched
	SelectIncorrect                     // Guess completed and did not match
)

// Session tracks the runtime state of one quiz game.
type Session struct {
	rng *rand.Rand

	// entries is the fetched collection, never mutated after Load.
	entries []Entry

	// order is a random permutation of entry indices.
	order  []int
	cursor int

	keyword []rune
	keypad  []rune
	slots   []rune // 0 means blank
	filled  int
	used    [KeypadSize]bool

	score    int
	resolved int
	skipped  []Entry

	remaining int
	phase     Phase
}
