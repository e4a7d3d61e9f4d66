package session

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed*7+1))
}

func threeEntries() []Entry {
	return []Entry{
		{Keyword: "가", Explanation: "first"},
		{Keyword: "나", Explanation: "second"},
		{Keyword: "다", Explanation: "third"},
	}
}

// solve presses the keypad positions that spell the current keyword.
func solve(t *testing.T, s *Session) SelectResult {
	t.Helper()
	cur, ok := s.Current()
	if !ok {
		t.Fatal("no current entry")
	}
	keypad := s.Keypad()
	var result SelectResult
	for _, want := range []rune(cur.Keyword) {
		pos := -1
		for i, r := range keypad {
			if r == want && !s.Used(i) {
				pos = i
				break
			}
		}
		if pos < 0 {
			t.Fatalf("letter %q missing from keypad %q", want, string(keypad))
		}
		result = s.Select(pos)
	}
	return result
}

func TestLoad_StartsActive(t *testing.T) {
	s := NewSession(testRNG(1), 0)
	if s.Phase() != PhaseLoading {
		t.Fatalf("Phase = %v, want loading", s.Phase())
	}
	if s.Remaining() != DefaultDurationSeconds {
		t.Errorf("Remaining = %d, want %d", s.Remaining(), DefaultDurationSeconds)
	}

	s.Load(threeEntries())

	if s.Phase() != PhaseActive {
		t.Fatalf("Phase = %v, want active", s.Phase())
	}
	if s.Total() != 3 {
		t.Errorf("Total = %d, want 3", s.Total())
	}
	if s.Guess() != "□" {
		t.Errorf("Guess = %q, want %q", s.Guess(), "□")
	}
}

func TestLoad_EmptyCollectionExhausts(t *testing.T) {
	s := NewSession(testRNG(1), 0)
	s.Load(nil)

	if s.Phase() != PhaseExhausted {
		t.Errorf("Phase = %v, want exhausted", s.Phase())
	}
	if s.Skip() {
		t.Error("Skip succeeded on an exhausted session")
	}
}

func TestLoad_OnlyOnce(t *testing.T) {
	s := NewSession(testRNG(1), 0)
	s.Load(threeEntries())
	s.Load([]Entry{{Keyword: "라"}})

	if s.Total() != 3 {
		t.Errorf("Total = %d after second Load, want 3", s.Total())
	}
}

func TestPermutation(t *testing.T) {
	for _, n := range []int{0, 1, 2, 10, 57} {
		p := Permutation(testRNG(uint64(n)), n)
		slices.Sort(p)
		for i, v := range p {
			if v != i {
				t.Fatalf("n=%d: sorted permutation = %v", n, p)
			}
		}
	}
}

func TestDeriveKeypad(t *testing.T) {
	entries := []Entry{
		{Keyword: "고조선"}, {Keyword: "고구려"}, {Keyword: "백제가"},
		{Keyword: "신라군"}, {Keyword: "가야국"}, {Keyword: "발해만"},
		{Keyword: "고려사"}, {Keyword: "조선왕"}, {Keyword: "대한국"},
		{Keyword: "삼별초"},
	}

	tests := []struct {
		name    string
		current Entry
		wantLen int
	}{
		{"short keyword", entries[0], KeypadSize},
		{"keyword fills keypad", Entry{Keyword: "가나다라마바사아자차카타파하거"}, KeypadSize},
		{"keyword exceeds keypad", Entry{Keyword: "가나다라마바사아자차카타파하거너"}, KeypadSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := uint64(0); seed < 50; seed++ {
				keypad := DeriveKeypad(testRNG(seed), entries, tt.current)
				if len(keypad) != tt.wantLen {
					t.Fatalf("seed %d: len = %d, want %d", seed, len(keypad), tt.wantLen)
				}
				if len([]rune(tt.current.Keyword)) > KeypadSize {
					continue
				}
				rest := slices.Clone(keypad)
				for _, r := range tt.current.Keyword {
					i := slices.Index(rest, r)
					if i < 0 {
						t.Fatalf("seed %d: keypad %q missing %q", seed, string(keypad), r)
					}
					rest = slices.Delete(rest, i, i+1)
				}
			}
		})
	}
}

func TestDeriveKeypad_FewDecoys(t *testing.T) {
	entries := threeEntries()
	keypad := DeriveKeypad(testRNG(3), entries, entries[0])

	// Two decoy letters plus the keyword.
	if len(keypad) != 3 {
		t.Fatalf("len = %d, want 3", len(keypad))
	}
	got := slices.Clone(keypad)
	slices.Sort(got)
	if string(got) != "가나다" {
		t.Errorf("keypad letters = %q, want 가나다", string(got))
	}
}

func TestSelect_CorrectAdvances(t *testing.T) {
	s := NewSession(testRNG(4), 0)
	s.Load(threeEntries())

	first, _ := s.Current()
	if got := solve(t, s); got != SelectCorrect {
		t.Fatalf("result = %v, want correct", got)
	}
	if s.Score() != 1 || s.Resolved() != 1 {
		t.Errorf("score/resolved = %d/%d, want 1/1", s.Score(), s.Resolved())
	}
	next, ok := s.Current()
	if !ok || next == first {
		t.Errorf("current did not advance: %v", next)
	}
	if s.Filled() != 0 {
		t.Errorf("Filled = %d, want 0", s.Filled())
	}
}

func TestSelect_IncorrectResetsGuess(t *testing.T) {
	s := NewSession(testRNG(5), 0)
	s.Load(threeEntries())

	cur, _ := s.Current()
	wrong := slices.IndexFunc(s.Keypad(), func(r rune) bool {
		return string(r) != cur.Keyword
	})
	if wrong < 0 {
		t.Fatal("no decoy on keypad")
	}

	if got := s.Select(wrong); got != SelectIncorrect {
		t.Fatalf("result = %v, want incorrect", got)
	}
	after, _ := s.Current()
	if after != cur {
		t.Error("incorrect answer moved the cursor")
	}
	if s.Score() != 0 || s.Resolved() != 0 {
		t.Errorf("score/resolved = %d/%d, want 0/0", s.Score(), s.Resolved())
	}
	if s.Used(wrong) {
		t.Error("used flag survived the reset")
	}
	if s.Guess() != "□" {
		t.Errorf("Guess = %q, want blank", s.Guess())
	}
}

func TestSelect_UsedPositionIgnored(t *testing.T) {
	s := NewSession(testRNG(6), 0)
	s.Load([]Entry{{Keyword: "고려"}, {Keyword: "조선"}})

	cur, _ := s.Current()
	first := []rune(cur.Keyword)[0]
	pos := slices.Index(s.Keypad(), first)

	if got := s.Select(pos); got != SelectFilled {
		t.Fatalf("first press = %v, want filled", got)
	}
	before := s.Guess()
	if got := s.Select(pos); got != SelectIgnored {
		t.Errorf("second press = %v, want ignored", got)
	}
	if s.Guess() != before || s.Filled() != 1 {
		t.Errorf("guess changed to %q (filled %d)", s.Guess(), s.Filled())
	}
	if !strings.HasPrefix(s.Guess(), string(first)) {
		t.Errorf("Guess = %q, want prefix %q", s.Guess(), first)
	}
}

func TestSelect_OutOfRangeIgnored(t *testing.T) {
	s := NewSession(testRNG(7), 0)
	s.Load(threeEntries())

	for _, pos := range []int{-1, len(s.Keypad()), KeypadSize, 99} {
		if got := s.Select(pos); got != SelectIgnored {
			t.Errorf("Select(%d) = %v, want ignored", pos, got)
		}
	}
}

func TestSkip(t *testing.T) {
	s := NewSession(testRNG(8), 0)
	s.Load(threeEntries())

	cur, _ := s.Current()
	if !s.Skip() {
		t.Fatal("Skip returned false")
	}
	if s.Resolved() != 1 || s.Score() != 0 {
		t.Errorf("resolved/score = %d/%d, want 1/0", s.Resolved(), s.Score())
	}
	if got := s.Skipped(); len(got) != 1 || got[0] != cur {
		t.Errorf("Skipped = %v, want [%v]", got, cur)
	}
}

func TestScenario_SolveSkipSolve(t *testing.T) {
	s := NewSession(testRNG(9), 0)
	s.Load(threeEntries())

	solve(t, s)
	skippedEntry, _ := s.Current()
	s.Skip()
	if got := solve(t, s); got != SelectCorrect {
		t.Fatalf("last answer = %v, want correct", got)
	}

	if s.Phase() != PhaseExhausted {
		t.Fatalf("Phase = %v, want exhausted", s.Phase())
	}
	sm := s.Summary()
	if sm.Score != 2 || sm.Resolved != 3 || sm.Total != 3 {
		t.Errorf("summary = %+v", sm)
	}
	if len(sm.Skipped) != 1 || sm.Skipped[0] != skippedEntry {
		t.Errorf("Skipped = %v, want [%v]", sm.Skipped, skippedEntry)
	}
	if !sm.CanReview() {
		t.Error("CanReview = false with a skipped entry")
	}
	if sm.Title() != "Out of questions" {
		t.Errorf("Title = %q", sm.Title())
	}

	if s.Skip() || s.Tick() {
		t.Error("terminal session accepted input")
	}
}

func TestTick(t *testing.T) {
	s := NewSession(testRNG(10), 3)

	if s.Tick() || s.Remaining() != 3 {
		t.Fatal("loading session ticked")
	}

	s.Load(threeEntries())
	s.Tick()
	if ended := s.Tick(); ended {
		t.Fatal("ended early")
	}
	if s.Remaining() != 1 {
		t.Errorf("Remaining = %d, want 1", s.Remaining())
	}
	if !s.Tick() {
		t.Fatal("third tick did not end the session")
	}
	if s.Phase() != PhaseTimedOut {
		t.Errorf("Phase = %v, want timed out", s.Phase())
	}

	if s.Tick() {
		t.Error("timeout reported twice")
	}
	if got := s.Select(0); got != SelectIgnored {
		t.Errorf("Select after timeout = %v", got)
	}
	sm := s.Summary()
	if sm.Title() != "Time over" || sm.CanReview() {
		t.Errorf("summary = %+v", sm)
	}
}

func TestLongKeywordOnlySkippable(t *testing.T) {
	s := NewSession(testRNG(11), 0)
	s.Load([]Entry{{Keyword: "가나다라마바사아자차카타파하거너"}})

	for i := range KeypadSize {
		s.Select(i)
	}
	if s.Score() != 0 || s.Phase() != PhaseActive {
		t.Fatalf("score=%d phase=%v", s.Score(), s.Phase())
	}
	s.Skip()
	if s.Phase() != PhaseExhausted {
		t.Errorf("Phase = %v, want exhausted", s.Phase())
	}
}
