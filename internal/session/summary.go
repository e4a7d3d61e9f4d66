package session

// Summary holds the data displayed when a session ends.
type Summary struct {
	Outcome  Phase
	Score    int
	Total    int
	Resolved int
	Skipped  []Entry
}

// Summary builds the end-of-session summary from the current state.
func (s *Session) Summary() Summary {
	return Summary{
		Outcome:  s.phase,
		Score:    s.score,
		Total:    len(s.entries),
		Resolved: s.resolved,
		Skipped:  s.Skipped(),
	}
}

// Title is the heading shown on the end dialog.
func (sm Summary) Title() string {
	if sm.Outcome == PhaseTimedOut {
		return "Time over"
	}
	return "Out of questions"
}

// CanReview reports whether the skipped list is worth offering.
func (sm Summary) CanReview() bool {
	return len(sm.Skipped) > 0
}
