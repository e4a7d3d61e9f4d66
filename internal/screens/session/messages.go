package session

import sess "github.com/keyquiz/keyquiz/internal/session"

// Every asynchronous message carries the epoch it was issued under. A
// message from an earlier epoch belongs to a session that has since been
// discarded and is dropped.

// keywordsLoadedMsg is sent when the keyword collection fetch completes.
type keywordsLoadedMsg struct {
	Epoch   int
	Entries []sess.Entry
	Err     error
}

// timerTickMsg is sent every second while the session is active.
type timerTickMsg struct {
	Epoch int
}

// flashMsg advances the incorrect-answer border flash.
type flashMsg struct {
	Epoch int
	Seq   int
	Step  int
}

// persistEventMsg reports the result of writing a session event.
type persistEventMsg struct {
	Err error
}
