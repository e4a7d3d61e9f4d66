package unsolved

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	sess "github.com/keyquiz/keyquiz/internal/session"
)

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
	}
}

func TestKeywordsHiddenUntilRevealed(t *testing.T) {
	u := New(testEntries())

	view := u.View(80, 30)
	if strings.Contains(view, "고려") {
		t.Error("keyword visible before reveal")
	}
	if !strings.Contains(view, "왕건이 세운 나라") {
		t.Error("explanation not shown")
	}

	u.Update(specialKey(tea.KeyEnter))
	if !strings.Contains(u.View(80, 30), "고려") {
		t.Error("keyword hidden after reveal")
	}
}

func TestNavigationClamps(t *testing.T) {
	u := New(testEntries())

	u.Update(specialKey(tea.KeyUp))
	if u.cursor != 0 {
		t.Errorf("cursor = %d, want 0", u.cursor)
	}
	u.Update(specialKey(tea.KeyDown))
	u.Update(specialKey(tea.KeyDown))
	if u.cursor != 1 {
		t.Errorf("cursor = %d, want 1", u.cursor)
	}
}

func TestRevealAllToggles(t *testing.T) {
	u := New(testEntries())

	u.Update(keyPress('a'))
	if len(u.revealed) != 2 {
		t.Fatalf("revealed = %d, want 2", len(u.revealed))
	}
	u.Update(keyPress('a'))
	if len(u.revealed) != 0 {
		t.Errorf("revealed = %d, want 0", len(u.revealed))
	}
}

func TestEmptyList(t *testing.T) {
	u := New(nil)
	u.Update(specialKey(tea.KeyEnter))
	if !strings.Contains(u.View(80, 24), "Nothing was skipped") {
		t.Error("expected empty message")
	}
}
