package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/keyquiz/keyquiz/internal/ui/theme"
)

// KeypadKeys maps keypad positions to keyboard keys, five per row.
var KeypadKeys = []string{
	"q", "w", "e", "r", "t",
	"a", "s", "d", "f", "g",
	"z", "x", "c", "v", "b",
}

// KeypadColumns is the number of keys per keypad row.
const KeypadColumns = 5

// KeypadPosition returns the keypad position bound to key, or -1.
func KeypadPosition(key string) int {
	for i, k := range KeypadKeys {
		if k == key {
			return i
		}
	}
	return -1
}

// Keypad renders letters in a grid with their key labels. Used letters
// are dimmed; positions past len(letters) render as empty cells.
func Keypad(letters []rune, used func(int) bool) string {
	rows := make([]string, 0, len(KeypadKeys)/KeypadColumns)
	for start := 0; start < len(KeypadKeys); start += KeypadColumns {
		cells := make([]string, 0, KeypadColumns)
		for pos := start; pos < start+KeypadColumns; pos++ {
			cells = append(cells, keypadCell(letters, pos, used))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func keypadCell(letters []rune, pos int, used func(int) bool) string {
	label := theme.KeyLabel.Render(strings.ToUpper(KeypadKeys[pos]))
	if pos >= len(letters) {
		return lipgloss.JoinVertical(lipgloss.Center, theme.KeyUsed.Render("  "), label)
	}
	style := theme.KeyFree
	if used != nil && used(pos) {
		style = theme.KeyUsed
	}
	return lipgloss.JoinVertical(lipgloss.Center, style.Render(string(letters[pos])), label)
}
