package unsolved

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/keyquiz/keyquiz/internal/router"
	"github.com/keyquiz/keyquiz/internal/screen"
	sess "github.com/keyquiz/keyquiz/internal/session"
	"github.com/keyquiz/keyquiz/internal/ui/components"
	"github.com/keyquiz/keyquiz/internal/ui/layout"
	"github.com/keyquiz/keyquiz/internal/ui/theme"
)

// UnsolvedScreen lists the entries skipped during a quiz session. Keywords
// start hidden so the list doubles as a self-test.
type UnsolvedScreen struct {
	entries  []sess.Entry
	cursor   int
	revealed map[int]bool
}

var _ screen.Screen = (*UnsolvedScreen)(nil)
var _ screen.KeyHintProvider = (*UnsolvedScreen)(nil)

// New creates an UnsolvedScreen for the given skipped entries.
func New(entries []sess.Entry) *UnsolvedScreen {
	return &UnsolvedScreen{
		entries:  append([]sess.Entry(nil), entries...),
		revealed: make(map[int]bool),
	}
}

func (u *UnsolvedScreen) Init() tea.Cmd {
	return nil
}

func (u *UnsolvedScreen) Title() string {
	return "Skipped Keywords"
}

func (u *UnsolvedScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Reveal"},
		{Key: "A", Description: "Reveal all"},
		{Key: "Esc", Description: "Back"},
	}
}

func (u *UnsolvedScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return u, nil
	}

	switch kmsg.String() {
	case "esc":
		return u, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if u.cursor > 0 {
			u.cursor--
		}
	case "down", "j":
		if u.cursor < len(u.entries)-1 {
			u.cursor++
		}
	case "enter", "space":
		if len(u.entries) > 0 {
			u.revealed[u.cursor] = !u.revealed[u.cursor]
		}
	case "a":
		all := len(u.revealed) < len(u.entries)
		for i := range u.entries {
			if all {
				u.revealed[i] = true
			} else {
				delete(u.revealed, i)
			}
		}
	}
	return u, nil
}

func (u *UnsolvedScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	if len(u.entries) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Nothing was skipped."))
	}

	// Each entry takes a card; show a window around the cursor.
	perPage := max(height/6, 1)
	start := max(u.cursor-perPage/2, 0)
	end := min(start+perPage, len(u.entries))
	start = max(end-perPage, 0)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(cw).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d skipped · %d of %d", len(u.entries), u.cursor+1, len(u.entries))))
	b.WriteString("\n")

	for i := start; i < end; i++ {
		b.WriteString(u.renderEntry(i, cw))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, b.String())
}

func (u *UnsolvedScreen) renderEntry(i, cw int) string {
	e := u.entries[i]

	keyword := strings.Repeat("□", len([]rune(e.Keyword)))
	kwStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if u.revealed[i] {
		keyword = e.Keyword
		kwStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	}

	body := kwStyle.Render(keyword) + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Width(cw-8).Render(e.Explanation)

	border := theme.Border
	if i == u.cursor {
		border = theme.Highlight
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cw - 2).
		Padding(0, 2).
		Render(body)
}
