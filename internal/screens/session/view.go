package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/keyquiz/keyquiz/internal/session"
	"github.com/keyquiz/keyquiz/internal/ui/components"
	"github.com/keyquiz/keyquiz/internal/ui/theme"
)

// warnSeconds is the remaining time at which the timer turns red.
const warnSeconds = 10

func (s *SessionScreen) View(width, height int) string {
	var content string
	switch {
	case s.game == nil || s.game.Phase() == sess.PhaseLoading:
		content = renderLoading()
	case s.ending:
		content = s.renderEnding(width)
	default:
		content = s.renderQuestion(width)
	}
	return components.CabinetFrame(content, width, height, s.flashing())
}

func renderLoading() string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Loading keywords...")
}

// formatRemaining renders the countdown, splitting minutes out only when
// more than a minute is left.
func formatRemaining(secs int) string {
	if secs > 60 {
		return fmt.Sprintf("Time left: %dm %ds", secs/60, secs%60)
	}
	return fmt.Sprintf("Time left: %ds", secs)
}

func (s *SessionScreen) renderQuestion(width int) string {
	cw := components.ContentWidth(width)
	g := s.game

	remaining := g.Remaining()
	duration := s.cfg.DurationSeconds
	if duration <= 0 {
		duration = sess.DefaultDurationSeconds
	}
	warn := remaining <= warnSeconds
	timer := components.NewProgressBar(
		float64(remaining)/float64(duration),
		formatRemaining(remaining),
		warn,
		cw,
	).View()

	score := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Right).
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("Score %d  ·  %d/%d", g.Score(), g.Resolved()+1, g.Total()))

	entry, _ := g.Current()
	explanation := components.Card(
		lipgloss.NewStyle().Foreground(theme.Text).Render(entry.Explanation),
		cw,
	)

	guess := renderGuess(g.Slots())
	keypad := components.Keypad(g.Keypad(), g.Used)

	return lipgloss.JoinVertical(lipgloss.Center,
		timer,
		score,
		"",
		explanation,
		"",
		guess,
		"",
		keypad,
	)
}

func renderGuess(slots []rune) string {
	cells := make([]string, 0, len(slots))
	for _, r := range slots {
		if r == 0 {
			cells = append(cells, theme.KeyUsed.Render(string(sess.BlankGlyph)))
			continue
		}
		cells = append(cells, theme.Selected.Render(string(r)))
	}
	return strings.Join(cells, " ")
}

func (s *SessionScreen) renderEnding(width int) string {
	cw := components.ContentWidth(width)
	summary := s.game.Summary()

	titleStyle := theme.Title
	if summary.Outcome == sess.PhaseTimedOut {
		titleStyle = titleStyle.Foreground(theme.Error)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(summary.Title()))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Final score: %d", summary.Score)))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%d of %d resolved · %d skipped",
		summary.Resolved, summary.Total, len(summary.Skipped))))
	b.WriteString("\n\n")

	if s.cfg.Profile.Web {
		b.WriteString(components.ArcadeButton("OK", true, cw/2))
	} else {
		b.WriteString(s.menu.View(cw / 2))
	}

	return components.Card(b.String(), cw)
}
