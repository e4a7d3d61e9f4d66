package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/keyquiz/keyquiz/internal/ui/theme"
)

// ProgressBar displays a horizontal bar with a trailing label.
type ProgressBar struct {
	Percent float64
	Label   string
	Warn    bool
	Width   int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(percent float64, label string, warn bool, width int) ProgressBar {
	return ProgressBar{
		Percent: percent,
		Label:   label,
		Warn:    warn,
		Width:   width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	fill := theme.ProgressFilled
	if p.Warn {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
		fill = theme.ProgressWarn
	}

	label := ""
	if p.Label != "" {
		label = "  " + labelStyle.Render(p.Label)
	}

	barWidth := max(p.Width-lipgloss.Width(label), 4)
	filled := min(max(int(float64(barWidth)*p.Percent), 0), barWidth)
	empty := barWidth - filled

	return fill.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty)) +
		label
}
