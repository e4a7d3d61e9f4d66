package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette drawn from dancheong, the painted eaves of palace halls.
var (
	Primary   = lipgloss.Color("#C0392B") // Cinnabar
	Secondary = lipgloss.Color("#1ABC9C") // Celadon
	Accent    = lipgloss.Color("#F1C40F") // Ochre
	Success   = lipgloss.Color("#27AE60") // Pine
	Error     = lipgloss.Color("#E74C3C") // Vermilion
	Text      = lipgloss.Color("#FDFEFE") // Hanji
	TextDim   = lipgloss.Color("#95A5A6") // Ash
	BgDark    = lipgloss.Color("#10151C") // Ink
	BgCard    = lipgloss.Color("#1C2833") // Slate ink
	Border    = lipgloss.Color("#34495E") // Indigo
	Highlight = lipgloss.Color("#F39C12") // Amber
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Keypad
var (
	KeyFree = lipgloss.NewStyle().
		Foreground(Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	KeyUsed = lipgloss.NewStyle().
		Foreground(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BgCard).
		Padding(0, 1)

	KeyLabel = lipgloss.NewStyle().
			Foreground(TextDim)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressWarn = lipgloss.NewStyle().
			Background(Error)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)
