package home

import (
	"charm.land/lipgloss/v2"

	"github.com/keyquiz/keyquiz/internal/ui/theme"
)

// EmblemVariant selects which emblem art to display.
type EmblemVariant int

const (
	EmblemIdle    EmblemVariant = iota // No games yet or last game abandoned
	EmblemCleared                      // Last game ran out of questions
	EmblemTimeout                      // Last game ran out of time
)

const emblemIdle = `┌─────┐
│ 한  │
│  국 │
│ 사  │
└─────┘`

const emblemCleared = `┌─────┐
│ ★ ★ │
│ 한국 │
│ ★ ★ │
└─╥═╥─┘
  ╚═╝`

const emblemTimeout = `┌─────┐
│ ◷ ◷ │ !
│ 한국 │
│  사  │
└─────┘`

func emblemFor(outcome string) EmblemVariant {
	switch outcome {
	case "exhausted":
		return EmblemCleared
	case "timed_out":
		return EmblemTimeout
	default:
		return EmblemIdle
	}
}

// RenderEmblem returns the emblem art for the given variant.
func RenderEmblem(variant EmblemVariant) string {
	art := emblemIdle
	fg := theme.Primary

	switch variant {
	case EmblemCleared:
		art = emblemCleared
		fg = theme.Accent
	case EmblemTimeout:
		art = emblemTimeout
		fg = theme.Error
	}

	return lipgloss.NewStyle().Foreground(fg).Bold(true).Render(art)
}
