package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/keyquiz/keyquiz/internal/screens/welcome"
	"github.com/keyquiz/keyquiz/internal/ui/components"
	"github.com/keyquiz/keyquiz/internal/ui/theme"
)

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderTitle returns the banner, or its one-line form in compact mode.
func renderTitle(cw int, compact bool) string {
	bannerWidth := cw
	if compact {
		bannerWidth = 0
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(welcome.RenderBanner(bannerWidth))
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(st Stats, cw int, compact bool) string {
	playedStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	bestStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s",
			playedStyle.Render(fmt.Sprintf("▶%d", st.Played)),
			bestStyle.Render(fmt.Sprintf("★%d", st.BestScore)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s",
			playedStyle.Render(fmt.Sprintf("▶ %d PLAYED", st.Played)),
			bestStyle.Render(fmt.Sprintf("★ BEST %d", st.BestScore)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func renderMenu(menu components.Menu, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(menu.View(buttonWidth))
}

// renderEmblemBox renders the emblem centered in a box matching content width.
func renderEmblemBox(variant EmblemVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderEmblem(variant))
}
