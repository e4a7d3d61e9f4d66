package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/keyquiz/keyquiz/internal/ui/theme"
)

const bannerArt = `
██╗  ██╗███████╗██╗   ██╗ ██████╗ ██╗   ██╗██╗███████╗
██║ ██╔╝██╔════╝╚██╗ ██╔╝██╔═══██╗██║   ██║██║╚══███╔╝
█████╔╝ █████╗   ╚████╔╝ ██║   ██║██║   ██║██║  ███╔╝
██╔═██╗ ██╔══╝    ╚██╔╝  ██║▄▄ ██║██║   ██║██║ ███╔╝
██║  ██╗███████╗   ██║   ╚██████╔╝╚██████╔╝██║███████╗
╚═╝  ╚═╝╚══════╝   ╚═╝    ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝`

const bannerCompact = "K E Y Q U I Z"

// bannerMinWidth is the narrowest width that fits the block art.
const bannerMinWidth = 56

// RenderBanner returns the KEYQUIZ banner styled in the primary color.
// Uses a compact fallback for widths narrower than the block art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
