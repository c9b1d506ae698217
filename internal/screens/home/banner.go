package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/limitz/internal/ui/theme"
)

const bannerArt = `
 ██╗     ██╗███╗   ███╗██╗████████╗███████╗
 ██║     ██║████╗ ████║██║╚══██╔══╝╚══███╔╝
 ██║     ██║██╔████╔██║██║   ██║     ███╔╝
 ██║     ██║██║╚██╔╝██║██║   ██║    ███╔╝
 ███████╗██║██║ ╚═╝ ██║██║   ██║   ███████╗
 ╚══════╝╚═╝╚═╝     ╚═╝╚═╝   ╚═╝   ╚══════╝`

const bannerCompact = "L I M I T Z"

const tagline = "lim (x → -1) √((x+1)/(x²+bx+c))"

// renderBanner returns the title art, or a one-line fallback under 48 columns.
func renderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	art := bannerArt
	if width < 48 {
		art = bannerCompact
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		style.Render(art),
		"",
		theme.Expression.Render(tagline),
	)
}
