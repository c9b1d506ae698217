package components

import (
	"fmt"
	"strings"

	"github.com/abhisek/limitz/internal/ui/theme"
)

// AccuracyBar renders a correct/total ratio as a bar with a percentage.
type AccuracyBar struct {
	Correct int
	Total   int
	Width   int
}

// Ratio returns Correct/Total clamped to [0, 1].
func (p AccuracyBar) Ratio() float64 {
	if p.Total <= 0 {
		return 0
	}
	r := float64(p.Correct) / float64(p.Total)
	if r > 1 {
		return 1
	}
	if r < 0 {
		return 0
	}
	return r
}

// View renders the bar. Widths under 4 are widened to 4.
func (p AccuracyBar) View() string {
	width := p.Width
	if width < 4 {
		width = 4
	}
	filled := int(float64(width) * p.Ratio())
	empty := width - filled

	return theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty)) +
		theme.Hint.Render(fmt.Sprintf("  %d%%", int(p.Ratio()*100+0.5)))
}
