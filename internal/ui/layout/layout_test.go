package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(MinWidth-1, MinHeight))
	assert.True(t, IsTooSmall(MinWidth, MinHeight-1))
	assert.False(t, IsTooSmall(MinWidth, MinHeight))
}

func TestRenderHeaderScore(t *testing.T) {
	h := RenderHeader("Practice", Score{}, 80)
	assert.Contains(t, h, "limitz")
	assert.Contains(t, h, "Practice")
	assert.NotContains(t, h, "✓")

	h = RenderHeader("Practice", Score{Correct: 3, Total: 4, Streak: 2}, 80)
	assert.Contains(t, h, "✓ 3/4")
	assert.Contains(t, h, "★ 2")
}

func TestRenderFrameHeight(t *testing.T) {
	header := RenderHeader("Home", Score{}, 80)
	footer := RenderFooter([]KeyHint{{Key: "Enter", Description: "Select"}}, 80)
	content := strings.Repeat("line\n", 100)

	frame := RenderFrame(header, content, footer, 80, 24)
	assert.Equal(t, 24, lipgloss.Height(frame))
	assert.Contains(t, frame, "Select")
}

func TestContentHeightNeverNegative(t *testing.T) {
	assert.Equal(t, 0, ContentHeight("a\nb\nc", "d\ne\nf", 2))
}
