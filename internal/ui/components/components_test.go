package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(a AnswerInput, text string) AnswerInput {
	for _, r := range text {
		a, _ = a.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return a
}

func TestAnswerInputFiltersKeys(t *testing.T) {
	a := NewAnswerInput("1/7", 16)
	a = typeText(a, "1x/7q")
	assert.Equal(t, "1/7", a.Value())

	a = NewAnswerInput("", 16)
	a = typeText(a, "-0.25")
	assert.Equal(t, "-0.25", a.Value())
}

func TestAnswerInputLock(t *testing.T) {
	a := typeText(NewAnswerInput("", 16), "1/3")
	a.Lock(false)
	require.True(t, a.Locked())

	a = typeText(a, "9")
	assert.Equal(t, "1/3", a.Value())
	assert.Contains(t, a.View(), "✗")

	b := typeText(NewAnswerInput("", 16), "1/2")
	b.Lock(true)
	assert.Contains(t, b.View(), "✓")
}

func TestMenuNavigation(t *testing.T) {
	var picked string
	pick := func(name string) func() tea.Cmd {
		return func() tea.Cmd { picked = name; return nil }
	}
	m := NewMenu([]MenuItem{
		{Label: "Disabled", Disabled: true},
		{Label: "Practice", Shortcut: "p", Action: pick("practice")},
		{Label: "History", Shortcut: "h", Action: pick("history")},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 1, m.Selected, "disabled item is skipped")

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 2, m.Selected)

	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, "history", picked)

	m, _ = m.Update(tea.KeyPressMsg{Code: 'p', Text: "p"})
	assert.Equal(t, "practice", picked)
	assert.Equal(t, 1, m.Selected)
	assert.Contains(t, m.View(), "▸ Practice")
}

func TestToggleButtonLabel(t *testing.T) {
	b := NewToggleButton("Show Explanation", "Hide Explanation")
	assert.Equal(t, "Show Explanation", b.Label())
	b.On = true
	assert.Equal(t, "Hide Explanation", b.Label())
	assert.Contains(t, b.View(), "Hide Explanation")
}

func TestAccuracyBar(t *testing.T) {
	assert.Equal(t, 0.0, AccuracyBar{}.Ratio())
	assert.Equal(t, 0.75, AccuracyBar{Correct: 3, Total: 4}.Ratio())
	assert.Equal(t, 1.0, AccuracyBar{Correct: 5, Total: 4}.Ratio())
	assert.Contains(t, AccuracyBar{Correct: 1, Total: 3, Width: 10}.View(), "33%")
}
