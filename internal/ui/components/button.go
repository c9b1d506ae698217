package components

import (
	"github.com/abhisek/limitz/internal/ui/theme"
)

// ToggleButton renders one of two labels depending on its state.
type ToggleButton struct {
	OffLabel string
	OnLabel  string
	On       bool
	Enabled  bool
}

// NewToggleButton creates a disabled button in the off state.
func NewToggleButton(offLabel, onLabel string) ToggleButton {
	return ToggleButton{OffLabel: offLabel, OnLabel: onLabel}
}

// Label returns the label for the current state.
func (b ToggleButton) Label() string {
	if b.On {
		return b.OnLabel
	}
	return b.OffLabel
}

// View renders the button, dimmed while disabled.
func (b ToggleButton) View() string {
	label := "▸ " + b.Label()
	if b.Enabled {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
