package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/limitz/internal/ui/theme"
)

// answerChars are the only runes a fraction or decimal answer can contain.
const answerChars = "0123456789/.-+eE "

// AnswerInput wraps bubbles/textinput for fraction or decimal answers. Once
// locked it ignores keys and shows the grading mark next to the value.
type AnswerInput struct {
	Model   textinput.Model
	locked  bool
	correct bool
}

// NewAnswerInput creates a focused input limited to charLimit runes.
func NewAnswerInput(placeholder string, charLimit int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.Focus()
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return AnswerInput{Model: ti}
}

// Init returns the initial command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update forwards editing keys to the model. Printable keys outside
// answerChars are dropped.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if a.locked {
		return a, nil
	}
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len([]rune(key)) == 1 && !strings.ContainsRune(answerChars, []rune(key)[0]) {
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

// View renders the input and, when locked, a ✓ or ✗.
func (a AnswerInput) View() string {
	view := a.Model.View()
	if a.locked {
		if a.correct {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (a AnswerInput) Value() string {
	return a.Model.Value()
}

// Lock disables editing and records the grading result.
func (a *AnswerInput) Lock(correct bool) {
	a.locked = true
	a.correct = correct
	a.Model.Blur()
}

// Locked reports whether the input has been graded.
func (a AnswerInput) Locked() bool {
	return a.locked
}
