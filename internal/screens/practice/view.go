package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/limitz/internal/session"
	"github.com/abhisek/limitz/internal/ui/theme"
)

// renderProblem renders the problem, the answer input, feedback and, when
// toggled on, the worked solution.
func (s *PracticeScreen) renderProblem(width, height int) string {
	state := s.state
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("Evaluate the limit"))
	b.WriteString("\n\n")
	b.WriteString(center.Render(theme.Expression.Render(state.Problem.Limit())))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.TextDim).
		Render("Enter your answer as a fraction like 1/3 or a decimal like 0.333"))
	b.WriteString("\n\n")
	b.WriteString(center.Render("Answer: " + s.input.View()))
	b.WriteString("\n")

	if s.warning != "" {
		b.WriteString("\n")
		b.WriteString(center.Render(theme.Warn.Render(s.warning)))
		b.WriteString("\n")
	}

	if state.Phase.Submitted() {
		b.WriteString("\n")
		b.WriteString(center.Render(s.renderFeedback()))
		b.WriteString("\n\n")
		b.WriteString(center.Render(s.explainBtn.View()))
		b.WriteString("\n")

		if state.Phase == sess.PhaseExplanationShown {
			b.WriteString("\n")
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Explanation.Render(strings.TrimRight(sess.Explanation(state), "\n"))))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (s *PracticeScreen) renderFeedback() string {
	state := s.state
	if state.Correct {
		line := theme.Correct.Render(sess.Feedback(state))
		if s.milestone > 0 {
			line += "\n" + lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
				Render(fmt.Sprintf("★ %d in a row!", s.milestone))
		}
		return line
	}
	return theme.Incorrect.Render(sess.Feedback(state)) + "\n" +
		theme.Hint.Render("Check the explanation below!")
}

func renderLoading(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Hint.Render("Preparing a problem..."))
}

func renderError(width, height int, msg string) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		theme.Incorrect.Render("Could not start practice"),
		"",
		theme.Body.Render(msg),
		"",
		theme.Hint.Render("Press any key to go back"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
