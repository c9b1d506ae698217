package solution

import (
	"fmt"
	"strings"
)

// Render returns the plain-text derivation.
func Render(b, c, a int64) string {
	return Derive(b, c, a).Text()
}

// RenderMarkdown returns the derivation as Markdown with LaTeX math.
func RenderMarkdown(b, c, a int64) string {
	return Derive(b, c, a).Markdown()
}

// Text formats the derivation as plain Unicode text.
func (d Derivation) Text() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Given: %s\n", d.Given)
	for i, s := range d.Steps {
		fmt.Fprintf(&sb, "\nStep %d: %s\n", i+1, s.Title)
		for _, line := range s.Lines {
			fmt.Fprintf(&sb, "  • %s\n", line)
		}
	}
	fmt.Fprintf(&sb, "\nAnswer: %s\n", d.Final)
	return sb.String()
}

// Markdown formats the derivation with inline and display LaTeX.
func (d Derivation) Markdown() string {
	b, c, k, m := d.B, d.C, d.CofactorConst, d.Intermediate

	var sb strings.Builder
	sb.WriteString("### Solution Explanation\n\n")
	fmt.Fprintf(&sb, "**Given**: $\\lim_{x \\to -1} \\sqrt{\\frac{x + 1}{x^2 + %dx + %d}}$\n\n", c, b)

	sb.WriteString("**Step 1**: Check if this is an indeterminate form\n")
	sb.WriteString("- At $x = -1$: numerator = $(-1) + 1 = 0$\n")
	fmt.Fprintf(&sb, "- At $x = -1$: denominator = $(-1)^2 + %d(-1) + %d = 1 - %d + %d = %d$\n", c, b, c, b, d.DenominatorAtX0)
	sb.WriteString("- This gives us $0/0$ indeterminate form\n\n")

	sb.WriteString("**Step 2**: Factor the denominator\n")
	fmt.Fprintf(&sb, "- Since $(x + 1)$ is a factor: $x^2 + %dx + %d = (x + 1)(x + %d)$\n\n", c, b, k)

	sb.WriteString("**Step 3**: Simplify the expression\n")
	fmt.Fprintf(&sb, "$$\\sqrt{\\frac{x + 1}{(x + 1)(x + %d)}} = \\sqrt{\\frac{1}{x + %d}}$$\n\n", k, k)

	sb.WriteString("**Step 4**: Evaluate the limit\n")
	fmt.Fprintf(&sb, "$$\\lim_{x \\to -1} \\sqrt{\\frac{1}{x + %d}} = \\sqrt{\\frac{1}{-1 + %d}} = \\sqrt{\\frac{1}{%d}} = \\frac{1}{\\sqrt{%d}} = \\frac{1}{%d}$$\n\n",
		k, k, m, m, d.A)

	fmt.Fprintf(&sb, "**Answer**: $\\boxed{\\frac{1}{%d}}$\n", d.A)
	return sb.String()
}
