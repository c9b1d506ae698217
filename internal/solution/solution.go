// Package solution renders the worked derivation of
//
//	lim (x → -1) √((x+1)/(x²+cx+b))
//
// for given b, c and a. Every function here is pure: the same inputs always
// produce the same text.
package solution

import "fmt"

// Step is one titled step of the derivation.
type Step struct {
	Title string
	Lines []string
}

// Derivation is the four-step solution for one problem.
type Derivation struct {
	B, C, A int64

	// Given is the limit being evaluated.
	Given string

	// Steps are, in order: check 0/0, factor, cancel, substitute.
	Steps []Step

	// DenominatorAtX0 is 1 - c + b, the denominator at x = -1.
	DenominatorAtX0 int64

	// CofactorConst is c-1, the constant of the second factor (x + c-1).
	CofactorConst int64

	// Intermediate is c-2, the value under the root after substitution.
	Intermediate int64

	// Final is the boxed answer, "1/a".
	Final string
}

// Derive builds the derivation from the literal values of b, c and a.
func Derive(b, c, a int64) Derivation {
	k := c - 1
	d := Derivation{
		B:               b,
		C:               c,
		A:               a,
		Given:           fmt.Sprintf("lim (x → -1) √((x + 1)/(x² + %dx + %d))", c, b),
		DenominatorAtX0: 1 - c + b,
		CofactorConst:   k,
		Intermediate:    c - 2,
		Final:           fmt.Sprintf("1/%d", a),
	}

	d.Steps = []Step{
		{
			Title: "Check if this is an indeterminate form",
			Lines: []string{
				"At x = -1: numerator = (-1) + 1 = 0",
				fmt.Sprintf("At x = -1: denominator = (-1)² + %d(-1) + %d = 1 - %d + %d = %d", c, b, c, b, d.DenominatorAtX0),
				"This gives us the 0/0 indeterminate form",
			},
		},
		{
			Title: "Factor the denominator",
			Lines: []string{
				fmt.Sprintf("Since (x + 1) is a factor: x² + %dx + %d = (x + 1)(x + %d)", c, b, k),
			},
		},
		{
			Title: "Simplify the expression",
			Lines: []string{
				fmt.Sprintf("√((x + 1)/((x + 1)(x + %d))) = √(1/(x + %d))", k, k),
			},
		},
		{
			Title: "Evaluate the limit",
			Lines: []string{
				fmt.Sprintf("lim (x → -1) √(1/(x + %d)) = √(1/(-1 + %d)) = √(1/%d) = 1/√%d = %s",
					k, k, d.Intermediate, d.Intermediate, d.Final),
			},
		},
	}
	return d
}
