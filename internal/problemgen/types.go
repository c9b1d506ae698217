package problemgen

import (
	"fmt"
	"math/big"
	"strconv"
)

// X0 is the point the limit is taken at. Both the numerator x+1 and the
// denominator x²+cx+b vanish here.
const X0 int64 = -1

// Problem is one limit exercise of the form
//
//	lim (x → -1) √((x+1)/(x²+cx+b))
//
// A fully determines the problem: C = A²+2 and B = C-1, so the limit is 1/A.
// A Problem is a value; it is replaced, never mutated.
type Problem struct {
	// A is the denominator of the answer (A ≥ 2).
	A int64

	// B is the constant term of the quadratic.
	B int64

	// C is the linear coefficient of the quadratic.
	C int64
}

// NewProblem derives B and C from a. Returns an error if a is outside
// [MinA, MaxA].
func NewProblem(a int64) (Problem, error) {
	if a < MinA {
		return Problem{}, fmt.Errorf("a must be at least %d, got %d", MinA, a)
	}
	if a > MaxA {
		return Problem{}, fmt.Errorf("a must be at most %d, got %d", MaxA, a)
	}
	c := a*a + 2
	return Problem{A: a, B: c - 1, C: c}, nil
}

// Answer returns the exact limit 1/A.
func (p Problem) Answer() Answer {
	return AnswerFor(p.A)
}

// DenominatorAt evaluates x² + Cx + B.
func (p Problem) DenominatorAt(x int64) int64 {
	return x*x + p.C*x + p.B
}

// NumeratorAt evaluates x + 1.
func (p Problem) NumeratorAt(x int64) int64 {
	return x + 1
}

// Expression renders the problem for display, e.g. "√((x+1)/(x²+51x+50))".
func (p Problem) Expression() string {
	return fmt.Sprintf("√((x+1)/(x²+%dx+%d))", p.C, p.B)
}

// Limit renders the full limit statement.
func (p Problem) Limit() string {
	return "lim (x → -1) " + p.Expression()
}

// Answer is an exact rational number kept in lowest terms.
type Answer struct {
	r *big.Rat
}

// AnswerFor returns the rational 1/a. a must be non-zero.
func AnswerFor(a int64) Answer {
	return Answer{r: big.NewRat(1, a)}
}

// Rat returns a copy of the underlying rational.
func (a Answer) Rat() *big.Rat {
	if a.r == nil {
		return new(big.Rat)
	}
	return new(big.Rat).Set(a.r)
}

// Float64 returns the nearest float64 value.
func (a Answer) Float64() float64 {
	f, _ := a.Rat().Float64()
	return f
}

// Equal reports whether r is exactly equal to the answer.
func (a Answer) Equal(r *big.Rat) bool {
	if r == nil {
		return false
	}
	return a.Rat().Cmp(r) == 0
}

// String formats the answer as "num/den", e.g. "1/7".
func (a Answer) String() string {
	return a.Rat().String()
}

// Decimal formats the answer with the given number of decimal places,
// e.g. Decimal(4) on 1/7 is "0.1429".
func (a Answer) Decimal(places int) string {
	return strconv.FormatFloat(a.Float64(), 'f', places, 64)
}
