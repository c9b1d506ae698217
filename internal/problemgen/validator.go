package problemgen

import "fmt"

// Validator checks a problem for mathematical consistency.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error messages
	// and logging), e.g. "invariant", "indeterminate-form".
	Name() string

	// Validate returns nil if the problem passes.
	Validate(p Problem) *ValidationError
}

// ValidationError describes why a problem failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// Validate runs validators in order and returns the first failure.
func Validate(p Problem, validators []Validator) error {
	for _, v := range validators {
		if verr := v.Validate(p); verr != nil {
			return verr
		}
	}
	return nil
}

// InvariantValidator checks c = a²+2, b = c-1 and a ≥ 2.
type InvariantValidator struct{}

func (v *InvariantValidator) Name() string { return "invariant" }

func (v *InvariantValidator) Validate(p Problem) *ValidationError {
	if p.A < MinA {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("a = %d is below %d", p.A, MinA),
		}
	}
	if p.A > MaxA {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("a = %d is above %d, a² overflows", p.A, MaxA),
		}
	}
	if p.C != p.A*p.A+2 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("c = %d, want a²+2 = %d", p.C, p.A*p.A+2),
		}
	}
	if p.B != p.C-1 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("b = %d, want c-1 = %d", p.B, p.C-1),
		}
	}
	return nil
}

// IndeterminateFormValidator checks that direct substitution of x = -1
// gives 0/0.
type IndeterminateFormValidator struct{}

func (v *IndeterminateFormValidator) Name() string { return "indeterminate-form" }

func (v *IndeterminateFormValidator) Validate(p Problem) *ValidationError {
	if n := p.NumeratorAt(X0); n != 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("numerator at x = -1 is %d", n),
		}
	}
	if d := p.DenominatorAt(X0); d != 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("denominator at x = -1 is 1 - %d + %d = %d", p.C, p.B, d),
		}
	}
	return nil
}

// FactorValidator checks that x²+cx+b = (x+1)(x+c-1) with distinct factors
// and that the simplified limit 1/√(c-2) is rational.
type FactorValidator struct{}

func (v *FactorValidator) Name() string { return "factor" }

func (v *FactorValidator) Validate(p Problem) *ValidationError {
	k := p.C - 1
	// (x+1)(x+k) = x² + (k+1)x + k
	if k+1 != p.C || k != p.B {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("(x+1)(x+%d) does not expand to x²+%dx+%d", k, p.C, p.B),
		}
	}
	if k == 1 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "factors coincide: denominator is (x+1)²",
		}
	}
	if p.C-2 != p.A*p.A {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("c-2 = %d is not a² = %d", p.C-2, p.A*p.A),
		}
	}
	return nil
}
