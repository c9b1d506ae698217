package problemgen

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	// MinA is the smallest a that keeps the two factors of the denominator
	// distinct (c-1 ≠ 1).
	MinA int64 = 2

	// MaxA is the largest a whose c = a²+2 still fits in an int64.
	MaxA int64 = 3037000499

	// DefaultMaxA is the upper bound of the default draw range.
	DefaultMaxA int64 = 100
)

// Config controls the behavior of the RandomGenerator.
type Config struct {
	// MinA and MaxA bound the uniform draw of a, both inclusive.
	MinA int64
	MaxA int64

	// Validators is the ordered list of validators to run on every
	// generated problem. They execute in order; the first failure
	// stops the pipeline.
	Validators []Validator

	// Source supplies randomness. Nil means a time-seeded source.
	Source rand.Source
}

// DefaultConfig returns a Config with the standard validator chain
// and a ∈ [2, 100].
func DefaultConfig() Config {
	return Config{
		MinA: MinA,
		MaxA: DefaultMaxA,
		Validators: []Validator{
			&InvariantValidator{},
			&IndeterminateFormValidator{},
			&FactorValidator{},
		},
	}
}

// Validate checks the draw range.
func (c Config) Validate() error {
	if c.MinA < MinA {
		return fmt.Errorf("min a must be at least %d, got %d", MinA, c.MinA)
	}
	if c.MaxA > MaxA {
		return fmt.Errorf("max a must be at most %d, got %d", MaxA, c.MaxA)
	}
	if c.MaxA < c.MinA {
		return fmt.Errorf("max a (%d) is below min a (%d)", c.MaxA, c.MinA)
	}
	return nil
}

func (c Config) source() rand.Source {
	if c.Source != nil {
		return c.Source
	}
	return rand.NewSource(time.Now().UnixNano())
}
