package problemgen

import (
	"fmt"
	"math/rand"
)

// Generator produces limit problems.
type Generator interface {
	// Generate returns a fresh, validated Problem. It does not depend on
	// any previously generated problem.
	Generate() (Problem, error)
}

// RandomGenerator implements Generator by drawing a uniformly from a range.
type RandomGenerator struct {
	config Config
	rng    *rand.Rand
}

var _ Generator = (*RandomGenerator)(nil)

// New creates a RandomGenerator. It returns an error if the config range is
// invalid.
func New(cfg Config) (*RandomGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("problem generator config: %w", err)
	}
	return &RandomGenerator{config: cfg, rng: rand.New(cfg.source())}, nil
}

// Generate draws a ∈ [MinA, MaxA], derives b and c, and runs the validator
// chain.
func (g *RandomGenerator) Generate() (Problem, error) {
	span := g.config.MaxA - g.config.MinA + 1
	a := g.config.MinA + g.rng.Int63n(span)

	p, err := NewProblem(a)
	if err != nil {
		return Problem{}, err
	}
	if err := Validate(p, g.config.Validators); err != nil {
		return Problem{}, err
	}
	return p, nil
}
