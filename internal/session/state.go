package session

import (
	"fmt"
	"time"

	"github.com/abhisek/limitz/internal/problemgen"
)

// Phase is the state of the current problem within a session.
type Phase int

const (
	PhaseFresh             Phase = iota // New problem, nothing submitted
	PhaseSubmitted                      // Answer evaluated, correctness fixed
	PhaseExplanationShown               // Submitted, worked solution visible
	PhaseExplanationHidden              // Submitted, worked solution collapsed
)

// String returns a lowercase name, e.g. "fresh".
func (p Phase) String() string {
	switch p {
	case PhaseFresh:
		return "fresh"
	case PhaseSubmitted:
		return "submitted"
	case PhaseExplanationShown:
		return "explanation-shown"
	case PhaseExplanationHidden:
		return "explanation-hidden"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Submitted reports whether an answer has been evaluated for the current
// problem.
func (p Phase) Submitted() bool {
	return p != PhaseFresh
}

// State tracks one learner's session. The host owns one State per session
// and passes it to every operation; nothing here is shared.
type State struct {
	// SessionID is the UUID for this session.
	SessionID string

	// Problem is the current problem. It is replaced, never mutated.
	Problem problemgen.Problem

	// Phase is the state of the current problem.
	Phase Phase

	// LastInput is the raw text of the submitted answer (empty in PhaseFresh).
	LastInput string

	// Correct records whether the submitted answer was correct.
	Correct bool

	// ProblemStartedAt is when the current problem was shown.
	ProblemStartedAt time.Time

	// StartTime is when the session began.
	StartTime time.Time

	// TotalQuestions is the count of problems answered so far.
	TotalQuestions int

	// TotalCorrect is the count of correct answers so far.
	TotalCorrect int

	// Streak is the current run of consecutive correct answers.
	Streak int

	// BestStreak is the longest streak in this session.
	BestStreak int

	// NextMilestone is the streak length that triggers the next celebration.
	NextMilestone int

	// ExplanationViewed is true once the explanation was shown for the
	// current problem.
	ExplanationViewed bool
}

// NewState creates a session and generates its first problem.
func NewState(gen problemgen.Generator, sessionID string) (*State, error) {
	p, err := gen.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate first problem: %w", err)
	}
	now := time.Now()
	return &State{
		SessionID:        sessionID,
		Problem:          p,
		Phase:            PhaseFresh,
		ProblemStartedAt: now,
		StartTime:        now,
		NextMilestone:    NextStreakThreshold(0),
	}, nil
}
