package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/limitz/internal/problemgen"
	"github.com/abhisek/limitz/internal/solution"
)

var (
	// ErrEmptyAnswer is returned when the learner submits blank input. It is
	// a host-level warning, not an incorrect answer.
	ErrEmptyAnswer = errors.New("no answer entered")

	// ErrAlreadySubmitted is returned when an answer was already evaluated
	// for the current problem.
	ErrAlreadySubmitted = errors.New("answer already submitted for this problem")

	// ErrNotSubmitted is returned when the explanation is requested before
	// an answer was submitted.
	ErrNotSubmitted = errors.New("submit an answer first")
)

// Result describes the outcome of a submission.
type Result struct {
	Input   string
	Correct bool
	Answer  problemgen.Answer
	Elapsed time.Duration

	// StreakMilestone is the streak length reached by this answer when it
	// hits a milestone, 0 otherwise.
	StreakMilestone int
}

// Submit evaluates the learner's answer for the current problem. Blank input
// leaves the state unchanged and returns ErrEmptyAnswer.
func Submit(state *State, raw string) (*Result, error) {
	if state.Phase.Submitted() {
		return nil, ErrAlreadySubmitted
	}
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyAnswer
	}

	answer := state.Problem.Answer()
	correct := problemgen.CheckAnswer(raw, answer)

	state.LastInput = raw
	state.Correct = correct
	state.Phase = PhaseSubmitted
	state.TotalQuestions++

	res := &Result{
		Input:   raw,
		Correct: correct,
		Answer:  answer,
		Elapsed: time.Since(state.ProblemStartedAt),
	}

	if correct {
		state.TotalCorrect++
		state.Streak++
		if state.Streak > state.BestStreak {
			state.BestStreak = state.Streak
		}
		if state.Streak >= state.NextMilestone {
			res.StreakMilestone = state.Streak
			state.NextMilestone = NextStreakThreshold(state.Streak)
		}
	} else {
		state.Streak = 0
		state.NextMilestone = NextStreakThreshold(0)
	}

	return res, nil
}

// ToggleExplanation shows the explanation after a submission, or flips it
// between shown and hidden. Returns the new phase.
func ToggleExplanation(state *State) (Phase, error) {
	switch state.Phase {
	case PhaseFresh:
		return state.Phase, ErrNotSubmitted
	case PhaseExplanationShown:
		state.Phase = PhaseExplanationHidden
	default:
		state.Phase = PhaseExplanationShown
		state.ExplanationViewed = true
	}
	return state.Phase, nil
}

// NextProblem replaces the current problem with a freshly generated one and
// resets all per-problem state, whatever the current phase.
func NextProblem(state *State, gen problemgen.Generator) error {
	p, err := gen.Generate()
	if err != nil {
		return fmt.Errorf("generate problem: %w", err)
	}
	state.Problem = p
	state.Phase = PhaseFresh
	state.LastInput = ""
	state.Correct = false
	state.ExplanationViewed = false
	state.ProblemStartedAt = time.Now()
	return nil
}

// Explanation returns the worked solution for the current problem.
func Explanation(state *State) string {
	p := state.Problem
	return solution.Render(p.B, p.C, p.A)
}

// Feedback returns the message shown after a submission.
func Feedback(state *State) string {
	if !state.Phase.Submitted() {
		return ""
	}
	if state.Correct {
		return "Correct! Well done!"
	}
	ans := state.Problem.Answer()
	return fmt.Sprintf("Not quite. The correct answer is %s (or %s)", ans.String(), ans.Decimal(4))
}
