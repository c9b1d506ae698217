package session

import "time"

// Summary holds the data displayed when a session ends.
type Summary struct {
	SessionID      string
	Duration       time.Duration
	TotalQuestions int
	TotalCorrect   int
	Accuracy       float64
	BestStreak     int
}

// BuildSummary creates a Summary from the current session state.
func BuildSummary(state *State) *Summary {
	var accuracy float64
	if state.TotalQuestions > 0 {
		accuracy = float64(state.TotalCorrect) / float64(state.TotalQuestions)
	}

	return &Summary{
		SessionID:      state.SessionID,
		Duration:       time.Since(state.StartTime),
		TotalQuestions: state.TotalQuestions,
		TotalCorrect:   state.TotalCorrect,
		Accuracy:       accuracy,
		BestStreak:     state.BestStreak,
	}
}
