package session

// streakStep is the gap between streak milestones. Submit reports a
// milestone at 5, 10, 15 ... correct answers in a row and the practice
// hosts print it as "★ N in a row!".
const streakStep = 5

// NextStreakThreshold returns the first milestone strictly above current.
func NextStreakThreshold(current int) int {
	if current < 0 {
		current = 0
	}
	return (current/streakStep + 1) * streakStep
}
