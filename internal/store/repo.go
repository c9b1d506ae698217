package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit     int       // max results (0 = unlimited)
	After     int64     // sequence > After
	SessionID string    // only events for this session
	From      time.Time // timestamp >= From
	To        time.Time // timestamp <= To
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID       string
	Action          string // "start" or "end"
	QuestionsServed int
	CorrectAnswers  int
	BestStreak      int
	DurationSecs    int
}

// AttemptEventData captures one submitted answer.
type AttemptEventData struct {
	SessionID     string
	A, B, C       int64
	LearnerAnswer string
	Correct       bool
	TimeMs        int64
}

// AttemptRecord is a stored attempt.
type AttemptRecord struct {
	ID                int
	Sequence          int64
	Timestamp         time.Time
	SessionID         string
	A, B, C           int64
	LearnerAnswer     string
	Correct           bool
	TimeMs            int64
	ExplanationViewed bool
}

// SessionSummaryRecord is a completed session read back from "end" events.
type SessionSummaryRecord struct {
	SessionID       string
	Timestamp       time.Time
	QuestionsServed int
	CorrectAnswers  int
	BestStreak      int
	DurationSecs    int
}

// BucketStats aggregates attempts whose a falls in [MinA, MaxA].
type BucketStats struct {
	MinA, MaxA int64
	Attempts   int
	Correct    int
}

// Accuracy returns Correct/Attempts, or 0 when there are no attempts.
func (b BucketStats) Accuracy() float64 {
	if b.Attempts == 0 {
		return 0
	}
	return float64(b.Correct) / float64(b.Attempts)
}

// AttemptStats aggregates all stored attempts.
type AttemptStats struct {
	Attempts         int
	Correct          int
	ExplanationViews int
	AvgTimeMs        int64
	Buckets          []BucketStats
}

// Accuracy returns Correct/Attempts, or 0 when there are no attempts.
func (s AttemptStats) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempts)
}

// EventRepo provides append and query access to practice events.
type EventRepo interface {
	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAttemptEvent records a submitted answer and returns its sequence.
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) (int64, error)

	// MarkExplanationViewed flags the attempt with the given sequence.
	MarkExplanationViewed(ctx context.Context, sequence int64) error

	// QueryAttempts returns attempts, newest first.
	QueryAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error)

	// QuerySessionSummaries returns completed sessions, newest first.
	QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error)

	// AttemptStats aggregates every stored attempt.
	AttemptStats(ctx context.Context) (*AttemptStats, error)

	// Reset deletes all recorded events.
	Reset(ctx context.Context) error
}
