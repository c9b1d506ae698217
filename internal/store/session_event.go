package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := sqlite().Insert(sessionEventsTable).
		Columns("sequence", "timestamp", "session_id", "action",
			"questions_served", "correct_answers", "best_streak", "duration_secs").
		Values(seqNum, time.Now().UTC(), data.SessionID, data.Action,
			data.QuestionsServed, data.CorrectAnswers, data.BestStreak, data.DurationSecs).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error) {
	sel := sqlite().Select("session_id", "timestamp", "questions_served",
		"correct_answers", "best_streak", "duration_secs").
		From(sqlite().Table(sessionEventsTable)).
		Where(entsql.EQ("action", "end"))
	query, args := applyOpts(sel, opts).Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}
	defer rows.Close()

	var records []SessionSummaryRecord
	for rows.Next() {
		var rec SessionSummaryRecord
		if err := rows.Scan(&rec.SessionID, &rec.Timestamp, &rec.QuestionsServed,
			&rec.CorrectAnswers, &rec.BestStreak, &rec.DurationSecs); err != nil {
			return nil, fmt.Errorf("scan session summary: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session summaries: %w", err)
	}
	return records, nil
}
