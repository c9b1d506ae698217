package store

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo with SQL built by ent's dialect builder.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func sqlite() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

// applyOpts adds the filters in opts to sel, newest first.
func applyOpts(sel *entsql.Selector, opts QueryOpts) *entsql.Selector {
	if opts.After > 0 {
		sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.SessionID != "" {
		sel.Where(entsql.EQ("session_id", opts.SessionID))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE("timestamp", opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE("timestamp", opts.To.UTC()))
	}
	sel.OrderBy(entsql.Desc("sequence"))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	return sel
}

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, data AttemptEventData) (int64, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}

	query, args := sqlite().Insert(attemptEventsTable).
		Columns("sequence", "timestamp", "session_id", "a", "b", "c",
			"learner_answer", "correct", "time_ms", "explanation_viewed").
		Values(seqNum, time.Now().UTC(), data.SessionID, data.A, data.B, data.C,
			data.LearnerAnswer, data.Correct, data.TimeMs, false).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("save attempt event: %w", err)
	}
	return seqNum, nil
}

func (r *eventRepo) MarkExplanationViewed(ctx context.Context, sequence int64) error {
	query, args := sqlite().Update(attemptEventsTable).
		Set("explanation_viewed", true).
		Where(entsql.EQ("sequence", sequence)).
		Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("mark explanation viewed: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("no attempt with sequence %d", sequence)
	}
	return nil
}

func (r *eventRepo) QueryAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error) {
	sel := sqlite().Select("id", "sequence", "timestamp", "session_id", "a", "b", "c",
		"learner_answer", "correct", "time_ms", "explanation_viewed").
		From(sqlite().Table(attemptEventsTable))
	query, args := applyOpts(sel, opts).Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var records []AttemptRecord
	for rows.Next() {
		var rec AttemptRecord
		if err := rows.Scan(&rec.ID, &rec.Sequence, &rec.Timestamp, &rec.SessionID,
			&rec.A, &rec.B, &rec.C, &rec.LearnerAnswer, &rec.Correct, &rec.TimeMs,
			&rec.ExplanationViewed); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempts: %w", err)
	}
	return records, nil
}

// defaultBuckets groups a by rough difficulty of recognising a² in c-2.
func defaultBuckets() []BucketStats {
	return []BucketStats{
		{MinA: 2, MaxA: 10},
		{MinA: 11, MaxA: 25},
		{MinA: 26, MaxA: 50},
		{MinA: 51, MaxA: math.MaxInt64},
	}
}

func (r *eventRepo) AttemptStats(ctx context.Context) (*AttemptStats, error) {
	query, args := sqlite().Select("a",
		entsql.Count("*"),
		entsql.Sum("correct"),
		entsql.Sum("explanation_viewed"),
		entsql.Sum("time_ms")).
		From(sqlite().Table(attemptEventsTable)).
		GroupBy("a").
		OrderBy("a").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query attempt stats: %w", err)
	}
	defer rows.Close()

	stats := &AttemptStats{Buckets: defaultBuckets()}
	var totalTime int64
	for rows.Next() {
		var a, count, correct, views, timeMs int64
		if err := rows.Scan(&a, &count, &correct, &views, &timeMs); err != nil {
			return nil, fmt.Errorf("scan attempt stats: %w", err)
		}
		stats.Attempts += int(count)
		stats.Correct += int(correct)
		stats.ExplanationViews += int(views)
		totalTime += timeMs

		for i := range stats.Buckets {
			b := &stats.Buckets[i]
			if a >= b.MinA && a <= b.MaxA {
				b.Attempts += int(count)
				b.Correct += int(correct)
				break
			}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attempt stats: %w", err)
	}
	if stats.Attempts > 0 {
		stats.AvgTimeMs = totalTime / int64(stats.Attempts)
	}
	return stats, nil
}

func (r *eventRepo) Reset(ctx context.Context) error {
	for _, table := range []string{attemptEventsTable, sessionEventsTable} {
		query, args := sqlite().Delete(table).Query()
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}
