package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	entsql "entgo.io/ent/dialect/sql"
)

const sequenceRowID = 1

// sequenceCounter hands out the sequence number shared by attempt and session
// events, so an attempt can be placed between the session events around it.
// Sequences start at 1 and survive reopening the database.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter seeds the counter row if this is a fresh database.
// The global_sequence table itself is created by migrate.
func newSequenceCounter(ctx context.Context, db *sql.DB) (*sequenceCounter, error) {
	query, args := sqlite().
		Insert(globalSequenceTable).
		Columns("id", "next_val").
		Values(sequenceRowID, 1).
		OnConflict(entsql.ConflictColumns("id"), entsql.DoNothing()).
		Query()
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}
	return &sequenceCounter{db: db}, nil
}

// Next reserves and returns the next sequence number.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	tx, err := sc.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	defer tx.Rollback()

	// Write first so the transaction holds the lock before it reads.
	query, args := sqlite().
		Update(globalSequenceTable).
		Add("next_val", 1).
		Where(entsql.EQ("id", sequenceRowID)).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}

	query, args = sqlite().
		Select("next_val").
		From(entsql.Table(globalSequenceTable)).
		Where(entsql.EQ("id", sequenceRowID)).
		Query()
	var next int64
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&next); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return next - 1, nil
}
