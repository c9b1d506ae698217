package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func attempt(session string, a int64, correct bool) AttemptEventData {
	return AttemptEventData{
		SessionID:     session,
		A:             a,
		B:             a*a + 1,
		C:             a*a + 2,
		LearnerAnswer: "1/2",
		Correct:       correct,
		TimeMs:        1000,
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestTablesCreated(t *testing.T) {
	s := openTestStore(t)
	for _, name := range []string{"attempt_events", "session_events", "global_sequence"} {
		var got string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", name,
		).Scan(&got)
		if err != nil {
			t.Errorf("table %s: %v", name, err)
		}
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := s.EventRepo().AppendAttemptEvent(ctx, attempt("s1", 3, true)); err != nil {
		t.Fatalf("append: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	recs, err := s.EventRepo().QueryAttempts(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d attempts after reopen, want 1", len(recs))
	}

	seq, err := s.EventRepo().AppendAttemptEvent(ctx, attempt("s1", 4, true))
	if err != nil {
		t.Fatalf("append after reopen: %v", err)
	}
	if seq != 2 {
		t.Errorf("sequence after reopen = %d, want 2", seq)
	}
}

func TestSequenceSharedAcrossTables(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: "start"}); err != nil {
		t.Fatalf("session start: %v", err)
	}
	seq, err := repo.AppendAttemptEvent(ctx, attempt("s1", 7, true))
	if err != nil {
		t.Fatalf("attempt: %v", err)
	}
	if seq != 2 {
		t.Errorf("attempt sequence = %d, want 2", seq)
	}
}

func TestAttemptRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	before := time.Now().UTC().Add(-time.Second)
	data := AttemptEventData{
		SessionID:     "abc",
		A:             7,
		B:             50,
		C:             51,
		LearnerAnswer: "0.1429",
		Correct:       true,
		TimeMs:        4200,
	}
	if _, err := repo.AppendAttemptEvent(ctx, data); err != nil {
		t.Fatalf("append: %v", err)
	}

	recs, err := repo.QueryAttempts(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	got := recs[0]
	if got.SessionID != "abc" || got.A != 7 || got.B != 50 || got.C != 51 {
		t.Errorf("unexpected problem fields: %+v", got)
	}
	if got.LearnerAnswer != "0.1429" || !got.Correct || got.TimeMs != 4200 {
		t.Errorf("unexpected answer fields: %+v", got)
	}
	if got.ExplanationViewed {
		t.Error("explanation_viewed should default to false")
	}
	if got.Timestamp.Before(before) {
		t.Errorf("timestamp %v before %v", got.Timestamp, before)
	}
}

func TestMarkExplanationViewed(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	first, _ := repo.AppendAttemptEvent(ctx, attempt("s1", 2, true))
	if _, err := repo.AppendAttemptEvent(ctx, attempt("s1", 3, false)); err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := repo.MarkExplanationViewed(ctx, first); err != nil {
		t.Fatalf("mark: %v", err)
	}
	if err := repo.MarkExplanationViewed(ctx, 999); err == nil {
		t.Error("expected error for unknown sequence")
	}

	recs, err := repo.QueryAttempts(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	for _, r := range recs {
		want := r.Sequence == first
		if r.ExplanationViewed != want {
			t.Errorf("seq %d: explanation_viewed = %v, want %v", r.Sequence, r.ExplanationViewed, want)
		}
	}
}

func TestQueryAttemptsFilters(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := int64(2); i <= 6; i++ {
		session := "odd"
		if i%2 == 0 {
			session = "even"
		}
		if _, err := repo.AppendAttemptEvent(ctx, attempt(session, i, true)); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	recs, _ := repo.QueryAttempts(ctx, QueryOpts{})
	if len(recs) != 5 {
		t.Fatalf("all: got %d, want 5", len(recs))
	}
	if recs[0].A != 6 {
		t.Errorf("newest first: got a=%d, want 6", recs[0].A)
	}

	recs, _ = repo.QueryAttempts(ctx, QueryOpts{Limit: 2})
	if len(recs) != 2 {
		t.Errorf("limit: got %d, want 2", len(recs))
	}

	recs, _ = repo.QueryAttempts(ctx, QueryOpts{SessionID: "even"})
	if len(recs) != 3 {
		t.Errorf("session: got %d, want 3", len(recs))
	}

	recs, _ = repo.QueryAttempts(ctx, QueryOpts{After: 3})
	if len(recs) != 2 {
		t.Errorf("after: got %d, want 2", len(recs))
	}

	hourAgo := time.Now().Add(-time.Hour)
	recs, _ = repo.QueryAttempts(ctx, QueryOpts{From: hourAgo})
	if len(recs) != 5 {
		t.Errorf("from: got %d, want 5", len(recs))
	}
	recs, _ = repo.QueryAttempts(ctx, QueryOpts{To: hourAgo})
	if len(recs) != 0 {
		t.Errorf("to: got %d, want 0", len(recs))
	}
}

func TestQuerySessionSummaries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []SessionEventData{
		{SessionID: "s1", Action: "start"},
		{SessionID: "s1", Action: "end", QuestionsServed: 4, CorrectAnswers: 3, BestStreak: 2, DurationSecs: 90},
		{SessionID: "s2", Action: "start"},
	}
	for _, e := range events {
		if err := repo.AppendSessionEvent(ctx, e); err != nil {
			t.Fatalf("append %s/%s: %v", e.SessionID, e.Action, err)
		}
	}

	recs, err := repo.QuerySessionSummaries(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d summaries, want 1", len(recs))
	}
	got := recs[0]
	if got.SessionID != "s1" || got.QuestionsServed != 4 || got.CorrectAnswers != 3 ||
		got.BestStreak != 2 || got.DurationSecs != 90 {
		t.Errorf("unexpected summary: %+v", got)
	}
}

func TestAttemptStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	empty, err := repo.AttemptStats(ctx)
	if err != nil {
		t.Fatalf("stats (empty): %v", err)
	}
	if empty.Attempts != 0 || empty.Accuracy() != 0 || len(empty.Buckets) != 4 {
		t.Errorf("unexpected empty stats: %+v", empty)
	}

	inputs := []struct {
		a       int64
		correct bool
	}{
		{2, true}, {2, false}, {10, true}, {11, true}, {50, false}, {100, true},
	}
	for _, in := range inputs {
		seq, err := repo.AppendAttemptEvent(ctx, attempt("s1", in.a, in.correct))
		if err != nil {
			t.Fatalf("append: %v", err)
		}
		if !in.correct {
			if err := repo.MarkExplanationViewed(ctx, seq); err != nil {
				t.Fatalf("mark: %v", err)
			}
		}
	}

	stats, err := repo.AttemptStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Attempts != 6 || stats.Correct != 4 {
		t.Errorf("totals = %d/%d, want 4/6", stats.Correct, stats.Attempts)
	}
	if stats.ExplanationViews != 2 {
		t.Errorf("explanation views = %d, want 2", stats.ExplanationViews)
	}
	if stats.AvgTimeMs != 1000 {
		t.Errorf("avg time = %d, want 1000", stats.AvgTimeMs)
	}

	wantBuckets := [][2]int{{3, 2}, {1, 1}, {1, 0}, {1, 1}}
	for i, want := range wantBuckets {
		b := stats.Buckets[i]
		if b.Attempts != want[0] || b.Correct != want[1] {
			t.Errorf("bucket %d-%d = %d/%d, want %d/%d",
				b.MinA, b.MaxA, b.Correct, b.Attempts, want[1], want[0])
		}
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: "end"})
	repo.AppendAttemptEvent(ctx, attempt("s1", 5, true))

	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	attempts, _ := repo.QueryAttempts(ctx, QueryOpts{})
	sessions, _ := repo.QuerySessionSummaries(ctx, QueryOpts{})
	if len(attempts) != 0 || len(sessions) != 0 {
		t.Errorf("after reset: %d attempts, %d sessions", len(attempts), len(sessions))
	}
}
