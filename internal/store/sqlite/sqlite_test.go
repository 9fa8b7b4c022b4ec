package sqlite

import (
	"context"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndTotals(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now()

	for _, id := range []string{"s1", "s2", "s3"} {
		if err := s.RecordPairStarted(ctx, id, now); err != nil {
			t.Fatalf("record start %s: %v", id, err)
		}
	}
	if err := s.RecordPairEnded(ctx, "s1", "skip", now.Add(time.Minute)); err != nil {
		t.Fatalf("record end s1: %v", err)
	}
	if err := s.RecordPairEnded(ctx, "s2", "disconnect", now.Add(time.Minute)); err != nil {
		t.Fatalf("record end s2: %v", err)
	}

	totals, err := s.Totals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if totals.SessionsStarted != 3 || totals.SessionsEnded != 2 {
		t.Fatalf("unexpected totals %+v", totals)
	}
	if totals.EndedByReason["skip"] != 1 || totals.EndedByReason["disconnect"] != 1 {
		t.Fatalf("unexpected reasons %+v", totals.EndedByReason)
	}
}

func TestRecordPairEndedUnknownSession(t *testing.T) {
	s := newTestStore(t)

	// Best-effort accounting: ending a session that was never recorded
	// must not fail.
	if err := s.RecordPairEnded(context.Background(), "ghost", "skip", time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	totals, err := s.Totals(context.Background())
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if totals.SessionsStarted != 0 || totals.SessionsEnded != 0 {
		t.Fatalf("unexpected totals %+v", totals)
	}
}

func TestRecordPairEndedOnlyOnce(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now()

	if err := s.RecordPairStarted(ctx, "s1", now); err != nil {
		t.Fatalf("record start: %v", err)
	}
	if err := s.RecordPairEnded(ctx, "s1", "skip", now); err != nil {
		t.Fatalf("first end: %v", err)
	}
	// A second end must not overwrite the first reason.
	if err := s.RecordPairEnded(ctx, "s1", "disconnect", now); err != nil {
		t.Fatalf("second end: %v", err)
	}

	totals, err := s.Totals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if totals.EndedByReason["skip"] != 1 || totals.EndedByReason["disconnect"] != 0 {
		t.Fatalf("unexpected reasons %+v", totals.EndedByReason)
	}
}
