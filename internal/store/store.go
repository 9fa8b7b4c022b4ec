package store

import (
	"context"
	"time"
)

// Totals aggregates pairing-session counters for the stats endpoint.
// Sessions carry opaque ids and end reasons ("skip", "disconnect",
// "rematch"); no chat content and no client identifiers ever reach the store.
type Totals struct {
	SessionsStarted int64
	SessionsEnded   int64
	EndedByReason   map[string]int64
}

// Store persists pairing-session accounting.
type Store interface {
	RecordPairStarted(ctx context.Context, sessionID string, startedAt time.Time) error
	RecordPairEnded(ctx context.Context, sessionID, reason string, endedAt time.Time) error
	Totals(ctx context.Context) (Totals, error)
	Close() error
}
