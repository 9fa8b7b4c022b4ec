package app

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/driftchat/driftchat-server/internal/store"
)

const recordTimeout = 5 * time.Second

// pairRecorder adapts the store to the matchmaker's PairLog. The matchmaker
// calls the hooks under its lock, so writes go to the store asynchronously.
type pairRecorder struct {
	mu       sync.Mutex
	store    store.Store
	log      *zerolog.Logger
	sessions map[string]string // pair key -> session id
}

func newPairRecorder(st store.Store, logger *zerolog.Logger) *pairRecorder {
	return &pairRecorder{
		store:    st,
		log:      logger,
		sessions: make(map[string]string),
	}
}

// pairKey is order-independent so both sides of a pairing resolve to the
// same session.
func pairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "|" + b
}

func (r *pairRecorder) PairStarted(a, b string) {
	id := uuid.NewString()
	startedAt := time.Now()

	r.mu.Lock()
	r.sessions[pairKey(a, b)] = id
	r.mu.Unlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		if err := r.store.RecordPairStarted(ctx, id, startedAt); err != nil {
			r.log.Warn().Err(err).Str("session_id", id).Msg("failed to record pair start")
		}
	}()
}

func (r *pairRecorder) PairEnded(a, b, reason string) {
	endedAt := time.Now()

	r.mu.Lock()
	key := pairKey(a, b)
	id, ok := r.sessions[key]
	delete(r.sessions, key)
	r.mu.Unlock()
	if !ok {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		if err := r.store.RecordPairEnded(ctx, id, reason, endedAt); err != nil {
			r.log.Warn().Err(err).Str("session_id", id).Msg("failed to record pair end")
		}
	}()
}
