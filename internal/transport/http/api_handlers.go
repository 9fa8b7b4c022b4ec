package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/driftchat/driftchat-server/internal/core"
	"github.com/driftchat/driftchat-server/internal/store"
)

// APIHandlers provides HTTP handlers for REST API endpoints.
type APIHandlers struct {
	matchmaker *core.Matchmaker
	store      store.Store
	log        *zerolog.Logger
}

// NewAPIHandlers creates a new API handlers instance.
func NewAPIHandlers(m *core.Matchmaker, st store.Store, logger *zerolog.Logger) *APIHandlers {
	return &APIHandlers{
		matchmaker: m,
		store:      st,
		log:        logger,
	}
}

// StatsResponse combines live matchmaking gauges with persisted session
// counters.
type StatsResponse struct {
	Waiting         int              `json:"waiting"`
	ActivePairs     int              `json:"active_pairs"`
	SessionsStarted int64            `json:"sessions_started"`
	SessionsEnded   int64            `json:"sessions_ended"`
	EndedByReason   map[string]int64 `json:"ended_by_reason"`
}

// ErrorResponse represents an error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Stats reports matchmaking and session counters.
// GET /api/stats
func (h *APIHandlers) Stats(c *gin.Context) {
	totals, err := h.store.Totals(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("failed to read session totals")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	snap := h.matchmaker.Snapshot()
	c.JSON(http.StatusOK, StatsResponse{
		Waiting:         snap.Waiting,
		ActivePairs:     snap.ActivePairs,
		SessionsStarted: totals.SessionsStarted,
		SessionsEnded:   totals.SessionsEnded,
		EndedByReason:   totals.EndedByReason,
	})
}
