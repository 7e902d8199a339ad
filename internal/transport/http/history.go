package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/anti-4-in-a-row/internal/domain"
	"github.com/iamasit07/anti-4-in-a-row/internal/transport/http/middleware"
	"github.com/rs/zerolog/log"
)

type DecisionLister interface {
	ListDecisions(ctx context.Context, matchID string) ([]domain.DecisionRecord, error)
}

type HistoryHandler struct {
	Decisions DecisionLister // Optional, can be nil
}

func NewHistoryHandler(decisions DecisionLister) *HistoryHandler {
	return &HistoryHandler{Decisions: decisions}
}

// GetDecisions lists what the engine played in a match, in turn order.
func (h *HistoryHandler) GetDecisions(c *gin.Context) {
	matchID := c.Param("id")
	if middleware.MatchID(c) != matchID {
		c.JSON(http.StatusForbidden, gin.H{"error": domain.ErrMatchMismatch.Error()})
		return
	}

	if h.Decisions == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Decision log disabled"})
		return
	}

	records, err := h.Decisions.ListDecisions(c.Request.Context(), matchID)
	if err != nil {
		log.Error().Err(err).Str("match", matchID).Msg("list-decisions-failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch decisions"})
		return
	}

	c.JSON(http.StatusOK, records)
}
