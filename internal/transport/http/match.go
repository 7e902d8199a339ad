package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/anti-4-in-a-row/internal/domain"
	"github.com/iamasit07/anti-4-in-a-row/internal/transport/http/middleware"
	"github.com/iamasit07/anti-4-in-a-row/pkg/auth"
	"github.com/iamasit07/anti-4-in-a-row/pkg/uid"
	"github.com/rs/zerolog/log"
)

// Decider is the slice of the game service the transports need.
type Decider interface {
	Decide(ctx context.Context, matchID string, in domain.TurnInput) (domain.TurnOutput, error)
}

type MatchHandler struct {
	Decider  Decider
	Secret   string
	TokenTTL time.Duration
}

func NewMatchHandler(d Decider, secret string, ttl time.Duration) *MatchHandler {
	return &MatchHandler{Decider: d, Secret: secret, TokenTTL: ttl}
}

type createMatchResponse struct {
	MatchID string `json:"matchId"`
	Token   string `json:"token"`
}

// CreateMatch opens a match and hands out the token its turns are posted with.
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	matchID, err := uid.GenerateMatchID()
	if err != nil {
		log.Error().Err(err).Msg("match-id-failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create match"})
		return
	}

	token, err := auth.GenerateMatchToken(h.Secret, matchID, h.TokenTTL)
	if err != nil {
		log.Error().Err(err).Msg("match-token-failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create match"})
		return
	}

	log.Info().Str("match", matchID).Msg("match-created")
	c.JSON(http.StatusCreated, createMatchResponse{MatchID: matchID, Token: token})
}

// SubmitTurn answers one turn of the match named in the path.
func (h *MatchHandler) SubmitTurn(c *gin.Context) {
	matchID := c.Param("id")
	if middleware.MatchID(c) != matchID {
		c.JSON(http.StatusForbidden, gin.H{"error": domain.ErrMatchMismatch.Error()})
		return
	}

	var in domain.TurnInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid turn payload"})
		return
	}

	out, err := h.Decider.Decide(c.Request.Context(), matchID, in)
	if err != nil {
		if domain.IsMalformedInput(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Error().Err(err).Str("match", matchID).Msg("decide-failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decide"})
		return
	}

	c.JSON(http.StatusOK, out)
}

func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
