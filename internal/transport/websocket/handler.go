package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/iamasit07/anti-4-in-a-row/internal/domain"
	"github.com/iamasit07/anti-4-in-a-row/pkg/auth"
	"github.com/iamasit07/anti-4-in-a-row/pkg/httputil"
	"github.com/rs/zerolog/log"
)

const (
	pongWait     = 60 * time.Second
	pingInterval = 30 * time.Second
)

type Decider interface {
	Decide(ctx context.Context, matchID string, in domain.TurnInput) (domain.TurnOutput, error)
}

// Handler manages WebSocket dependencies
type Handler struct {
	ConnManager *ConnectionManager
	Decider     Decider
	Secret      string
	Upgrader    websocket.Upgrader
}

func NewHandler(cm *ConnectionManager, d Decider, secret string) *Handler {
	return &Handler{
		ConnManager: cm,
		Decider:     d,
		Secret:      secret,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleWebSocket authenticates the match token, then upgrades.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	tokenString, err := httputil.GetTokenFromRequest(c.Request)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	claims, err := auth.ValidateMatchToken(h.Secret, tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	conn, err := h.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Str("match", claims.MatchID).Msg("ws-upgrade-failed")
		return
	}

	h.handleConnection(claims.MatchID, conn)
}

// handleConnection serves one socket until it closes or is replaced.
func (h *Handler) handleConnection(matchID string, conn *websocket.Conn) {
	h.ConnManager.AddConnection(matchID, conn)
	log.Info().Str("match", matchID).Msg("ws-connected")

	done := make(chan struct{})
	defer func() {
		close(done)
		h.ConnManager.RemoveConnectionIfMatching(matchID, conn)
		log.Info().Str("match", matchID).Msg("ws-closed")
	}()

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Keep-alive pinger. WriteControl may run alongside WriteJSON.
	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
					return
				}
			}
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Str("match", matchID).Msg("ws-disconnected-unexpectedly")
			}
			return
		}
		if !h.ConnManager.IsCurrentConnection(matchID, conn) {
			return
		}

		var msg domain.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			h.ConnManager.SendMessage(matchID, domain.ServerMessage{Type: domain.MessageError, Message: "Invalid message format"})
			continue
		}

		h.processMessage(matchID, msg)
	}
}

func (h *Handler) processMessage(matchID string, msg domain.ClientMessage) {
	switch msg.Type {
	case domain.MessageTurn:
		var in domain.TurnInput
		if err := json.Unmarshal(msg.Payload, &in); err != nil {
			h.ConnManager.SendMessage(matchID, domain.ServerMessage{Type: domain.MessageError, Message: "Invalid turn payload"})
			return
		}

		out, err := h.Decider.Decide(context.Background(), matchID, in)
		if err != nil {
			if !domain.IsMalformedInput(err) {
				log.Error().Err(err).Str("match", matchID).Msg("ws-decide-failed")
			}
			h.ConnManager.SendMessage(matchID, domain.ServerMessage{Type: domain.MessageError, Message: err.Error()})
			return
		}
		h.ConnManager.SendMessage(matchID, domain.ServerMessage{Type: domain.MessageDecision, Payload: out})

	default:
		h.ConnManager.SendMessage(matchID, domain.ServerMessage{Type: domain.MessageError, Message: "Unknown message type"})
	}
}
