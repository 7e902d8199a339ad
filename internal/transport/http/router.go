package http

import (
	"github.com/gin-gonic/gin"
	"github.com/iamasit07/anti-4-in-a-row/internal/transport/http/middleware"
)

type RouterDeps struct {
	Matches        *MatchHandler
	History        *HistoryHandler
	WebSocket      gin.HandlerFunc // Optional, can be nil
	Secret         string
	AllowedOrigins []string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(deps.AllowedOrigins))

	router.GET("/healthz", Healthz)
	router.POST("/api/matches", deps.Matches.CreateMatch)

	protected := router.Group("/api/matches")
	protected.Use(middleware.AuthMiddleware(deps.Secret))
	{
		protected.POST("/:id/turns", deps.Matches.SubmitTurn)
		protected.GET("/:id/decisions", deps.History.GetDecisions)
	}

	// WebSocket route (token checked inside the handler)
	if deps.WebSocket != nil {
		router.GET("/ws", deps.WebSocket)
	}

	return router
}
