package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/anti-4-in-a-row/pkg/auth"
	"github.com/iamasit07/anti-4-in-a-row/pkg/httputil"
	"github.com/rs/zerolog/log"
)

// MatchIDKey is the gin context key holding the authenticated match.
const MatchIDKey = "match_id"

// AuthMiddleware validates the match token from the header or query string.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := httputil.GetTokenFromRequest(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := auth.ValidateMatchToken(secret, tokenString)
		if err != nil {
			log.Debug().Err(err).Str("path", c.FullPath()).Msg("match-token-rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(MatchIDKey, claims.MatchID)
		c.Next()
	}
}

// MatchID returns the match bound by AuthMiddleware, or "".
func MatchID(c *gin.Context) string {
	return c.GetString(MatchIDKey)
}
