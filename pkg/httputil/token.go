package httputil

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

var ErrNoToken = errors.New("no auth token found in header or query")

// GetTokenFromRequest reads a bearer token from the Authorization header,
// falling back to the token query parameter for WebSocket upgrades.
func GetTokenFromRequest(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
			authHeader = token
		}
		if token := strings.TrimSpace(authHeader); token != "" {
			return token, nil
		}
	}

	if token := r.URL.Query().Get("token"); token != "" {
		return token, nil
	}

	return "", ErrNoToken
}
