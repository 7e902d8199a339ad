package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

var ErrInvalidToken = errors.New("invalid token")

// MatchClaims binds a bearer to one match.
type MatchClaims struct {
	MatchID string `json:"match_id"`
	jwt.RegisteredClaims
}

// GenerateMatchToken signs a match token valid for ttl.
func GenerateMatchToken(secret, matchID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &MatchClaims{
		MatchID: matchID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   matchID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "sign match token")
	}
	return signed, nil
}

// ValidateMatchToken validates a match token and returns its claims
func ValidateMatchToken(secret, tokenString string) (*MatchClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &MatchClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "parse match token")
	}

	if claims, ok := token.Claims.(*MatchClaims); ok && token.Valid && claims.MatchID != "" {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
