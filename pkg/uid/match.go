package uid

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/pkg/errors"
)

// GenerateMatchID returns 32 random hex characters.
func GenerateMatchID() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", errors.Wrap(err, "failed to generate match ID")
	}
	return hex.EncodeToString(bytes), nil
}
