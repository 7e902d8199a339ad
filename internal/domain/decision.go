package domain

import (
	"time"

	"github.com/pkg/errors"
)

// DecisionRecord is one answered turn as it is kept in the decision log.
type DecisionRecord struct {
	MatchID   string    `json:"matchId"`
	TurnID    int       `json:"turnId"`
	Move      Move      `json:"move"`
	Forfeit   bool      `json:"forfeit"`
	Score     int       `json:"score"`
	Depth     int       `json:"depth"`
	BeamWidth int       `json:"beamWidth"`
	ElapsedMs int64     `json:"elapsedMs"`
	Visited   int       `json:"visited"`
	Board     [][]int   `json:"board,omitempty"` // position before the move, [x][y]
	CreatedAt time.Time `json:"createdAt"`
}

// IsMalformedInput reports whether err rejects the turn history itself
// rather than a failure on our side.
func IsMalformedInput(err error) bool {
	switch errors.Cause(err) {
	case ErrOutOfBounds, ErrCellOccupied, ErrMalformedTurn:
		return true
	}
	return false
}
