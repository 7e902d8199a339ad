package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

// TurnInput is the full match history handed to the engine each turn.
// Requests hold the opponent's moves, Responses our own; there is always one
// more request than responses.
type TurnInput struct {
	Requests  []Move       `json:"requests"`
	Responses []Move       `json:"responses"`
	Data      *CarriedData `json:"data,omitempty"`
}

// CarriedData is the blob the judge hands back to us on the next turn.
type CarriedData struct {
	Depth *int `json:"depth,omitempty"`
}

// DepthOr returns the carried depth, or def when none was carried.
func (d *CarriedData) DepthOr(def int) int {
	if d == nil || d.Depth == nil || *d.Depth < 0 {
		return def
	}
	return *d.Depth
}

func NewCarriedData(depth int) *CarriedData {
	return &CarriedData{Depth: &depth}
}

// UnmarshalJSON accepts the blob as an object or as a JSON-encoded string,
// since some judges only persist strings. An empty string decodes to no data.
func (d *CarriedData) UnmarshalJSON(raw []byte) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		if strings.TrimSpace(s) == "" {
			*d = CarriedData{}
			return nil
		}
		trimmed = []byte(s)
	}

	type plain CarriedData
	var p plain
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return err
	}
	*d = CarriedData(p)
	return nil
}

type TurnOutput struct {
	Response Move         `json:"response"`
	Data     *CarriedData `json:"data,omitempty"`
	Debug    *DebugInfo   `json:"debug,omitempty"`
}

// DebugInfo is diagnostic only; nothing reads it back.
type DebugInfo struct {
	Depth int     `json:"depth"`
	Time  float64 `json:"time"` // seconds
	Visit int     `json:"visit"`
}

// TurnID is the number of turns we have already answered.
func (in TurnInput) TurnID() int {
	return len(in.Responses)
}

// Replay rebuilds the board from the match history. Opponent moves are
// Player2, our moves Player1. Negative coordinates are skipped.
func Replay(in TurnInput) (*Board, int, error) {
	turnID := in.TurnID()
	if len(in.Requests) != turnID+1 {
		return nil, 0, ErrMalformedTurn
	}

	b := NewBoard()
	for i := 0; i < turnID; i++ {
		if err := replayMove(b, in.Requests[i], Player2); err != nil {
			return nil, 0, err
		}
		if err := replayMove(b, in.Responses[i], Player1); err != nil {
			return nil, 0, err
		}
	}
	if err := replayMove(b, in.Requests[turnID], Player2); err != nil {
		return nil, 0, err
	}
	return b, turnID, nil
}

func replayMove(b *Board, m Move, p PlayerID) error {
	if m.IsNone() {
		return nil
	}
	if !InBounds(m.X, m.Y) {
		return ErrOutOfBounds
	}
	if !b.IsEmpty(m) {
		return ErrCellOccupied
	}
	b.Place(m, p)
	return nil
}
