package domain

import "encoding/json"

// Frame types exchanged over the WebSocket transport.
const (
	MessageTurn     = "turn"
	MessageDecision = "decision"
	MessageError    = "error"
	MessageReplaced = "replaced"
)

type ClientMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type ServerMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
	Message string      `json:"message,omitempty"`
}
