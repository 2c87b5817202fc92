package ws

import (
	"encoding/json"
)

type Incoming struct {
	Event string          `json:"event"`
	ID    int             `json:"id"`
	Data  json.RawMessage `json:"data"`
}

type Outgoing struct {
	ID    int    `json:"id"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// GameRequest is the data of events that act on an existing game.
type GameRequest struct {
	GameID string `json:"game_id"`
}

// MoveRequest is the data of the move event.
type MoveRequest struct {
	GameID string `json:"game_id"`
	Move   string `json:"move"`
}
