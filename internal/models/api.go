package models

import (
	"errors"
	"fmt"

	"github.com/lk16/reversi/internal/game"
	"github.com/lk16/reversi/internal/othello"
)

// NewGamePayload represents the payload for creating a game.
type NewGamePayload struct {
	// Computer is the color played by the computer: "black", "white" or empty for two humans.
	Computer string `json:"computer"`
}

// ComputerColor parses the computer color.
func (p NewGamePayload) ComputerColor() (othello.Player, error) {
	if p.Computer == "" {
		return othello.Empty, nil
	}
	return othello.ParsePlayer(p.Computer)
}

// MovePayload represents the payload for playing a move.
type MovePayload struct {
	Move string `json:"move"`
}

// Validate parses the move field.
func (p MovePayload) Validate() (othello.Move, error) {
	if p.Move == "" {
		return othello.Move{}, errors.New("move field is either empty or missing")
	}

	move, err := othello.ParseMove(p.Move)
	if err != nil {
		return othello.Move{}, fmt.Errorf("failed to parse move: %w", err)
	}
	return move, nil
}

// GameResponse represents the state of a game as sent to clients.
type GameResponse struct {
	ID         string   `json:"id"`
	Board      []string `json:"board"`
	Turn       string   `json:"turn"`
	Computer   string   `json:"computer"`
	ValidMoves []string `json:"valid_moves"`
	Black      int      `json:"black"`
	White      int      `json:"white"`
	Over       bool     `json:"over"`
	Winner     string   `json:"winner"`
	History    []string `json:"history"`
}

// NewGameResponse converts a game snapshot.
func NewGameResponse(state game.State) GameResponse {
	validMoves := make([]string, len(state.ValidMoves))
	for i, move := range state.ValidMoves {
		validMoves[i] = move.String()
	}

	history := make([]string, len(state.History))
	for i, entry := range state.History {
		history[i] = entry.String()
	}

	winner := ""
	if state.Outcome.Over {
		winner = "draw"
		if state.Outcome.Winner != othello.Empty {
			winner = state.Outcome.Winner.String()
		}
	}

	computer := ""
	if state.Computer != othello.Empty {
		computer = state.Computer.String()
	}

	return GameResponse{
		ID:         state.ID.String(),
		Board:      state.Board.Rows(),
		Turn:       state.Turn.String(),
		Computer:   computer,
		ValidMoves: validMoves,
		Black:      state.Outcome.Black,
		White:      state.Outcome.White,
		Over:       state.Outcome.Over,
		Winner:     winner,
		History:    history,
	}
}

// ComputerMoveResponse represents the result of a computer move.
type ComputerMoveResponse struct {
	// Move is the field the computer played on, or empty if it passed.
	Move   string       `json:"move"`
	Passed bool         `json:"passed"`
	Game   GameResponse `json:"game"`
}

// VersionResponse represents the response of the version endpoint.
type VersionResponse struct {
	Commit string `json:"commit"`
}
