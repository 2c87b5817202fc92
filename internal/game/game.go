// Package game holds live Othello sessions: the board, the side to move, passes and the computer opponent.
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/othello"
	"github.com/lk16/reversi/internal/search"
)

var (
	ErrGameOver       = errors.New("game is over")
	ErrNotYourTurn    = errors.New("not your turn")
	ErrPassNotAllowed = errors.New("pass is only allowed without legal moves")
)

// Entry is a single turn in the move history.
type Entry struct {
	Player othello.Player `json:"player"`
	Move   othello.Move   `json:"move"`
	Pass   bool           `json:"pass"`
}

// String returns the field notation of the move, or "--" for a pass.
func (e Entry) String() string {
	if e.Pass {
		return "--"
	}
	return e.Move.String()
}

// Outcome is the disc count of both players. Winner is othello.Empty for a draw or a game in progress.
type Outcome struct {
	Black  int            `json:"black"`
	White  int            `json:"white"`
	Over   bool           `json:"over"`
	Winner othello.Player `json:"winner"`
}

// State is a consistent snapshot of a game.
type State struct {
	ID         uuid.UUID
	Board      othello.Board
	Turn       othello.Player
	Computer   othello.Player
	ValidMoves []othello.Move
	Outcome    Outcome
	History    []Entry
}

// Game represents an Othello game in progress. It is safe for concurrent use.
type Game struct {
	id uuid.UUID

	// computer is the color played by the computer, or othello.Empty if both sides are human.
	computer othello.Player

	// start and startTurn allow for custom start positions.
	start     othello.Board
	startTurn othello.Player

	// board and turn are derived from start by replaying history.
	board othello.Board
	turn  othello.Player

	// history contains all placements and passes. Passes are added automatically.
	history []Entry

	mu sync.Mutex
}

// New creates a game from the start position. computer is othello.Empty for a game between two humans.
func New(computer othello.Player) *Game {
	return NewWithStart(othello.InitialBoard(), othello.Black, computer)
}

// NewWithStart creates a game with a custom start position and side to move.
func NewWithStart(start othello.Board, turn othello.Player, computer othello.Player) *Game {
	g := &Game{
		id:        uuid.New(),
		computer:  computer,
		start:     start,
		startTurn: turn,
		board:     start,
		turn:      turn,
		history:   make([]Entry, 0),
	}
	return g
}

// ID returns the unique ID of the game.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Computer returns the color of the computer, or othello.Empty.
func (g *Game) Computer() othello.Player {
	return g.computer
}

// Board returns a copy of the current board.
func (g *Game) Board() othello.Board {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.board
}

// Turn returns the side to move.
func (g *Game) Turn() othello.Player {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.turn
}

// ValidMoves returns the legal moves of the side to move.
func (g *Game) ValidMoves() []othello.Move {
	g.mu.Lock()
	defer g.mu.Unlock()

	return othello.ValidMoves(&g.board, g.turn)
}

// IsComputerTurn checks if the computer should move next.
func (g *Game) IsComputerTurn() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.isComputerTurn()
}

func (g *Game) isComputerTurn() bool {
	return g.computer != othello.Empty && g.turn == g.computer && !othello.IsGameOver(&g.board)
}

// IsOver checks if neither side can move.
func (g *Game) IsOver() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return othello.IsGameOver(&g.board)
}

// Outcome counts the discs of both players.
func (g *Game) Outcome() Outcome {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.outcome()
}

func (g *Game) outcome() Outcome {
	outcome := Outcome{
		Black: g.board.Count(othello.Black),
		White: g.board.Count(othello.White),
		Over:  othello.IsGameOver(&g.board),
	}

	if outcome.Over {
		switch {
		case outcome.Black > outcome.White:
			outcome.Winner = othello.Black
		case outcome.White > outcome.Black:
			outcome.Winner = othello.White
		}
	}

	return outcome
}

// History returns a copy of the move history.
func (g *Game) History() []Entry {
	g.mu.Lock()
	defer g.mu.Unlock()

	return append([]Entry{}, g.history...)
}

// State returns a snapshot of the game.
func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	return State{
		ID:         g.id,
		Board:      g.board,
		Turn:       g.turn,
		Computer:   g.computer,
		ValidMoves: othello.ValidMoves(&g.board, g.turn),
		Outcome:    g.outcome(),
		History:    append([]Entry{}, g.history...),
	}
}

// Play does a move for the human side to move.
func (g *Game) Play(move othello.Move) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if othello.IsGameOver(&g.board) {
		return ErrGameOver
	}

	if g.isComputerTurn() {
		return ErrNotYourTurn
	}

	return g.place(move)
}

// Pass passes the turn. It is only allowed if the side to move has no legal moves.
func (g *Game) Pass() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if othello.IsGameOver(&g.board) {
		return ErrGameOver
	}

	if othello.HasMoves(&g.board, g.turn) {
		return ErrPassNotAllowed
	}

	g.pass()
	return nil
}

// PlayComputer lets the computer search and play a move. The second return value is
// false if the computer had to pass.
func (g *Game) PlayComputer() (othello.Move, bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if othello.IsGameOver(&g.board) {
		return othello.Move{}, false, ErrGameOver
	}

	if !g.isComputerTurn() {
		return othello.Move{}, false, ErrNotYourTurn
	}

	move, ok := search.ChooseMove(g.board, search.ComputerDepth, g.computer)
	if !ok {
		slog.Debug("computer passes", "game", g.id, "player", g.computer)
		g.pass()
		return othello.Move{}, false, nil
	}

	slog.Debug("computer moves", "game", g.id, "player", g.computer, "move", move.String())

	if err := g.place(move); err != nil {
		return othello.Move{}, false, fmt.Errorf("computer move %s: %w", move, err)
	}

	return move, true, nil
}

// Undo takes back moves up to and including the last move of a human player.
// It returns false if there was nothing to undo.
func (g *Game) Undo() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	length := len(g.history)

	for len(g.history) > 0 {
		last := g.history[len(g.history)-1]
		g.history = g.history[:len(g.history)-1]

		if !last.Pass && last.Player != g.computer {
			break
		}
	}

	g.replay()
	return len(g.history) != length
}

// place assumes mu is locked.
func (g *Game) place(move othello.Move) error {
	if err := othello.MakeMove(&g.board, move.Row, move.Col, g.turn); err != nil {
		return err
	}

	g.history = append(g.history, Entry{Player: g.turn, Move: move})
	g.turn = othello.Opponent(g.turn)

	// Add pass move if the side to move doesn't have moves but opponent does.
	if !othello.HasMoves(&g.board, g.turn) && othello.HasMoves(&g.board, othello.Opponent(g.turn)) {
		g.pass()
	}

	return nil
}

// pass assumes mu is locked.
func (g *Game) pass() {
	g.history = append(g.history, Entry{Player: g.turn, Pass: true})
	g.turn = othello.Opponent(g.turn)
}

// replay rebuilds board and turn from the start position. It assumes mu is locked.
func (g *Game) replay() {
	g.board = g.start
	g.turn = g.startTurn

	for _, entry := range g.history {
		if !entry.Pass {
			if err := othello.MakeMove(&g.board, entry.Move.Row, entry.Move.Col, entry.Player); err != nil {
				// history only contains moves that were legal when they were played
				panic(err)
			}
		}
		g.turn = othello.Opponent(entry.Player)
	}
}
