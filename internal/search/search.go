// Package search picks computer moves with depth-limited minimax and alpha-beta pruning.
package search

import (
	"math"

	"github.com/lk16/reversi/internal/othello"
)

// ComputerDepth is the number of plies the computer opponent looks ahead.
const ComputerDepth = 4

// Result is the outcome of a search from one node.
type Result struct {
	// Value is the disc difference from the perspective player's point of view.
	Value int

	// Move is the best move at the node. It is only set if HasMove is true.
	Move othello.Move

	// HasMove is false for leaves and for nodes where the side to move cannot move.
	HasMove bool
}

// ChooseMove returns the best move for p. The second return value is false if p has no
// legal move, in which case p has to pass. board is not modified.
func ChooseMove(board othello.Board, depth int, p othello.Player) (othello.Move, bool) {
	result := Evaluate(board, depth, p)
	return result.Move, result.HasMove
}

// Evaluate runs a full-window search with p both to move and as perspective player.
func Evaluate(board othello.Board, depth int, p othello.Player) Result {
	return Minimax(board, depth, math.MinInt, math.MaxInt, true, p, p)
}

// Minimax searches board to the given depth. toMove is the side to move at this node,
// perspective is the player whose disc difference is maximized. Maximizing and minimizing
// levels alternate with every ply, independent of passes.
//
// Children are visited in row-major order and only a strictly better value replaces the
// current best, so among equal moves the first one wins.
func Minimax(
	board othello.Board,
	depth int,
	alpha, beta int,
	maximizing bool,
	toMove, perspective othello.Player,
) Result {
	moves := othello.ValidMoves(&board, toMove)

	if depth <= 0 || len(moves) == 0 {
		return Result{Value: othello.Score(&board, perspective)}
	}

	best := Result{Value: math.MaxInt}
	if maximizing {
		best.Value = math.MinInt
	}

	for _, move := range moves {
		// board is a value, so each child gets its own copy
		child := board
		if err := othello.MakeMove(&child, move.Row, move.Col, toMove); err != nil {
			// ValidMoves only returns legal moves
			panic(err)
		}

		value := Minimax(child, depth-1, alpha, beta, !maximizing, othello.Opponent(toMove), perspective).Value

		if maximizing {
			if value > best.Value {
				best = Result{Value: value, Move: move, HasMove: true}
			}
			alpha = max(alpha, best.Value)
		} else {
			if value < best.Value {
				best = Result{Value: value, Move: move, HasMove: true}
			}
			beta = min(beta, best.Value)
		}

		if beta <= alpha {
			break
		}
	}

	return best
}
