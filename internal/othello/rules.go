package othello

import (
	"errors"
	"fmt"
)

var ErrInvalidMove = errors.New("invalid move")

// directions: horizontal, vertical, and both diagonals
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// bracketed returns the length of the run of opponent discs starting next to (row, col) in
// direction dir, or 0 if that run is not closed by a disc of p.
func bracketed(b *Board, row, col int, dir [2]int, p Player) int {
	opp := Opponent(p)
	dr, dc := dir[0], dir[1]

	run := 0
	r, c := row+dr, col+dc
	for InBounds(r, c) && b[r][c] == opp {
		run++
		r += dr
		c += dc
	}

	if run == 0 || !InBounds(r, c) || b[r][c] != p {
		return 0
	}
	return run
}

// IsValidMove checks if p can place a disc on (row, col).
func IsValidMove(b *Board, row, col int, p Player) bool {
	if !InBounds(row, col) || b[row][col] != Empty {
		return false
	}

	for _, dir := range directions {
		if bracketed(b, row, col, dir, p) > 0 {
			return true
		}
	}
	return false
}

// ValidMoves returns all legal moves of p in row-major order.
func ValidMoves(b *Board, p Player) []Move {
	moves := make([]Move, 0)
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if IsValidMove(b, row, col, p) {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

// HasMoves checks if p has at least one legal move.
func HasMoves(b *Board, p Player) bool {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if IsValidMove(b, row, col, p) {
				return true
			}
		}
	}
	return false
}

// IsGameOver reports whether neither side can move.
func IsGameOver(b *Board) bool {
	return !HasMoves(b, Black) && !HasMoves(b, White)
}

// Flipped returns the squares that would change color if p played on (row, col).
// All directions are scanned against the unmodified board.
func Flipped(b *Board, row, col int, p Player) []Move {
	if !InBounds(row, col) || b[row][col] != Empty {
		return nil
	}

	var flipped []Move
	for _, dir := range directions {
		run := bracketed(b, row, col, dir, p)
		for dist := 1; dist <= run; dist++ {
			flipped = append(flipped, Move{Row: row + dist*dir[0], Col: col + dist*dir[1]})
		}
	}
	return flipped
}

// MakeMove places a disc of p on (row, col) and flips every bracketed run.
// The board is left untouched and an error wrapping ErrInvalidMove is returned if the move is not legal.
func MakeMove(b *Board, row, col int, p Player) error {
	if p != Black && p != White {
		return fmt.Errorf("%w: no player %d", ErrInvalidMove, p)
	}

	flipped := Flipped(b, row, col, p)
	if len(flipped) == 0 {
		return fmt.Errorf("%w: %s for %s", ErrInvalidMove, Move{Row: row, Col: col}, p)
	}

	b[row][col] = p
	for _, f := range flipped {
		b[f.Row][f.Col] = p
	}
	return nil
}

// DoMove returns a copy of b with the move applied. b itself is not modified.
func DoMove(b Board, m Move, p Player) (Board, error) {
	if err := MakeMove(&b, m.Row, m.Col, p); err != nil {
		return Board{}, err
	}
	return b, nil
}

// Score returns the disc difference from the point of view of p.
func Score(b *Board, p Player) int {
	return b.Count(p) - b.Count(Opponent(p))
}
