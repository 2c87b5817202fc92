package othello

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Size is the number of rows and columns of the board.
	Size = 8

	// MaxPlacements is the number of empty squares in the start position.
	MaxPlacements = Size*Size - 4
)

// Cell is the state of a single square.
type Cell int

const (
	Empty Cell = iota
	Black
	White
)

// Player is the color of a side. Its values double as the Cell a player's discs occupy.
type Player = Cell

var ErrInvalidBoard = errors.New("invalid board")

// Opponent returns the other color. The opponent of Empty is Empty.
func Opponent(p Player) Player {
	if p != Black && p != White {
		return Empty
	}
	return Black + White - p
}

// String returns the name of the cell state.
func (c Cell) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// ParsePlayer parses "black"/"b" or "white"/"w".
func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(s) {
	case "black", "b":
		return Black, nil
	case "white", "w":
		return White, nil
	}
	return Empty, fmt.Errorf("invalid player: %q", s)
}

// Board is an 8x8 grid indexed as [row][col]. Assigning a Board copies it.
type Board [Size][Size]Cell

// InitialBoard returns the start position.
func InitialBoard() Board {
	var b Board
	mid := Size / 2
	b[mid-1][mid-1], b[mid][mid] = White, White
	b[mid-1][mid], b[mid][mid-1] = Black, Black
	return b
}

// ParseBoard reads the format produced by Board.String: 64 characters in row-major order,
// "x" for black, "o" for white and "-" for empty. Whitespace is ignored.
func ParseBoard(s string) (Board, error) {
	s = strings.Join(strings.Fields(s), "")
	if len(s) != Size*Size {
		return Board{}, fmt.Errorf("%w: expected %d squares, got %d", ErrInvalidBoard, Size*Size, len(s))
	}

	var b Board
	for i, r := range s {
		var c Cell
		switch r {
		case '-', '.':
			c = Empty
		case 'x', 'X', '●':
			c = Black
		case 'o', 'O', '○':
			c = White
		default:
			return Board{}, fmt.Errorf("%w: unexpected character %q at index %d", ErrInvalidBoard, r, i)
		}
		b[i/Size][i%Size] = c
	}
	return b, nil
}

// InBounds checks whether row and col lie on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// At returns the cell at row, col.
func (b *Board) At(row, col int) Cell {
	return b[row][col]
}

// Count returns the number of cells in state c.
func (b *Board) Count(c Cell) int {
	n := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if b[row][col] == c {
				n++
			}
		}
	}
	return n
}

// CountDiscs returns the number of occupied squares.
func (b *Board) CountDiscs() int {
	return Size*Size - b.Count(Empty)
}

// Rows returns one string per row in the Board.String alphabet.
func (b *Board) Rows() []string {
	rows := make([]string, Size)
	for row := 0; row < Size; row++ {
		var sb strings.Builder
		for col := 0; col < Size; col++ {
			sb.WriteByte(cellChar(b[row][col]))
		}
		rows[row] = sb.String()
	}
	return rows
}

// String returns the compact 64 character representation of the board.
func (b Board) String() string {
	return strings.Join(b.Rows(), "")
}

// ASCIIArtLines returns the ascii art lines for the board, marking the legal moves of p.
func (b *Board) ASCIIArtLines(p Player) []string {
	lines := make([]string, Size+2)

	lines[0] = "+-a-b-c-d-e-f-g-h-+"
	for row := 0; row < Size; row++ {
		line := fmt.Sprintf("%d ", row+1)

		for col := 0; col < Size; col++ {
			switch {
			case b[row][col] == White:
				line += "○ "
			case b[row][col] == Black:
				line += "● "
			case p != Empty && IsValidMove(b, row, col, p):
				line += "· "
			default:
				line += "  "
			}
		}

		lines[row+1] = line + "|"
	}

	lines[Size+1] = "+-----------------+"

	return lines
}

// Print prints the board to the console. This is used for debugging.
func (b *Board) Print(p Player) {
	for _, line := range b.ASCIIArtLines(p) {
		fmt.Println(line)
	}
}

func cellChar(c Cell) byte {
	switch c {
	case Black:
		return 'x'
	case White:
		return 'o'
	default:
		return '-'
	}
}
