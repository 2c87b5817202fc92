package othello

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidField = errors.New("invalid field")

// Move is a square on the board, identified by row and column.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String returns the field notation of the move, for example "d3" for row 2, column 3.
func (m Move) String() string {
	if !InBounds(m.Row, m.Col) {
		return "??"
	}
	return fmt.Sprintf("%c%d", 'a'+m.Col, m.Row+1)
}

// ParseMove converts a field notation (e.g. "a1", "h8") to a Move.
func ParseMove(field string) (Move, error) {
	if len(field) != 2 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidField, field)
	}

	field = strings.ToLower(field)

	if !('a' <= field[0] && field[0] <= 'h' && '1' <= field[1] && field[1] <= '8') {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidField, field)
	}

	return Move{
		Row: int(field[1] - '1'),
		Col: int(field[0] - 'a'),
	}, nil
}

// MustParseMove is like ParseMove but panics on invalid input.
func MustParseMove(field string) Move {
	m, err := ParseMove(field)
	if err != nil {
		panic(err)
	}
	return m
}
