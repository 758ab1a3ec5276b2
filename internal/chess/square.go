package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Square is a board coordinate. Row 0 is rank 1, Col 0 is file a.
type Square struct {
	Row int
	Col int
}

// Constants for square notation.
const (
	RankBase = '1'
	ColBase  = 'a'
	LastRank = RankBase + BoardSize - 1
	LastCol  = ColBase + BoardSize - 1
)

// Sq builds a square from row and column indices.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square shifted by (dr, dc), or false if that leaves the board.
func (s Square) Offset(dr, dc int) (Square, bool) {
	next := Square{Row: s.Row + dr, Col: s.Col + dc}
	if !next.Valid() {
		return Square{}, false
	}
	return next, true
}

// String renders the square in algebraic notation, e.g. "e4".
// Off-board squares render as "??".
func (s Square) String() string {
	if !s.Valid() {
		return "??"
	}
	return string([]byte{byte(ColBase + s.Col), byte(RankBase + s.Row)})
}

// ParseSquare decodes a two-character algebraic square such as "e4".
// The file must be a lowercase letter a-h and the rank a digit 1-8.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("square %q must be two characters: %w", s, errors.ErrMalformedSquare)
	}
	file, rank := s[0], s[1]
	if file < ColBase || file > LastCol {
		return Square{}, fmt.Errorf("square %q has bad file: %w", s, errors.ErrMalformedSquare)
	}
	if rank < RankBase || rank > LastRank {
		return Square{}, fmt.Errorf("square %q has bad rank: %w", s, errors.ErrMalformedSquare)
	}
	return Square{Row: int(rank - RankBase), Col: int(file - ColBase)}, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// Intended for constants and tests.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// AllSquares returns the 64 squares from a1 to h8, rank by rank.
func AllSquares() []Square {
	squares := make([]Square, 0, BoardSize*BoardSize)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			squares = append(squares, Square{Row: row, Col: col})
		}
	}
	return squares
}
