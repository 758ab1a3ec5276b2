package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// SquareNames renders squares in notation, keeping order.
func SquareNames(squares []chess.Square) []string {
	names := make([]string, 0, len(squares))
	for _, sq := range squares {
		names = append(names, sq.String())
	}
	return names
}

// MoveNames renders moves in long algebraic form, keeping order.
func MoveNames(moves []chess.Move) []string {
	names := make([]string, 0, len(moves))
	for _, m := range moves {
		names = append(names, m.String())
	}
	return names
}

// MustSquare parses a square or fails the test.
func MustSquare(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", name, err)
	}
	return sq
}
