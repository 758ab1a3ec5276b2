package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Move is a from/to square pair.
type Move struct {
	From Square
	To   Square
}

// String returns the move in long algebraic form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// ParseMove parses a long algebraic move such as "e2e4".
// Anything after the fourth character (e.g. a promotion letter) is ignored.
func ParseMove(s string) (Move, error) {
	if len(s) < 4 {
		return Move{}, fmt.Errorf("move %q too short: %w", s, errors.ErrMalformedSquare)
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}
