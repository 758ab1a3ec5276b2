package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// direction is a (row, col) step.
type direction struct {
	dr, dc int
}

var (
	orthogonals = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonals   = []direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	allLines    = append(append([]direction{}, orthogonals...), diagonals...)

	knightOffsets = []direction{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingOffsets   = allLines
)

// rayVisitor is called for each on-board square along a ray. occupied is
// false for empty squares. It returns whether the square is admitted and
// whether the walk stops there.
type rayVisitor func(sq chess.Square, occupant chess.Piece, occupied bool) (admit, stop bool)

// walkRay steps from (exclusive) along dir until the edge of the board or
// until visit asks to stop, and returns the admitted squares in order.
func walkRay(board *chess.Board, from chess.Square, dir direction, visit rayVisitor) []chess.Square {
	var admitted []chess.Square
	sq := from
	for {
		next, ok := sq.Offset(dir.dr, dir.dc)
		if !ok {
			return admitted
		}
		occupant, occupied := board.Get(next)
		admit, stop := visit(next, occupant, occupied)
		if admit {
			admitted = append(admitted, next)
		}
		if stop {
			return admitted
		}
		sq = next
	}
}

// slideVisitor admits empty squares and enemy-occupied squares, stopping at
// the first occupied one. This is the sliding-piece movement rule.
func slideVisitor(mover chess.Colour) rayVisitor {
	return func(_ chess.Square, occupant chess.Piece, occupied bool) (bool, bool) {
		if !occupied {
			return true, false
		}
		return occupant.Colour != mover, true
	}
}

// firstPieceVisitor admits only the first occupied square and stops there.
func firstPieceVisitor(_ chess.Square, _ chess.Piece, occupied bool) (bool, bool) {
	return occupied, occupied
}

// firstPieceAlong returns the first piece met walking from along dir.
func firstPieceAlong(board *chess.Board, from chess.Square, dir direction) (chess.Piece, bool) {
	hit := walkRay(board, from, dir, firstPieceVisitor)
	if len(hit) == 0 {
		return chess.Piece{}, false
	}
	return board.Get(hit[0])
}
