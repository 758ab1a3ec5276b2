package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsInCheck returns true if the given colour's king is in check.
// A board with no king of that colour is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// KingCapturable reports whether any piece of the other colour has a
// pseudo-legal move onto colour's king. It uses only the move generator,
// so it serves as an independent check on IsInCheck.
func KingCapturable(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	for _, from := range board.Pieces(colour.Opposite()) {
		for _, to := range PseudoMoves(board, from, board.At(from)) {
			if to == king {
				return true
			}
		}
	}
	return false
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
// Attackers are tried in a fixed order (pawns, orthogonal sliders, diagonal
// sliders, knights, king) and the first hit wins.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// A pawn of byColour attacks sq from one row behind sq in its push direction.
	pawnRow := -byColour.Forward()
	for _, dc := range []int{-1, 1} {
		if from, ok := sq.Offset(pawnRow, dc); ok {
			if board.At(from) == (chess.Piece{Kind: chess.Pawn, Colour: byColour}) {
				return true
			}
		}
	}

	for _, dir := range orthogonals {
		if p, ok := firstPieceAlong(board, sq, dir); ok && p.Colour == byColour {
			if p.Kind == chess.Rook || p.Kind == chess.Queen {
				return true
			}
		}
	}

	for _, dir := range diagonals {
		if p, ok := firstPieceAlong(board, sq, dir); ok && p.Colour == byColour {
			if p.Kind == chess.Bishop || p.Kind == chess.Queen {
				return true
			}
		}
	}

	if attackedByStepper(board, sq, byColour, chess.Knight, knightOffsets) {
		return true
	}

	// Adjacent enemy king. This goes beyond the pawn, line and knight
	// tests so that no move can put the two kings side by side.
	return attackedByStepper(board, sq, byColour, chess.King, kingOffsets)
}

// attackedByStepper reports whether a piece of the given kind and colour
// sits on any of the offsets from sq.
func attackedByStepper(board *chess.Board, sq chess.Square, byColour chess.Colour, kind chess.Kind, offsets []direction) bool {
	for _, off := range offsets {
		from, ok := sq.Offset(off.dr, off.dc)
		if !ok {
			continue
		}
		if p, occupied := board.Get(from); occupied && p.Kind == kind && p.Colour == byColour {
			return true
		}
	}
	return false
}
