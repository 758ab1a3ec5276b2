package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalMoves returns the pseudo-legal destinations of the piece on from
// that do not leave its own king in check. Each candidate is tried on an
// independent copy of the board.
func LegalMoves(board *chess.Board, from chess.Square, piece chess.Piece) []chess.Square {
	var legal []chess.Square
	for _, to := range PseudoMoves(board, from, piece) {
		if tryMove(board, from, to, piece.Colour) {
			legal = append(legal, to)
		}
	}
	return legal
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, from := range board.Pieces(colour) {
		piece := board.At(from)
		for _, to := range PseudoMoves(board, from, piece) {
			if tryMove(board, from, to, colour) {
				return true
			}
		}
	}
	return false
}

// AllLegalMoves enumerates every legal move for the given colour, grouped
// by origin square from a1 to h8.
func AllLegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, from := range board.Pieces(colour) {
		for _, to := range LegalMoves(board, from, board.At(from)) {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	return moves
}

// IsLegalMove reports whether moving the piece on from to to is legal for
// the piece's owner. It does not check whose turn it is.
func IsLegalMove(board *chess.Board, from, to chess.Square) bool {
	piece, ok := board.Get(from)
	if !ok {
		return false
	}
	for _, dest := range PseudoMoves(board, from, piece) {
		if dest == to {
			return tryMove(board, from, to, piece.Colour)
		}
	}
	return false
}

// tryMove makes a move on a copied board and checks if it leaves the king in check.
func tryMove(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	testBoard := board.Copy()
	testBoard.Relocate(from, to)
	return !IsInCheck(testBoard, colour)
}
