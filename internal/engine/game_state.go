package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// EvaluateState derives the public state for the side to move:
// Checkmate or Stalemate when it has no legal move, otherwise Check or
// InProgress depending on whether its king is attacked.
func EvaluateState(board *chess.Board, toMove chess.Colour) chess.GameState {
	inCheck := IsInCheck(board, toMove)
	canMove := HasLegalMoves(board, toMove)

	switch {
	case inCheck && !canMove:
		return chess.Checkmate
	case !canMove:
		return chess.Stalemate
	case inCheck:
		return chess.Check
	default:
		return chess.InProgress
	}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *Position) bool {
	return IsInCheck(&pos.Board, pos.ToMove) && !HasLegalMoves(&pos.Board, pos.ToMove)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *Position) bool {
	return !IsInCheck(&pos.Board, pos.ToMove) && !HasLegalMoves(&pos.Board, pos.ToMove)
}
