package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// ApplyMove plays m on the position without validating it and updates the
// side to move and the clocks. It returns true when the moved piece is a
// pawn that reached its last row; the pawn stays on the board as a pawn.
func ApplyMove(pos *Position, m chess.Move) (promotes bool) {
	colour := pos.ToMove
	piece := pos.Board.At(m.From)
	capturedPiece, captured := pos.Board.Get(m.To)

	pos.Board.Relocate(m.From, m.To)

	// Castling rights are only bookkeeping for FEN output.
	if piece.Kind == chess.King {
		clearCastling(&pos.Castling, piece.Colour, true, true)
	}
	if piece.Kind == chess.Rook {
		updateCastlingRightsForRook(&pos.Castling, piece.Colour, m.From)
	}
	if capturedPiece.Kind == chess.Rook {
		updateCastlingRightsForRook(&pos.Castling, capturedPiece.Colour, m.To)
	}

	// Update halfmove clock
	if piece.Kind == chess.Pawn || captured {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}

	pos.EnPassant = "-"
	if colour == chess.Black {
		pos.MoveNumber++
	}
	pos.ToMove = colour.Opposite()

	return piece.Kind == chess.Pawn && m.To.Row == piece.Colour.LastRow()
}

// Promote replaces the piece on sq with kind, keeping its colour.
func Promote(pos *Position, sq chess.Square, kind chess.Kind) {
	piece := pos.Board.At(sq)
	pos.Board.Set(sq, chess.Piece{Kind: kind, Colour: piece.Colour})
}

// IsPromotionKind reports whether a pawn may become kind.
func IsPromotionKind(kind chess.Kind) bool {
	switch kind {
	case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
		return true
	}
	return false
}

// updateCastlingRightsForRook drops the right tied to a rook leaving or
// being captured on its original corner.
func updateCastlingRightsForRook(rights *chess.CastlingRights, colour chess.Colour, sq chess.Square) {
	home := 0
	if colour == chess.Black {
		home = chess.BoardSize - 1
	}
	if sq.Row != home {
		return
	}
	switch sq.Col {
	case 0:
		clearCastling(rights, colour, false, true)
	case chess.BoardSize - 1:
		clearCastling(rights, colour, true, false)
	}
}

func clearCastling(rights *chess.CastlingRights, colour chess.Colour, kingSide, queenSide bool) {
	if colour == chess.White {
		rights.WhiteKingSide = rights.WhiteKingSide && !kingSide
		rights.WhiteQueenSide = rights.WhiteQueenSide && !queenSide
		return
	}
	rights.BlackKingSide = rights.BlackKingSide && !kingSide
	rights.BlackQueenSide = rights.BlackQueenSide && !queenSide
}
