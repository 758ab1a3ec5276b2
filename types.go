package chessrules

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Public names for the board model.
type (
	Colour         = chess.Colour
	Kind           = chess.Kind
	Piece          = chess.Piece
	Board          = chess.Board
	Square         = chess.Square
	GameState      = chess.GameState
	CastlingRights = chess.CastlingRights
	MoveError      = errors.MoveError
)

const (
	White = chess.White
	Black = chess.Black
)

const (
	Pawn   = chess.Pawn
	Knight = chess.Knight
	Bishop = chess.Bishop
	Rook   = chess.Rook
	Queen  = chess.Queen
	King   = chess.King
)

const (
	InProgress = chess.InProgress
	Check      = chess.Check
	Checkmate  = chess.Checkmate
	Stalemate  = chess.Stalemate
	GameOver   = chess.GameOver
)

// InitialFEN is the setup string of the standard starting position.
const InitialFEN = engine.InitialFEN

// Rejection reasons. Test with errors.Is.
var (
	ErrMalformedSquare      = errors.ErrMalformedSquare
	ErrNoPieceAtOrigin      = errors.ErrNoPieceAtOrigin
	ErrWrongSideToMove      = errors.ErrWrongSideToMove
	ErrIllegalDestination   = errors.ErrIllegalDestination
	ErrNoPendingPromotion   = errors.ErrNoPendingPromotion
	ErrInvalidPromotionKind = errors.ErrInvalidPromotionKind
	ErrGameNotOver          = errors.ErrGameNotOver
	ErrInvalidFEN           = errors.ErrInvalidFEN
)

// ParseSquare decodes algebraic notation such as "e4".
func ParseSquare(s string) (Square, error) {
	return chess.ParseSquare(s)
}
