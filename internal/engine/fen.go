// Package engine provides chess move generation, check detection and
// position setup.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is a board together with the setup fields of a FEN string.
// EnPassant and the clocks are carried for re-encoding only; no rule
// consults them.
type Position struct {
	Board         chess.Board
	ToMove        chess.Colour
	Castling      chess.CastlingRights
	EnPassant     string
	HalfmoveClock uint
	MoveNumber    uint
}

// NewInitialPosition creates a position with the standard starting setup.
func NewInitialPosition() *Position {
	pos := &Position{
		ToMove:     chess.White,
		Castling:   chess.AllCastlingRights(),
		EnPassant:  "-",
		MoveNumber: 1,
	}
	pos.Board.SetupInitialPosition()
	return pos
}

// Copy returns an independent copy of the position.
func (p *Position) Copy() *Position {
	cp := *p
	return &cp
}

// ParseFEN creates a position from a FEN string.
// Fields after the piece placement may be omitted and default to
// "w - - 0 1".
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}
	if len(parts) > 6 {
		return nil, &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "fields", Got: parts[6]}
	}

	pos := &Position{ToMove: chess.White, EnPassant: "-", MoveNumber: 1}

	if err := parsePiecePositions(&pos.Board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(pos, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(pos, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(pos, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(pos, parts); err != nil {
		return nil, err
	}
	return pos, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
// Ranks are listed from 8 down to 1, files from a to h.
func parsePiecePositions(board *chess.Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return &errors.ParseError{
			Err:   fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN),
			Field: "placement",
		}
	}

	for i, rank := range ranks {
		row := chess.BoardSize - 1 - i
		col := 0
		for j := 0; j < len(rank); j++ {
			c := rank[j]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
			} else {
				kind := chess.KindFromLetter(c)
				if kind == chess.NoKind {
					return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "placement", Got: string(c)}
				}
				if col >= chess.BoardSize {
					col++
					break
				}
				colour := chess.White
				if c >= 'a' && c <= 'z' {
					colour = chess.Black
				}
				board.Set(chess.Sq(row, col), chess.Piece{Kind: kind, Colour: colour})
				col++
			}
			if col > chess.BoardSize {
				break
			}
		}
		if col != chess.BoardSize {
			return &errors.ParseError{
				Err:   fmt.Errorf("rank %d spans %d files: %w", row+1, col, errors.ErrInvalidFEN),
				Field: "placement",
				Got:   rank,
			}
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *Position, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "side to move", Got: parts[1]}
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(pos *Position, parts []string) error {
	pos.Castling = chess.CastlingRights{}
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			pos.Castling.WhiteKingSide = true
		case 'Q':
			pos.Castling.WhiteQueenSide = true
		case 'k':
			pos.Castling.BlackKingSide = true
		case 'q':
			pos.Castling.BlackQueenSide = true
		default:
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "castling", Got: string(c)}
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(pos *Position, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		pos.EnPassant = "-"
		return nil
	}
	if _, err := chess.ParseSquare(parts[3]); err != nil {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "en passant", Got: parts[3]}
	}
	pos.EnPassant = parts[3]
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *Position, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.ParseUint(parts[4], 10, 32)
		if err != nil {
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "halfmove clock", Got: parts[4]}
		}
		pos.HalfmoveClock = uint(n)
	}
	if len(parts) >= 6 {
		n, err := strconv.ParseUint(parts[5], 10, 32)
		if err != nil {
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "fullmove number", Got: parts[5]}
		}
		pos.MoveNumber = uint(n)
	}
	return nil
}

// FEN converts the position to a FEN string.
func (p *Position) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, &p.Board)
	sb.WriteByte(' ')
	if p.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(p.Castling.String())
	sb.WriteByte(' ')
	if p.EnPassant == "" {
		sb.WriteByte('-')
	} else {
		sb.WriteString(p.EnPassant)
	}
	fmt.Fprintf(&sb, " %d %d", p.HalfmoveClock, p.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := chess.BoardSize - 1; row >= 0; row-- {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece, occupied := board.Get(chess.Sq(row, col))
			if !occupied {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
}
