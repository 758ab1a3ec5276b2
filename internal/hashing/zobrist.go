package hashing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// numPieceKeys covers six kinds in two colours.
const numPieceKeys = 12

var (
	pieceKeys    [numPieceKeys][chess.BoardSize * chess.BoardSize]uint64
	blackToMove  uint64
	castlingKeys [4]uint64
)

func init() {
	// Fixed seed so hashes are stable across runs and processes.
	state := uint64(0x9E3779B97F4A7C15)
	for p := range pieceKeys {
		for sq := range pieceKeys[p] {
			pieceKeys[p][sq] = splitMix64(&state)
		}
	}
	blackToMove = splitMix64(&state)
	for i := range castlingKeys {
		castlingKeys[i] = splitMix64(&state)
	}
}

// splitMix64 advances state and returns the next pseudo-random value.
func splitMix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func pieceIndex(p chess.Piece) int {
	return int(p.Colour)*6 + int(p.Kind) - 1
}

// GenerateZobristHash hashes the piece placement of a board.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for i, sq := range chess.AllSquares() {
		if p, ok := board.Get(sq); ok {
			hash ^= pieceKeys[pieceIndex(p)][i]
		}
	}
	return hash
}

// HashPosition hashes placement, side to move and castling rights. The
// clocks and en passant field do not take part.
func HashPosition(pos *engine.Position) uint64 {
	hash := GenerateZobristHash(&pos.Board)
	if pos.ToMove == chess.Black {
		hash ^= blackToMove
	}
	rights := []bool{
		pos.Castling.WhiteKingSide, pos.Castling.WhiteQueenSide,
		pos.Castling.BlackKingSide, pos.Castling.BlackQueenSide,
	}
	for i, set := range rights {
		if set {
			hash ^= castlingKeys[i]
		}
	}
	return hash
}

// WeakHash is a cheap placement checksum used to confirm Zobrist matches.
func WeakHash(board *chess.Board) uint32 {
	var hash uint32
	for i, sq := range chess.AllSquares() {
		if p, ok := board.Get(sq); ok {
			hash += uint32(i+1) * uint32(p.Letter())
		}
	}
	return hash
}
