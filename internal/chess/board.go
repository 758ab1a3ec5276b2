package chess

import (
	"fmt"
	"strings"
)

// Board is the 8x8 grid of pieces. It is a value type: assigning or
// copying a Board yields an independent grid.
// squares[row][col] where row 0 is rank 1.
type Board struct {
	squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.squares[0][col] = W(backRank[col])
		b.squares[1][col] = W(Pawn)
		b.squares[6][col] = B(Pawn)
		b.squares[7][col] = B(backRank[col])
	}
}

// Get returns the piece on sq. The boolean is false when sq is off the
// board or empty.
func (b *Board) Get(sq Square) (Piece, bool) {
	if !sq.Valid() {
		return Piece{}, false
	}
	p := b.squares[sq.Row][sq.Col]
	return p, !p.IsEmpty()
}

// At returns the piece on sq, or the empty piece when sq is off the board.
func (b *Board) At(sq Square) Piece {
	p, _ := b.Get(sq)
	return p
}

// Set places a piece on sq. Off-board squares are ignored.
func (b *Board) Set(sq Square, p Piece) {
	if sq.Valid() {
		b.squares[sq.Row][sq.Col] = p
	}
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b.Set(sq, Piece{})
}

// Relocate moves whatever is on from to to, emptying from.
// Any piece on to is replaced.
func (b *Board) Relocate(from, to Square) {
	p := b.At(from)
	b.Clear(from)
	b.Set(to, p)
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// FindKing returns the square of the first king of the given colour found
// scanning from a1 to h8, rank by rank.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	king := Piece{Kind: King, Colour: colour}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.squares[row][col] == king {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return Square{}, false
}

// Pieces returns the squares holding pieces of the given colour, rank by rank.
func (b *Board) Pieces(colour Colour) []Square {
	var squares []Square
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.squares[row][col]
			if !p.IsEmpty() && p.Colour == colour {
				squares = append(squares, Square{Row: row, Col: col})
			}
		}
	}
	return squares
}

// String renders the board as ASCII, rank 8 at the top.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for row := BoardSize - 1; row >= 0; row-- {
		fmt.Fprintf(&sb, "%d ", row+1)
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(b.squares[row][col].Letter())
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, " %d\n", row+1)
	}
	sb.WriteString("  a b c d e f g h")
	return sb.String()
}
