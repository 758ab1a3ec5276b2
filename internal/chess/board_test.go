package chess

import (
	"strings"
	"testing"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	for _, sq := range AllSquares() {
		if p, ok := b.Get(sq); ok {
			t.Errorf("Get(%s) = %v, true; want empty", sq, p)
		}
	}
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	tests := []struct {
		name  string
		sq    string
		piece Piece
	}{
		// White back rank
		{"white rook a1", "a1", W(Rook)},
		{"white knight b1", "b1", W(Knight)},
		{"white bishop c1", "c1", W(Bishop)},
		{"white queen d1", "d1", W(Queen)},
		{"white king e1", "e1", W(King)},
		{"white bishop f1", "f1", W(Bishop)},
		{"white knight g1", "g1", W(Knight)},
		{"white rook h1", "h1", W(Rook)},
		// Pawns
		{"white pawn a2", "a2", W(Pawn)},
		{"white pawn h2", "h2", W(Pawn)},
		{"black pawn a7", "a7", B(Pawn)},
		{"black pawn h7", "h7", B(Pawn)},
		// Black back rank
		{"black rook a8", "a8", B(Rook)},
		{"black queen d8", "d8", B(Queen)},
		{"black king e8", "e8", B(King)},
		{"black rook h8", "h8", B(Rook)},
		// Middle
		{"empty e4", "e4", Piece{}},
		{"empty d5", "d5", Piece{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.At(MustParseSquare(tt.sq)); got != tt.piece {
				t.Errorf("At(%s) = %v; want %v", tt.sq, got, tt.piece)
			}
		})
	}

	if n := len(b.Pieces(White)); n != 16 {
		t.Errorf("len(Pieces(White)) = %d; want 16", n)
	}
	if n := len(b.Pieces(Black)); n != 16 {
		t.Errorf("len(Pieces(Black)) = %d; want 16", n)
	}
}

func TestBoardGetSet(t *testing.T) {
	b := NewBoard()
	e4 := MustParseSquare("e4")

	b.Set(e4, W(Queen))
	if p, ok := b.Get(e4); !ok || p != W(Queen) {
		t.Errorf("Get(e4) = %v, %v; want White Queen, true", p, ok)
	}

	b.Clear(e4)
	if _, ok := b.Get(e4); ok {
		t.Error("Get(e4) after Clear reports a piece")
	}

	off := Sq(8, 0)
	b.Set(off, W(King))
	if _, ok := b.Get(off); ok {
		t.Error("Get on an off-board square reports a piece")
	}
	if got := b.At(Sq(-1, 3)); !got.IsEmpty() {
		t.Errorf("At(off board) = %v; want empty", got)
	}
}

func TestBoardRelocate(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	b.Relocate(MustParseSquare("d1"), MustParseSquare("d7"))

	if _, ok := b.Get(MustParseSquare("d1")); ok {
		t.Error("origin still occupied after Relocate")
	}
	if got := b.At(MustParseSquare("d7")); got != W(Queen) {
		t.Errorf("At(d7) = %v; want White Queen", got)
	}
	if n := len(b.Pieces(Black)); n != 15 {
		t.Errorf("len(Pieces(Black)) = %d; want 15 after capture", n)
	}
}

func TestBoardCopy(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	cp := b.Copy()
	cp.Clear(MustParseSquare("e2"))
	cp.Set(MustParseSquare("e4"), W(Pawn))

	if got := b.At(MustParseSquare("e2")); got != W(Pawn) {
		t.Errorf("original At(e2) = %v after modifying copy; want White Pawn", got)
	}
	if _, ok := b.Get(MustParseSquare("e4")); ok {
		t.Error("original has a piece on e4 after modifying copy")
	}

	// Plain assignment copies too.
	val := *b
	val.Clear(MustParseSquare("a1"))
	if got := b.At(MustParseSquare("a1")); got != W(Rook) {
		t.Errorf("original At(a1) = %v after modifying value copy", got)
	}
}

func TestBoardFindKing(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	tests := []struct {
		colour Colour
		want   string
	}{
		{White, "e1"},
		{Black, "e8"},
	}
	for _, tt := range tests {
		sq, ok := b.FindKing(tt.colour)
		if !ok || sq.String() != tt.want {
			t.Errorf("FindKing(%v) = %v, %v; want %s", tt.colour, sq, ok, tt.want)
		}
	}

	empty := NewBoard()
	if _, ok := empty.FindKing(White); ok {
		t.Error("FindKing on an empty board reports a king")
	}

	// With two kings the first one scanning from a1 wins.
	empty.Set(MustParseSquare("h5"), W(King))
	empty.Set(MustParseSquare("c2"), W(King))
	if sq, _ := empty.FindKing(White); sq.String() != "c2" {
		t.Errorf("FindKing with two kings = %s; want c2", sq)
	}
}

func TestBoardString(t *testing.T) {
	b := NewBoard()
	b.SetupInitialPosition()

	lines := strings.Split(b.String(), "\n")
	if len(lines) != 10 {
		t.Fatalf("String() has %d lines; want 10", len(lines))
	}
	if lines[0] != "  a b c d e f g h" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "8 r n b q k b n r  8" {
		t.Errorf("rank 8 = %q", lines[1])
	}
	if lines[5] != "4 . . . . . . . .  4" {
		t.Errorf("rank 4 = %q", lines[5])
	}
	if lines[8] != "1 R N B Q K B N R  1" {
		t.Errorf("rank 1 = %q", lines[8])
	}
}
