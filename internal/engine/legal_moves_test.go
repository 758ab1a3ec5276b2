package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestLegalMoves(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{"pawn from start", InitialFEN, "a2", []string{"a3", "a4"}},
		{"knight from start", InitialFEN, "b1", []string{"a3", "c3"}},
		{"king boxed in", InitialFEN, "e1", nil},
		{
			"king in check steps away",
			"rnbq1bnr/ppp2ppp/2Q5/1BkP4/5p2/8/PPPP2PP/RNB1K1NR b KQ - 5 7",
			"c5", []string{"b4", "d4"},
		},
		{
			"king cannot step into check",
			"r1bq2nr/4kppN/3b4/pnpQ4/P1P5/4p3/5PPP/R1B1KB1R b KQ - 1 17",
			"e7", []string{"d7", "e8"},
		},
		{
			"king with defended neighbours",
			"Q1b1k1nr/5ppN/8/p1p3q1/P1P5/R2R4/4pPP1/2B1KB2 b - - 3 22",
			"e8", []string{"e7"},
		},
		{
			"king with no way out",
			"Q1b1kN1r/3R1pp1/8/p1p3q1/P1P5/R1n5/4pPP1/2B1KB2 w - - 7 25",
			"e1", nil,
		},
		{
			"pinned knight",
			"4r1k1/8/8/8/8/8/4N3/4K3 w - - 0 1",
			"e2", nil,
		},
		{
			"pinned rook slides along the pin",
			"4r1k1/8/8/8/8/8/4R3/4K3 w - - 0 1",
			"e2", []string{"e3", "e4", "e5", "e6", "e7", "e8"},
		},
		{
			"only capture answers check",
			"4k3/8/8/8/8/8/3q4/R3K3 w - - 0 1",
			"a1", nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			from := testutil.MustSquare(t, tt.from)
			piece, ok := pos.Board.Get(from)
			if !ok {
				t.Fatalf("no piece on %s", tt.from)
			}
			got := testutil.SquareNames(LegalMoves(&pos.Board, from, piece))
			testutil.AssertSameElements(t, got, tt.want, "LegalMoves(%s)", tt.from)
		})
	}
}

func TestLegalMoves_LeavesBoardUntouched(t *testing.T) {
	pos := mustPosition(t, "rnbq1bnr/ppp2ppp/2Q5/1BkP4/5p2/8/PPPP2PP/RNB1K1NR b KQ - 5 7")
	before := pos.FEN()

	for _, from := range pos.Board.Pieces(chess.Black) {
		LegalMoves(&pos.Board, from, pos.Board.At(from))
	}
	testutil.AssertEqual(t, pos.FEN(), before)
}

func TestAllLegalMoves_StartPosition(t *testing.T) {
	pos := mustPosition(t, InitialFEN)

	white := AllLegalMoves(&pos.Board, chess.White)
	testutil.AssertEqual(t, len(white), 20, "white moves: %v", testutil.MoveNames(white))

	black := AllLegalMoves(&pos.Board, chess.Black)
	testutil.AssertEqual(t, len(black), 20, "black moves: %v", testutil.MoveNames(black))
}

func TestAllLegalMoves_NeverLeaveKingInCheck(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbq1bnr/ppp2ppp/2Q5/1BkP4/5p2/8/PPPP2PP/RNB1K1NR b KQ - 5 7",
		"r1bq2nr/4kppN/3b4/pnpQ4/P1P5/4p3/5PPP/R1B1KB1R b KQ - 1 17",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	}
	for _, fen := range fens {
		pos := mustPosition(t, fen)
		for _, m := range AllLegalMoves(&pos.Board, pos.ToMove) {
			board := pos.Board.Copy()
			board.Relocate(m.From, m.To)
			if IsInCheck(board, pos.ToMove) {
				t.Errorf("%s: %s leaves %v in check", fen, m, pos.ToMove)
			}
		}
	}
}

func TestHasLegalMoves(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"start", InitialFEN, chess.White, true},
		{"stalemated black", "k7/1R1RN3/p3p3/P3P2p/1PP4P/3K1PP1/8/8 b - - 1 2", chess.Black, false},
		{"mated black", "rnb2b1r/3Bkp2/1Q3p2/2PNN2p/2P1p3/8/PP3PPP/R3K2R b KQ - 1 16", chess.Black, false},
		{"no pieces", "8/8/8/8/8/8/8/8 w - - 0 1", chess.White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			if got := HasLegalMoves(&pos.Board, tt.colour); got != tt.want {
				t.Errorf("HasLegalMoves(%v) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}

func TestIsLegalMove(t *testing.T) {
	pos := mustPosition(t, InitialFEN)

	tests := []struct {
		move string
		want bool
	}{
		{"e2e4", true},
		{"e2e5", false},
		{"g1f3", true},
		{"g1g3", false},
		{"e4e5", false},
		{"e7e5", true},
	}

	for _, tt := range tests {
		t.Run(tt.move, func(t *testing.T) {
			m, err := chess.ParseMove(tt.move)
			testutil.AssertNoError(t, err)
			if got := IsLegalMove(&pos.Board, m.From, m.To); got != tt.want {
				t.Errorf("IsLegalMove(%s) = %v, want %v", tt.move, got, tt.want)
			}
		})
	}
}
