package selfplay

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	chessrules "github.com/lgbarn/chessrules-go"
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/processing"
	"github.com/lgbarn/chessrules-go/internal/testutil"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

const (
	stalemateFEN = "k7/1R1RN3/p3p3/P3P2p/1PP4P/3K1PP1/8/8 b - - 1 2"
	foolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	// White's only legal move is a7a8.
	forcedPromotionFEN = "6r1/P7/4k3/8/8/8/1r6/7K w - - 0 1"
)

func testConfig(games, plies int) (*config.Config, *bytes.Buffer) {
	var log bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithGames(games).
		WithWorkers(2).
		WithMaxPlies(plies).
		WithSeed(3).
		WithLog(&log).
		Build()
	return cfg, &log
}

func TestRunner_Run(t *testing.T) {
	cfg, _ := testConfig(8, 80)

	records, summary := NewRunner(cfg).Run()
	if len(records) != 8 {
		t.Fatalf("got %d records, want 8", len(records))
	}
	testutil.AssertEqual(t, summary.Games, 8)
	testutil.AssertEqual(t, summary.Violations, 0)
	testutil.AssertEqual(t, summary.Checkmates+summary.Stalemates+summary.Unfinished, 8)

	for i, rec := range records {
		testutil.AssertEqual(t, rec.Index, i)
		testutil.AssertEqual(t, rec.Seed, int64(3+i))
		testutil.AssertEqual(t, rec.Plies, len(rec.Moves))
		if rec.Violation != "" {
			t.Errorf("game %d: %s", i, rec.Violation)
		}
		if rec.Plies > 80 {
			t.Errorf("game %d ran %d plies past the limit", i, rec.Plies)
		}
		if res := processing.ValidateGame(rec.StartFEN, rec.Moves, rec.Result()); !res.Valid {
			t.Errorf("game %d does not replay: %s", i, res.ErrorMsg)
		}
	}
}

func TestRunner_Deterministic(t *testing.T) {
	cfg, _ := testConfig(4, 40)
	first, _ := NewRunner(cfg).Run()
	second, _ := NewRunner(cfg).Run()

	if len(first) != len(second) {
		t.Fatalf("run lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		testutil.AssertEqual(t, second[i].Moves, first[i].Moves, "game %d", i)
		testutil.AssertEqual(t, second[i].FinalFEN, first[i].FinalFEN, "game %d", i)
		testutil.AssertEqual(t, second[i].Hash, first[i].Hash, "game %d", i)
	}
}

func TestRunner_PlyLimit(t *testing.T) {
	cfg, _ := testConfig(3, 1)
	records, summary := NewRunner(cfg).Run()

	testutil.AssertEqual(t, summary.Unfinished, 3)
	testutil.AssertEqual(t, summary.TotalPlies, 3)
	for _, rec := range records {
		testutil.AssertEqual(t, rec.Result(), "*")
		testutil.AssertEqual(t, rec.ToMove, chess.Black)
	}
}

func TestRunner_TerminalStart(t *testing.T) {
	tests := []struct {
		name       string
		fen        string
		wantState  chess.GameState
		wantResult string
	}{
		{"stalemate", stalemateFEN, chess.Stalemate, "1/2-1/2"},
		{"checkmate", foolsMateFEN, chess.Checkmate, "0-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _ := testConfig(3, 50)
			cfg.StartFEN = tt.fen

			records, summary := NewRunner(cfg).Run()
			testutil.AssertEqual(t, len(records), 3)
			for _, rec := range records {
				testutil.AssertEqual(t, rec.Plies, 0)
				testutil.AssertEqual(t, rec.State, tt.wantState)
				testutil.AssertEqual(t, rec.Result(), tt.wantResult)
				testutil.AssertEqual(t, rec.FinalFEN, tt.fen)
			}
			// Every game ends in the same position.
			testutil.AssertEqual(t, summary.Duplicates, 2)
		})
	}
}

func TestRunner_BadStart(t *testing.T) {
	cfg, log := testConfig(2, 10)
	cfg.StartFEN = "8/8/8 w"

	records, summary := NewRunner(cfg).Run()
	testutil.AssertEqual(t, len(records), 0)
	testutil.AssertEqual(t, summary.Games, 0)
	testutil.AssertContains(t, log.String(), "invalid FEN")
}

func TestPlayGame(t *testing.T) {
	cfg, _ := testConfig(1, 30)
	rec, board, err := NewRunner(cfg).PlayGame(worker.WorkItem{Index: 4, Seed: 99})
	testutil.AssertNoError(t, err)

	if board == nil {
		t.Fatal("expected a final board")
	}
	g, err := chessrules.NewFromSetup(rec.FinalFEN)
	testutil.AssertNoError(t, err)
	final := g.Board()
	testutil.AssertEqual(t, board.String(), final.String())
	testutil.AssertEqual(t, rec.StartFEN, chessrules.InitialFEN)
	testutil.AssertEqual(t, rec.Index, 4)
	if rec.Hash == 0 {
		t.Error("expected a non-zero game hash")
	}
}

func TestPlayRandomMove_Promotion(t *testing.T) {
	for seed := int64(0); seed < 8; seed++ {
		g, err := chessrules.NewFromSetup(forcedPromotionFEN)
		testutil.AssertNoError(t, err)

		text, violation := playRandomMove(g, rand.New(rand.NewSource(seed)))
		testutil.AssertEqual(t, violation, "")
		if len(text) != 5 || !strings.HasPrefix(text, "a7a8") {
			t.Fatalf("seed %d: move %q, want a7a8 with a promotion letter", seed, text)
		}
		piece, _ := g.PieceAt("a8")
		testutil.AssertEqual(t, piece.Kind, chess.KindFromLetter(text[4]))
		testutil.AssertEqual(t, piece.Colour, chess.White)
	}
}

func TestPlayRandomMove_NoMoves(t *testing.T) {
	g, err := chessrules.NewFromSetup(stalemateFEN)
	testutil.AssertNoError(t, err)

	text, violation := playRandomMove(g, rand.New(rand.NewSource(1)))
	testutil.AssertEqual(t, text, "")
	testutil.AssertContains(t, violation, "no legal moves")
}

func TestVerifyPosition(t *testing.T) {
	g := chessrules.New()
	testutil.AssertContains(t, verifyPosition(g, chess.White), "White still to move")
	testutil.AssertEqual(t, verifyPosition(g, chess.Black), "")

	// White's king stands in the black queen's line with Black to move.
	exposed, err := chessrules.NewFromSetup("4k3/8/8/8/8/8/8/q3K3 b - - 0 1")
	testutil.AssertNoError(t, err)
	problems := verifyPosition(exposed, chess.White)
	testutil.AssertContains(t, problems, "White left in check")
	testutil.AssertContains(t, problems, "White king capturable")
}
