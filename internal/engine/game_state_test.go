package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

func TestEvaluateState(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want chess.GameState
	}{
		{"start", InitialFEN, chess.InProgress},
		{"after 1.e4", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1", chess.InProgress},
		{"queen check", "rnb1kbnr/pp2pppp/8/2pp4/2PPP3/8/PP1q1PPP/RNB1KBNR w KQkq - 0 5", chess.Check},
		{"fool's mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", chess.Checkmate},
		{"mate on construction", "rnb2b1r/3Bkp2/1Q3p2/2PNN2p/2P1p3/8/PP3PPP/R3K2R b KQ - 1 16", chess.Checkmate},
		{"stalemate", "k7/1R1RN3/p3p3/P3P2p/1PP4P/3K1PP1/8/8 b - - 1 2", chess.Stalemate},
		{"bare kings", "8/8/8/3k4/8/3K4/8/8 w - - 0 1", chess.InProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			if got := EvaluateState(&pos.Board, pos.ToMove); got != tt.want {
				t.Errorf("EvaluateState() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsCheckmateIsStalemate(t *testing.T) {
	tests := []struct {
		name          string
		fen           string
		wantCheckmate bool
		wantStalemate bool
	}{
		{"start", InitialFEN, false, false},
		{"check only", "rnb1kbnr/pp2pppp/8/2pp4/2PPP3/8/PP1q1PPP/RNB1KBNR w KQkq - 0 5", false, false},
		{"checkmate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", true, false},
		{"stalemate", "k7/1R1RN3/p3p3/P3P2p/1PP4P/3K1PP1/8/8 b - - 1 2", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			if got := IsCheckmate(pos); got != tt.wantCheckmate {
				t.Errorf("IsCheckmate() = %v, want %v", got, tt.wantCheckmate)
			}
			if got := IsStalemate(pos); got != tt.wantStalemate {
				t.Errorf("IsStalemate() = %v, want %v", got, tt.wantStalemate)
			}
		})
	}
}
