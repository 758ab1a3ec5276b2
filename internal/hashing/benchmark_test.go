package hashing

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

var benchFENPositions = map[string]string{
	"Initial": engine.InitialFEN,
	"Midgame": "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame": "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex": "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
}

func BenchmarkHashPosition(b *testing.B) {
	for name, fen := range benchFENPositions {
		b.Run(name, func(b *testing.B) {
			pos, _ := engine.ParseFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				HashPosition(pos)
			}
		})
	}
}

func BenchmarkWeakHash(b *testing.B) {
	positions := []string{"Initial", "Midgame", "Endgame"}
	for _, name := range positions {
		b.Run(name, func(b *testing.B) {
			pos, _ := engine.ParseFEN(benchFENPositions[name])
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				WeakHash(&pos.Board)
			}
		})
	}
}

func BenchmarkDuplicateDetector(b *testing.B) {
	pos, _ := engine.ParseFEN(benchFENPositions["Midgame"])
	detector := NewDuplicateDetector(false, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		detector.CheckAndAdd(pos, i)
	}
}
