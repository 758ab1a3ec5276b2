package output

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/processing"
)

// GameRecord is the outcome of one self-play game.
type GameRecord struct {
	Index     int
	Seed      int64
	StartFEN  string
	State     chess.GameState // State for the side to move at the end
	ToMove    chess.Colour    // Side to move at the end
	Plies     int
	Moves     []string // Long algebraic, promotions suffixed with the piece letter
	FinalFEN  string
	Hash      uint64
	Duplicate bool   // Final position already reached by an earlier game
	Violation string // Empty unless a rules invariant failed
}

// Result returns the PGN-style result: "1-0", "0-1", "1/2-1/2" or "*".
func (r *GameRecord) Result() string {
	return processing.ResultFor(r.State, r.ToMove)
}

// Summary accumulates outcome counts over many games.
type Summary struct {
	Games      int
	Checkmates int
	WhiteWins  int
	BlackWins  int
	Stalemates int
	Unfinished int
	Duplicates int
	Violations int
	TotalPlies int
}

// Add counts one game.
func (s *Summary) Add(r *GameRecord) {
	s.Games++
	s.TotalPlies += r.Plies
	switch r.Result() {
	case "1-0":
		s.Checkmates++
		s.WhiteWins++
	case "0-1":
		s.Checkmates++
		s.BlackWins++
	case "1/2-1/2":
		s.Stalemates++
	default:
		s.Unfinished++
	}
	if r.Duplicate {
		s.Duplicates++
	}
	if r.Violation != "" {
		s.Violations++
	}
}

// AveragePlies returns the mean game length.
func (s *Summary) AveragePlies() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalPlies) / float64(s.Games)
}
