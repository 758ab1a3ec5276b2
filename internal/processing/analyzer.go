// Package processing replays recorded move lists, checking that every move
// is legal and collecting facts about the game along the way.
package processing

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// GameAnalysis holds analysis results from replaying a game.
type GameAnalysis struct {
	FinalPosition     *engine.Position
	FinalState        chess.GameState
	Captures          int
	Checks            int // Moves after which the opponent was in check
	Promotions        int
	HasUnderpromotion bool
	HasRepetition     bool     // Some position occurred three times
	Positions         []uint64 // Position hashes, one per ply plus the start
}

// UnderpromotionFound returns true if any pawn promoted to non-queen.
func (ga *GameAnalysis) UnderpromotionFound() bool {
	return ga.HasUnderpromotion
}

// RepetitionDetected returns true if a position occurred three times.
// No rule acts on it; it is reported for statistics only.
func (ga *GameAnalysis) RepetitionDetected() bool {
	return ga.HasRepetition
}

// ValidationResult holds the result of game validation.
type ValidationResult struct {
	Valid    bool
	ErrorPly int
	ErrorMsg string
}

// ReplayMove is one parsed move of a recorded game.
type ReplayMove struct {
	Move      chess.Move
	Promotion chess.Kind // NoKind unless the text carried a promotion letter
}

// ParseReplayMove parses long algebraic text with an optional promotion
// letter, e.g. "e2e4" or "b7b8q".
func ParseReplayMove(text string) (ReplayMove, error) {
	m, err := chess.ParseMove(text)
	if err != nil {
		return ReplayMove{}, err
	}
	rm := ReplayMove{Move: m}
	switch len(text) {
	case 4:
	case 5:
		rm.Promotion = chess.KindFromLetter(text[4])
		if !engine.IsPromotionKind(rm.Promotion) {
			return ReplayMove{}, fmt.Errorf("bad promotion letter in %q", text)
		}
	default:
		return ReplayMove{}, fmt.Errorf("bad move text %q", text)
	}
	return rm, nil
}

// AnalyzeGame replays moves from startFEN and analyzes the game. It stops at
// the first move that cannot be played and returns an error naming it; the
// analysis up to that point is still returned.
func AnalyzeGame(startFEN string, moves []string) (*GameAnalysis, error) {
	pos, err := engine.ParseFEN(startFEN)
	if err != nil {
		return nil, err
	}
	analysis := &GameAnalysis{FinalPosition: pos}

	posHash := hashing.HashPosition(pos)
	analysis.Positions = append(analysis.Positions, posHash)
	positionCount := map[uint64]int{posHash: 1}

	for i, text := range moves {
		if err := replayMove(pos, text, analysis); err != nil {
			analysis.FinalState = engine.EvaluateState(&pos.Board, pos.ToMove)
			return analysis, fmt.Errorf("ply %d: %w", i+1, err)
		}

		if engine.IsInCheck(&pos.Board, pos.ToMove) {
			analysis.Checks++
		}

		posHash = hashing.HashPosition(pos)
		analysis.Positions = append(analysis.Positions, posHash)
		positionCount[posHash]++
		if positionCount[posHash] >= 3 {
			analysis.HasRepetition = true
		}
	}

	analysis.FinalState = engine.EvaluateState(&pos.Board, pos.ToMove)
	return analysis, nil
}

// replayMove validates and plays one move text on pos.
func replayMove(pos *engine.Position, text string, analysis *GameAnalysis) error {
	rm, err := ParseReplayMove(text)
	if err != nil {
		return err
	}
	piece, ok := pos.Board.Get(rm.Move.From)
	if !ok {
		return fmt.Errorf("%s: no piece on %s", text, rm.Move.From)
	}
	if piece.Colour != pos.ToMove {
		return fmt.Errorf("%s: %s piece moved with %s to move", text, piece.Colour, pos.ToMove)
	}
	if !engine.IsLegalMove(&pos.Board, rm.Move.From, rm.Move.To) {
		return fmt.Errorf("%s: illegal move", text)
	}

	if _, captured := pos.Board.Get(rm.Move.To); captured {
		analysis.Captures++
	}

	promotes := engine.ApplyMove(pos, rm.Move)
	switch {
	case promotes && rm.Promotion == chess.NoKind:
		return fmt.Errorf("%s: promotion piece missing", text)
	case !promotes && rm.Promotion != chess.NoKind:
		return fmt.Errorf("%s: promotion letter on a non-promoting move", text)
	case promotes:
		engine.Promote(pos, rm.Move.To, rm.Promotion)
		analysis.Promotions++
		if rm.Promotion != chess.Queen {
			analysis.HasUnderpromotion = true
		}
	}
	return nil
}

// ValidateGame checks that moves replay legally from startFEN and, when
// result is not empty, that the recorded result matches the final state.
func ValidateGame(startFEN string, moves []string, result string) *ValidationResult {
	res := &ValidationResult{Valid: true}

	if result != "" && !isValidResult(result) {
		res.Valid = false
		res.ErrorMsg = fmt.Sprintf("invalid result: %s", result)
		return res
	}

	analysis, err := AnalyzeGame(startFEN, moves)
	if err != nil {
		res.Valid = false
		if analysis != nil {
			res.ErrorPly = len(analysis.Positions)
		}
		res.ErrorMsg = err.Error()
		return res
	}

	if result != "" {
		if want := ResultFor(analysis.FinalState, analysis.FinalPosition.ToMove); want != result {
			res.Valid = false
			res.ErrorPly = len(moves)
			res.ErrorMsg = fmt.Sprintf("result %s recorded, position gives %s", result, want)
		}
	}
	return res
}

// ResultFor returns the PGN result implied by state with toMove to play.
func ResultFor(state chess.GameState, toMove chess.Colour) string {
	switch state {
	case chess.Checkmate:
		if toMove == chess.White {
			return "0-1"
		}
		return "1-0"
	case chess.Stalemate:
		return "1/2-1/2"
	}
	return "*"
}

// isValidResult checks if a result string is a valid PGN result.
func isValidResult(result string) bool {
	switch result {
	case "1-0", "0-1", "1/2-1/2", "*":
		return true
	default:
		return false
	}
}
