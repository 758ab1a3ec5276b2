// Package selfplay plays random legal games in parallel and checks, after
// every move, that the rules engine kept its promises: the side that moved
// is not in check and the turn passed to the other side.
package selfplay

import (
	"fmt"
	"math/rand"
	"strings"

	chessrules "github.com/lgbarn/chessrules-go"
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/processing"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// promotionLetters are the choices a random player picks from.
var promotionLetters = []byte{'q', 'r', 'b', 'n'}

// Runner plays a batch of games described by a Config.
type Runner struct {
	cfg      *config.Config
	detector *hashing.ThreadSafeDuplicateDetector
	hasher   *hashing.GameHasher
}

// NewRunner creates a runner for cfg.
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{
		cfg:      cfg,
		detector: hashing.NewThreadSafeDuplicateDetector(false, 0),
		hasher:   hashing.NewGameHasher(hashing.HashMoveSequence),
	}
}

// Run plays cfg.SelfPlay.Games games and returns their records in game
// order together with a summary. With StopOnViolation set, the pool stops
// after the first game that breaks a rule, so fewer records may come back.
func (r *Runner) Run() ([]*output.GameRecord, *output.Summary) {
	sp := r.cfg.SelfPlay

	items := make([]worker.WorkItem, sp.Games)
	for i := range items {
		items[i] = worker.WorkItem{Index: i, Seed: sp.Seed + int64(i), StartFEN: r.cfg.StartFEN}
	}

	workers := sp.Workers
	if workers == 0 {
		workers = worker.DefaultWorkers()
	}

	var pool *worker.Pool
	pool = worker.NewPoolWithOptions(func(item worker.WorkItem) worker.ProcessResult {
		res := r.process(item)
		if res.Violation && sp.StopOnViolation {
			pool.Stop()
		}
		return res
	}, worker.WithWorkers(workers), worker.WithBufferSize(2*workers))

	r.cfg.Logf(2, "playing %d games on %d workers\n", sp.Games, pool.NumWorkers())

	summary := &output.Summary{}
	var records []*output.GameRecord
	for _, res := range pool.Run(items) {
		rec, ok := res.GameInfo.(*output.GameRecord)
		if !ok {
			r.cfg.Logf(1, "game %d: %v\n", res.Index+1, res.Error)
			continue
		}
		summary.Add(rec)
		records = append(records, rec)
	}

	r.cfg.Logf(1, "%d games, %d checkmates, %d stalemates, %d violations\n",
		summary.Games, summary.Checkmates, summary.Stalemates, summary.Violations)
	return records, summary
}

// process plays one work item and wraps the record as a pool result.
func (r *Runner) process(item worker.WorkItem) worker.ProcessResult {
	res := worker.ProcessResult{Index: item.Index, Seed: item.Seed}

	rec, board, err := r.PlayGame(item)
	if err != nil {
		res.Error = err
		return res
	}

	res.State = rec.State
	res.Plies = rec.Plies
	res.Board = board
	res.GameInfo = rec
	res.Violation = rec.Violation != ""
	if res.Violation {
		r.cfg.Logf(1, "game %d (seed %d): %s\n", item.Index+1, item.Seed, rec.Violation)
	}
	return res
}

// PlayGame plays one random game from item.StartFEN until it ends, a rule is
// broken or the ply limit is reached.
func (r *Runner) PlayGame(item worker.WorkItem) (*output.GameRecord, *chess.Board, error) {
	start := item.StartFEN
	if start == "" {
		start = engine.InitialFEN
	}
	g, err := chessrules.NewFromSetup(start)
	if err != nil {
		return nil, nil, fmt.Errorf("game %d: %w", item.Index+1, err)
	}

	rng := rand.New(rand.NewSource(item.Seed))
	rec := &output.GameRecord{Index: item.Index, Seed: item.Seed, StartFEN: start}

	for rec.Plies < r.cfg.SelfPlay.MaxPlies && !g.CurrentState().IsTerminal() {
		text, violation := playRandomMove(g, rng)
		if text != "" {
			rec.Moves = append(rec.Moves, text)
			rec.Plies++
		}
		if violation != "" {
			rec.Violation = fmt.Sprintf("ply %d %s: %s", rec.Plies, text, violation)
			break
		}
	}

	if rec.Violation == "" {
		if res := processing.ValidateGame(start, rec.Moves, ""); !res.Valid {
			rec.Violation = "replay: " + res.ErrorMsg
		}
	}

	rec.State = g.CurrentState()
	rec.ToMove = g.SideToMove()
	rec.FinalFEN = g.FEN()

	final, err := engine.ParseFEN(rec.FinalFEN)
	if err != nil {
		return nil, nil, fmt.Errorf("game %d: re-reading final position: %w", item.Index+1, err)
	}
	rec.Hash = r.hasher.HashGame(rec.Moves, final)
	rec.Duplicate = r.detector.CheckAndAdd(final, rec.Plies)

	board := g.Board()
	return rec, &board, nil
}

// playRandomMove plays one uniformly chosen legal move, resolving any
// promotion with a random piece, and returns the move text and a
// description of any broken rule.
func playRandomMove(g *chessrules.Game, rng *rand.Rand) (text, violation string) {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return "", fmt.Sprintf("no legal moves in state %s", g.CurrentState())
	}
	text = moves[rng.Intn(len(moves))]
	mover := g.SideToMove()

	if _, err := g.ApplyMove(text[:2], text[2:]); err != nil {
		return text, fmt.Sprintf("listed move rejected: %v", err)
	}

	if sq, ok := g.PendingPromotion(); ok {
		letter := promotionLetters[rng.Intn(len(promotionLetters))]
		if err := g.ResolvePromotion(sq, letter); err != nil {
			return text, fmt.Sprintf("promotion rejected: %v", err)
		}
		text += string(letter)
	}

	return text, verifyPosition(g, mover)
}

// verifyPosition brute-force checks the position after mover's move.
func verifyPosition(g *chessrules.Game, mover chess.Colour) string {
	var problems []string
	board := g.Board()

	if g.SideToMove() != mover.Opposite() {
		problems = append(problems, fmt.Sprintf("%s still to move", mover))
	}
	if engine.IsInCheck(&board, mover) {
		problems = append(problems, fmt.Sprintf("%s left in check", mover))
	}
	if engine.KingCapturable(&board, mover) {
		problems = append(problems, fmt.Sprintf("%s king capturable", mover))
	}
	if _, ok := board.FindKing(mover); !ok {
		problems = append(problems, fmt.Sprintf("%s king missing", mover))
	}
	if _, ok := board.FindKing(mover.Opposite()); !ok {
		problems = append(problems, fmt.Sprintf("%s king captured", mover.Opposite()))
	}
	if want := engine.EvaluateState(&board, g.SideToMove()); want != g.CurrentState() {
		problems = append(problems, fmt.Sprintf("state %s, position gives %s", g.CurrentState(), want))
	}
	if _, ok := g.PendingPromotion(); ok {
		problems = append(problems, "promotion left pending")
	}
	return strings.Join(problems, "; ")
}
