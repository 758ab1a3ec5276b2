// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Play options
	games     = flag.Int("games", 100, "Number of games to play")
	workers   = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
	maxPlies  = flag.Int("maxply", 300, "Stop a game after N plies")
	seed      = flag.Int64("seed", 1, "Base random seed; game i uses seed+i")
	startFEN  = flag.String("fen", "", "Start every game from this FEN position")
	keepGoing = flag.Bool("keepgoing", false, "Keep playing after a rules violation")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	withMoves    = flag.Bool("moves", false, "List the moves of every game")
	noFEN        = flag.Bool("nofen", false, "Don't output final positions")
	summaryOnly  = flag.Bool("summary", false, "Output only the summary")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no game count)")
	verbose = flag.Bool("v", false, "Log every game as it is played")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyPlayFlags(cfg)
	applyOutputFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}

// applyPlayFlags configures the self-play run.
func applyPlayFlags(cfg *config.Config) {
	cfg.SelfPlay.Games = *games
	cfg.SelfPlay.Workers = *workers
	cfg.SelfPlay.MaxPlies = *maxPlies
	cfg.SelfPlay.Seed = *seed
	cfg.SelfPlay.StopOnViolation = !*keepGoing
	if *startFEN != "" {
		cfg.StartFEN = *startFEN
	}
}

// applyOutputFlags configures report content.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.IncludeMoves = *withMoves
	cfg.Output.IncludeFEN = !*noFEN
}
