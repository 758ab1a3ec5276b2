// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

var (
	// Game options
	startFEN  = flag.String("fen", "", "Start from this FEN position")
	promotion = flag.String("promote", "q", "Piece chosen when the promotion prompt gets an empty line (q, r, b, n)")

	// Display options
	colourMode  = flag.String("colour", "auto", "Colour the board: auto, always, never")
	noBoard     = flag.Bool("noboard", false, "Don't print the board after each move")
	historyFile = flag.String("history", defaultHistoryFile(), "Command history file (empty disables history)")

	// Logging
	logFile = flag.String("l", "", "Write diagnostics to log file")

	// Other options
	verbose = flag.Bool("v", false, "Log every move and state change")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if *startFEN != "" {
		cfg.StartFEN = *startFEN
	}
	if err := applyDisplayFlags(cfg); err != nil {
		return err
	}
	if err := applyPromotionFlag(cfg); err != nil {
		return err
	}

	// The console writes to stdout; only -v turns on game commentary.
	cfg.Verbosity = 0
	if *verbose {
		cfg.Verbosity = 2
	}
	return nil
}

// applyDisplayFlags configures colour, board printing and history.
func applyDisplayFlags(cfg *config.Config) error {
	mode, err := config.ParseColourMode(*colourMode)
	if err != nil {
		return err
	}
	cfg.Console.Colour = mode
	cfg.Console.ShowBoard = !*noBoard
	cfg.Console.HistoryFile = *historyFile
	return nil
}

// applyPromotionFlag sets the default promotion piece.
func applyPromotionFlag(cfg *config.Config) error {
	if len(*promotion) != 1 {
		return fmt.Errorf("promotion piece %q: %w", *promotion, errors.ErrInvalidConfig)
	}
	cfg.Console.PromotionDefault = (*promotion)[0]
	return nil
}

// defaultHistoryFile keeps history in the user's home directory.
func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chess_history")
}
