// chess-console is an interactive chess board for two players at one
// terminal. Moves are typed as "e2 e4" or "e2e4"; type "help" for the rest.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/console"
)

const programVersion = "0.1.0"

func main() {
	os.Exit(run())
}

// run holds the body of main so deferred closes happen before the exit.
func run() int {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		return 0
	}

	if *version {
		fmt.Printf("chess-console version %s\n", programVersion)
		return 0
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	logOut, err := setupLogFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if logOut != nil {
		defer logOut.Close()
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	colour := useColour(cfg.Console.Colour, term.IsTerminal(int(os.Stdout.Fd())))

	c, err := console.New(cfg, os.Stdout, colour)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	if !interactive {
		// Piped input: no line editing, no banner.
		if err := c.Run(os.Stdin); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	if err := runInteractive(c, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// runInteractive drives the console through readline for line editing
// and history.
func runInteractive(c *console.Console, cfg *config.Config) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          c.Prompt(),
		HistoryFile:     cfg.Console.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	c.Welcome()

	for !c.Done() {
		rl.SetPrompt(c.Prompt())

		line, err := rl.Readline()
		if err == io.EOF {
			break
		}
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			return err
		}

		c.Handle(line)
	}
	return nil
}

// useColour resolves the colour mode against whether stdout is a terminal.
func useColour(mode config.ColourMode, isTerminal bool) bool {
	switch mode {
	case config.ColourAlways:
		return true
	case config.ColourNever:
		return false
	default:
		return isTerminal && os.Getenv("NO_COLOR") == ""
	}
}

// setupLogFile opens the -l file and points cfg at it. The caller owns
// the returned file, which is nil when no log file was asked for.
func setupLogFile(cfg *config.Config) (*os.File, error) {
	if *logFile == "" {
		return nil, nil
	}
	file, err := os.Create(*logFile)
	if err != nil {
		return nil, fmt.Errorf("creating log file %s: %w", *logFile, err)
	}
	cfg.LogFile = file
	return file, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-console [options]\n\n")
	fmt.Fprintf(os.Stderr, "An interactive chess board that enforces the rules.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands: move, moves, legal, promote, board, fen, new, help, quit.\n")
	fmt.Fprintf(os.Stderr, "A move may also be typed alone: \"e2 e4\" or \"e2e4\".\n")
}
