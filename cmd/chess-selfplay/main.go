// chess-selfplay plays random legal games in parallel and checks every move
// against the rules: the mover is never left in check and the turn always
// passes. It reports how the games ended and exits non-zero on a violation.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/selfplay"
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
		fmt.Printf("chess-selfplay version %s\n", programVersion)
		return 0
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	logOut, err := setupLogFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if logOut != nil {
		defer logOut.Close()
	}

	out, err := setupOutputFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if out != nil {
		defer out.Close()
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	records, summary := selfplay.NewRunner(cfg).Run()

	if err := writeReport(cfg, records, summary); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		return 1
	}

	if summary.Violations > 0 {
		return 1
	}
	return 0
}

// writeReport writes every record, unless -summary is set, then the summary.
func writeReport(cfg *config.Config, records []*output.GameRecord, summary *output.Summary) error {
	w := output.NewGameWriter(cfg.OutputFile, cfg)
	if !*summaryOnly {
		for _, rec := range records {
			if err := w.WriteGame(rec); err != nil {
				return err
			}
		}
	}
	if err := w.WriteSummary(summary); err != nil {
		return err
	}
	return w.Close()
}

// setupLogFile opens the log file named by -l or -L, the latter
// taking precedence. The caller owns the returned file; it is nil when
// neither flag is set.
func setupLogFile(cfg *config.Config) (*os.File, error) {
	var file *os.File
	var err error

	switch {
	case *appendLog != "":
		file, err = os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			return nil, fmt.Errorf("opening log file %s: %w", *appendLog, err)
		}
	case *logFile != "":
		file, err = os.Create(*logFile)
		if err != nil {
			return nil, fmt.Errorf("creating log file %s: %w", *logFile, err)
		}
	default:
		return nil, nil
	}

	cfg.LogFile = file
	return file, nil
}

// setupOutputFile opens the -o file. The caller owns the returned
// file; it is nil when output goes to stdout.
func setupOutputFile(cfg *config.Config) (*os.File, error) {
	if *outputFile == "" {
		return nil, nil
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", *outputFile, err)
	}
	cfg.OutputFile = file
	return file, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-selfplay [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays random legal games and verifies the rules engine move by move.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExit status is 1 if any game broke a rule.\n")
}
