// Package output formats self-play game records and summaries as text or
// JSON.
package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputGame writes a game record as tag pairs followed by numbered moves.
func OutputGame(rec *GameRecord, cfg *config.Config, w io.Writer) {
	writeTag(w, "Game", strconv.Itoa(rec.Index+1))
	writeTag(w, "Seed", strconv.FormatInt(rec.Seed, 10))
	if rec.StartFEN != "" && rec.StartFEN != engine.InitialFEN {
		writeTag(w, "FEN", rec.StartFEN)
	}
	writeTag(w, "Result", rec.Result())
	writeTag(w, "Termination", rec.State.String())
	writeTag(w, "PlyCount", strconv.Itoa(rec.Plies))
	if cfg.Output.IncludeFEN && rec.FinalFEN != "" {
		writeTag(w, "FinalFEN", rec.FinalFEN)
	}
	if rec.Duplicate {
		writeTag(w, "Duplicate", "true")
	}
	if rec.Violation != "" {
		writeTag(w, "Violation", rec.Violation)
	}

	if cfg.Output.IncludeMoves {
		fmt.Fprintln(w)
		outputMoves(rec, w)
	}
	fmt.Fprintln(w)
}

// outputMoves writes the move list with move numbers, wrapped at 80 columns.
func outputMoves(rec *GameRecord, w io.Writer) {
	ow := NewOutputWriter(w, 80)
	whiteFirst := true
	moveNumber := 1
	if pos, err := engine.ParseFEN(rec.StartFEN); err == nil {
		whiteFirst = pos.ToMove == chess.White
		moveNumber = int(pos.MoveNumber)
	}

	white := whiteFirst
	for i, mv := range rec.Moves {
		switch {
		case white:
			ow.Write(fmt.Sprintf("%d.", moveNumber))
		case i == 0:
			ow.Write(fmt.Sprintf("%d...", moveNumber))
		}
		ow.Write(mv)
		if !white {
			moveNumber++
		}
		white = !white
	}
	ow.Write(rec.Result())
	ow.NewLine()
}

// writeTag writes one [Name "value"] line.
func writeTag(w io.Writer, name, value string) {
	fmt.Fprintf(w, "[%s %q]\n", name, value)
}

// OutputSummary writes the outcome counts as aligned text.
func OutputSummary(s *Summary, w io.Writer) {
	fmt.Fprintf(w, "games:       %d\n", s.Games)
	fmt.Fprintf(w, "checkmates:  %d (white %d, black %d)\n", s.Checkmates, s.WhiteWins, s.BlackWins)
	fmt.Fprintf(w, "stalemates:  %d\n", s.Stalemates)
	fmt.Fprintf(w, "unfinished:  %d\n", s.Unfinished)
	fmt.Fprintf(w, "duplicates:  %d\n", s.Duplicates)
	fmt.Fprintf(w, "violations:  %d\n", s.Violations)
	fmt.Fprintf(w, "avg plies:   %.1f\n", s.AveragePlies())
}
