package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessrules-go/internal/config"
)

// GameWriter is the interface for writing game records to output.
// Different implementations handle different output formats (text, JSON).
type GameWriter interface {
	// WriteGame writes a single game record.
	WriteGame(rec *GameRecord) error

	// WriteSummary writes the outcome counts. Batch writers emit it on Close.
	WriteSummary(s *Summary) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewGameWriter returns the writer selected by cfg.Output.JSONFormat.
func NewGameWriter(w io.Writer, cfg *config.Config) GameWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes records as tag pairs and move text.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteGame writes a record immediately.
func (tw *TextWriter) WriteGame(rec *GameRecord) error {
	OutputGame(rec, tw.cfg, tw.w)
	return nil
}

// WriteSummary writes the summary immediately.
func (tw *TextWriter) WriteSummary(s *Summary) error {
	OutputSummary(s, tw.w)
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes records in JSON format.
// It buffers records and writes them as a JSON document on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	cfg     *config.Config
	games   []*GameRecord
	summary *Summary
	single  bool // If true, write each record immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches records and writes them as one document on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:     w,
		cfg:   cfg,
		games: make([]*GameRecord, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each record
// immediately as one JSON value per line.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteGame buffers a record for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(rec *GameRecord) error {
	if jw.single {
		return json.NewEncoder(jw.w).Encode(GameToJSON(rec, jw.cfg))
	}
	jw.games = append(jw.games, rec)
	return nil
}

// WriteSummary records the summary; in single mode it is written at once.
func (jw *JSONWriter) WriteSummary(s *Summary) error {
	if jw.single {
		return json.NewEncoder(jw.w).Encode(SummaryToJSON(s))
	}
	jw.summary = s
	return nil
}

// Flush writes all buffered records as a JSON document.
func (jw *JSONWriter) Flush() error {
	if jw.single || (len(jw.games) == 0 && jw.summary == nil) {
		return nil
	}

	err := OutputGamesJSON(jw.games, jw.summary, jw.cfg, jw.w)

	jw.games = jw.games[:0]
	jw.summary = nil
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
