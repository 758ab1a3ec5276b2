package config

import (
	"bytes"
	"errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/engine"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

// TestConfig_Defaults verifies NewConfig has sensible defaults
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.StartFEN != engine.InitialFEN {
		t.Errorf("StartFEN = %q, want the initial position", cfg.StartFEN)
	}
	if cfg.OutputFile == nil || cfg.LogFile == nil {
		t.Error("output streams should default to stdout and stderr")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

// TestSelfPlayConfig_Defaults verifies SelfPlayConfig has sensible defaults
func TestSelfPlayConfig_Defaults(t *testing.T) {
	cfg := NewSelfPlayConfig()

	if cfg.Games != 100 {
		t.Errorf("Games = %d, want 100", cfg.Games)
	}
	if cfg.Workers != 0 {
		t.Errorf("Workers = %d, want 0 (auto)", cfg.Workers)
	}
	if cfg.MaxPlies != 300 {
		t.Errorf("MaxPlies = %d, want 300", cfg.MaxPlies)
	}
	if !cfg.StopOnViolation {
		t.Error("StopOnViolation should be true by default")
	}
}

// TestConsoleConfig_Defaults verifies ConsoleConfig has sensible defaults
func TestConsoleConfig_Defaults(t *testing.T) {
	cfg := NewConsoleConfig()

	if cfg.Colour != ColourAuto {
		t.Errorf("Colour = %v, want auto", cfg.Colour)
	}
	if cfg.HistoryFile != "" {
		t.Errorf("HistoryFile = %q, want empty", cfg.HistoryFile)
	}
	if cfg.PromotionDefault != 'q' {
		t.Errorf("PromotionDefault = %q, want 'q'", cfg.PromotionDefault)
	}
	if !cfg.ShowBoard {
		t.Error("ShowBoard should be true by default")
	}
}

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.JSONFormat {
		t.Error("JSONFormat should be false by default")
	}
	if cfg.IncludeMoves {
		t.Error("IncludeMoves should be false by default")
	}
	if !cfg.IncludeFEN {
		t.Error("IncludeFEN should be true by default")
	}
}

// TestConfig_Validate verifies config validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"custom start", func(c *Config) { c.StartFEN = "4k3/8/8/8/8/8/8/4K3 w - - 0 1" }, false},
		{"bad start", func(c *Config) { c.StartFEN = "not a fen" }, true},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
		{"zero games", func(c *Config) { c.SelfPlay.Games = 0 }, true},
		{"negative workers", func(c *Config) { c.SelfPlay.Workers = -2 }, true},
		{"zero plies", func(c *Config) { c.SelfPlay.MaxPlies = 0 }, true},
		{"bad promotion default", func(c *Config) { c.Console.PromotionDefault = 'x' }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestParseColourMode verifies colour mode parsing
func TestParseColourMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ColourMode
		wantErr bool
	}{
		{"", ColourAuto, false},
		{"auto", ColourAuto, false},
		{"always", ColourAlways, false},
		{"NEVER", ColourNever, false},
		{"off", ColourNever, false},
		{"sometimes", ColourAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColourMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColourMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColourMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)
	cfg.SetLog(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
	if cfg.LogFile != buf {
		t.Error("SetLog did not set LogFile")
	}
}

// TestConfig_Logf verifies verbosity gating
func TestConfig_Logf(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfigBuilder().WithLog(&buf).WithVerbosity(1).Build()

	cfg.Logf(1, "summary %d\n", 1)
	cfg.Logf(2, "detail\n")

	if got := buf.String(); got != "summary 1\n" {
		t.Errorf("log = %q, want only the summary line", got)
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	cfg := NewConfigBuilder().
		WithGames(12).
		WithWorkers(3).
		WithMaxPlies(80).
		WithSeed(42).
		WithJSONOutput(true).
		WithMoves(true).
		WithColour(ColourNever).
		WithHistoryFile("/tmp/hist").
		WithStartFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
		Build()

	if cfg.SelfPlay.Games != 12 || cfg.SelfPlay.Workers != 3 || cfg.SelfPlay.MaxPlies != 80 || cfg.SelfPlay.Seed != 42 {
		t.Errorf("SelfPlay = %+v", cfg.SelfPlay)
	}
	if !cfg.Output.JSONFormat || !cfg.Output.IncludeMoves {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.Console.Colour != ColourNever || cfg.Console.HistoryFile != "/tmp/hist" {
		t.Errorf("Console = %+v", cfg.Console)
	}
	if cfg.StartFEN != "4k3/8/8/8/8/8/8/4K3 w - - 0 1" {
		t.Errorf("StartFEN = %q", cfg.StartFEN)
	}
}
