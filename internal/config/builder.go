package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithMoves includes move lists in reports.
func (b *ConfigBuilder) WithMoves(enabled bool) *ConfigBuilder {
	b.cfg.Output.IncludeMoves = enabled
	return b
}

// WithGames sets the number of self-play games.
func (b *ConfigBuilder) WithGames(n int) *ConfigBuilder {
	b.cfg.SelfPlay.Games = n
	return b
}

// WithWorkers sets the number of self-play workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.SelfPlay.Workers = n
	return b
}

// WithMaxPlies sets the per-game ply limit.
func (b *ConfigBuilder) WithMaxPlies(n int) *ConfigBuilder {
	b.cfg.SelfPlay.MaxPlies = n
	return b
}

// WithSeed sets the base random seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.SelfPlay.Seed = seed
	return b
}

// WithColour sets the console colour mode.
func (b *ConfigBuilder) WithColour(mode ColourMode) *ConfigBuilder {
	b.cfg.Console.Colour = mode
	return b
}

// WithHistoryFile sets the console history file.
func (b *ConfigBuilder) WithHistoryFile(path string) *ConfigBuilder {
	b.cfg.Console.HistoryFile = path
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
