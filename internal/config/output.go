package config

// OutputConfig holds settings related to report output.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// IncludeMoves lists every move of each game in the report
	IncludeMoves bool

	// IncludeFEN adds the final position of each game
	IncludeFEN bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		IncludeFEN: true,
	}
}
