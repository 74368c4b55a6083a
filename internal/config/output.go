package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output for batch analysis
	JSONFormat bool

	// JSONLines writes one JSON object per position as it is collected
	// instead of a single document at the end
	JSONLines bool

	// ShowBoard prints the board after every move, not only at game end
	ShowBoard bool

	// ASCII renders pieces as FEN letters instead of Unicode glyphs
	ASCII bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{}
}
