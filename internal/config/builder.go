package config

import (
	"io"

	"github.com/lgbarn/chessctrl-go/internal/chess"
)

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

// Build validates and returns the built Config.
func (b *ConfigBuilder) Build() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithSearchDepth sets the search depth.
func (b *ConfigBuilder) WithSearchDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithSymmetricSearch makes both sides consume depth.
func (b *ConfigBuilder) WithSymmetricSearch(enabled bool) *ConfigBuilder {
	b.cfg.Search.Symmetric = enabled
	return b
}

// WithSafeRoot enables king-safety filtering of the computer's moves.
func (b *ConfigBuilder) WithSafeRoot(enabled bool) *ConfigBuilder {
	b.cfg.Search.SafeRoot = enabled
	return b
}

// WithComputer enables or disables the automated opponent and sets its side.
func (b *ConfigBuilder) WithComputer(enabled bool, colour chess.Colour) *ConfigBuilder {
	b.cfg.Play.Computer = enabled
	b.cfg.Play.ComputerColour = colour
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Play.StartFEN = fen
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithJSONLines writes JSON output one object per line.
func (b *ConfigBuilder) WithJSONLines(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONLines = enabled
	return b
}

// WithShowBoard prints the board after every move.
func (b *ConfigBuilder) WithShowBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithASCII renders the board with letters instead of glyphs.
func (b *ConfigBuilder) WithASCII(enabled bool) *ConfigBuilder {
	b.cfg.Output.ASCII = enabled
	return b
}

// WithWorkers sets the number of batch analysis workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithSuppressDuplicates skips repeated positions in batch analysis.
func (b *ConfigBuilder) WithSuppressDuplicates(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	return b
}

// WithDuplicateCapacity bounds the positions remembered for duplicate detection.
func (b *ConfigBuilder) WithDuplicateCapacity(n int) *ConfigBuilder {
	b.cfg.Duplicate.MaxCapacity = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
