package config

import (
	"fmt"

	"github.com/lgbarn/chessctrl-go/internal/errors"
	"github.com/lgbarn/chessctrl-go/internal/search"
)

// MaxSearchDepth bounds the lookahead; the search is exponential in depth.
const MaxSearchDepth = 4

// SearchConfig holds settings for the automated opponent's search.
type SearchConfig struct {
	// Depth is the lookahead depth (1 = grab the best capture)
	Depth int

	// Symmetric makes both sides consume depth on every ply
	Symmetric bool

	// SafeRoot filters top-level moves that would expose the own king
	SafeRoot bool
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{Depth: search.DefaultDepth}
}

// Options converts the settings for the search package.
func (c *SearchConfig) Options() search.Options {
	return search.Options{Depth: c.Depth, Symmetric: c.Symmetric, SafeRoot: c.SafeRoot}
}

// Validate checks the search settings.
func (c *SearchConfig) Validate() error {
	if c.Depth < 1 || c.Depth > MaxSearchDepth {
		return fmt.Errorf("search depth %d out of range 1-%d: %w", c.Depth, MaxSearchDepth, errors.ErrInvalidConfig)
	}
	return nil
}
