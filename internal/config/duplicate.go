package config

import (
	"fmt"

	"github.com/lgbarn/chessctrl-go/internal/errors"
)

// DuplicateConfig holds settings for duplicate position detection in batch
// analysis.
type DuplicateConfig struct {
	// Suppress skips positions already seen earlier in the input
	Suppress bool

	// MaxCapacity bounds the remembered positions (0 = unlimited)
	MaxCapacity int
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}

// Validate checks the duplicate settings.
func (c *DuplicateConfig) Validate() error {
	if c.MaxCapacity < 0 {
		return fmt.Errorf("duplicate capacity must not be negative, got %d: %w", c.MaxCapacity, errors.ErrInvalidConfig)
	}
	return nil
}
