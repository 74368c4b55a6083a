package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessctrl-go/internal/chess"
	"github.com/lgbarn/chessctrl-go/internal/errors"
)

// PlayConfig holds settings for an interactive game.
type PlayConfig struct {
	// Computer enables the automated opponent
	Computer bool

	// ComputerColour is the side the automated opponent plays
	ComputerColour chess.Colour

	// StartFEN is the starting position; empty means the standard one
	StartFEN string
}

// NewPlayConfig creates a PlayConfig with default values.
func NewPlayConfig() *PlayConfig {
	return &PlayConfig{
		Computer:       true,
		ComputerColour: chess.Black,
	}
}

// Validate checks the play settings.
func (c *PlayConfig) Validate() error {
	if c.ComputerColour != chess.White && c.ComputerColour != chess.Black {
		return fmt.Errorf("computer colour %d: %w", int(c.ComputerColour), errors.ErrInvalidConfig)
	}
	return nil
}

// ParseColour accepts "white"/"w" or "black"/"b", in any case.
func ParseColour(s string) (chess.Colour, error) {
	switch strings.ToLower(s) {
	case "white", "w":
		return chess.White, nil
	case "black", "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("unknown colour %q: %w", s, errors.ErrInvalidConfig)
	}
}
