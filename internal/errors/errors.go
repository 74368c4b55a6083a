// Package errors provides the move-rejection taxonomy and error types for chessctrl.
// Every rejected move maps to exactly one Kind, and every Kind has a sentinel
// error so callers can use errors.Is() on wrapped values.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies the outcome of validating a move.
type Kind int

const (
	NoError Kind = iota
	GameHasEnded
	InvalidFileRank
	SourceOutOfBound
	DestOutOfBound
	MovedEmptyPiece
	NotOwnerTurn
	DestEqSource
	IllegalMovePattern
	ObstructionEnRoute
	FriendlyAtDest
	PawnIllegalCapturePattern
	AllowKingInCheck
)

// Sentinel errors, one per rejecting Kind.
var (
	ErrGameHasEnded              = errors.New("game has already ended")
	ErrInvalidFileRank           = errors.New("invalid file and rank")
	ErrSourceOutOfBound          = errors.New("source square is off the board")
	ErrDestOutOfBound            = errors.New("destination square is off the board")
	ErrMovedEmptyPiece           = errors.New("no piece on source square")
	ErrNotOwnerTurn              = errors.New("piece does not belong to the player in turn")
	ErrDestEqSource              = errors.New("destination equals source")
	ErrIllegalMovePattern        = errors.New("illegal move pattern")
	ErrObstructionEnRoute        = errors.New("obstruction en route")
	ErrFriendlyAtDest            = errors.New("friendly piece at destination")
	ErrPawnIllegalCapturePattern = errors.New("pawn cannot capture straight ahead")
	ErrAllowKingInCheck          = errors.New("move leaves own king in check")
)

// Other sentinel errors.
var (
	// ErrOffBoard indicates a well-formed square outside A-H / 1-8.
	ErrOffBoard = errors.New("square is off the board")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidPosition indicates a position the engine cannot play from,
	// such as a side without exactly one king.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

var kindNames = [...]string{
	"NoError",
	"GameHasEnded",
	"InvalidFileRank",
	"SourceOutOfBound",
	"DestOutOfBound",
	"MovedEmptyPiece",
	"NotOwnerTurn",
	"DestEqSource",
	"IllegalMovePattern",
	"ObstructionEnRoute",
	"FriendlyAtDest",
	"PawnIllegalCapturePattern",
	"AllowKingInCheck",
}

var kindErrs = [...]error{
	nil,
	ErrGameHasEnded,
	ErrInvalidFileRank,
	ErrSourceOutOfBound,
	ErrDestOutOfBound,
	ErrMovedEmptyPiece,
	ErrNotOwnerTurn,
	ErrDestEqSource,
	ErrIllegalMovePattern,
	ErrObstructionEnRoute,
	ErrFriendlyAtDest,
	ErrPawnIllegalCapturePattern,
	ErrAllowKingInCheck,
}

// String returns the name of the kind.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Err returns the sentinel error for the kind, or nil for NoError.
func (k Kind) Err() error {
	if k >= 0 && int(k) < len(kindErrs) {
		return kindErrs[k]
	}
	return nil
}

// KindOf returns the Kind whose sentinel err wraps, or NoError if none does.
func KindOf(err error) Kind {
	if err == nil {
		return NoError
	}
	for k := GameHasEnded; int(k) < len(kindErrs); k++ {
		if errors.Is(err, kindErrs[k]) {
			return k
		}
	}
	return NoError
}

// MoveError describes a rejected move submission. Piece is the display name
// of the implicated piece, empty when no real piece is involved.
type MoveError struct {
	Kind  Kind
	Piece string
	From  string
	To    string
}

// Error returns a formatted message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}
	switch {
	case e.From != "" && e.To != "" && e.From != e.To:
		parts = append(parts, fmt.Sprintf("%s to %s", e.From, e.To))
	case e.From != "":
		parts = append(parts, "at "+e.From)
	}

	var msg string
	if err := e.Kind.Err(); err != nil {
		msg = err.Error()
	} else {
		msg = e.Kind.String()
	}

	if len(parts) == 0 {
		return msg
	}
	return fmt.Sprintf("%s: %s", strings.Join(parts, " "), msg)
}

// Unwrap returns the sentinel error for the kind, enabling errors.Is().
func (e *MoveError) Unwrap() error {
	return e.Kind.Err()
}

// ParseError represents a parsing error with file location context.
// It is used for FEN lines read from position files.
type ParseError struct {
	Err  error  // The underlying error
	File string // Source file name
	Line int    // Line number (1-based)
	Got  string // The offending text
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" {
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
		}
		parts = append(parts, loc)
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
