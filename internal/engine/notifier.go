package engine

import (
	"github.com/lgbarn/chessctrl-go/internal/chess"
	"github.com/lgbarn/chessctrl-go/internal/errors"
)

// Record describes one committed move.
type Record struct {
	Piece    chess.Piece
	From     chess.Square
	To       chess.Square
	Captured chess.Piece // NoPiece when nothing was taken
	Check    bool        // opponent is in check after the move
	Outcome  Outcome
}

// Move returns the from/to pair of the record.
func (r Record) Move() chess.Move {
	return chess.Move{From: r.From, To: r.To}
}

// IsCapture returns true if the move took a piece.
func (r Record) IsCapture() bool {
	return !r.Captured.IsEmpty()
}

// Notifier receives status updates from a Game.
// Calls are made synchronously from SubmitMove and Reset.
type Notifier interface {
	GameStarted()
	MoveMade(rec Record)
	InvalidMove(err *errors.MoveError)
}

// NopNotifier discards every notification.
type NopNotifier struct{}

func (NopNotifier) GameStarted()                  {}
func (NopNotifier) MoveMade(Record)               {}
func (NopNotifier) InvalidMove(*errors.MoveError) {}
