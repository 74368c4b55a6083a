package engine

import "github.com/lgbarn/chessctrl-go/internal/chess"

// Outcome describes whether and how a game has finished.
type Outcome int

const (
	Ongoing Outcome = iota
	Checkmate
	Stalemate
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "Ongoing"
	}
}

// IsCheckmate returns true if colour is in check with no legal move.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return IsInCheck(board, colour) && !PlayerHasAnyLegalMove(board, colour)
}

// IsStalemate returns true if colour is not in check but has no legal move.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return !IsInCheck(board, colour) && !PlayerHasAnyLegalMove(board, colour)
}

// evaluatePosition classifies colour's position: whether its king is in check
// and whether the game is over for it.
func evaluatePosition(board *chess.Board, colour chess.Colour) (inCheck bool, outcome Outcome) {
	inCheck = !KingIsSafeFromRivalry(board, colour)
	if PlayerHasAnyLegalMove(board, colour) {
		return inCheck, Ongoing
	}
	if inCheck {
		return true, Checkmate
	}
	return false, Stalemate
}
