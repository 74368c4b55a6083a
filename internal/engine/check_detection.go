package engine

import (
	"fmt"

	"github.com/lgbarn/chessctrl-go/internal/chess"
	"github.com/lgbarn/chessctrl-go/internal/errors"
)

// KingIsSafeFromRivalry returns false iff some piece of the opposing colour
// has a legal pattern onto the king of the given colour.
//
// Every board reaching this function holds exactly one king per colour; a
// missing king is an internal invariant violation and panics.
func KingIsSafeFromRivalry(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := board.KingSquare(colour)
	if !ok {
		panic(fmt.Sprintf("engine: no %v king on board", colour))
	}
	return !isSquareAttacked(board, kingSq, colour.Opposite())
}

// IsInCheck returns true if the given colour's king is in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	return !KingIsSafeFromRivalry(board, colour)
}

// isSquareAttacked returns true if any piece of byColour has a legal pattern
// onto sq.
func isSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	for _, from := range board.SquaresOf(byColour) {
		if IsLegalPattern(board, from, sq) == errors.NoError {
			return true
		}
	}
	return false
}

// validatePosition checks that each side has exactly one king.
func validatePosition(board *chess.Board) error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := board.Count(chess.King, colour); n != 1 {
			return fmt.Errorf("%v has %d kings: %w", colour, n, errors.ErrInvalidPosition)
		}
	}
	return nil
}
