package engine

import (
	"github.com/lgbarn/chessctrl-go/internal/chess"
	"github.com/lgbarn/chessctrl-go/internal/errors"
)

// pawnPattern validates a pawn move.
//
// Straight ahead: one rank onto an empty square, or two ranks on the pawn's
// first move with the intermediate square empty. Any occupant of the
// destination blocks the move: a friendly one yields FriendlyAtDest, a rival
// one PawnIllegalCapturePattern.
//
// Diagonal: exactly one rank ahead into an adjacent file, and only onto a
// rival piece.
func pawnPattern(board *chess.Board, pawn chess.Piece, from, to chess.Square) errors.Kind {
	if from == to {
		return errors.DestEqSource
	}

	advance := rankDelta(from, to) * pawn.Colour.Forward()

	if sameFile(from, to) {
		switch advance {
		case 2:
			if !pawn.FirstMove {
				return errors.IllegalMovePattern
			}
			if !noObstructionVertical(board, from, to) {
				return errors.ObstructionEnRoute
			}
		case 1:
		default:
			return errors.IllegalMovePattern
		}

		if occupant, ok := board.Get(to); ok {
			if occupant.IsFriendly(pawn) {
				return errors.FriendlyAtDest
			}
			return errors.PawnIllegalCapturePattern
		}
		return errors.NoError
	}

	if advance != 1 || abs(fileDelta(from, to)) != 1 {
		return errors.IllegalMovePattern
	}
	occupant, ok := board.Get(to)
	if !ok || occupant.IsFriendly(pawn) {
		return errors.IllegalMovePattern
	}
	return errors.NoError
}
