// Package engine provides chess move validation and the rules engine that
// drives a game: submission pipeline, commits, check and game-end detection.
package engine

import (
	"github.com/lgbarn/chessctrl-go/internal/chess"
	"github.com/lgbarn/chessctrl-go/internal/errors"
)

// IsLegalPattern checks whether the piece on `from` may move to `to` by its
// own movement rules, ignoring whose turn it is and king safety.
// An empty source square yields MovedEmptyPiece.
func IsLegalPattern(board *chess.Board, from, to chess.Square) errors.Kind {
	piece, ok := board.Get(from)
	if !ok {
		return errors.MovedEmptyPiece
	}
	return PieceLegalPattern(board, piece, from, to)
}

// PieceLegalPattern checks the movement rules of piece as if it stood on from.
// Error precedence: DestEqSource, geometry, obstruction, friendly at dest.
func PieceLegalPattern(board *chess.Board, piece chess.Piece, from, to chess.Square) errors.Kind {
	switch piece.Kind {
	case chess.Pawn:
		return pawnPattern(board, piece, from, to)
	case chess.Knight:
		return knightPattern(board, piece, from, to)
	case chess.Bishop:
		return bishopPattern(board, piece, from, to)
	case chess.Rook:
		return rookPattern(board, piece, from, to)
	case chess.Queen:
		return queenPattern(board, piece, from, to)
	case chess.King:
		return kingPattern(board, piece, from, to)
	default:
		return errors.MovedEmptyPiece
	}
}

func knightPattern(board *chess.Board, piece chess.Piece, from, to chess.Square) errors.Kind {
	if from == to {
		return errors.DestEqSource
	}
	if abs(fileDelta(from, to))*abs(rankDelta(from, to)) != 2 {
		return errors.IllegalMovePattern
	}
	if destHasFriendly(board, to, piece.Colour) {
		return errors.FriendlyAtDest
	}
	return errors.NoError
}

func bishopPattern(board *chess.Board, piece chess.Piece, from, to chess.Square) errors.Kind {
	if from == to {
		return errors.DestEqSource
	}
	if !sameDiagonal(from, to) {
		return errors.IllegalMovePattern
	}
	if !noObstructionDiagonal(board, from, to) {
		return errors.ObstructionEnRoute
	}
	if destHasFriendly(board, to, piece.Colour) {
		return errors.FriendlyAtDest
	}
	return errors.NoError
}

func rookPattern(board *chess.Board, piece chess.Piece, from, to chess.Square) errors.Kind {
	if from == to {
		return errors.DestEqSource
	}
	if !sameFile(from, to) && !sameRank(from, to) {
		return errors.IllegalMovePattern
	}
	if !straightClear(board, from, to) {
		return errors.ObstructionEnRoute
	}
	if destHasFriendly(board, to, piece.Colour) {
		return errors.FriendlyAtDest
	}
	return errors.NoError
}

func queenPattern(board *chess.Board, piece chess.Piece, from, to chess.Square) errors.Kind {
	if from == to {
		return errors.DestEqSource
	}
	switch {
	case sameFile(from, to) || sameRank(from, to):
		if !straightClear(board, from, to) {
			return errors.ObstructionEnRoute
		}
	case sameDiagonal(from, to):
		if !noObstructionDiagonal(board, from, to) {
			return errors.ObstructionEnRoute
		}
	default:
		return errors.IllegalMovePattern
	}
	if destHasFriendly(board, to, piece.Colour) {
		return errors.FriendlyAtDest
	}
	return errors.NoError
}

func kingPattern(board *chess.Board, piece chess.Piece, from, to chess.Square) errors.Kind {
	if from == to {
		return errors.DestEqSource
	}
	if max(abs(fileDelta(from, to)), abs(rankDelta(from, to))) != 1 {
		return errors.IllegalMovePattern
	}
	if destHasFriendly(board, to, piece.Colour) {
		return errors.FriendlyAtDest
	}
	return errors.NoError
}

// straightClear dispatches to the vertical or horizontal obstruction scan.
// Callers guarantee from and to share a file or a rank.
func straightClear(board *chess.Board, from, to chess.Square) bool {
	if sameFile(from, to) {
		return noObstructionVertical(board, from, to)
	}
	return noObstructionHorizontal(board, from, to)
}
