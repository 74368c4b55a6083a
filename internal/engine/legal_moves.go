package engine

import (
	"github.com/lgbarn/chessctrl-go/internal/chess"
	"github.com/lgbarn/chessctrl-go/internal/errors"
)

// PlayerHasAnyLegalMove returns true if the given colour has at least one
// pattern-legal move that keeps its own king safe.
func PlayerHasAnyLegalMove(board *chess.Board, colour chess.Colour) bool {
	for _, from := range board.SquaresOf(colour) {
		for _, to := range chess.AllSquares() {
			if IsLegalPattern(board, from, to) != errors.NoError {
				continue
			}
			if keepsKingSafe(board, from, to, colour) {
				return true
			}
		}
	}
	return false
}

// PatternDestinations lists every square the piece on from may reach by its
// movement rules alone, rank-descending then file-ascending.
func PatternDestinations(board *chess.Board, from chess.Square) []chess.Square {
	var dests []chess.Square
	for _, to := range chess.AllSquares() {
		if IsLegalPattern(board, from, to) == errors.NoError {
			dests = append(dests, to)
		}
	}
	return dests
}

// LegalDestinations is PatternDestinations filtered to moves that keep the
// mover's king safe.
func LegalDestinations(board *chess.Board, from chess.Square) []chess.Square {
	piece, ok := board.Get(from)
	if !ok {
		return nil
	}
	var dests []chess.Square
	for _, to := range PatternDestinations(board, from) {
		if keepsKingSafe(board, from, to, piece.Colour) {
			dests = append(dests, to)
		}
	}
	return dests
}

// PatternMoves lists every pattern-legal move of the given colour.
func PatternMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, from := range board.SquaresOf(colour) {
		for _, to := range PatternDestinations(board, from) {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	return moves
}

// LegalMoves lists every move of the given colour that the submission
// pipeline would accept, ignoring turn order.
func LegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, m := range PatternMoves(board, colour) {
		if keepsKingSafe(board, m.From, m.To, colour) {
			moves = append(moves, m)
		}
	}
	return moves
}

// keepsKingSafe plays the move on a clone and checks colour's king there.
func keepsKingSafe(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	clone, _ := applyOnClone(board, from, to)
	return KingIsSafeFromRivalry(clone, colour)
}
