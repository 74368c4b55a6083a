package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessctrl-go/internal/chess"
)

// MustBoard builds a board from a square -> piece placement such as
// {"E1": chess.W(chess.King)}. It calls t.Fatal on a malformed square.
func MustBoard(t testing.TB, placement map[string]chess.Piece) *chess.Board {
	t.Helper()
	board := chess.NewBoard()
	for text, piece := range placement {
		sq, err := chess.ParseSquare(text)
		if err != nil {
			t.Fatalf("MustBoard: %v", err)
		}
		board.Set(sq, piece)
	}
	return board
}

// Squares parses a list of coordinates, panicking on a malformed one.
func Squares(texts ...string) []chess.Square {
	squares := make([]chess.Square, 0, len(texts))
	for _, text := range texts {
		squares = append(squares, chess.MustParseSquare(text))
	}
	return squares
}

// BoardDiff returns a human-readable diff of two boards, or "" if they hold
// the same pieces on the same squares.
func BoardDiff(want, got *chess.Board) string {
	return cmp.Diff(want, got, cmp.AllowUnexported(chess.Board{}))
}

// AssertBoardEqual fails if the boards differ.
func AssertBoardEqual(t *testing.T, got, want *chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := BoardDiff(want, got); diff != "" {
		report(t, "board mismatch (-want +got):\n"+diff, msgAndArgs...)
	}
}
