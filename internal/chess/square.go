package chess

import (
	"fmt"

	"github.com/lgbarn/chessctrl-go/internal/errors"
)

// Square is a (file, rank) coordinate such as E2.
type Square struct {
	File byte // 'A'..'H'
	Rank byte // '1'..'8'
}

// Sq builds a square from its file and rank characters without validation.
func Sq(file, rank byte) Square {
	return Square{File: file, Rank: rank}
}

// ParseSquare validates a two-character coordinate.
// A string of the wrong length yields ErrInvalidFileRank; a file outside
// A-H or a rank outside 1-8 yields ErrOffBoard.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidFileRank)
	}
	sq := Square{File: text[0], Rank: text[1]}
	if !sq.Valid() {
		return Square{}, fmt.Errorf("%q: %w", text, errors.ErrOffBoard)
	}
	return sq, nil
}

// MustParseSquare is like ParseSquare but panics on error.
// Intended for constants and tests.
func MustParseSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.File >= MinFile && s.File <= MaxFile &&
		s.Rank >= MinRank && s.Rank <= MaxRank
}

// String returns the coordinate, e.g. "E2".
func (s Square) String() string {
	return string([]byte{s.File, s.Rank})
}

// Offset returns the square df files and dr ranks away.
// The result may be off the board; check Valid.
func (s Square) Offset(df, dr int) Square {
	return Square{File: byte(int(s.File) + df), Rank: byte(int(s.Rank) + dr)}
}

// AllSquares returns the 64 squares rank-descending, file-ascending
// (A8, B8, ... H8, A7, ... H1).
func AllSquares() []Square {
	squares := make([]Square, 0, BoardSize*BoardSize)
	for rank := byte(MaxRank); rank >= MinRank; rank-- {
		for file := byte(MinFile); file <= MaxFile; file++ {
			squares = append(squares, Square{File: file, Rank: rank})
		}
	}
	return squares
}
