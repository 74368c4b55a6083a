// Package chess provides core chess types: colours, pieces, squares and the board.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Possessive returns the colour in possessive form, e.g. "White's".
func (c Colour) Possessive() string {
	return c.String() + "'s"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (pawn direction in ranks).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// Kind represents a chess piece type.
type Kind int

const (
	Empty Kind = iota // Placeholder, never stored on a board
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindNames = [...]string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// String returns the string representation of a kind.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Score returns the material value used by the automated opponent.
func (k Kind) Score() int {
	switch k {
	case Pawn:
		return 1
	case Knight, Bishop, Rook:
		return 10
	case Queen:
		return 100
	case King:
		return 1000
	default:
		return 0
	}
}

// Board dimensions and coordinate bounds.
const (
	BoardSize = 8

	MinFile = 'A'
	MaxFile = MinFile + BoardSize - 1
	MinRank = '1'
	MaxRank = MinRank + BoardSize - 1

	WhitePawnRank = '2'
	BlackPawnRank = '7'
)
