package chess

// Piece is a coloured piece together with its first-move flag.
// Pieces are values: copying one yields an independent piece.
type Piece struct {
	Kind   Kind
	Colour Colour

	// FirstMove is true until the piece's first committed move.
	// Only the pawn's double advance consults it.
	FirstMove bool
}

// NoPiece is the placeholder used when no real piece is implicated.
var NoPiece = Piece{Kind: Empty, Colour: White}

// NewPiece creates a piece that has not moved yet.
func NewPiece(kind Kind, colour Colour) Piece {
	return Piece{Kind: kind, Colour: colour, FirstMove: true}
}

// W creates an unmoved white piece.
func W(kind Kind) Piece {
	return NewPiece(kind, White)
}

// B creates an unmoved black piece.
func B(kind Kind) Piece {
	return NewPiece(kind, Black)
}

// IsEmpty returns true for the placeholder piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// IsKing returns true only for kings.
func (p Piece) IsKing() bool {
	return p.Kind == King
}

// Score returns the material value of the piece.
func (p Piece) Score() int {
	return p.Kind.Score()
}

// IsFriendly returns true if both pieces belong to the same player.
func (p Piece) IsFriendly(other Piece) bool {
	return p.Colour == other.Colour
}

// String returns the display name, e.g. "White's Pawn". The placeholder is "".
func (p Piece) String() string {
	if p.IsEmpty() {
		return ""
	}
	return p.Colour.Possessive() + " " + p.Kind.String()
}

var (
	whiteGlyphs = [...]string{" ", "♙", "♘", "♗", "♖", "♕", "♔"}
	blackGlyphs = [...]string{" ", "♟", "♞", "♝", "♜", "♛", "♚"}
)

// Glyph returns the Unicode chess symbol for the piece.
func (p Piece) Glyph() string {
	if p.Kind < Empty || p.Kind > King {
		return "?"
	}
	if p.Colour == White {
		return whiteGlyphs[p.Kind]
	}
	return blackGlyphs[p.Kind]
}

// FENLetter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) FENLetter() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black && letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return letter
}
