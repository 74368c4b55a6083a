package chess

// Board is a sparse mapping from squares to the pieces standing on them.
// Empty squares are absent from the map; the Empty placeholder is never stored.
// The board owns its pieces by value, so Clone is a structural deep copy.
type Board struct {
	squares map[Square]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{squares: make(map[Square]Piece, 32)}
}

// NewInitialBoard creates a board set up in the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition clears the board and places the 32 starting pieces.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for i, kind := range backRank {
		file := byte(MinFile + i)
		b.Set(Sq(file, '1'), W(kind))
		b.Set(Sq(file, WhitePawnRank), W(Pawn))
		b.Set(Sq(file, BlackPawnRank), B(Pawn))
		b.Set(Sq(file, '8'), B(kind))
	}
}

// Clear removes every piece.
func (b *Board) Clear() {
	b.squares = make(map[Square]Piece, 32)
}

// Get returns the piece on sq and whether the square is occupied.
func (b *Board) Get(sq Square) (Piece, bool) {
	p, ok := b.squares[sq]
	return p, ok
}

// Occupied returns true if a piece stands on sq.
func (b *Board) Occupied(sq Square) bool {
	_, ok := b.squares[sq]
	return ok
}

// Set places a piece on sq, replacing any occupant.
// Placing the Empty placeholder removes the occupant instead.
func (b *Board) Set(sq Square, p Piece) {
	if p.IsEmpty() {
		delete(b.squares, sq)
		return
	}
	b.squares[sq] = p
}

// Remove clears sq and returns the former occupant, if any.
func (b *Board) Remove(sq Square) (Piece, bool) {
	p, ok := b.squares[sq]
	if ok {
		delete(b.squares, sq)
	}
	return p, ok
}

// Len returns the number of pieces on the board.
func (b *Board) Len() int {
	return len(b.squares)
}

// Clone creates a deep copy of the board.
func (b *Board) Clone() *Board {
	clone := &Board{squares: make(map[Square]Piece, len(b.squares))}
	for sq, p := range b.squares {
		clone.squares[sq] = p
	}
	return clone
}

// SquaresOf returns the squares occupied by colour, rank-descending then
// file-ascending.
func (b *Board) SquaresOf(colour Colour) []Square {
	var squares []Square
	for _, sq := range AllSquares() {
		if p, ok := b.squares[sq]; ok && p.Colour == colour {
			squares = append(squares, sq)
		}
	}
	return squares
}

// KingSquare locates the king of the given colour.
func (b *Board) KingSquare(colour Colour) (Square, bool) {
	for sq, p := range b.squares {
		if p.IsKing() && p.Colour == colour {
			return sq, true
		}
	}
	return Square{}, false
}

// Count returns how many pieces of the given kind and colour are on the board.
func (b *Board) Count(kind Kind, colour Colour) int {
	n := 0
	for _, p := range b.squares {
		if p.Kind == kind && p.Colour == colour {
			n++
		}
	}
	return n
}

// Material returns the summed piece scores for colour.
func (b *Board) Material(colour Colour) int {
	total := 0
	for _, p := range b.squares {
		if p.Colour == colour {
			total += p.Score()
		}
	}
	return total
}

// Equal reports whether both boards hold the same pieces on the same squares.
func (b *Board) Equal(other *Board) bool {
	if len(b.squares) != len(other.squares) {
		return false
	}
	for sq, p := range b.squares {
		if q, ok := other.squares[sq]; !ok || q != p {
			return false
		}
	}
	return true
}
