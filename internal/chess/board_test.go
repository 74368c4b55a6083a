package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chessctrl-go/internal/errors"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    Square
		wantErr error
	}{
		{"corner A1", "A1", Sq('A', '1'), nil},
		{"corner H8", "H8", Sq('H', '8'), nil},
		{"centre", "E4", Sq('E', '4'), nil},
		{"empty", "", Square{}, chesserrors.ErrInvalidFileRank},
		{"too short", "E", Square{}, chesserrors.ErrInvalidFileRank},
		{"too long", "E44", Square{}, chesserrors.ErrInvalidFileRank},
		{"file past H", "I4", Square{}, chesserrors.ErrOffBoard},
		{"rank zero", "A0", Square{}, chesserrors.ErrOffBoard},
		{"rank nine", "A9", Square{}, chesserrors.ErrOffBoard},
		{"lower case file", "e4", Square{}, chesserrors.ErrOffBoard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSquare(tt.text)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseSquare(%q) error = %v, want %v", tt.text, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSquare(%q) unexpected error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestAllSquaresOrder(t *testing.T) {
	squares := AllSquares()
	if len(squares) != 64 {
		t.Fatalf("len(AllSquares()) = %d, want 64", len(squares))
	}
	if squares[0] != Sq('A', '8') || squares[7] != Sq('H', '8') || squares[8] != Sq('A', '7') {
		t.Errorf("AllSquares() starts %v %v %v, want A8 H8 A7", squares[0], squares[7], squares[8])
	}
	if squares[63] != Sq('H', '1') {
		t.Errorf("AllSquares()[63] = %v, want H1", squares[63])
	}
}

func TestNewInitialBoard(t *testing.T) {
	b := NewInitialBoard()

	if b.Len() != 32 {
		t.Errorf("Len() = %d, want 32", b.Len())
	}

	checks := []struct {
		sq   string
		want Piece
	}{
		{"E1", W(King)},
		{"D1", W(Queen)},
		{"A1", W(Rook)},
		{"B1", W(Knight)},
		{"C1", W(Bishop)},
		{"E2", W(Pawn)},
		{"E8", B(King)},
		{"D8", B(Queen)},
		{"H7", B(Pawn)},
	}
	for _, c := range checks {
		got, ok := b.Get(MustParseSquare(c.sq))
		if !ok || got != c.want {
			t.Errorf("Get(%s) = %v, %v; want %v", c.sq, got, ok, c.want)
		}
	}

	if _, ok := b.Get(Sq('E', '4')); ok {
		t.Error("E4 should be empty in the initial position")
	}
	for _, colour := range []Colour{White, Black} {
		if n := b.Count(King, colour); n != 1 {
			t.Errorf("Count(King, %v) = %d, want 1", colour, n)
		}
		if n := b.Count(Pawn, colour); n != 8 {
			t.Errorf("Count(Pawn, %v) = %d, want 8", colour, n)
		}
	}
}

func TestBoardSetNeverStoresEmpty(t *testing.T) {
	b := NewBoard()
	sq := Sq('D', '4')
	b.Set(sq, W(Queen))
	b.Set(sq, NoPiece)

	if b.Occupied(sq) {
		t.Error("setting the placeholder should leave the square empty")
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
}

func TestBoardCloneIndependence(t *testing.T) {
	orig := NewInitialBoard()
	clone := orig.Clone()

	if !orig.Equal(clone) {
		t.Fatal("clone should equal the original")
	}

	// Mutate the clone: move a pawn and clear its first-move flag.
	p, _ := clone.Remove(Sq('E', '2'))
	p.FirstMove = false
	clone.Set(Sq('E', '4'), p)

	if got, ok := orig.Get(Sq('E', '2')); !ok || !got.FirstMove {
		t.Errorf("original E2 = %v, %v; want unmoved white pawn", got, ok)
	}
	if orig.Occupied(Sq('E', '4')) {
		t.Error("original E4 should still be empty")
	}
	if orig.Equal(clone) {
		t.Error("original and mutated clone should differ")
	}
}

func TestSquaresOf(t *testing.T) {
	b := NewBoard()
	b.Set(Sq('H', '1'), W(King))
	b.Set(Sq('A', '8'), W(Rook))
	b.Set(Sq('C', '3'), W(Knight))
	b.Set(Sq('D', '5'), B(King))

	got := b.SquaresOf(White)
	want := []Square{Sq('A', '8'), Sq('C', '3'), Sq('H', '1')}
	if len(got) != len(want) {
		t.Fatalf("SquaresOf(White) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SquaresOf(White)[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if sq, ok := b.KingSquare(Black); !ok || sq != Sq('D', '5') {
		t.Errorf("KingSquare(Black) = %v, %v; want D5", sq, ok)
	}
}

func TestPieceAttributes(t *testing.T) {
	tests := []struct {
		piece  Piece
		name   string
		score  int
		isKing bool
	}{
		{W(Pawn), "White's Pawn", 1, false},
		{B(Knight), "Black's Knight", 10, false},
		{W(Bishop), "White's Bishop", 10, false},
		{B(Rook), "Black's Rook", 10, false},
		{W(Queen), "White's Queen", 100, false},
		{B(King), "Black's King", 1000, true},
		{NoPiece, "", 0, false},
	}

	for _, tt := range tests {
		if got := tt.piece.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if got := tt.piece.Score(); got != tt.score {
			t.Errorf("%q Score() = %d, want %d", tt.name, got, tt.score)
		}
		if got := tt.piece.IsKing(); got != tt.isKing {
			t.Errorf("%q IsKing() = %v, want %v", tt.name, got, tt.isKing)
		}
	}
}

func TestMoveUCI(t *testing.T) {
	m := Move{From: Sq('E', '2'), To: Sq('E', '4')}
	if got := m.UCI(); got != "e2e4" {
		t.Errorf("UCI() = %q, want e2e4", got)
	}
	if got := m.String(); got != "E2-E4" {
		t.Errorf("String() = %q, want E2-E4", got)
	}
}
