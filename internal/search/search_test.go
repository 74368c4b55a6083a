package search

import (
	"context"
	"testing"

	"github.com/lgbarn/chessctrl-go/internal/chess"
	"github.com/lgbarn/chessctrl-go/internal/testutil"
)

// protectedRook offers the white queen a rook guarded by a pawn and a loose
// pawn on A4.
func protectedRook(t *testing.T) *chess.Board {
	return testutil.MustBoard(t, map[string]chess.Piece{
		"D1": chess.W(chess.Queen),
		"D5": chess.B(chess.Rook),
		"E6": chess.B(chess.Pawn),
		"A4": chess.B(chess.Pawn),
	})
}

func TestNew_Defaults(t *testing.T) {
	testutil.AssertEqual(t, New(Options{}).Options(), Options{Depth: DefaultDepth})
	testutil.AssertEqual(t, DefaultOptions(), Options{Depth: 2})
}

func TestFindMove(t *testing.T) {
	tests := []struct {
		name         string
		opts         Options
		wantFrom     string
		wantTo       string
		wantScore    int
		wantCaptured chess.Piece
	}{
		{
			name:         "one ply grabs the rook",
			opts:         Options{Depth: 1},
			wantFrom:     "D1",
			wantTo:       "D5",
			wantScore:    10,
			wantCaptured: chess.B(chess.Rook),
		},
		{
			name:         "two plies take the loose pawn",
			opts:         DefaultOptions(),
			wantFrom:     "D1",
			wantTo:       "A4",
			wantScore:    1,
			wantCaptured: chess.B(chess.Pawn),
		},
		{
			name:         "symmetric depth two sees the same reply",
			opts:         Options{Depth: 2, Symmetric: true},
			wantFrom:     "D1",
			wantTo:       "A4",
			wantScore:    1,
			wantCaptured: chess.B(chess.Pawn),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := New(tt.opts).FindMove(context.Background(), protectedRook(t), chess.White)
			testutil.AssertTrue(t, found)
			testutil.AssertEqual(t, got.From, chess.MustParseSquare(tt.wantFrom))
			testutil.AssertEqual(t, got.To, chess.MustParseSquare(tt.wantTo))
			testutil.AssertEqual(t, got.Score, tt.wantScore)
			testutil.AssertEqual(t, got.Captured, tt.wantCaptured)
			testutil.AssertTrue(t, got.Nodes > 0)
		})
	}
}

func TestFindMove_TieKeepsFirst(t *testing.T) {
	board := testutil.MustBoard(t, map[string]chess.Piece{
		"E1": chess.W(chess.King),
		"A8": chess.B(chess.King),
	})

	got, found := New(Options{Depth: 1}).FindMove(context.Background(), board, chess.White)
	testutil.AssertTrue(t, found)
	testutil.AssertEqual(t, got.Move(), chess.Move{From: chess.Sq('E', '1'), To: chess.Sq('D', '2')})
	testutil.AssertEqual(t, got.Score, 0)
	testutil.AssertTrue(t, got.Captured.IsEmpty())
	testutil.AssertEqual(t, got.Nodes, 5)
}

func TestFindMove_SafeRoot(t *testing.T) {
	pinned := func() *chess.Board {
		return testutil.MustBoard(t, map[string]chess.Piece{
			"E1": chess.W(chess.King),
			"E2": chess.W(chess.Bishop),
			"E8": chess.B(chess.Rook),
			"A8": chess.B(chess.King),
		})
	}

	got, _ := New(Options{Depth: 1}).FindMove(context.Background(), pinned(), chess.White)
	testutil.AssertEqual(t, got.Move(), chess.Move{From: chess.Sq('E', '2'), To: chess.Sq('A', '6')})

	got, _ = New(Options{Depth: 1, SafeRoot: true}).FindMove(context.Background(), pinned(), chess.White)
	testutil.AssertEqual(t, got.Move(), chess.Move{From: chess.Sq('E', '1'), To: chess.Sq('D', '2')})
}

func TestFindMove_NoPieces(t *testing.T) {
	board := testutil.MustBoard(t, map[string]chess.Piece{"E1": chess.W(chess.King)})

	_, found := New(DefaultOptions()).FindMove(context.Background(), board, chess.Black)
	testutil.AssertFalse(t, found)
}

func TestFindMove_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, found := New(DefaultOptions()).FindMove(ctx, chess.NewInitialBoard(), chess.White)
	testutil.AssertFalse(t, found)
	testutil.AssertEqual(t, got.Nodes, 0)
}

func TestFindMove_LeavesBoardUntouched(t *testing.T) {
	board := chess.NewInitialBoard()

	got, found := New(DefaultOptions()).FindMove(context.Background(), board, chess.White)
	testutil.AssertTrue(t, found)
	testutil.AssertBoardEqual(t, board, chess.NewInitialBoard())

	// Black always has a reply that loses nothing.
	testutil.AssertEqual(t, got.Score, 0)
}

func BenchmarkFindMove_Initial(b *testing.B) {
	s := New(DefaultOptions())
	board := chess.NewInitialBoard()
	for i := 0; i < b.N; i++ {
		s.FindMove(context.Background(), board, chess.White)
	}
}
