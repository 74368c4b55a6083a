package engine

import "github.com/lgbarn/chessctrl-go/internal/chess"

// TryMove moves the piece on from to to without any validation.
// If to was occupied the occupant is returned as captured and replaced in
// place by the mover; otherwise the mover is inserted fresh. The source square
// is cleared in both cases. ok is false, and the board untouched, when from
// is empty.
func TryMove(board *chess.Board, from, to chess.Square) (captured chess.Piece, ok bool) {
	mover, ok := board.Remove(from)
	if !ok {
		return chess.NoPiece, false
	}
	captured, found := board.Remove(to)
	if !found {
		captured = chess.NoPiece
	}
	board.Set(to, mover)
	return captured, true
}

// confirmMove commits a move on the authoritative board: like TryMove, and
// additionally clears the mover's first-move flag for good.
func confirmMove(board *chess.Board, from, to chess.Square) (mover, captured chess.Piece) {
	mover, _ = board.Get(from)
	captured, _ = TryMove(board, from, to)
	mover.FirstMove = false
	board.Set(to, mover)
	return mover, captured
}

// applyOnClone returns a copy of board with the move applied, leaving board
// itself untouched.
func applyOnClone(board *chess.Board, from, to chess.Square) (*chess.Board, chess.Piece) {
	clone := board.Clone()
	captured, _ := TryMove(clone, from, to)
	return clone, captured
}
