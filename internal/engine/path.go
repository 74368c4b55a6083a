package engine

import "github.com/lgbarn/chessctrl-go/internal/chess"

// fileDelta returns the signed file distance from a to b.
func fileDelta(a, b chess.Square) int {
	return int(b.File) - int(a.File)
}

// rankDelta returns the signed rank distance from a to b.
func rankDelta(a, b chess.Square) int {
	return int(b.Rank) - int(a.Rank)
}

func sameFile(a, b chess.Square) bool {
	return a.File == b.File
}

func sameRank(a, b chess.Square) bool {
	return a.Rank == b.Rank
}

// sameDiagonal is true when |Δfile| == |Δrank|.
func sameDiagonal(a, b chess.Square) bool {
	return abs(fileDelta(a, b)) == abs(rankDelta(a, b))
}

// noObstructionVertical checks that every square strictly between from and
// to on their shared file is empty.
func noObstructionVertical(board *chess.Board, from, to chess.Square) bool {
	return isPathClear(board, from, to, 0, sign(rankDelta(from, to)))
}

// noObstructionHorizontal checks the squares strictly between from and to on
// their shared rank.
func noObstructionHorizontal(board *chess.Board, from, to chess.Square) bool {
	return isPathClear(board, from, to, sign(fileDelta(from, to)), 0)
}

// noObstructionDiagonal walks file and rank in lockstep, respecting the
// slope sign, and checks the squares strictly between from and to.
func noObstructionDiagonal(board *chess.Board, from, to chess.Square) bool {
	return isPathClear(board, from, to, sign(fileDelta(from, to)), sign(rankDelta(from, to)))
}

// isPathClear steps from `from` towards `to` by (df, dr), both ends exclusive.
func isPathClear(board *chess.Board, from, to chess.Square, df, dr int) bool {
	if df == 0 && dr == 0 {
		return true
	}
	for sq := from.Offset(df, dr); sq != to && sq.Valid(); sq = sq.Offset(df, dr) {
		if board.Occupied(sq) {
			return false
		}
	}
	return true
}

// destHasFriendly reports whether dest holds a piece of the given colour.
// An empty destination is a normal "not found" outcome.
func destHasFriendly(board *chess.Board, dest chess.Square, colour chess.Colour) bool {
	p, ok := board.Get(dest)
	return ok && p.Colour == colour
}
