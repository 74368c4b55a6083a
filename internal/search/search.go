// Package search implements the automated opponent's move choice: a shallow,
// material-only greedy lookahead over pattern-legal moves.
//
// A candidate's score is the value of the piece it captures minus the best
// score the other side can reach in reply. Candidates are visited in board
// order (rank 8 to 1, file A to H, for both the moving piece and its
// destination) and a later candidate replaces the best only when it scores
// strictly higher.
package search

import (
	"context"

	"github.com/lgbarn/chessctrl-go/internal/chess"
	"github.com/lgbarn/chessctrl-go/internal/engine"
)

// DefaultDepth is the lookahead depth used by the automated opponent.
const DefaultDepth = 2

// Options controls the shape of the search.
type Options struct {
	// Depth bounds the recursion. 1 is a one-ply capture grab.
	Depth int

	// Symmetric makes both sides decrement the depth on every recursion.
	// By default the searching side keeps the depth when handing over to
	// the opponent and only the opponent's reply consumes a level.
	Symmetric bool

	// SafeRoot drops top-level candidates that leave the searcher's own king
	// attackable. Deeper plies never check king safety.
	SafeRoot bool
}

// DefaultOptions returns the options the automated opponent plays with.
func DefaultOptions() Options {
	return Options{Depth: DefaultDepth}
}

// Result is the move chosen by a search.
type Result struct {
	From     chess.Square
	To       chess.Square
	Score    int
	Captured chess.Piece // NoPiece for a quiet move
	Nodes    int         // candidates evaluated, all plies
}

// Move returns the from/to pair of the result.
func (r Result) Move() chess.Move {
	return chess.Move{From: r.From, To: r.To}
}

// Searcher picks moves for a side. It holds no per-search state and may be
// shared between goroutines.
type Searcher struct {
	opts Options
}

// New creates a Searcher. A non-positive depth falls back to DefaultDepth.
func New(opts Options) *Searcher {
	if opts.Depth <= 0 {
		opts.Depth = DefaultDepth
	}
	return &Searcher{opts: opts}
}

// Options returns the searcher's effective options.
func (s *Searcher) Options() Options {
	return s.opts
}

// FindMove searches board for side's best move. The board is never
// modified; lookahead works on clones.
//
// found is false when side has no candidate move, or when ctx was cancelled
// before the first candidate was scored. On cancellation the best candidate
// seen so far is returned.
func (s *Searcher) FindMove(ctx context.Context, board *chess.Board, side chess.Colour) (Result, bool) {
	var nodes int
	best, found := s.search(ctx, board, side, s.opts.Depth, true, true, &nodes)
	best.Nodes = nodes
	return best, found
}

// search scores every candidate of side on board. searcher is true when
// side is the colour FindMove was called for; root only for the top call.
func (s *Searcher) search(ctx context.Context, board *chess.Board, side chess.Colour, depth int, searcher, root bool, nodes *int) (Result, bool) {
	var best Result
	found := false

	for _, from := range board.SquaresOf(side) {
		if ctx.Err() != nil {
			return best, found
		}

		dests := engine.PatternDestinations(board, from)
		if root && s.opts.SafeRoot {
			dests = engine.LegalDestinations(board, from)
		}

		for _, to := range dests {
			if ctx.Err() != nil {
				return best, found
			}
			*nodes++

			captured, ok := board.Get(to)
			if !ok {
				captured = chess.NoPiece
			}
			score := captured.Score()

			if next, recurse := s.nextDepth(depth, searcher); recurse {
				clone := board.Clone()
				engine.TryMove(clone, from, to)
				if reply, ok := s.search(ctx, clone, side.Opposite(), next, !searcher, false, nodes); ok {
					score -= reply.Score
				}
			}

			if !found || score > best.Score {
				best = Result{From: from, To: to, Score: score, Captured: captured}
				found = true
			}
		}
	}
	return best, found
}

// nextDepth decides whether a candidate at depth recurses into the other
// side, and with which depth.
func (s *Searcher) nextDepth(depth int, searcher bool) (int, bool) {
	switch {
	case s.opts.Symmetric:
		return depth - 1, depth > 0
	case searcher:
		return depth, depth-1 > 0
	default:
		return depth - 1, true
	}
}
