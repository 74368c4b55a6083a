// Package opponent drives the automated player: it searches the current
// position for the side it plays and submits the chosen move through the
// game's normal pipeline.
package opponent

import (
	"context"
	"fmt"
	"io"

	"github.com/lgbarn/chessctrl-go/internal/chess"
	"github.com/lgbarn/chessctrl-go/internal/engine"
	"github.com/lgbarn/chessctrl-go/internal/search"
)

// Computer plays one colour of a game.
type Computer struct {
	game     *engine.Game
	searcher *search.Searcher
	colour   chess.Colour

	// LogFile receives search summaries when Verbosity > 1.
	LogFile   io.Writer
	Verbosity int
}

// New creates a computer player for colour in game.
func New(game *engine.Game, searcher *search.Searcher, colour chess.Colour) *Computer {
	return &Computer{game: game, searcher: searcher, colour: colour, LogFile: io.Discard}
}

// Colour returns the side the computer plays.
func (c *Computer) Colour() chess.Colour {
	return c.colour
}

// ToMove returns true if the game is active and it is the computer's turn.
func (c *Computer) ToMove() bool {
	return !c.game.HasEnded() && c.game.Turn() == c.colour
}

// Play searches and submits a move if it is the computer's turn.
// played is false when it was not the computer's turn, or when the search
// found no move.
func (c *Computer) Play(ctx context.Context) (rec engine.Record, played bool, err error) {
	if !c.ToMove() {
		return engine.Record{}, false, nil
	}
	res, found := c.searcher.FindMove(ctx, c.game.Board(), c.colour)
	if !found {
		return engine.Record{}, false, ctx.Err()
	}
	rec, err = c.Commit(res)
	return rec, err == nil, err
}

// Think runs the search on a snapshot of the board in its own goroutine.
// The channel yields at most one result and is then closed; it is closed
// without a value when it is not the computer's turn or nothing was found.
// The caller applies the result with Commit on its own goroutine.
func (c *Computer) Think(ctx context.Context) <-chan search.Result {
	out := make(chan search.Result, 1)
	if !c.ToMove() {
		close(out)
		return out
	}

	board := c.game.Board()
	go func() {
		defer close(out)
		if res, found := c.searcher.FindMove(ctx, board, c.colour); found {
			out <- res
		}
	}()
	return out
}

// Commit submits a search result to the game.
func (c *Computer) Commit(res search.Result) (engine.Record, error) {
	if c.Verbosity > 1 {
		fmt.Fprintf(c.LogFile, "%v plays %v (score %d, %d nodes)\n", c.colour, res.Move(), res.Score, res.Nodes)
	}
	return c.game.SubmitMove(res.From.String(), res.To.String())
}
