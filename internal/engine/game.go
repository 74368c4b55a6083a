package engine

import (
	"github.com/lgbarn/chessctrl-go/internal/chess"
	"github.com/lgbarn/chessctrl-go/internal/errors"
)

// Game is the rules engine driving one game: it owns the authoritative
// board, whose turn it is and whether the game has ended.
//
// A Game is not safe for concurrent use; callers serialize access.
type Game struct {
	board   *chess.Board
	turn    chess.Colour
	inCheck bool
	ended   bool
	outcome Outcome
	winner  chess.Colour
	history []Record

	notifier   Notifier
	startBoard *chess.Board
	startTurn  chess.Colour
}

// Option configures a Game.
type Option func(*Game)

// WithNotifier routes status updates to n.
func WithNotifier(n Notifier) Option {
	return func(g *Game) {
		if n != nil {
			g.notifier = n
		}
	}
}

// NewGame creates a game in the standard starting position with White to move.
func NewGame(opts ...Option) *Game {
	g, _ := NewGameFromPosition(chess.NewInitialBoard(), chess.White, opts...)
	return g
}

// NewGameFromFEN creates a game starting from the given FEN position.
// The position must hold exactly one king per colour.
func NewGameFromFEN(fen string, opts ...Option) (*Game, error) {
	board, turn, err := NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return NewGameFromPosition(board, turn, opts...)
}

// NewGameFromPosition creates a game from a board and the side to move.
// The board is cloned, pawn first-move flags included.
func NewGameFromPosition(board *chess.Board, turn chess.Colour, opts ...Option) (*Game, error) {
	if err := validatePosition(board); err != nil {
		return nil, err
	}

	g := &Game{notifier: NopNotifier{}, startBoard: board.Clone(), startTurn: turn}
	for _, opt := range opts {
		opt(g)
	}
	g.restart(g.startBoard.Clone(), turn)
	return g, nil
}

// Reset returns the game to the position it was created with.
func (g *Game) Reset() {
	g.restart(g.startBoard.Clone(), g.startTurn)
}

func (g *Game) restart(board *chess.Board, turn chess.Colour) {
	g.board = board
	g.turn = turn
	g.ended = false
	g.outcome = Ongoing
	g.history = nil

	// A loaded position may already be decided.
	g.inCheck, g.outcome = evaluatePosition(board, turn)
	if g.outcome != Ongoing {
		g.ended = true
		g.winner = turn.Opposite()
	}
	g.notifier.GameStarted()
}

// SubmitMove validates and, if legal, commits the move from -> to for the
// side in turn. Coordinates are two-character strings such as "E2".
//
// Validation order, first failure wins: game ended, coordinates, empty
// source, turn ownership, piece pattern, own king safety. A rejected move
// leaves the game untouched, is reported to the notifier and is returned as
// a *errors.MoveError.
func (g *Game) SubmitMove(from, to string) (Record, error) {
	if g.ended {
		return Record{}, g.reject(errors.GameHasEnded, chess.NoPiece, from, to)
	}

	if len(from) != 2 || len(to) != 2 {
		return Record{}, g.reject(errors.InvalidFileRank, chess.NoPiece, from, to)
	}
	fromSq, toSq := chess.Sq(from[0], from[1]), chess.Sq(to[0], to[1])
	if !fromSq.Valid() {
		return Record{}, g.reject(errors.SourceOutOfBound, chess.NoPiece, from, to)
	}
	if !toSq.Valid() {
		return Record{}, g.reject(errors.DestOutOfBound, chess.NoPiece, from, to)
	}

	piece, ok := g.board.Get(fromSq)
	if !ok {
		return Record{}, g.reject(errors.MovedEmptyPiece, chess.NoPiece, from, from)
	}
	if piece.Colour != g.turn {
		return Record{}, g.reject(errors.NotOwnerTurn, piece, from, from)
	}

	if kind := PieceLegalPattern(g.board, piece, fromSq, toSq); kind != errors.NoError {
		return Record{}, g.reject(kind, piece, from, to)
	}

	if !keepsKingSafe(g.board, fromSq, toSq, piece.Colour) {
		return Record{}, g.reject(errors.AllowKingInCheck, piece, from, to)
	}

	rec := g.commit(fromSq, toSq)
	g.notifier.MoveMade(rec)
	return rec, nil
}

func (g *Game) reject(kind errors.Kind, piece chess.Piece, from, to string) *errors.MoveError {
	err := &errors.MoveError{Kind: kind, Piece: piece.String(), From: from, To: to}
	g.notifier.InvalidMove(err)
	return err
}

// commit plays a validated move on the authoritative board, evaluates the
// opponent's position and hands the turn over.
func (g *Game) commit(from, to chess.Square) Record {
	g.inCheck = false
	mover, captured := confirmMove(g.board, from, to)

	opponent := g.turn.Opposite()
	g.inCheck, g.outcome = evaluatePosition(g.board, opponent)
	if g.outcome != Ongoing {
		g.ended = true
		g.winner = g.turn
	}

	rec := Record{
		Piece:    mover,
		From:     from,
		To:       to,
		Captured: captured,
		Check:    g.inCheck,
		Outcome:  g.outcome,
	}
	g.history = append(g.history, rec)
	g.turn = opponent
	return rec
}

// Turn returns the side to move. After a game-ending move it is the side
// that was mated or stalemated.
func (g *Game) Turn() chess.Colour { return g.turn }

// HasEnded returns true once checkmate or stalemate has been reached.
func (g *Game) HasEnded() bool { return g.ended }

// InCheck returns true if the side to move is in check.
func (g *Game) InCheck() bool { return g.inCheck }

// Outcome returns how the game finished, or Ongoing.
func (g *Game) Outcome() Outcome { return g.outcome }

// Winner returns the checkmating side. ok is false unless the game ended
// in checkmate.
func (g *Game) Winner() (chess.Colour, bool) {
	return g.winner, g.outcome == Checkmate
}

// OccupantAt returns the piece on sq, if any.
func (g *Game) OccupantAt(sq chess.Square) (chess.Piece, bool) {
	return g.board.Get(sq)
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board { return g.board.Clone() }

// FEN returns the current position in FEN notation.
func (g *Game) FEN() string { return BoardToFEN(g.board, g.turn) }

// History returns the committed moves in order.
func (g *Game) History() []Record {
	return append([]Record(nil), g.history...)
}

// LegalDestinations lists the squares the piece on from may legally move to
// right now. It is empty when the game has ended or the piece is not the
// side to move's.
func (g *Game) LegalDestinations(from chess.Square) []chess.Square {
	if g.ended {
		return nil
	}
	piece, ok := g.board.Get(from)
	if !ok || piece.Colour != g.turn {
		return nil
	}
	return LegalDestinations(g.board, from)
}
