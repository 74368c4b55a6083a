package output

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessctrl-go/internal/chess"
	"github.com/lgbarn/chessctrl-go/internal/config"
	"github.com/lgbarn/chessctrl-go/internal/engine"
	"github.com/lgbarn/chessctrl-go/internal/errors"
)

// OpeningMessage is printed whenever a game (re)starts.
const OpeningMessage = "Let the game begin..."

// FormatStatus describes a committed move, e.g.
// "White's Queen moves from A7 to G7, Check! Checkmate! Black loses."
func FormatStatus(rec engine.Record) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s moves from %s to %s", rec.Piece, rec.From, rec.To)
	if rec.IsCapture() {
		sb.WriteString(" taking ")
		sb.WriteString(rec.Captured.String())
	}
	if rec.Check {
		sb.WriteString(", Check!")
	}
	switch rec.Outcome {
	case engine.Checkmate:
		fmt.Fprintf(&sb, " Checkmate! %s loses.", rec.Piece.Colour.Opposite())
	case engine.Stalemate:
		sb.WriteString(" Stalemate.")
	}
	return sb.String()
}

// StatusWriter is an engine.Notifier that prints status lines to
// cfg.OutputFile and rejections to cfg.LogFile.
type StatusWriter struct {
	cfg   *config.Config
	board func() *chess.Board
}

// NewStatusWriter creates a status writer. board supplies the position to
// render after a game-ending move (or every move with Output.ShowBoard);
// it may be nil to never render.
func NewStatusWriter(cfg *config.Config, board func() *chess.Board) *StatusWriter {
	return &StatusWriter{cfg: cfg, board: board}
}

// GameStarted prints the opening message.
func (s *StatusWriter) GameStarted() {
	fmt.Fprintln(s.cfg.OutputFile, OpeningMessage)
}

// MoveMade prints the move's status line and, when the game is over, the
// final board.
func (s *StatusWriter) MoveMade(rec engine.Record) {
	fmt.Fprintln(s.cfg.OutputFile, FormatStatus(rec))
	if s.board != nil && (rec.Outcome != engine.Ongoing || s.cfg.Output.ShowBoard) {
		RenderBoard(s.cfg.OutputFile, s.board(), s.cfg.Output.ASCII) //nolint:errcheck // best-effort console output
	}
}

// InvalidMove reports a rejected submission.
func (s *StatusWriter) InvalidMove(err *errors.MoveError) {
	fmt.Fprintf(s.cfg.LogFile, "Invalid move: %v\n", err)
}
