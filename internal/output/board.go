// Package output provides status lines, board rendering and analysis output.
package output

import (
	"io"
	"strings"

	"github.com/lgbarn/chessctrl-go/internal/chess"
)

const (
	boardSeparator = "  +--+--+--+--+--+--+--+--+"
	boardFooter    = "    A  B  C  D  E  F  G  H"
)

// FormatBoard renders the board as text, rank 8 at the top. Each square is
// the piece's Unicode glyph (or FEN letter when ascii is set) followed by a
// space; empty squares are two spaces.
func FormatBoard(board *chess.Board, ascii bool) string {
	var sb strings.Builder

	sb.WriteString(boardSeparator)
	sb.WriteByte('\n')
	for rank := byte(chess.MaxRank); rank >= chess.MinRank; rank-- {
		sb.WriteByte(rank)
		sb.WriteByte(' ')
		for file := byte(chess.MinFile); file <= chess.MaxFile; file++ {
			sb.WriteByte('|')
			piece, ok := board.Get(chess.Sq(file, rank))
			switch {
			case !ok:
				sb.WriteString("  ")
			case ascii:
				sb.WriteByte(piece.FENLetter())
				sb.WriteByte(' ')
			default:
				sb.WriteString(piece.Glyph())
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("|\n")
		sb.WriteString(boardSeparator)
		sb.WriteByte('\n')
	}
	sb.WriteString(boardFooter)
	sb.WriteByte('\n')
	return sb.String()
}

// RenderBoard writes FormatBoard's output to w.
func RenderBoard(w io.Writer, board *chess.Board, ascii bool) error {
	_, err := io.WriteString(w, FormatBoard(board, ascii))
	return err
}
