package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessctrl-go/internal/chess"
	"github.com/lgbarn/chessctrl-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// ConvertFENCharToKind converts a FEN character to a piece kind.
func ConvertFENCharToKind(c byte) chess.Kind {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// NewBoardFromFEN creates a board and the side to move from a FEN string.
// Only the placement and side-to-move fields are interpreted; castling,
// en-passant and clock fields are accepted and ignored. Pawns standing on
// their home rank get their first-move privilege back.
func NewBoardFromFEN(fen string) (*chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, chess.White, err
	}

	turn, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.White, err
	}
	return board, turn, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	for i, row := range ranks {
		rank := byte(chess.MaxRank - i)
		file := byte(chess.MinFile)
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += c - '0'
				if file > chess.MaxFile+1 {
					return fmt.Errorf("rank %c overflows: %w", rank, errors.ErrInvalidFEN)
				}
				continue
			}
			kind := ConvertFENCharToKind(c)
			if kind == chess.Empty {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if file > chess.MaxFile {
				return fmt.Errorf("rank %c overflows: %w", rank, errors.ErrInvalidFEN)
			}

			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			piece := chess.NewPiece(kind, colour)
			if kind == chess.Pawn {
				piece.FirstMove = rank == pawnHomeRank(colour)
			}
			board.Set(chess.Sq(file, rank), piece)
			file++
		}
		if file != chess.MaxFile+1 {
			return fmt.Errorf("rank %c has %d files: %w", rank, int(file-chess.MinFile), errors.ErrInvalidFEN)
		}
	}
	return nil
}

func pawnHomeRank(colour chess.Colour) byte {
	if colour == chess.White {
		return chess.WhitePawnRank
	}
	return chess.BlackPawnRank
}

// parseSideToMove parses the side to move field. A missing field means White.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// BoardToFEN converts a board and side to move to a FEN string.
// Castling and en-passant are never available, so those fields are "-".
func BoardToFEN(board *chess.Board, turn chess.Colour) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if turn == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteString(" - - 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := byte(chess.MaxRank); rank >= chess.MinRank; rank-- {
		emptyCount := 0
		for file := byte(chess.MinFile); file <= chess.MaxFile; file++ {
			piece, ok := board.Get(chess.Sq(file, rank))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FENLetter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > chess.MinRank {
			sb.WriteByte('/')
		}
	}
}
