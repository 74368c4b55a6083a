package engine

import (
	"sort"
	"strings"
	"testing"

	refchess "github.com/corentings/chess/v2"

	"github.com/lgbarn/chessctrl-go/internal/chess"
	"github.com/lgbarn/chessctrl-go/internal/testutil"
)

// Lines avoid castling, en passant and promotion, which this engine does
// not play.
var referenceLines = map[string]string{
	"italian":   "e2e4 e7e5 g1f3 b8c6 f1c4 g8f6 d2d3 f8c5 c2c3 d7d6 b1d2 a7a6 c4b3 c5a7",
	"sicilian":  "e2e4 c7c5 g1f3 d7d6 d2d4 c5d4 f3d4 g8f6 b1c3 a7a6 c1e3 e7e5 d4b3 c8e6",
	"queens":    "d2d4 d7d5 c2c4 e7e6 b1c3 g8f6 c1g5 f8e7 e2e3 b8d7 g1f3 h7h6 g5h4 c7c6",
	"checks":    "e2e4 e7e5 d1h5 b8c6 f1c4 g7g6 h5f3 g8f6 f3b3 d8e7 c4f7 e8d8",
	"foolsmate": "f2f3 e7e5 g2g4 d8h4",
}

// referenceMoves returns the reference engine's legal moves as sorted
// "E2E4" strings, without castling or en passant.
func referenceMoves(pos *refchess.Position) []string {
	var moves []string
	seen := make(map[string]bool)
	for _, m := range pos.ValidMoves() {
		if m.HasTag(refchess.KingSideCastle) || m.HasTag(refchess.QueenSideCastle) || m.HasTag(refchess.EnPassant) {
			continue
		}
		key := strings.ToUpper(m.S1().String() + m.S2().String())
		if !seen[key] {
			seen[key] = true
			moves = append(moves, key)
		}
	}
	sort.Strings(moves)
	return moves
}

func engineMoves(g *Game) []string {
	var moves []string
	for _, m := range LegalMoves(g.board, g.Turn()) {
		moves = append(moves, m.From.String()+m.To.String())
	}
	sort.Strings(moves)
	return moves
}

func TestLegalMoves_MatchReference(t *testing.T) {
	for name, line := range referenceLines {
		t.Run(name, func(t *testing.T) {
			ref := refchess.NewGame()
			g := NewGame()

			for ply, uci := range strings.Fields(line) {
				testutil.AssertEqual(t, engineMoves(g), referenceMoves(ref.Position()), "ply %d before %s", ply, uci)

				move, err := refchess.UCINotation{}.Decode(ref.Position(), uci)
				if err != nil {
					t.Fatalf("reference rejected %s: %v", uci, err)
				}
				if err := ref.Move(move, nil); err != nil {
					t.Fatalf("reference move %s: %v", uci, err)
				}

				from, to := strings.ToUpper(uci[:2]), strings.ToUpper(uci[2:4])
				if _, err := g.SubmitMove(from, to); err != nil {
					t.Fatalf("SubmitMove(%s, %s) error = %v", from, to, err)
				}
			}

			switch ref.Position().Status() {
			case refchess.Checkmate:
				testutil.AssertEqual(t, g.Outcome(), Checkmate)
			case refchess.Stalemate:
				testutil.AssertEqual(t, g.Outcome(), Stalemate)
			default:
				testutil.AssertEqual(t, g.Outcome(), Ongoing)
				testutil.AssertEqual(t, engineMoves(g), referenceMoves(ref.Position()), "final position")
			}
		})
	}
}

func TestKingIsSafeFromRivalry_MatchesReference(t *testing.T) {
	ref := refchess.NewGame()
	g := NewGame()

	for _, uci := range strings.Fields(referenceLines["checks"]) {
		move, err := refchess.UCINotation{}.Decode(ref.Position(), uci)
		if err != nil {
			t.Fatalf("reference rejected %s: %v", uci, err)
		}
		if err := ref.Move(move, nil); err != nil {
			t.Fatalf("reference move %s: %v", uci, err)
		}
		rec, err := g.SubmitMove(strings.ToUpper(uci[:2]), strings.ToUpper(uci[2:4]))
		testutil.AssertNoError(t, err)

		testutil.AssertEqual(t, rec.Check, move.HasTag(refchess.Check), "check after %s", uci)
		testutil.AssertEqual(t, IsInCheck(g.board, g.Turn()), rec.Check)
		testutil.AssertEqual(t, g.Turn() == chess.White, ref.Position().Turn() == refchess.White)
	}
}
