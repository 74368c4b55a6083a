package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessctrl-go/internal/chess"
	"github.com/lgbarn/chessctrl-go/internal/config"
	"github.com/lgbarn/chessctrl-go/internal/engine"
	"github.com/lgbarn/chessctrl-go/internal/opponent"
	"github.com/lgbarn/chessctrl-go/internal/output"
	"github.com/lgbarn/chessctrl-go/internal/search"
)

// session is one interactive game driven by line commands.
type session struct {
	cfg      *config.Config
	game     *engine.Game
	searcher *search.Searcher
	computer *opponent.Computer // nil when both sides are human
}

func newSession(cfg *config.Config) (*session, error) {
	s := &session{cfg: cfg, searcher: search.New(cfg.Search.Options())}

	fen := cfg.Play.StartFEN
	if fen == "" {
		fen = engine.InitialFEN
	}
	status := output.NewStatusWriter(cfg, func() *chess.Board { return s.game.Board() })
	game, err := engine.NewGameFromFEN(fen, engine.WithNotifier(status))
	if err != nil {
		return nil, fmt.Errorf("start position: %w", err)
	}
	s.game = game

	if cfg.Play.Computer {
		s.computer = opponent.New(game, s.searcher, cfg.Play.ComputerColour)
		s.computer.LogFile = cfg.LogFile
		s.computer.Verbosity = cfg.Verbosity
	}
	return s, nil
}

// runPlay runs an interactive game reading commands from in until quit,
// end of input or cancellation.
func runPlay(ctx context.Context, cfg *config.Config, in io.Reader) error {
	s, err := newSession(cfg)
	if err != nil {
		return err
	}
	return s.run(ctx, in)
}

// run returns nil on quit or cancellation, even while waiting for input.
func (s *session) run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.computerTurn(ctx)

	lines, errc := readLines(ctx, in)
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return <-errc
			}
			if quit := s.handle(ctx, line); quit {
				return nil
			}
		}
	}
}

// handle executes one command line. It returns true when the user quits.
func (s *session) handle(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return true
	case "board":
		output.RenderBoard(s.cfg.OutputFile, s.game.Board(), s.cfg.Output.ASCII) //nolint:errcheck // console output
	case "fen":
		fmt.Fprintln(s.cfg.OutputFile, s.game.FEN())
	case "reset":
		s.game.Reset()
		s.computerTurn(ctx)
	case "hint":
		s.hint(ctx)
	case "moves":
		s.listMoves(fields[1:])
	default:
		from, to, ok := parseMoveArgs(fields)
		if !ok {
			fmt.Fprintf(s.cfg.LogFile, "Unknown command %q\n", line)
			return false
		}
		// Rejections are reported by the status writer.
		if _, err := s.game.SubmitMove(from, to); err == nil {
			s.computerTurn(ctx)
		}
	}
	return false
}

// parseMoveArgs accepts "E2 E4" or "e2e4". Coordinates are upper-cased;
// anything else about them is left for the game to judge.
func parseMoveArgs(fields []string) (from, to string, ok bool) {
	switch {
	case len(fields) == 2:
		return strings.ToUpper(fields[0]), strings.ToUpper(fields[1]), true
	case len(fields) == 1 && len(fields[0]) == 4:
		move := strings.ToUpper(fields[0])
		return move[:2], move[2:], true
	default:
		return "", "", false
	}
}

// computerTurn lets the computer move if it is its turn.
func (s *session) computerTurn(ctx context.Context) {
	if s.computer == nil || !s.computer.ToMove() {
		return
	}
	_, played, err := s.computer.Play(ctx)
	switch {
	case err != nil:
		s.cfg.Logf(1, "%v could not move: %v\n", s.computer.Colour(), err)
	case !played:
		s.cfg.Logf(1, "%v has no move\n", s.computer.Colour())
	}
}

func (s *session) hint(ctx context.Context) {
	if s.game.HasEnded() {
		fmt.Fprintln(s.cfg.OutputFile, "The game has ended.")
		return
	}
	res, found := s.searcher.FindMove(ctx, s.game.Board(), s.game.Turn())
	if !found {
		fmt.Fprintln(s.cfg.OutputFile, "No move available.")
		return
	}
	fmt.Fprintf(s.cfg.OutputFile, "Hint: %v\n", res.Move())
}

func (s *session) listMoves(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.cfg.LogFile, "usage: moves <square>")
		return
	}
	from, err := chess.ParseSquare(strings.ToUpper(args[0]))
	if err != nil {
		fmt.Fprintf(s.cfg.LogFile, "Invalid square: %v\n", err)
		return
	}

	dests := s.game.LegalDestinations(from)
	if len(dests) == 0 {
		fmt.Fprintf(s.cfg.OutputFile, "%v: no legal moves\n", from)
		return
	}
	names := make([]string, len(dests))
	for i, sq := range dests {
		names[i] = sq.String()
	}
	fmt.Fprintf(s.cfg.OutputFile, "%v: %s\n", from, strings.Join(names, " "))
}
