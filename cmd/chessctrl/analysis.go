package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/chessctrl-go/internal/config"
	"github.com/lgbarn/chessctrl-go/internal/engine"
	"github.com/lgbarn/chessctrl-go/internal/errors"
	"github.com/lgbarn/chessctrl-go/internal/hashing"
	"github.com/lgbarn/chessctrl-go/internal/output"
	"github.com/lgbarn/chessctrl-go/internal/search"
	"github.com/lgbarn/chessctrl-go/internal/worker"
)

// maxPoolBuffer caps the work and result channel buffers.
const maxPoolBuffer = 100

// runAnalysis suggests a move for every FEN line of the named file ("-" for stdin)
// and writes the results in input order.
func runAnalysis(ctx context.Context, cfg *config.Config, name string) error {
	var r io.Reader = os.Stdin
	if name == "-" {
		name = "stdin"
	} else {
		file, err := os.Open(name) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			return errors.Wrapf(err, "opening %s", name)
		}
		defer file.Close() //nolint:errcheck // read-only
		r = file
	}

	results, err := analysePositions(ctx, cfg, r, name)
	if err != nil {
		return err
	}

	w := output.NewAnalysisWriter(cfg.OutputFile, cfg)
	for _, res := range results {
		if err := w.WriteResult(res); err != nil {
			return err
		}
	}
	return w.Close()
}

// analysePositions reads positions on one goroutine, searches them on the
// worker pool and collects the results on another. Results are sorted by
// input order. Suggestions always keep the mover's king safe. On
// cancellation the pool is stopped, queued positions are dropped and the
// context's error is returned.
func analysePositions(ctx context.Context, cfg *config.Config, r io.Reader, name string) ([]worker.ProcessResult, error) {
	opts := cfg.Search.Options()
	opts.SafeRoot = true
	searcher := search.New(opts)

	numWorkers := cfg.Workers
	if numWorkers == 0 {
		numWorkers = runtime.NumCPU()
	}

	g, gctx := errgroup.WithContext(ctx)
	pool := worker.NewPoolWithOptions(worker.SearchFunc(searcher),
		worker.WithWorkers(numWorkers),
		worker.WithBufferSize(maxPoolBuffer),
		worker.WithContext(gctx),
	)
	pool.Start()

	g.Go(func() error {
		defer pool.Close()
		return readPositions(gctx, r, name, cfg, pool.Submit)
	})

	// results is only appended to from this consumer goroutine.
	var results []worker.ProcessResult
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				pool.Stop()
				for range pool.Results() {
				}
				return nil
			case res, ok := <-pool.Results():
				if !ok {
					return nil
				}
				results = append(results, res)
			}
		}
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	cfg.Logf(2, "%d position(s) analysed with %d worker(s)\n", len(results), pool.NumWorkers())
	return results, nil
}

// readPositions parses one FEN per line and submits it until end of input
// or cancellation. Blank lines and lines starting with '#' are ignored;
// malformed positions are logged and skipped, as are repeated positions
// when cfg.Duplicate.Suppress is set.
func readPositions(ctx context.Context, r io.Reader, name string, cfg *config.Config, submit func(worker.WorkItem)) error {
	var detector *hashing.DuplicateDetector
	if cfg.Duplicate.Suppress {
		detector = hashing.NewDuplicateDetector(cfg.Duplicate.MaxCapacity)
	}

	lines, errc := readLines(ctx, r)
	lineNo, index := 0, 0
	for text := range lines {
		if ctx.Err() != nil {
			break
		}
		lineNo++
		line := strings.TrimSpace(text)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		item, err := parsePosition(line, name, lineNo)
		if err != nil {
			cfg.Logf(1, "Skipping %v\n", err)
			continue
		}
		if detector != nil && detector.CheckAndAdd(item.Board, item.Side) {
			cfg.Logf(2, "Skipping %s: duplicate position\n", item.Label)
			continue
		}
		item.Index = index
		index++
		submit(item)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := <-errc; err != nil {
		return errors.Wrapf(err, "reading %s", name)
	}
	if detector != nil {
		cfg.Logf(1, "%d duplicate position(s) skipped\n", detector.DuplicateCount())
	}
	return nil
}

// parsePosition turns a FEN line into a work item for the side to move.
func parsePosition(line, name string, lineNo int) (worker.WorkItem, error) {
	game, err := engine.NewGameFromFEN(line)
	if err != nil {
		return worker.WorkItem{}, &errors.ParseError{Err: err, File: name, Line: lineNo}
	}
	return worker.WorkItem{
		Label: fmt.Sprintf("%s:%d", name, lineNo),
		Board: game.Board(),
		Side:  game.Turn(),
	}, nil
}
