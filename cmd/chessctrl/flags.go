// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/chessctrl-go/internal/config"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	logFile      = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	jsonOutput   = flag.Bool("J", false, "Output analysis in JSON format")
	jsonLines    = flag.Bool("jsonl", false, "Output analysis as one JSON object per line (implies -J)")
	showBoard    = flag.Bool("board", false, "Print the board after every move")
	asciiBoard   = flag.Bool("ascii", false, "Draw pieces as letters instead of Unicode symbols")

	// Game options
	startFEN       = flag.String("fen", "", "Start from this FEN position")
	computerColour = flag.String("computer", "black", "Colour the computer plays: white, black or none")

	// Search options
	searchDepth = flag.Int("depth", 2, "Search depth in plies of captures (1-4)")
	symmetric   = flag.Bool("symmetric", false, "Consume depth on both sides' plies")
	safeRoot    = flag.Bool("saferoot", true, "Only consider computer moves that keep its own king safe")

	// Batch analysis
	analyseFile = flag.String("analyse", "", "Suggest a move for each FEN line of this file ('-' for stdin)")
	workers     = flag.Int("workers", 0, "Analysis worker goroutines (0 = one per CPU)")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Skip positions already analysed earlier in the input")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum positions remembered for -D (0 = unlimited)")

	// Miscellaneous
	quiet   = flag.Bool("s", false, "Silent mode (no diagnostics)")
	verbose = flag.Bool("v", false, "Running commentary, including search summaries")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// buildConfig maps the parsed flags onto a validated configuration.
func buildConfig() (*config.Config, error) {
	b := config.NewConfigBuilder().
		WithSearchDepth(*searchDepth).
		WithSymmetricSearch(*symmetric).
		WithSafeRoot(*safeRoot).
		WithStartFEN(*startFEN).
		WithJSONOutput(*jsonOutput || *jsonLines).
		WithJSONLines(*jsonLines).
		WithShowBoard(*showBoard).
		WithASCII(*asciiBoard).
		WithWorkers(*workers).
		WithSuppressDuplicates(*suppressDuplicates).
		WithDuplicateCapacity(*duplicateCapacity).
		WithVerbosity(verbosityLevel())

	if err := applyComputerFlag(b, *computerColour); err != nil {
		return nil, err
	}
	return b.Build()
}

// applyComputerFlag configures the automated opponent from the -computer value.
func applyComputerFlag(b *config.ConfigBuilder, value string) error {
	if value == "none" || value == "" {
		b.WithComputer(false, config.NewPlayConfig().ComputerColour)
		return nil
	}
	colour, err := config.ParseColour(value)
	if err != nil {
		return fmt.Errorf("-computer: %w", err)
	}
	b.WithComputer(true, colour)
	return nil
}

// verbosityLevel maps -s and -v onto config verbosity.
func verbosityLevel() int {
	switch {
	case *quiet:
		return 0
	case *verbose:
		return 2
	default:
		return 1
	}
}
