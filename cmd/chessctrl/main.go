// chessctrl plays chess against a capture-greedy computer opponent and
// suggests moves for positions read from FEN files.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/lgbarn/chessctrl-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessctrl-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := buildConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	// After the first interrupt, restore default handling so a second one kills the process.
	go func() {
		<-ctx.Done()
		stop()
	}()

	if *analyseFile != "" {
		err = runAnalysis(ctx, cfg, *analyseFile)
	} else {
		err = runPlay(ctx, cfg, os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessctrl [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess against the computer, or analyse FEN positions with -analyse.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands during play:\n")
	fmt.Fprintf(os.Stderr, "  E2 E4      move the piece on E2 to E4 (also e2e4)\n")
	fmt.Fprintf(os.Stderr, "  moves E2   list the legal destinations of the piece on E2\n")
	fmt.Fprintf(os.Stderr, "  hint       suggest a move for the side to move\n")
	fmt.Fprintf(os.Stderr, "  board      print the board\n")
	fmt.Fprintf(os.Stderr, "  fen        print the position as FEN\n")
	fmt.Fprintf(os.Stderr, "  reset      start again from the initial position\n")
	fmt.Fprintf(os.Stderr, "  quit       leave the game\n")
}
