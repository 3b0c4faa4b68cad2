// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/chessrules/internal/config"
)

var (
	// Position options
	startFEN  = flag.String("fen", "", "Start from this FEN position instead of the standard setup")
	showBoard = flag.Bool("board", false, "Print the board after every accepted move")

	// Perft mode
	perftDepth = flag.Int("perft", 0, "Count leaf positions to this depth and exit")
	divide     = flag.Bool("divide", false, "With -perft, print the count below each root move")
	workers    = flag.Int("workers", 0, "Number of perft worker goroutines (0 = auto-detect based on CPU cores)")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")

	// Logging and diagnostics
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbose   = flag.Bool("v", false, "Running commentary on the log")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no result lines on the log)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	cfg.StartFEN = *startFEN
	cfg.ShowBoard = *showBoard
	cfg.PerftDepth = *perftDepth

	cfg.Workers = *workers
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}
