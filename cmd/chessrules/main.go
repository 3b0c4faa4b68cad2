// chessrules plays a two-player game of chess from coordinate move requests,
// or counts positions with -perft.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessrules/internal/config"
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
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	game, err := cfg.NewGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.PerftDepth > 0 {
		if _, err := runPerft(cfg, game, *divide); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if cfg.Verbosity > 1 {
		fmt.Fprintf(cfg.LogFile, "Game %s started, %s to move\n", game.ID, game.Turn())
	}

	d := newDriver(cfg, game)
	if err := d.run(os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	if cfg.Verbosity > 0 {
		reportStatistics(cfg, d)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
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
	cfg.OutputFile = file
}

// reportStatistics prints the final summary to the log.
func reportStatistics(cfg *config.Config, d *driver) {
	fmt.Fprintf(cfg.LogFile, "%d move(s) played, %d rejected. %s\n", d.game.Ply(), d.rejected, d.game.Status())
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays a two-player game of chess read from standard input.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nInput lines:\n")
	fmt.Fprintf(os.Stderr, "  5 2 5 4      move the figure on file 5 rank 2 to file 5 rank 4 (e2 to e4)\n")
	fmt.Fprintf(os.Stderr, "  e2 e4        the same move by square name\n")
	fmt.Fprintf(os.Stderr, "  moves e2     list the legal targets of the figure on e2\n")
	fmt.Fprintf(os.Stderr, "  status       side to move, check and game outcome\n")
	fmt.Fprintf(os.Stderr, "  undo         take back the last move\n")
	fmt.Fprintf(os.Stderr, "  board        print the board\n")
	fmt.Fprintf(os.Stderr, "  fen          print the position as FEN\n")
	fmt.Fprintf(os.Stderr, "  quit         stop reading input\n")
}
