// Package config provides configuration for the chessrules command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules/internal/engine"
	"github.com/lgbarn/chessrules/internal/errors"
)

// MaxPerftDepth bounds the -perft flag; deeper searches take hours with
// copy-based legality checking.
const MaxPerftDepth = 8

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=results, 2=running commentary

	// ShowBoard prints the board after every accepted move.
	ShowBoard bool

	// StartFEN is the starting position. Empty means the standard setup.
	StartFEN string

	// PerftDepth switches the command into perft mode when positive.
	PerftDepth int

	// Workers is the number of goroutines perft splits root moves over.
	Workers int

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Workers:    1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks the settings that flags cannot constrain on their own.
// Every failure wraps errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.PerftDepth < 0 || c.PerftDepth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 0..%d: %w", c.PerftDepth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.StartFEN != "" {
		if _, err := engine.NewGameFromFEN(c.StartFEN); err != nil {
			return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
		}
	}
	return nil
}

// NewGame creates the game the configuration describes.
func (c *Config) NewGame() (*engine.Game, error) {
	if c.StartFEN == "" {
		return engine.NewGame(), nil
	}
	return engine.NewGameFromFEN(c.StartFEN)
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}
