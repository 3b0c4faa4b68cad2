package main

import (
	"runtime"
	"testing"

	"github.com/lgbarn/chessrules/internal/config"
)

// saveRestoreBool sets a bool flag pointer and returns a function that
// restores the old value.
// Usage: defer saveRestoreBool(quiet, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := config.NewConfig()
		applyFlags(cfg)
		if cfg.Verbosity != 1 {
			t.Errorf("Verbosity = %d; want 1", cfg.Verbosity)
		}
		if cfg.Workers != runtime.NumCPU() {
			t.Errorf("Workers = %d; want %d", cfg.Workers, runtime.NumCPU())
		}
		if cfg.ShowBoard || cfg.PerftDepth != 0 || cfg.StartFEN != "" {
			t.Errorf("unexpected settings: %+v", cfg)
		}
	})

	t.Run("position and perft flags", func(t *testing.T) {
		defer saveRestoreString(startFEN, "8/8/8/3k4/8/3K4/8/8 w - - 0 1")()
		defer saveRestoreBool(showBoard, true)()
		defer saveRestoreInt(perftDepth, 3)()
		defer saveRestoreInt(workers, 2)()
		cfg := config.NewConfig()
		applyFlags(cfg)
		if cfg.StartFEN != *startFEN {
			t.Errorf("StartFEN = %q", cfg.StartFEN)
		}
		if !cfg.ShowBoard {
			t.Error("ShowBoard should be true")
		}
		if cfg.PerftDepth != 3 {
			t.Errorf("PerftDepth = %d; want 3", cfg.PerftDepth)
		}
		if cfg.Workers != 2 {
			t.Errorf("Workers = %d; want 2", cfg.Workers)
		}
	})

	t.Run("quiet sets verbosity 0", func(t *testing.T) {
		defer saveRestoreBool(quiet, true)()
		defer saveRestoreBool(verbose, true)()
		cfg := config.NewConfig()
		applyFlags(cfg)
		if cfg.Verbosity != 0 {
			t.Errorf("Verbosity = %d; want 0", cfg.Verbosity)
		}
	})

	t.Run("verbose sets verbosity 2", func(t *testing.T) {
		defer saveRestoreBool(verbose, true)()
		cfg := config.NewConfig()
		applyFlags(cfg)
		if cfg.Verbosity != 2 {
			t.Errorf("Verbosity = %d; want 2", cfg.Verbosity)
		}
	})
}
