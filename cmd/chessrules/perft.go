package main

import (
	"fmt"
	"time"

	"github.com/lgbarn/chessrules/internal/config"
	"github.com/lgbarn/chessrules/internal/engine"
	"github.com/lgbarn/chessrules/internal/worker"
)

// perftParallel counts the leaf positions below each legal root move of
// game, one root move per work item. Every item carries its own copy of
// the board, so workers never share state.
func perftParallel(game *engine.Game, depth, numWorkers int) ([]engine.DivideEntry, error) {
	if depth <= 0 {
		return nil, nil
	}

	board := game.Board()
	colour := game.Turn()
	moves := engine.AllLegalMoves(board, colour)

	items := make([]worker.WorkItem, len(moves))
	for i, m := range moves {
		items[i] = worker.WorkItem{
			Board:  *board,
			Move:   m,
			Colour: colour,
			Depth:  depth - 1,
			Index:  i,
		}
	}

	results, err := worker.RunAll(numWorkers, items, perftWorker)
	if err != nil {
		return nil, fmt.Errorf("perft(%d): %w", depth, err)
	}

	entries := make([]engine.DivideEntry, len(results))
	for i, r := range results {
		entries[i] = engine.DivideEntry{Move: r.Move, Nodes: r.Nodes}
	}
	return entries, nil
}

// perftWorker plays the item's root move on its board copy and counts the
// subtree below it.
func perftWorker(item worker.WorkItem) worker.ProcessResult {
	res := worker.ProcessResult{Move: item.Move, Index: item.Index}
	if item.Move == nil {
		res.Err = fmt.Errorf("item %d has no root move", item.Index)
		return res
	}
	fig, ok := item.Board.Get(item.Move.Source())
	if !ok || fig.Colour != item.Colour {
		res.Err = fmt.Errorf("root move %s%s: no %v figure on %s",
			item.Move.Source(), item.Move.Target(), item.Colour, item.Move.Source())
		return res
	}
	item.Board.Apply(item.Move)
	res.Nodes = engine.Perft(&item.Board, item.Colour.Opposite(), item.Depth)
	return res
}

// runPerft prints the perft count of game to cfg.PerftDepth, optionally
// broken down by root move.
func runPerft(cfg *config.Config, game *engine.Game, showDivide bool) (uint64, error) {
	start := time.Now()
	entries, err := perftParallel(game, cfg.PerftDepth, cfg.Workers)
	if err != nil {
		return 0, err
	}

	var total uint64
	for _, e := range entries {
		total += e.Nodes
		if showDivide {
			fmt.Fprintf(cfg.OutputFile, "%s%s: %d\n", e.Move.Source(), e.Move.Target(), e.Nodes)
		}
	}
	fmt.Fprintf(cfg.OutputFile, "perft(%d) = %d\n", cfg.PerftDepth, total)

	if cfg.Verbosity > 1 {
		fmt.Fprintf(cfg.LogFile, "%d root moves on %d workers in %v\n", len(entries), cfg.Workers, time.Since(start))
	}
	return total, nil
}
