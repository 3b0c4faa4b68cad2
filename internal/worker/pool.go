// Package worker counts positions on a fixed set of goroutines.
package worker

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules/internal/chess"
)

// WorkItem is one subtree to count: the position reached by Move from
// Board, with Depth plies left below it. Board is a private copy owned by
// the item; Colour is the side playing Move.
type WorkItem struct {
	Board  chess.Board
	Move   chess.Move
	Colour chess.Colour
	Depth  int
	Index  int // Position of the item in the submitted batch
}

// ProcessResult is the count below one item, or the reason there is none.
type ProcessResult struct {
	Move  chess.Move
	Index int
	Nodes uint64
	Err   error
}

// ProcessFunc counts one item. It runs on a worker goroutine.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc over submitted items. Results arrive in
// completion order; a stopped pool drains its queue without processing.
type Pool struct {
	items   chan WorkItem
	results chan ProcessResult
	process ProcessFunc
	workers int
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// NewPool creates a pool of numWorkers goroutines whose queues hold
// bufferSize items. Both are raised to at least 1.
func NewPool(numWorkers, bufferSize int, process ProcessFunc) *Pool {
	return &Pool{
		items:   make(chan WorkItem, max(bufferSize, 1)),
		results: make(chan ProcessResult, max(bufferSize, 1)),
		process: process,
		workers: max(numWorkers, 1),
	}
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for item := range p.items {
		if p.stopped.Load() {
			continue
		}
		p.results <- p.safeProcess(item)
	}
}

// safeProcess reports a panic inside the ProcessFunc as a failed result.
func (p *Pool) safeProcess(item WorkItem) (res ProcessResult) {
	defer func() {
		if r := recover(); r != nil {
			res = ProcessResult{Move: item.Move, Index: item.Index, Err: fmt.Errorf("item %d panicked: %v", item.Index, r)}
		}
	}()
	return p.process(item)
}

// Submit queues an item, blocking while the queue is full.
func (p *Pool) Submit(item WorkItem) {
	p.items <- item
}

// Stop makes workers skip every item not yet started.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Close ends submission, waits for the workers and then closes Results.
func (p *Pool) Close() {
	close(p.items)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel of finished items.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// RunAll processes items on a new pool of numWorkers goroutines and returns
// the results in item order. Index must run from 0 to len(items)-1. The
// first failed item stops the pool and its error is returned instead.
func RunAll(numWorkers int, items []WorkItem, process ProcessFunc) ([]ProcessResult, error) {
	pool := NewPool(numWorkers, min(len(items), 100), process)
	pool.Start()

	go func() {
		for _, item := range items {
			if pool.stopped.Load() {
				break
			}
			pool.Submit(item)
		}
		pool.Close()
	}()

	results := make([]ProcessResult, len(items))
	var firstErr error
	for r := range pool.Results() {
		if r.Err != nil && firstErr == nil {
			firstErr = r.Err
			pool.Stop()
		}
		results[r.Index] = r
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}
