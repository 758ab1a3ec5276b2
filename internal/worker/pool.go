// Package worker provides a worker pool for playing games in parallel.
package worker

import (
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// WorkItem describes one game to be played.
type WorkItem struct {
	Index    int    // Original index for tracking
	Seed     int64  // Random seed for the game
	StartFEN string // Setup to start from; empty means the standard position
}

// ProcessResult represents the outcome of one game.
type ProcessResult struct {
	Index     int
	Seed      int64
	State     chess.GameState // State when the game stopped
	Plies     int             // Half-moves played
	Board     *chess.Board    // Final board position (may be nil)
	GameInfo  interface{}     // Opaque per-game record; typed by consumer
	Violation bool            // A rules invariant failed during play
	Error     error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a pool of workers that play games in parallel.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPoolWithOptions creates a new worker pool using functional options.
// processFunc is required; other settings have sensible defaults.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// DefaultWorkers returns the worker count used when none is configured.
func DefaultWorkers() int {
	return runtime.NumCPU()
}

// Run starts the pool, feeds it items, waits for every result and returns
// the results sorted by Index. Items skipped after Stop produce no result.
func (p *Pool) Run(items []WorkItem) []ProcessResult {
	p.Start()
	go func() {
		for _, item := range items {
			if p.IsStopped() {
				break
			}
			p.Submit(item)
		}
		p.Close()
	}()

	results := make([]ProcessResult, 0, len(items))
	for r := range p.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}
