package hashing

import (
	"sync"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

func TestThreadSafeDuplicateDetector_Concurrent(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(false, 0)
	pos := mustPosition(t, engine.InitialFEN)

	const numGames = 100
	const numWorkers = 10
	gamesPerWorker := numGames / numWorkers

	positions := make([]*engine.Position, numGames)
	for i := range positions {
		positions[i] = pos.Copy()
	}

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			start := workerID * gamesPerWorker
			end := start + gamesPerWorker
			for j := start; j < end; j++ {
				detector.CheckAndAdd(positions[j], j)
			}
		}(i)
	}
	wg.Wait()

	if detector.DuplicateCount() != numGames-1 {
		t.Errorf("DuplicateCount() = %d; want %d", detector.DuplicateCount(), numGames-1)
	}
	if detector.UniqueCount() != 1 {
		t.Errorf("UniqueCount() = %d; want 1", detector.UniqueCount())
	}
	if detector.IsFull() {
		t.Error("unlimited detector reports full")
	}
}

func TestThreadSafeDuplicateDetector_Capacity(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(false, 2)
	fens := []string{
		engine.InitialFEN,
		"4k3/8/8/8/8/8/8/4K3 w - - 0 1",
		"4k3/8/8/8/8/8/8/3K4 w - - 0 1",
	}
	for _, fen := range fens {
		detector.CheckAndAdd(mustPosition(t, fen), 0)
	}
	if !detector.IsFull() {
		t.Error("detector not full after exceeding capacity")
	}
	if detector.UniqueCount() != 2 {
		t.Errorf("UniqueCount() = %d; want 2", detector.UniqueCount())
	}
}
