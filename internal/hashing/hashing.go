// Package hashing provides position hashing and duplicate detection for
// self-play games.
package hashing

import (
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// DuplicateDetector tracks seen final positions across games.
type DuplicateDetector struct {
	// hashTable stores seen hash codes
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires the same ply count
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity bounds the number of stored signatures; 0 is unlimited
	maxCapacity int
	size        int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// PlyCount is the number of half-moves in the game
	PlyCount int
	// WeakHash is a fast hash for quick comparison
	WeakHash uint32
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// CheckAndAdd checks whether a game ending in pos after plies half-moves
// has been seen and records it. Returns true if it is a duplicate. Once the
// detector is full, new signatures are checked but no longer stored.
func (d *DuplicateDetector) CheckAndAdd(pos *engine.Position, plies int) bool {
	if pos == nil {
		return false
	}

	sig := GameSignature{
		Hash:     HashPosition(pos),
		PlyCount: plies,
		WeakHash: WeakHash(&pos.Board),
	}

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.size++
	return false
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.PlyCount != b.PlyCount {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// IsFull reports whether the capacity limit has been reached.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
	d.size = 0
}

// HashType specifies what to hash when identifying a game.
type HashType int

const (
	// HashFinalPosition hashes only the final position
	HashFinalPosition HashType = iota
	// HashMoveSequence hashes the move sequence
	HashMoveSequence
)

// GameHasher provides different hashing strategies for games.
type GameHasher struct {
	hashType HashType
}

// NewGameHasher creates a new game hasher with the specified strategy.
func NewGameHasher(ht HashType) *GameHasher {
	return &GameHasher{hashType: ht}
}

// HashGame generates a hash for a game given its moves in long algebraic
// form and its final position.
func (gh *GameHasher) HashGame(moves []string, final *engine.Position) uint64 {
	if gh.hashType == HashMoveSequence {
		return hashMoveSequence(moves)
	}
	return HashPosition(final)
}

// hashMoveSequence creates a hash from the move texts.
func hashMoveSequence(moves []string) uint64 {
	var hash uint64
	multiplier := uint64(31)

	for _, move := range moves {
		for _, c := range move {
			hash = hash*multiplier + uint64(c)
		}
		// Separator so "e2e4","e7e5" differs from a single joined string.
		hash = hash*multiplier + uint64('|')
	}

	return hash
}
