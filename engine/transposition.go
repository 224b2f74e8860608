package engine

import (
	"unsafe"

	"github.com/dylhunn/dragontoothmg"
)

const (
	// Flags
	AlphaFlag = iota
	BetaFlag
	ExactFlag

	clusterSize = 4

	// Unusable score
	UnusableScore = -32750
)

type TTEntry struct {
	Hash  uint64
	Depth int8
	Move  dragontoothmg.Move
	Score int16
	Flag  int8
}

// TransTable is a cluster-based hash table of search results. Its size is
// set at runtime from the Hash option, in megabytes.
type TransTable struct {
	entries      []TTEntry
	clusterCount uint64
	sizeMB       int
}

// Resize throws away the table contents and reallocates to roughly
// megabytes MB. Called from the Hash option handler.
func (TT *TransTable) Resize(megabytes int) {
	if megabytes < 1 {
		megabytes = 1
	}
	entrySize := uint64(unsafe.Sizeof(TTEntry{}))
	totalBytes := uint64(megabytes) * 1024 * 1024
	clusterBytes := entrySize * clusterSize
	clusterCount := totalBytes / clusterBytes
	if clusterCount == 0 {
		clusterCount = 1
	}
	TT.clusterCount = clusterCount
	TT.entries = make([]TTEntry, TT.clusterCount*clusterSize)
	TT.sizeMB = megabytes
}

// Clear zeroes every entry but keeps the allocation. Called from the
// Clear Hash button and on ucinewgame.
func (TT *TransTable) Clear() {
	for i := range TT.entries {
		TT.entries[i] = TTEntry{}
	}
}

// SizeMB returns the currently allocated size in megabytes.
func (TT *TransTable) SizeMB() int { return TT.sizeMB }

func (TT *TransTable) Probe(hash uint64) (entry *TTEntry, found bool) {
	if TT.clusterCount == 0 {
		return nil, false
	}
	clusterIndex := hash % TT.clusterCount
	start := int(clusterIndex * clusterSize)
	for i := 0; i < clusterSize; i++ {
		next := &TT.entries[start+i]
		if next.Hash == hash {
			return next, true
		}
	}
	return nil, false
}

// Store writes an entry, preferring a slot already holding this hash, then
// an empty slot, then the shallowest entry in the cluster.
func (TT *TransTable) Store(hash uint64, depth int8, move dragontoothmg.Move, score int16, flag int8) {
	if TT.clusterCount == 0 {
		return
	}
	clusterIndex := hash % TT.clusterCount
	base := int(clusterIndex * clusterSize)

	targetIdx := base
	for i := 0; i < clusterSize; i++ {
		idx := base + i
		if TT.entries[idx].Hash == hash || TT.entries[idx].Hash == 0 {
			targetIdx = idx
			break
		}
		if TT.entries[idx].Depth < TT.entries[targetIdx].Depth {
			targetIdx = idx
		}
	}
	TT.entries[targetIdx] = TTEntry{Hash: hash, Depth: depth, Move: move, Score: score, Flag: flag}
}
