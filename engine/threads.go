package engine

import (
	"github.com/dylhunn/dragontoothmg"
)

const MaxDepth = 100

type KillerStruct struct {
	KillerMoves [MaxDepth + 1][2]dragontoothmg.Move
}

func (k *KillerStruct) InsertKiller(move dragontoothmg.Move, ply int8) {
	if move != k.KillerMoves[ply][0] {
		k.KillerMoves[ply][1] = k.KillerMoves[ply][0]
		k.KillerMoves[ply][0] = move
	}
}

// Clear the killer moves table.
func (k *KillerStruct) ClearKillers() {
	for depth := 0; depth < MaxDepth+1; depth++ {
		k.KillerMoves[depth][0] = 0
		k.KillerMoves[depth][1] = 0
	}
}

// searchThread is the per-worker search state: each worker owns its own
// killer table and node counter so workers never share mutable state.
type searchThread struct {
	id      int
	killers KillerStruct
	nodes   uint64
}

// ThreadPool holds the search workers. Its size follows the Threads
// option; SetSize runs synchronously from the option handler, never while
// a search is in flight.
type ThreadPool struct {
	threads []*searchThread
}

// SetSize recreates the worker set with n workers.
func (tp *ThreadPool) SetSize(n int) {
	if n < 1 {
		n = 1
	}
	tp.threads = make([]*searchThread, n)
	for i := range tp.threads {
		tp.threads[i] = &searchThread{id: i}
	}
}

// Size returns the current worker count.
func (tp *ThreadPool) Size() int { return len(tp.threads) }

// ResetForNewGame clears per-game state in every worker.
func (tp *ThreadPool) ResetForNewGame() {
	for _, th := range tp.threads {
		th.killers.ClearKillers()
		th.nodes = 0
	}
}

// Nodes sums the node counters across workers.
func (tp *ThreadPool) Nodes() uint64 {
	var total uint64
	for _, th := range tp.threads {
		total += th.nodes
	}
	return total
}
