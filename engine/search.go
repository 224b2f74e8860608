package engine

import (
	"fmt"
	"math/bits"
	"time"

	"github.com/dylhunn/dragontoothmg"
)

const (
	MaxScore  = 32500
	Checkmate = 20000
)

var PieceValue = [7]int{
	dragontoothmg.Pawn:   100,
	dragontoothmg.Knight: 300,
	dragontoothmg.Bishop: 300,
	dragontoothmg.Rook:   500,
	dragontoothmg.Queen:  900,
}

// SearchLimits carries the per-search bounds handed over by the command
// loop, already merged with the timing options.
type SearchLimits struct {
	Depth        int
	MoveTimeMs   int
	MoveOverhead int
}

// Searcher drives a plain fixed-depth alpha-beta over the board. It exists
// so the option-driven subsystems (hash table, worker pool) have a real
// consumer; it makes no claim to playing strength.
type Searcher struct {
	TT   *TransTable
	Pool *ThreadPool
	stop bool
}

// Abort requests the current search to stop at the next node boundary.
func (s *Searcher) Abort() { s.stop = true }

// BestMove runs iterative deepening up to limits.Depth and returns the best
// move in UCI notation, or the empty string if the position has no legal
// moves.
func (s *Searcher) BestMove(b *dragontoothmg.Board, limits SearchLimits) string {
	s.stop = false
	depth := limits.Depth
	if depth <= 0 || depth > MaxDepth {
		depth = MaxDepth
	}
	deadline := time.Time{}
	if limits.MoveTimeMs > 0 {
		budget := Max(limits.MoveTimeMs-limits.MoveOverhead, 1)
		deadline = time.Now().Add(time.Duration(budget) * time.Millisecond)
	}

	var best dragontoothmg.Move
	var haveBest bool
	start := time.Now()
	for d := 1; d <= depth && !s.stop; d++ {
		move, score, ok := s.searchRoot(b, d, deadline)
		if !ok {
			break
		}
		best = move
		haveBest = true
		fmt.Printf("info depth %d score cp %d nodes %d time %d pv %s\n",
			d, score, s.Pool.Nodes(), time.Since(start).Milliseconds(), best.String())
		if !deadline.IsZero() && time.Now().After(deadline) {
			break
		}
	}
	if !haveBest {
		return ""
	}
	return best.String()
}

func (s *Searcher) searchRoot(b *dragontoothmg.Board, depth int, deadline time.Time) (dragontoothmg.Move, int, bool) {
	moves := b.GenerateLegalMoves()
	if len(moves) == 0 {
		return 0, 0, false
	}
	bestScore := -MaxScore
	bestMove := moves[0]
	for _, m := range moves {
		undo := b.Apply(m)
		score := -s.alphaBeta(b, depth-1, -MaxScore, -bestScore, 1, deadline)
		undo()
		if s.stop {
			break
		}
		if score > bestScore {
			bestScore = score
			bestMove = m
		}
	}
	s.TT.Store(b.Hash(), int8(depth), bestMove, int16(clampScore(bestScore)), ExactFlag)
	return bestMove, bestScore, true
}

func (s *Searcher) alphaBeta(b *dragontoothmg.Board, depth, alpha, beta int, ply int8, deadline time.Time) int {
	if len(s.Pool.threads) > 0 {
		s.Pool.threads[0].nodes++
	}
	if s.stop || (!deadline.IsZero() && time.Now().After(deadline)) {
		s.stop = true
		return evaluate(b)
	}
	if depth <= 0 {
		return evaluate(b)
	}
	if entry, found := s.TT.Probe(b.Hash()); found && int(entry.Depth) >= depth && entry.Flag == ExactFlag {
		return int(entry.Score)
	}

	moves := b.GenerateLegalMoves()
	if len(moves) == 0 {
		// Mate or stalemate; without check information we only know the
		// side to move has no reply.
		return -Checkmate + (MaxDepth - depth)
	}
	s.orderKillersFirst(moves, ply)
	flag := int8(AlphaFlag)
	var bestMove dragontoothmg.Move
	for _, m := range moves {
		undo := b.Apply(m)
		score := -s.alphaBeta(b, depth-1, -beta, -alpha, ply+1, deadline)
		undo()
		if s.stop {
			return alpha
		}
		if score >= beta {
			if len(s.Pool.threads) > 0 {
				s.Pool.threads[0].killers.InsertKiller(m, ply)
			}
			s.TT.Store(b.Hash(), int8(depth), m, int16(clampScore(beta)), BetaFlag)
			return beta
		}
		if score > alpha {
			alpha = score
			bestMove = m
			flag = ExactFlag
		}
	}
	s.TT.Store(b.Hash(), int8(depth), bestMove, int16(clampScore(alpha)), flag)
	return alpha
}

// orderKillersFirst floats the worker's killer moves for this ply to the
// front of the move list.
func (s *Searcher) orderKillersFirst(moves []dragontoothmg.Move, ply int8) {
	if len(s.Pool.threads) == 0 || ply > MaxDepth {
		return
	}
	killers := &s.Pool.threads[0].killers
	front := 0
	for i, m := range moves {
		if m == killers.KillerMoves[ply][0] || m == killers.KillerMoves[ply][1] {
			moves[front], moves[i] = moves[i], moves[front]
			front++
		}
	}
}

func evaluate(b *dragontoothmg.Board) int {
	score := material(&b.White) - material(&b.Black)
	if b.Wtomove {
		return score
	}
	return -score
}

func material(side *dragontoothmg.Bitboards) int {
	return bits.OnesCount64(side.Pawns)*PieceValue[dragontoothmg.Pawn] +
		bits.OnesCount64(side.Knights)*PieceValue[dragontoothmg.Knight] +
		bits.OnesCount64(side.Bishops)*PieceValue[dragontoothmg.Bishop] +
		bits.OnesCount64(side.Rooks)*PieceValue[dragontoothmg.Rook] +
		bits.OnesCount64(side.Queens)*PieceValue[dragontoothmg.Queen]
}

func clampScore(v int) int {
	return Clamp(v, -MaxScore, MaxScore)
}
