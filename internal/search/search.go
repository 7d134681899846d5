// Package search implements negamax alpha-beta search with iterative
// deepening (C10): transposition-table-backed, MVV-LVA ordered, extended
// by a quiescence search past the nominal leaf depth.
package search

import (
	"time"

	"github.com/op/go-logging"

	"github.com/mknight/chessengine/internal/config"
	"github.com/mknight/chessengine/internal/evaluator"
	myLogging "github.com/mknight/chessengine/internal/logging"
	"github.com/mknight/chessengine/internal/movegen"
	"github.com/mknight/chessengine/internal/position"
	"github.com/mknight/chessengine/internal/transpositiontable"
	. "github.com/mknight/chessengine/internal/types"
)

// Searcher owns one transposition table and evaluator instance and runs
// searches on the calling goroutine: single-threaded and synchronous,
// with no pondering or background work (§5).
type Searcher struct {
	log  *logging.Logger
	tt   *transpositiontable.TranspositionTable
	eval *evaluator.Evaluator

	stats   Statistics
	killers []killerSlots

	gameHashes []uint64 // hashes of positions actually played so far this game, seeded before each search
	pathHashes []uint64 // hashes of positions visited so far on the search path, for repetition detection
}

// SeedGameHistory tells the searcher which position hashes were actually
// played earlier in the current game, so that a repetition against real
// game history (not only one introduced inside the search tree) is
// caught by isRepetitionOrFiftyMove.
func (s *Searcher) SeedGameHistory(hashes []uint64) {
	s.gameHashes = append(s.gameHashes[:0], hashes...)
}

// NewSearcher builds a Searcher with its own transposition table sized
// per the configured TT size.
func NewSearcher() *Searcher {
	return &Searcher{
		log:  myLogging.GetSearchLog(),
		tt:   transpositiontable.New(config.Settings.Search.TTSize),
		eval: evaluator.NewEvaluator(),
	}
}

// ClearHash empties the transposition table -- called on `ucinewgame`.
func (s *Searcher) ClearHash() {
	s.tt.Clear()
}

// Stats returns the metrics from the most recently completed search.
func (s *Searcher) Stats() Statistics {
	return s.stats
}

// FindBestMove is the top-level search entry point (§4.9): it iterates
// depth = 1..MaxDepth, stopping once MinThinkMs has elapsed and the
// current depth has completed, returning the move found by the deepest
// completed iteration. Returns (MoveNone, false) if the position has no
// legal moves (mate or stalemate; the caller distinguishes via InCheck).
func (s *Searcher) FindBestMove(p *position.Position, params Params) (Move, bool) {
	params = params.resolve()
	s.stats = Statistics{}
	s.pathHashes = s.pathHashes[:0]

	rootMoves := movegen.GenerateLegalMoves(p)
	if rootMoves.Len() == 0 {
		return MoveNone, false
	}

	start := time.Now()
	s.killers = make([]killerSlots, params.MaxDepth+1)

	var bestMove Move
	var bestValue Value
	for depth := 1; depth <= params.MaxDepth; depth++ {
		move, value, completed := s.searchRoot(p, rootMoves, depth)
		if !completed {
			break
		}
		bestMove, bestValue = move, value
		s.stats.MaxDepthReached = depth

		if time.Since(start) >= time.Duration(params.MinThinkMs)*time.Millisecond {
			break
		}
		if s.stats.NodesVisited >= uint64(config.Settings.Search.AbsoluteLimit) {
			s.log.Warningf("node budget %d reached at depth %d, stopping", config.Settings.Search.AbsoluteLimit, depth)
			break
		}
	}
	s.stats.Elapsed = time.Since(start)
	hits, misses, _ := s.tt.Stats()
	s.stats.TTHits, s.stats.TTMisses = hits, misses

	s.log.Debugf("search depth=%d value=%d nodes=%d elapsed=%s", s.stats.MaxDepthReached, bestValue, s.stats.NodesVisited, s.stats.Elapsed)
	return bestMove, true
}

// searchRoot runs one iterative-deepening iteration at the given depth,
// returning the best move, its value, and whether the iteration ran to
// completion (always true here, since this implementation does not
// abort mid-iteration -- kept as a return value so a future time-boxed
// abort can plug in without changing the caller).
func (s *Searcher) searchRoot(p *position.Position, rootMoves *MoveList, depth int) (Move, Value, bool) {
	alpha, beta := -ValueInfinite, ValueInfinite
	ttMove := MoveNone
	if config.Settings.Search.UseTT {
		_, ttMove, _ = s.tt.Probe(p.Hash(), depth, alpha, beta)
	}
	orderMoves(p, rootMoves, ttMove, killerSlots{})

	bestMove := rootMoves.At(0)
	bestValue := -ValueInfinite

	for i := 0; i < rootMoves.Len(); i++ {
		m := rootMoves.At(i)
		p.DoMove(m)
		s.pathHashes = append(s.pathHashes, p.Hash())
		value := -s.negamax(p, depth-1, 1, -beta, -alpha)
		s.pathHashes = s.pathHashes[:len(s.pathHashes)-1]
		p.UndoMove()

		if value > bestValue {
			bestValue = value
			bestMove = m
		}
		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			break
		}
	}

	if config.Settings.Search.UseTT {
		s.tt.Store(p.Hash(), depth, bestValue, bestMove, transpositiontable.BoundExact)
	}
	return bestMove, bestValue, true
}

// negamax is the interior-node search (§4.9): ply > 0, always called
// with a fresh window relative to the parent via score negation.
func (s *Searcher) negamax(p *position.Position, depth, ply int, alpha, beta Value) Value {
	if s.isRepetitionOrFiftyMove(p) {
		return ValueDraw
	}

	if config.Settings.Search.UseTT {
		if score, _, hit := s.tt.Probe(p.Hash(), depth, alpha, beta); hit {
			return score
		}
	}

	if depth == 0 {
		if config.Settings.Search.UseQuiescence {
			return s.quiescence(p, alpha, beta, 0)
		}
		s.stats.NodesVisited++
		return s.eval.Evaluate(p)
	}

	s.stats.NodesVisited++

	moves := movegen.GenerateLegalMoves(p)
	if moves.Len() == 0 {
		if p.InCheck(p.SideToMove()) {
			return -ValueMate + Value(ply)
		}
		return ValueDraw
	}

	ttMove := MoveNone
	if config.Settings.Search.UseTT {
		_, ttMove, _ = s.tt.Probe(p.Hash(), depth, alpha, beta)
	}
	var killers killerSlots
	if ply < len(s.killers) {
		killers = s.killers[ply]
	}
	orderMoves(p, moves, ttMove, killers)

	bestMove := MoveNone
	bestValue := -ValueInfinite
	raisedAlpha := false

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		p.DoMove(m)
		s.pathHashes = append(s.pathHashes, p.Hash())
		value := -s.negamax(p, depth-1, ply+1, -beta, -alpha)
		s.pathHashes = s.pathHashes[:len(s.pathHashes)-1]
		p.UndoMove()

		if value > bestValue {
			bestValue = value
			bestMove = m
		}
		if value > alpha {
			alpha = value
			raisedAlpha = true
		}
		if alpha >= beta {
			s.stats.BetaCutoffs++
			if config.Settings.Search.UseKillerMoves && p.PieceAt(m.To()) == PieceNone && ply < len(s.killers) {
				s.killers[ply].store(m)
			}
			if config.Settings.Search.UseTT {
				s.tt.Store(p.Hash(), depth, bestValue, bestMove, transpositiontable.BoundLower)
			}
			return beta
		}
	}

	if config.Settings.Search.UseTT {
		bound := transpositiontable.BoundUpper
		if raisedAlpha {
			bound = transpositiontable.BoundExact
		}
		s.tt.Store(p.Hash(), depth, bestValue, bestMove, bound)
	}
	return bestValue
}

// isRepetitionOrFiftyMove implements §4.9 step 1: a two-fold repetition
// within the search path, or the 50-move rule, is treated as a draw.
func (s *Searcher) isRepetitionOrFiftyMove(p *position.Position) bool {
	if p.HalfmoveClock() >= 100 {
		return true
	}
	if !config.Settings.Search.TwoFoldIsDraw {
		return false
	}
	current := p.Hash()
	count := 0
	for _, h := range s.gameHashes {
		if h == current {
			count++
		}
	}
	// s.pathHashes always carries p's own hash as its last entry (appended by
	// the caller before recursing); exclude it so this only counts earlier
	// visits to the same position, not the position itself.
	if n := len(s.pathHashes); n > 0 {
		for _, h := range s.pathHashes[:n-1] {
			if h == current {
				count++
			}
		}
	}
	return count >= 1
}
