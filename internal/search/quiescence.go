package search

import (
	"github.com/mknight/chessengine/internal/config"
	"github.com/mknight/chessengine/internal/movegen"
	"github.com/mknight/chessengine/internal/position"
	. "github.com/mknight/chessengine/internal/types"
)

// quiescence extends the search past the nominal leaf with captures
// only (and, when in check, full check-evasion moves), to avoid
// misjudging a position mid-exchange (§4.9 "Quiescence search").
func (s *Searcher) quiescence(p *position.Position, alpha, beta Value, qply int) Value {
	s.stats.NodesVisited++
	if s.stats.MaxDepthReached < p.Ply() {
		s.stats.MaxDepthReached = p.Ply()
	}

	inCheck := p.InCheck(p.SideToMove())
	var standPat Value
	if !inCheck {
		standPat = s.eval.Evaluate(p)
		if standPat >= beta {
			return standPat
		}
		if standPat > alpha {
			alpha = standPat
		}
	}

	if qply >= config.Settings.Search.QuiescenceDepth && !inCheck {
		return standPat
	}

	moves := movegen.GenerateCaptures(p, inCheck)
	if moves.Len() == 0 {
		if inCheck {
			return -ValueMate + Value(p.Ply())
		}
		return standPat
	}

	orderMoves(p, moves, MoveNone, killerSlots{})
	margin := Value(config.Settings.Search.DeltaMargin)

	best := standPat
	if inCheck {
		best = -ValueInfinite
	}
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if !inCheck {
			gain := Value(capturedValue(p, m))
			if standPat+gain+margin < alpha {
				continue
			}
		}
		p.DoMove(m)
		value := -s.quiescence(p, -beta, -alpha, qply+1)
		p.UndoMove()

		if value > best {
			best = value
			if value > alpha {
				alpha = value
				if value >= beta {
					s.stats.BetaCutoffs++
					return value
				}
			}
		}
	}
	return best
}
