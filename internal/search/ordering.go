package search

import (
	"github.com/mknight/chessengine/internal/position"
	. "github.com/mknight/chessengine/internal/types"
)

// killerSlots remembers the quiet moves that most recently caused a
// beta cutoff at a given ply, tried early at sibling nodes of the same
// ply in later iterations (§4.9 step 5's "non-captures last" leaves room
// for this without changing the spec-mandated ordering of TT move and
// MVV-LVA captures).
type killerSlots [2]Move

func (k *killerSlots) store(m Move) {
	if k[0] == m {
		return
	}
	k[1] = k[0]
	k[0] = m
}

// orderMoves scores and sorts ml in place: TT best move first, then
// captures by MVV-LVA, then killer moves, then the rest (§4.9 step 5).
func orderMoves(p *position.Position, ml *MoveList, ttMove Move, killers killerSlots) {
	for i := 0; i < ml.Len(); i++ {
		ml.SetScore(i, moveOrderScore(p, ml.At(i), ttMove, killers))
	}
	insertionSortByScoreDesc(ml)
}

func moveOrderScore(p *position.Position, m Move, ttMove Move, killers killerSlots) int32 {
	if m == ttMove {
		return 1 << 30
	}
	if captured := p.PieceAt(m.To()); captured != PieceNone || m.IsEnPassant() {
		victimValue := capturedValue(p, m)
		attackerValue := p.PieceAt(m.From()).TypeOf().Value()
		return int32(1<<20) - int32(10*victimValue-attackerValue)
	}
	if m == killers[0] {
		return 1 << 10
	}
	if m == killers[1] {
		return 1 << 9
	}
	return 0
}

// capturedValue returns the material value of the piece a move captures,
// handling en passant's captured-pawn-not-on-destination-square case.
func capturedValue(p *position.Position, m Move) int {
	if m.IsEnPassant() {
		return Pawn.Value()
	}
	return p.PieceAt(m.To()).TypeOf().Value()
}

// insertionSortByScoreDesc sorts ml by descending score. Move lists are
// short (rarely above ~40 legal moves) so insertion sort's simplicity
// outweighs an O(n log n) algorithm here.
func insertionSortByScoreDesc(ml *MoveList) {
	for i := 1; i < ml.Len(); i++ {
		j := i
		for j > 0 && ml.Score(j-1) < ml.Score(j) {
			ml.Swap(j-1, j)
			j--
		}
	}
}
