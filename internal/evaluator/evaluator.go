// Package evaluator computes a centipawn score for a position (C8): a sum
// of independent sub-evaluators, each a White-minus-Black difference,
// returned from the side-to-move's perspective at the search interface.
package evaluator

import (
	"github.com/mknight/chessengine/internal/attacks"
	"github.com/mknight/chessengine/internal/config"
	"github.com/mknight/chessengine/internal/position"
	. "github.com/mknight/chessengine/internal/types"
	"github.com/mknight/chessengine/internal/util"
)

// Evaluator holds no position-independent state beyond the config it
// reads from; it is safe for concurrent use by multiple goroutines each
// holding their own *position.Position, since Evaluate never mutates p.
type Evaluator struct{}

// NewEvaluator returns a ready-to-use Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate returns the centipawn score of p from the side-to-move's
// perspective (§4.7).
func (e *Evaluator) Evaluate(p *position.Position) Value {
	total := e.evaluateWhiteRelative(p)
	if p.SideToMove() == Black {
		total = -total
	}
	return Value(total)
}

// evaluateWhiteRelative sums every sub-evaluator term, White positive.
func (e *Evaluator) evaluateWhiteRelative(p *position.Position) int {
	total := 0
	total += material(p)
	total += pieceSquare(p)
	total += pawnStructure(p)
	total += mobility(p)
	total += kingSafety(p)
	total += tempo(p)
	total += bishopPair(p)
	total += knightOutpost(p)
	total += rookOnFile(p)
	total += centralControl(p)
	total += threats(p)
	total += linePressure(p)
	total += fork(p)
	return total
}

// material sums piece values, White minus Black, excluding kings (§4.7.1).
func material(p *position.Position) int {
	total := 0
	for pt := Pawn; pt <= Queen; pt++ {
		total += p.PieceCount(White, pt) * pt.Value()
		total -= p.PieceCount(Black, pt) * pt.Value()
	}
	return total
}

// gamePhase returns the tapering scalar described in §4.7.2, clamped to
// [0, gamePhaseMax].
func gamePhase(p *position.Position) int {
	phase := 0
	for pt := Knight; pt <= Queen; pt++ {
		w := phaseWeight[pt]
		phase += w * (p.PieceCount(White, pt) + p.PieceCount(Black, pt))
	}
	return util.Clamp(phase, 0, gamePhaseMax)
}

// pieceSquare sums piece-square table values, tapering the king table by
// game phase (§4.7.2).
func pieceSquare(p *position.Position) int {
	total := 0
	for pt := Pawn; pt <= Queen; pt++ {
		table := psqtTableFor(pt)
		if table == nil {
			continue
		}
		for bb := p.PiecesBb(White, pt); bb != BbZero; {
			var sq Square
			sq, bb = bb.PopLsb()
			total += int(table[psqtIndex(White, sq)])
		}
		for bb := p.PiecesBb(Black, pt); bb != BbZero; {
			var sq Square
			sq, bb = bb.PopLsb()
			total -= int(table[psqtIndex(Black, sq)])
		}
	}

	t := gamePhase(p) * 256 / gamePhaseMax
	if wkSq := p.KingSquare(White); wkSq != SqNone {
		mg := int(kingMgPsqt[psqtIndex(White, wkSq)])
		eg := int(kingEgPsqt[psqtIndex(White, wkSq)])
		total += (mg*t + eg*(256-t)) / 256
	}
	if bkSq := p.KingSquare(Black); bkSq != SqNone {
		mg := int(kingMgPsqt[psqtIndex(Black, bkSq)])
		eg := int(kingEgPsqt[psqtIndex(Black, bkSq)])
		total -= (mg*t + eg*(256-t)) / 256
	}
	return total
}

// tempo gives a small constant bias for the side to move (§4.7.6),
// expressed White-relative so evaluateWhiteRelative's sign convention
// stays uniform across every term.
func tempo(p *position.Position) int {
	if p.SideToMove() == White {
		return int(config.Settings.Eval.Tempo)
	}
	return -int(config.Settings.Eval.Tempo)
}

// bishopPair rewards holding both bishops (§4.7.7).
func bishopPair(p *position.Position) int {
	total := 0
	if p.PieceCount(White, Bishop) >= 2 {
		total += int(config.Settings.Eval.BishopPairBonus)
	}
	if p.PieceCount(Black, Bishop) >= 2 {
		total -= int(config.Settings.Eval.BishopPairBonus)
	}
	return total
}

// mobility scores the popcount difference of each side's pseudo-attack
// targets, masked off its own occupancy (§4.7.4).
func mobility(p *position.Position) int {
	return int(config.Settings.Eval.MobilityBonus) * (mobilityCount(p, White) - mobilityCount(p, Black))
}

func mobilityCount(p *position.Position, c Color) int {
	occAll := p.OccupiedAll()
	ownOcc := p.OccupiedBb(c)
	count := 0
	for pt := Knight; pt <= Queen; pt++ {
		for bb := p.PiecesBb(c, pt); bb != BbZero; {
			var sq Square
			sq, bb = bb.PopLsb()
			count += (attacks.AttacksFrom(pt, c, sq, occAll) &^ ownOcc).PopCount()
		}
	}
	return count
}

// rookOnFile rewards rooks on open or semi-open files (§4.7.9).
func rookOnFile(p *position.Position) int {
	total := 0
	total += rookFileScore(p, White)
	total -= rookFileScore(p, Black)
	return total
}

func rookFileScore(p *position.Position, c Color) int {
	total := 0
	ownPawns := p.PiecesBb(c, Pawn)
	allPawns := p.PiecesBb(White, Pawn) | p.PiecesBb(Black, Pawn)
	for bb := p.PiecesBb(c, Rook); bb != BbZero; {
		var sq Square
		sq, bb = bb.PopLsb()
		fileBb := sq.FileOf().Bb()
		switch {
		case fileBb&allPawns == BbZero:
			total += int(config.Settings.Eval.RookOpenFileBonus)
		case fileBb&ownPawns == BbZero:
			total += int(config.Settings.Eval.RookSemiOpenFileBonus)
		}
	}
	return total
}

// centralControl rewards attacking the four center squares (§4.7.10).
var centerSquares = [4]Square{SqD4, SqE4, SqD5, SqE5}

func centralControl(p *position.Position) int {
	total := 0
	for _, sq := range centerSquares {
		total += int(config.Settings.Eval.CentralSquareBonus) * p.AttackersTo(sq, White).PopCount()
		total -= int(config.Settings.Eval.CentralSquareBonus) * p.AttackersTo(sq, Black).PopCount()
	}
	return total
}
