package evaluator

import (
	"sort"

	"github.com/mknight/chessengine/internal/attacks"
	"github.com/mknight/chessengine/internal/config"
	"github.com/mknight/chessengine/internal/position"
	. "github.com/mknight/chessengine/internal/types"
)

// fork rewards a piece attacking two or more enemy pieces at once, scaled
// by what the attacker could actually win (§4.7.13).
func fork(p *position.Position) int {
	total := 0
	total += forksFor(p, White, Black)
	total -= forksFor(p, Black, White)
	return total
}

func forksFor(p *position.Position, attacker, defender Color) int {
	occAll := p.OccupiedAll()
	total := 0
	for pt := Knight; pt <= Queen; pt++ {
		for bb := p.PiecesBb(attacker, pt); bb != BbZero; {
			var sq Square
			sq, bb = bb.PopLsb()
			targets := attacks.AttacksFrom(pt, attacker, sq, occAll) & p.OccupiedBb(defender)
			if targets.PopCount() < 2 {
				continue
			}
			total += forkScore(p, defender, targets, pt)
		}
	}
	return total
}

func forkScore(p *position.Position, defender Color, targets Bitboard, attackerType PieceType) int {
	var values []int
	undefended := false
	for bb := targets; bb != BbZero; {
		var sq Square
		sq, bb = bb.PopLsb()
		values = append(values, p.PieceAt(sq).TypeOf().Value())
		if p.AttackersTo(sq, defender) == BbZero {
			undefended = true
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))

	total := int(config.Settings.Eval.ForkBase)
	total += values[1] / 20
	if len(values) >= 3 {
		total += int(config.Settings.Eval.ForkTripleBonus)
	}
	if attackerType == Knight {
		total += int(config.Settings.Eval.ForkKnightBonus)
	}
	if undefended {
		total += int(config.Settings.Eval.ForkUndefendedBonus)
	}
	return total
}
