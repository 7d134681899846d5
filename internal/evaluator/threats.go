package evaluator

import (
	"github.com/mknight/chessengine/internal/config"
	"github.com/mknight/chessengine/internal/position"
	. "github.com/mknight/chessengine/internal/types"
)

// threats penalizes hanging pieces and rewards pawns attacking pieces
// heavier than themselves (§4.7.11).
func threats(p *position.Position) int {
	total := 0
	total += threatsFor(p, White, Black)
	total -= threatsFor(p, Black, White)
	return total
}

// threatsFor scores every attacker-on-defender threat from attacker's
// point of view: a positive return favors attacker.
func threatsFor(p *position.Position, attacker, defender Color) int {
	total := 0
	for pt := Pawn; pt <= Queen; pt++ {
		for bb := p.PiecesBb(defender, pt); bb != BbZero; {
			var sq Square
			sq, bb = bb.PopLsb()
			attackersBb := p.AttackersTo(sq, attacker)
			if attackersBb == BbZero {
				continue
			}
			if p.AttackersTo(sq, defender) == BbZero {
				total += pt.Value() * int(config.Settings.Eval.HangingPenaltyPct) / 100
			}
			for a := attackersBb; a != BbZero; {
				var asq Square
				asq, a = a.PopLsb()
				if p.PieceAt(asq).TypeOf() != Pawn {
					continue
				}
				switch pt {
				case Knight, Bishop:
					total += int(config.Settings.Eval.PawnAttackKnightBishopBonus)
				case Rook:
					total += int(config.Settings.Eval.PawnAttackRookBonus)
				case Queen:
					total += int(config.Settings.Eval.PawnAttackQueenBonus)
				}
			}
		}
	}
	return total
}
