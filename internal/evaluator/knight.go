package evaluator

import (
	"github.com/mknight/chessengine/internal/attacks"
	"github.com/mknight/chessengine/internal/config"
	"github.com/mknight/chessengine/internal/position"
	. "github.com/mknight/chessengine/internal/types"
)

// knightOutpost rewards a knight sitting on a square no enemy pawn can
// ever reach, given the enemy's current pawn files (§4.7.8).
func knightOutpost(p *position.Position) int {
	total := 0
	total += knightOutpostFor(p, White)
	total -= knightOutpostFor(p, Black)
	return total
}

func knightOutpostFor(p *position.Position, us Color) int {
	them := us.Opponent()
	enemyPawns := p.PiecesBb(them, Pawn)
	ownPawns := p.PiecesBb(us, Pawn)
	total := 0

	for bb := p.PiecesBb(us, Knight); bb != BbZero; {
		var sq Square
		sq, bb = bb.PopLsb()
		if !outpostSafe(sq, us, enemyPawns) {
			continue
		}
		total += int(config.Settings.Eval.KnightOutpostBonus)
		if attacks.PawnAttacks(them, sq)&ownPawns != BbZero {
			total += int(config.Settings.Eval.KnightOutpostDefendedMore)
		}
	}
	return total
}

// outpostSafe reports whether no pawn belonging to the enemy could ever
// advance to attack sq, by checking adjacent-file enemy pawns that have
// not yet advanced past it.
func outpostSafe(sq Square, us Color, enemyPawns Bitboard) bool {
	candidates := enemyPawns & adjacentFiles(sq.FileOf())
	for bb := candidates; bb != BbZero; {
		var psq Square
		psq, bb = bb.PopLsb()
		if us == White {
			if int(psq.RankOf()) >= int(sq.RankOf())+1 {
				return false
			}
		} else {
			if int(psq.RankOf()) <= int(sq.RankOf())-1 {
				return false
			}
		}
	}
	return true
}
