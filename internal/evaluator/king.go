package evaluator

import (
	"github.com/mknight/chessengine/internal/attacks"
	"github.com/mknight/chessengine/internal/config"
	"github.com/mknight/chessengine/internal/position"
	. "github.com/mknight/chessengine/internal/types"
)

// kingSafety combines castled bonus, pawn shield, open/semi-open adjacent
// files and king-zone pressure (§4.7.5).
func kingSafety(p *position.Position) int {
	total := 0
	total += kingSafetyFor(p, White)
	total -= kingSafetyFor(p, Black)
	return total
}

func kingSafetyFor(p *position.Position, us Color) int {
	them := us.Opponent()
	kingSq := p.KingSquare(us)
	total := 0

	if isCastledSquare(kingSq, us) {
		total += int(config.Settings.Eval.KingCastledBonus)
	}

	shield := frontShieldSquares(kingSq, us)
	shieldCount := (shield & p.PiecesBb(us, Pawn)).PopCount()
	total += shieldCount * int(config.Settings.Eval.KingShieldBonusPerPawn)

	allPawns := p.PiecesBb(White, Pawn) | p.PiecesBb(Black, Pawn)
	ownPawns := p.PiecesBb(us, Pawn)
	kf := kingSq.FileOf()
	for f := kf - 1; f <= kf+1; f++ {
		if f < FileA || f > FileH {
			continue
		}
		if allPawns&f.Bb() == BbZero || ownPawns&f.Bb() == BbZero {
			total -= int(config.Settings.Eval.KingOpenFileMalus)
		}
	}

	zone := attacks.KingAttacks(kingSq) | kingSq.Bb()
	enemyInZone := (zone & p.OccupiedBb(them)).PopCount()
	total -= enemyInZone * int(config.Settings.Eval.KingZoneEnemyMalus)

	for bb := zone; bb != BbZero; {
		var sq Square
		sq, bb = bb.PopLsb()
		attackers := p.AttackersTo(sq, them)
		for a := attackers; a != BbZero; {
			var asq Square
			asq, a = a.PopLsb()
			switch p.PieceAt(asq).TypeOf() {
			case Pawn:
				total -= int(config.Settings.Eval.KingZonePawnAttacker)
			case Knight, Bishop:
				total -= int(config.Settings.Eval.KingZoneMinorAttacker)
			case Rook:
				total -= int(config.Settings.Eval.KingZoneRookAttacker)
			case Queen:
				total -= int(config.Settings.Eval.KingZoneQueenAttacker)
			}
		}
	}

	return total
}

// isCastledSquare reports whether sq is one of the post-castle king
// resting squares (g1/c1 for White, g8/c8 for Black).
func isCastledSquare(sq Square, us Color) bool {
	if us == White {
		return sq == SqG1 || sq == SqC1
	}
	return sq == SqG8 || sq == SqC8
}

// frontShieldSquares returns the (up to three) squares one rank ahead of
// the king's file and its neighbors, used as pawn-shield candidates.
func frontShieldSquares(kingSq Square, us Color) Bitboard {
	dir := North
	if us == Black {
		dir = South
	}
	var bb Bitboard
	center := kingSq.To(dir)
	if center != SqNone {
		bb |= center.Bb()
	}
	if w := kingSq.To(West); w != SqNone {
		if wf := w.To(dir); wf != SqNone {
			bb |= wf.Bb()
		}
	}
	if e := kingSq.To(East); e != SqNone {
		if ef := e.To(dir); ef != SqNone {
			bb |= ef.Bb()
		}
	}
	return bb
}
