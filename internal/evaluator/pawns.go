package evaluator

import (
	"github.com/mknight/chessengine/internal/config"
	"github.com/mknight/chessengine/internal/position"
	. "github.com/mknight/chessengine/internal/types"
)

// adjacentFiles returns the bitboard of the files directly beside f
// (neither, one, or both edges may be absent).
func adjacentFiles(f File) Bitboard {
	var bb Bitboard
	if f > FileA {
		bb |= (f - 1).Bb()
	}
	if f < FileH {
		bb |= (f + 1).Bb()
	}
	return bb
}

// pawnStructure scores isolated pawns, doubled pawns and passed pawns
// (§4.7.3).
func pawnStructure(p *position.Position) int {
	total := 0
	total += pawnStructureFor(p, White)
	total -= pawnStructureFor(p, Black)
	return total
}

func pawnStructureFor(p *position.Position, us Color) int {
	them := us.Opponent()
	ownPawns := p.PiecesBb(us, Pawn)
	enemyPawns := p.PiecesBb(them, Pawn)
	total := 0

	for bb := ownPawns; bb != BbZero; {
		var sq Square
		sq, bb = bb.PopLsb()
		f := sq.FileOf()

		if ownPawns&adjacentFiles(f) == BbZero {
			total += int(config.Settings.Eval.PawnIsolatedMalus)
		}
		if (ownPawns & f.Bb()).PopCount() > 1 {
			total += int(config.Settings.Eval.PawnDoubledMalus)
		}
		if isPassedPawn(sq, us, enemyPawns) {
			total += int(passedPawnBonus(sq, us))
		}
	}
	return total
}

// isPassedPawn reports whether no enemy pawn occupies sq's file or either
// adjacent file on any square ahead of sq (from us's perspective).
func isPassedPawn(sq Square, us Color, enemyPawns Bitboard) bool {
	f := sq.FileOf()
	span := f.Bb() | adjacentFiles(f)
	var ahead Bitboard
	if us == White {
		for r := sq.RankOf() + 1; r <= Rank8; r++ {
			ahead |= r.Bb()
		}
	} else {
		for r := sq.RankOf() - 1; r >= Rank1; r-- {
			ahead |= r.Bb()
		}
	}
	return enemyPawns&span&ahead == BbZero
}

// passedPawnBonus returns the table value for a passed pawn indexed by how
// many ranks it has advanced from its home rank (§4.7.3: 2nd..7th rank
// advances map to indices 0..5).
func passedPawnBonus(sq Square, us Color) int16 {
	var ranksAdvanced int
	if us == White {
		ranksAdvanced = int(sq.RankOf()) - int(Rank2)
	} else {
		ranksAdvanced = int(Rank7) - int(sq.RankOf())
	}
	if ranksAdvanced < 0 {
		ranksAdvanced = 0
	}
	if ranksAdvanced > 5 {
		ranksAdvanced = 5
	}
	return config.Settings.Eval.PawnPassedBonusByRank[ranksAdvanced]
}
