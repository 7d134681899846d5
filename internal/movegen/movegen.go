// Package movegen generates fully legal chess moves (C7): pseudo-legal
// generation per piece type, filtered by a king-safety legality check.
package movegen

import (
	"github.com/mknight/chessengine/internal/attacks"
	"github.com/mknight/chessengine/internal/position"
	. "github.com/mknight/chessengine/internal/types"
)

// promoPieces enumerates all four promotion pieces in the order the
// design calls out (Q, R, B, N) -- §4.6 requires every promotion move to
// appear four times.
var promoPieces = [4]PromoPiece{PromoQueen, PromoRook, PromoBishop, PromoKnight}

// GenerateLegalMoves returns every legal move available to the side to
// move in p. Strategy: generate pseudo-legal moves quickly, then discard
// any that leave the mover's own king in check (§4.6).
func GenerateLegalMoves(p *position.Position) *MoveList {
	pseudo := generatePseudoLegal(p, false)
	return filterLegal(p, pseudo)
}

// GenerateCaptures returns every legal capturing move (used by
// quiescence search, §4.9). When includeChecks is true and the side to
// move is in check, all legal moves (not only captures) are returned,
// since a capture-only search cannot find a check-evasion that isn't a
// capture.
func GenerateCaptures(p *position.Position, includeChecks bool) *MoveList {
	if includeChecks && p.InCheck(p.SideToMove()) {
		return GenerateLegalMoves(p)
	}
	pseudo := generatePseudoLegal(p, true)
	return filterLegal(p, pseudo)
}

func generatePseudoLegal(p *position.Position, capturesOnly bool) *MoveList {
	ml := NewMoveList()
	us := p.SideToMove()
	them := us.Opponent()
	ownOcc := p.OccupiedBb(us)
	enemyOcc := p.OccupiedBb(them)
	occAll := p.OccupiedAll()

	generatePawnMoves(p, ml, us, them, occAll, enemyOcc, capturesOnly)

	for bb := p.PiecesBb(us, Knight); bb != BbZero; {
		var from Square
		from, bb = bb.PopLsb()
		addFromTargets(ml, from, attacks.KnightAttacks(from)&^ownOcc, enemyOcc, capturesOnly)
	}
	for bb := p.PiecesBb(us, Bishop); bb != BbZero; {
		var from Square
		from, bb = bb.PopLsb()
		addFromTargets(ml, from, attacks.BishopAttacks(from, occAll)&^ownOcc, enemyOcc, capturesOnly)
	}
	for bb := p.PiecesBb(us, Rook); bb != BbZero; {
		var from Square
		from, bb = bb.PopLsb()
		addFromTargets(ml, from, attacks.RookAttacks(from, occAll)&^ownOcc, enemyOcc, capturesOnly)
	}
	for bb := p.PiecesBb(us, Queen); bb != BbZero; {
		var from Square
		from, bb = bb.PopLsb()
		addFromTargets(ml, from, attacks.QueenAttacks(from, occAll)&^ownOcc, enemyOcc, capturesOnly)
	}

	kingSq := p.KingSquare(us)
	addFromTargets(ml, kingSq, attacks.KingAttacks(kingSq)&^ownOcc, enemyOcc, capturesOnly)
	if !capturesOnly {
		generateCastling(p, ml, us)
	}

	return ml
}

// addFromTargets appends one move per set bit of targets, tagging it as a
// capture unless capturesOnly restricts generation to captures only (in
// which case quiet targets are skipped entirely).
func addFromTargets(ml *MoveList, from Square, targets, enemyOcc Bitboard, capturesOnly bool) {
	for targets != BbZero {
		var to Square
		to, targets = targets.PopLsb()
		if capturesOnly && !enemyOcc.Has(to) {
			continue
		}
		ml.Add(NewMove(from, to))
	}
}

func generatePawnMoves(p *position.Position, ml *MoveList, us, them Color, occAll, enemyOcc Bitboard, capturesOnly bool) {
	push := North
	startRank, promoRank := Rank2, Rank8
	if us == Black {
		push = South
		startRank, promoRank = Rank7, Rank1
	}

	pawns := p.PiecesBb(us, Pawn)
	for bb := pawns; bb != BbZero; {
		var from Square
		from, bb = bb.PopLsb()

		one := from.To(push)
		if one != SqNone {
			if !capturesOnly && !occAll.Has(one) {
				if one.RankOf() == promoRank {
					addPromotions(ml, from, one)
				} else {
					ml.Add(NewMove(from, one))
					if from.RankOf() == startRank {
						two := one.To(push)
						if two != SqNone && !occAll.Has(two) {
							ml.Add(NewMove(from, two))
						}
					}
				}
			}
		}

		for _, capDir := range pawnCaptureDirs(us) {
			to := from.To(capDir)
			if to == SqNone {
				continue
			}
			switch {
			case enemyOcc.Has(to):
				if to.RankOf() == promoRank {
					addPromotions(ml, from, to)
				} else {
					ml.Add(NewMove(from, to))
				}
			case to == p.EnPassantSquare():
				ml.Add(NewEnPassantMove(from, to))
			}
		}
	}
}

func pawnCaptureDirs(c Color) [2]Direction {
	if c == White {
		return [2]Direction{Northeast, Northwest}
	}
	return [2]Direction{Southeast, Southwest}
}

func addPromotions(ml *MoveList, from, to Square) {
	for _, promo := range promoPieces {
		ml.Add(NewPromotionMove(from, to, promo))
	}
}

// generateCastling appends castling moves when the preconditions in §4.6
// hold: the right is set, the squares between king and rook are empty,
// the king is not in check, and the squares it passes through are not
// attacked. The landing square's own safety is caught by filterLegal.
func generateCastling(p *position.Position, ml *MoveList, us Color) {
	if p.InCheck(us) {
		return
	}
	occAll := p.OccupiedAll()
	them := us.Opponent()

	type castle struct {
		right              CastlingRights
		kingFrom, kingTo   Square
		emptySquares       Bitboard
		passThroughSquares [2]Square
	}
	var candidates []castle
	if us == White {
		candidates = []castle{
			{CrWhiteKing, SqE1, SqG1, SqF1.Bb() | SqG1.Bb(), [2]Square{SqE1, SqF1}},
			{CrWhiteQueen, SqE1, SqC1, SqB1.Bb() | SqC1.Bb() | SqD1.Bb(), [2]Square{SqE1, SqD1}},
		}
	} else {
		candidates = []castle{
			{CrBlackKing, SqE8, SqG8, SqF8.Bb() | SqG8.Bb(), [2]Square{SqE8, SqF8}},
			{CrBlackQueen, SqE8, SqC8, SqB8.Bb() | SqC8.Bb() | SqD8.Bb(), [2]Square{SqE8, SqD8}},
		}
	}

	for _, c := range candidates {
		if !p.Castling().Has(c.right) {
			continue
		}
		if occAll&c.emptySquares != BbZero {
			continue
		}
		attacked := false
		for _, sq := range c.passThroughSquares {
			if p.AttackersTo(sq, them) != BbZero {
				attacked = true
				break
			}
		}
		if attacked {
			continue
		}
		ml.Add(NewCastleMove(c.kingFrom, c.kingTo))
	}
}

// filterLegal discards any pseudo-legal move that leaves the mover's own
// king attacked after being made (§4.6).
func filterLegal(p *position.Position, pseudo *MoveList) *MoveList {
	legal := NewMoveList()
	us := p.SideToMove()
	for i := 0; i < pseudo.Len(); i++ {
		mv := pseudo.At(i)
		p.DoMove(mv)
		if !p.InCheck(us) {
			legal.Add(mv)
		}
		p.UndoMove()
	}
	return legal
}
