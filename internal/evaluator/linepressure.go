package evaluator

import (
	"github.com/mknight/chessengine/internal/config"
	"github.com/mknight/chessengine/internal/position"
	. "github.com/mknight/chessengine/internal/types"
)

type rayDir struct {
	dir        Direction
	orthogonal bool
}

var rayDirs = [8]rayDir{
	{North, true}, {South, true}, {East, true}, {West, true},
	{Northeast, false}, {Northwest, false}, {Southeast, false}, {Southwest, false},
}

// linePressure scores absolute pins, x-rays, discovered-attack potential
// and skewers (§4.7.12).
func linePressure(p *position.Position) int {
	total := 0
	total += linePressureFor(p, White, Black)
	total -= linePressureFor(p, Black, White)
	return total
}

func linePressureFor(p *position.Position, attacker, defender Color) int {
	total := 0
	total += pinsAndXrays(p, attacker, defender)
	total += skewers(p, attacker, defender)
	total += discoveredPotential(p, attacker, defender)
	return total
}

// pinsAndXrays walks every ray out from defender's king. The first piece
// hit is a candidate pinned piece; if a same-direction attacking slider is
// found behind it, the candidate is absolutely pinned. When the first
// piece belongs to attacker instead, a further attacker slider behind it
// counts as an x-ray (its view through a friendly piece onto the ray).
func pinsAndXrays(p *position.Position, attacker, defender Color) int {
	total := 0
	kingSq := p.KingSquare(defender)
	for _, rd := range rayDirs {
		first := SqNone
		cur := kingSq
		for {
			cur = cur.To(rd.dir)
			if cur == SqNone {
				break
			}
			piece := p.PieceAt(cur)
			if piece == PieceNone {
				continue
			}
			if first == SqNone {
				first = cur
				continue
			}
			slides := rd.orthogonal && (piece.TypeOf() == Rook || piece.TypeOf() == Queen) ||
				!rd.orthogonal && (piece.TypeOf() == Bishop || piece.TypeOf() == Queen)
			if !slides || piece.ColorOf() != attacker {
				break
			}
			firstPiece := p.PieceAt(first)
			if firstPiece.ColorOf() == defender {
				total += pinBonus(firstPiece.TypeOf())
			} else {
				total += int(config.Settings.Eval.XrayBonus)
			}
			break
		}
	}
	return total
}

func pinBonus(pt PieceType) int {
	v := int(config.Settings.Eval.PinMinByPiece[pt])
	if v > int(config.Settings.Eval.PinMax) {
		return int(config.Settings.Eval.PinMax)
	}
	return v
}

// skewers walks every ray outward from each of attacker's sliders. A
// skewer is found when the nearer defender piece on the ray is worth more
// than the one behind it: moving the front piece to safety exposes the
// back piece to capture.
func skewers(p *position.Position, attacker, defender Color) int {
	total := 0
	sliders := []struct {
		pt   PieceType
		orth bool
	}{{Rook, true}, {Queen, true}, {Bishop, false}, {Queen, false}}
	for _, s := range sliders {
		for bb := p.PiecesBb(attacker, s.pt); bb != BbZero; {
			var sq Square
			sq, bb = bb.PopLsb()
			total += skewersFromSquare(p, sq, defender, s.orth)
		}
	}
	return total
}

func skewersFromSquare(p *position.Position, from Square, defender Color, orthogonal bool) int {
	total := 0
	dirs := rayDirs
	for _, rd := range dirs {
		if rd.orthogonal != orthogonal {
			continue
		}
		first := SqNone
		cur := from
		for {
			cur = cur.To(rd.dir)
			if cur == SqNone {
				break
			}
			piece := p.PieceAt(cur)
			if piece == PieceNone {
				continue
			}
			if piece.ColorOf() != defender {
				break
			}
			if first == SqNone {
				first = cur
				continue
			}
			if p.PieceAt(first).TypeOf().Value() > piece.TypeOf().Value() {
				total += int(config.Settings.Eval.SkewerBonus)
			}
			break
		}
	}
	return total
}

// discoveredPotential finds attacker pieces standing between a friendly
// slider and the defending king: moving the blocker would reveal a check,
// a latent threat scored at a flat mid-range bonus (§4.7.12).
func discoveredPotential(p *position.Position, attacker, defender Color) int {
	total := 0
	kingSq := p.KingSquare(defender)
	for _, rd := range rayDirs {
		first := SqNone
		cur := kingSq
		for {
			cur = cur.To(rd.dir)
			if cur == SqNone {
				break
			}
			piece := p.PieceAt(cur)
			if piece == PieceNone {
				continue
			}
			if first == SqNone {
				first = cur
				if piece.ColorOf() != attacker {
					break
				}
				continue
			}
			slides := rd.orthogonal && (piece.TypeOf() == Rook || piece.TypeOf() == Queen) ||
				!rd.orthogonal && (piece.TypeOf() == Bishop || piece.TypeOf() == Queen)
			if slides && piece.ColorOf() == attacker {
				total += int(config.Settings.Eval.DiscoveredAttackBonus)
			}
			break
		}
	}
	return total
}
