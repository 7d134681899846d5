package position

import (
	"github.com/mknight/chessengine/internal/attacks"
	. "github.com/mknight/chessengine/internal/types"
)

// AttacksFrom routes to the appropriate precomputed/magic attack table for
// a piece of type pt standing on sq (§4.3).
func (p *Position) AttacksFrom(pt PieceType, sq Square, c Color) Bitboard {
	return attacks.AttacksFrom(pt, c, sq, p.occAll)
}

// AttackersTo returns every byColor piece that attacks sq, found by
// generating each piece type's attack pattern *from* sq and intersecting
// with byColor's pieces of that type -- pawns use the opposite-color pawn
// attack pattern, since "a square a pawn attacks" and "a square attacked
// by a pawn standing there" are mirror images (§4.3).
func (p *Position) AttackersTo(sq Square, byColor Color) Bitboard {
	return (attacks.PawnAttacks(byColor.Opponent(), sq) & p.pieces[byColor][Pawn]) |
		(attacks.KnightAttacks(sq) & p.pieces[byColor][Knight]) |
		(attacks.KingAttacks(sq) & p.pieces[byColor][King]) |
		(attacks.RookAttacks(sq, p.occAll) & (p.pieces[byColor][Rook] | p.pieces[byColor][Queen])) |
		(attacks.BishopAttacks(sq, p.occAll) & (p.pieces[byColor][Bishop] | p.pieces[byColor][Queen]))
}

// InCheck reports whether color's king is currently attacked.
func (p *Position) InCheck(color Color) bool {
	return p.AttackersTo(p.kingSq[color], color.Opponent()) != BbZero
}
