package movegen

import (
	"strings"

	"github.com/mknight/chessengine/internal/position"
	. "github.com/mknight/chessengine/internal/types"
)

// MoveFromUci parses pure coordinate notation ("e2e4", "e7e8q") against
// the legal moves available in p and returns the matching packed Move.
// Matching against the legal move list (rather than reconstructing the
// flags from the string) guarantees the result is legal and carries the
// correct castle/en-passant/promotion flag.
func MoveFromUci(p *position.Position, uciMove string) (Move, bool) {
	uciMove = strings.TrimSpace(uciMove)
	if len(uciMove) < 4 {
		return MoveNone, false
	}
	from := MakeSquare(uciMove[0:2])
	to := MakeSquare(uciMove[2:4])
	if !from.IsValid() || !to.IsValid() {
		return MoveNone, false
	}
	var promo PromoPiece
	wantPromo := len(uciMove) >= 5
	if wantPromo {
		switch uciMove[4] {
		case 'q':
			promo = PromoQueen
		case 'r':
			promo = PromoRook
		case 'b':
			promo = PromoBishop
		case 'n':
			promo = PromoKnight
		default:
			return MoveNone, false
		}
	}

	legal := GenerateLegalMoves(p)
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if m.From() != from || m.To() != to {
			continue
		}
		if m.IsPromotion() != wantPromo {
			continue
		}
		if wantPromo && m.Promo() != promo {
			continue
		}
		return m, true
	}
	return MoveNone, false
}
