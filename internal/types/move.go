package types

import "strings"

// MoveFlag distinguishes the four move kinds a packed Move can encode.
type MoveFlag uint16

const (
	Normal MoveFlag = iota
	CastleFlag
	EnPassantFlag
	PromotionFlag
)

// PromoPiece is the 2-bit promotion-piece selector packed into a Move.
type PromoPiece uint16

const (
	PromoKnight PromoPiece = iota
	PromoBishop
	PromoRook
	PromoQueen
)

// PieceType returns the real piece type a PromoPiece selector denotes.
func (p PromoPiece) PieceType() PieceType {
	switch p {
	case PromoKnight:
		return Knight
	case PromoBishop:
		return Bishop
	case PromoRook:
		return Rook
	default:
		return Queen
	}
}

// Move is a 16-bit packed chess move: from(6) | to(6) | flag(2) | promo(2).
// The packed form keeps move lists cache-friendly; every accessor below
// preserves the external from/to/kind semantics regardless of the packing.
type Move uint16

const (
	fromMask  = 0x3F
	toShift   = 6
	toMask    = 0x3F
	flagShift = 12
	flagMask  = 0x3
	promoShift = 14
	promoMask  = 0x3

	MoveNone Move = 0
)

// NewMove builds a normal (non-capture-distinguishing) move.
func NewMove(from, to Square) Move {
	return Move(uint16(from)&fromMask | (uint16(to)&toMask)<<toShift)
}

// NewCastleMove builds a castling move (king's from/to squares).
func NewCastleMove(from, to Square) Move {
	return NewMove(from, to) | Move(uint16(CastleFlag)<<flagShift)
}

// NewEnPassantMove builds an en-passant capture move.
func NewEnPassantMove(from, to Square) Move {
	return NewMove(from, to) | Move(uint16(EnPassantFlag)<<flagShift)
}

// NewPromotionMove builds a promotion move.
func NewPromotionMove(from, to Square, promo PromoPiece) Move {
	return NewMove(from, to) | Move(uint16(PromotionFlag)<<flagShift) | Move(uint16(promo)<<promoShift)
}

func (m Move) From() Square { return Square(uint16(m) & fromMask) }
func (m Move) To() Square   { return Square((uint16(m) >> toShift) & toMask) }
func (m Move) Flag() MoveFlag {
	return MoveFlag((uint16(m) >> flagShift) & flagMask)
}
func (m Move) Promo() PromoPiece {
	return PromoPiece((uint16(m) >> promoShift) & promoMask)
}

func (m Move) IsCastle() bool    { return m.Flag() == CastleFlag }
func (m Move) IsEnPassant() bool { return m.Flag() == EnPassantFlag }
func (m Move) IsPromotion() bool { return m.Flag() == PromotionFlag }

func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += strings.ToLower(m.Promo().PieceType().String())
	}
	return s
}
