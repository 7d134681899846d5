// Package attacks precomputes and serves the pawn/knight/king step-attack
// tables and the magic-indexed sliding-piece attack tables (C2 of the
// design). Everything here is process-wide immutable after init() runs
// and may be read concurrently without synchronization.
package attacks

import (
	. "github.com/mknight/chessengine/internal/types"
)

var (
	pawnAttacks   [ColorLength][64]Bitboard
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
)

var knightSteps = [8]struct{ df, dr int }{
	{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingSteps = [8]struct{ df, dr int }{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

func init() {
	for sq := SqA1; sq <= SqH8; sq++ {
		f, r := int(sq.FileOf()), int(sq.RankOf())

		if r+1 <= int(Rank8) {
			if f-1 >= int(FileA) {
				pawnAttacks[White][sq] = pawnAttacks[White][sq].Push(SquareOf(File(f-1), Rank(r+1)))
			}
			if f+1 <= int(FileH) {
				pawnAttacks[White][sq] = pawnAttacks[White][sq].Push(SquareOf(File(f+1), Rank(r+1)))
			}
		}
		if r-1 >= int(Rank1) {
			if f-1 >= int(FileA) {
				pawnAttacks[Black][sq] = pawnAttacks[Black][sq].Push(SquareOf(File(f-1), Rank(r-1)))
			}
			if f+1 <= int(FileH) {
				pawnAttacks[Black][sq] = pawnAttacks[Black][sq].Push(SquareOf(File(f+1), Rank(r-1)))
			}
		}

		for _, s := range knightSteps {
			nf, nr := f+s.df, r+s.dr
			if nf >= int(FileA) && nf <= int(FileH) && nr >= int(Rank1) && nr <= int(Rank8) {
				knightAttacks[sq] = knightAttacks[sq].Push(SquareOf(File(nf), Rank(nr)))
			}
		}
		for _, s := range kingSteps {
			nf, nr := f+s.df, r+s.dr
			if nf >= int(FileA) && nf <= int(FileH) && nr >= int(Rank1) && nr <= int(Rank8) {
				kingAttacks[sq] = kingAttacks[sq].Push(SquareOf(File(nf), Rank(nr)))
			}
		}
	}
}

// PawnAttacks returns the two (or one, near the edge files) diagonal
// forward squares a pawn of color c on sq attacks.
func PawnAttacks(c Color, sq Square) Bitboard { return pawnAttacks[c][sq] }

// KnightAttacks returns the fixed knight-step attack set from sq.
func KnightAttacks(sq Square) Bitboard { return knightAttacks[sq] }

// KingAttacks returns the fixed king-step attack set from sq.
func KingAttacks(sq Square) Bitboard { return kingAttacks[sq] }

// AttacksFrom returns the attack bitboard of a piece of type pt standing on
// sq, given the current full-board occupancy. For pawns, c selects which
// color's attack pattern is used.
func AttacksFrom(pt PieceType, c Color, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Pawn:
		return pawnAttacks[c][sq]
	case Knight:
		return knightAttacks[sq]
	case King:
		return kingAttacks[sq]
	case Bishop:
		return BishopAttacks(sq, occupied)
	case Rook:
		return RookAttacks(sq, occupied)
	case Queen:
		return QueenAttacks(sq, occupied)
	default:
		return BbZero
	}
}
