package attacks

import (
	. "github.com/mknight/chessengine/internal/types"
)

// magic holds the fancy-magic-bitboard parameters for one square of one
// sliding piece type (rook or bishop): the relevant-occupancy mask, the
// magic multiplier, the shift, and this square's slice of the shared
// attack table. Adapted from the Stockfish "fancy magics" approach.
type magic struct {
	mask    Bitboard
	number  Bitboard
	shift   uint
	attacks []Bitboard
}

func (m *magic) index(occupied Bitboard) uint {
	occ := occupied & m.mask
	occ *= m.number
	return uint(occ >> m.shift)
}

var (
	rookMagics   [64]magic
	bishopMagics [64]magic

	rookDirs   = [4]Direction{North, South, East, West}
	bishopDirs = [4]Direction{Northeast, Northwest, Southeast, Southwest}
)

// slidingAttack computes the sliding attack bitboard along directions from
// sq given an occupancy, stopping at (and including) the first blocker in
// each direction. Only used offline at init -- not on the hot path.
func slidingAttack(dirs *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	var attack Bitboard
	for _, d := range dirs {
		s := sq
		for {
			ns := s.To(d)
			if ns == SqNone {
				break
			}
			s = ns
			attack = attack.Push(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// xorshift64star is a small, fast PRNG used only to search for magic
// numbers at startup (Sebastiano Vigna's public-domain generator, as used
// by Stockfish for the same purpose).
type xorshift64star struct{ s uint64 }

func (r *xorshift64star) next() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparse returns a PRNG value with roughly 1/8th of its bits set, which
// converges to good magic candidates faster than a uniform random value.
func (r *xorshift64star) sparse() uint64 {
	return r.next() & r.next() & r.next()
}

var magicSeeds = [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

// initSlidingMagics finds a magic number for every square of one sliding
// piece type and fills in its attack table. This is the offline magic
// search described in §4.2/§6 of the design, run once at process startup
// rather than loaded from a precomputed binary blob.
func initSlidingMagics(dirs *[4]Direction, table *[64]magic) {
	var occupancy, reference [4096]Bitboard
	var epoch [4096]int
	backing := make([]Bitboard, 64*4096)

	for sq := SqA1; sq <= SqH8; sq++ {
		edges := ((Rank1.Bb() | Rank8.Bb()) &^ sq.RankOf().Bb()) |
			((FileA.Bb() | FileH.Bb()) &^ sq.FileOf().Bb())

		m := &table[sq]
		m.mask = slidingAttack(dirs, sq, BbZero) &^ edges
		m.shift = uint(64 - m.mask.PopCount())
		m.attacks = backing[int(sq)*4096 : int(sq)*4096+4096]

		size := 0
		var b Bitboard
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(dirs, sq, b)
			size++
			b = (b - m.mask) & m.mask
			if b == 0 {
				break
			}
		}

		rng := xorshift64star{s: magicSeeds[sq.RankOf()]}
		cnt := 0
		for i := 0; i < size; {
			for {
				m.number = Bitboard(rng.sparse())
				if ((m.number * m.mask) >> 56).PopCount() >= 6 {
					continue
				}
				break
			}
			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.attacks[idx] = reference[i]
				} else if m.attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

func init() {
	initSlidingMagics(&rookDirs, &rookMagics)
	initSlidingMagics(&bishopDirs, &bishopMagics)
}

// RookAttacks returns the rook attack bitboard from sq given the current
// full-board occupancy, via magic-bitboard indexing.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &rookMagics[sq]
	return m.attacks[m.index(occupied)]
}

// BishopAttacks returns the bishop attack bitboard from sq given the
// current full-board occupancy, via magic-bitboard indexing.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &bishopMagics[sq]
	return m.attacks[m.index(occupied)]
}

// QueenAttacks is the union of rook and bishop attacks from sq.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return RookAttacks(sq, occupied) | BishopAttacks(sq, occupied)
}
