package position

import (
	. "github.com/mknight/chessengine/internal/types"
)

// zobristSeed is the deterministic seed used to generate the process-wide
// random key table at first use (§4.4): keeping it fixed means two
// processes agree on the same hash for the same position, which perft and
// TT-equality tests rely on.
const zobristSeed uint64 = 0x9E3779B97F4A7C15

type zobristSplitMix64 struct{ state uint64 }

func (z *zobristSplitMix64) next() uint64 {
	z.state += 0x9E3779B97F4A7C15
	x := z.state
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}

// zobristKeys is the process-wide immutable Zobrist key table: one entry
// per (color, piece, square) tuple, one per castling-right bit, one per
// en-passant file, and one "black to move" constant.
type zobristKeys struct {
	pieceSquare [ColorLength][PieceTypeLength][64]uint64
	castling    [4]uint64
	epFile      [FileLength]uint64
	blackToMove uint64
}

var zobrist zobristKeys

func init() {
	rng := zobristSplitMix64{state: zobristSeed}
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := SqA1; sq <= SqH8; sq++ {
				zobrist.pieceSquare[c][pt][sq] = rng.next()
			}
		}
	}
	for i := range zobrist.castling {
		zobrist.castling[i] = rng.next()
	}
	for f := FileA; f <= FileH; f++ {
		zobrist.epFile[f] = rng.next()
	}
	zobrist.blackToMove = rng.next()
}

func zobristPieceSquare(p Piece, sq Square) uint64 {
	return zobrist.pieceSquare[p.ColorOf()][p.TypeOf()][sq]
}

func zobristCastling(r CastlingRights) uint64 {
	var h uint64
	if r.Has(CrWhiteKing) {
		h ^= zobrist.castling[0]
	}
	if r.Has(CrWhiteQueen) {
		h ^= zobrist.castling[1]
	}
	if r.Has(CrBlackKing) {
		h ^= zobrist.castling[2]
	}
	if r.Has(CrBlackQueen) {
		h ^= zobrist.castling[3]
	}
	return h
}

func zobristEnPassant(sq Square) uint64 {
	if sq == SqNone {
		return 0
	}
	return zobrist.epFile[sq.FileOf()]
}

// computeHash recomputes the Zobrist key of a position from scratch. Used
// both to seed a freshly parsed position and, in tests, to assert that the
// incrementally maintained hash never drifts (§4.4, §8).
func (p *Position) computeHash() uint64 {
	var h uint64
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := p.pieces[c][pt]
			for bb != 0 {
				var sq Square
				sq, bb = bb.PopLsb()
				h ^= zobristPieceSquare(MakePiece(c, pt), sq)
			}
		}
	}
	h ^= zobristCastling(p.castling)
	h ^= zobristEnPassant(p.enPassant)
	if p.sideToMove == Black {
		h ^= zobrist.blackToMove
	}
	return h
}
