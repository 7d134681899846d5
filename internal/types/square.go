package types

import "fmt"

// File is a board column, a=0 .. h=7.
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileNone
	FileLength = 8
)

func (f File) IsValid() bool { return f >= FileA && f <= FileH }

func (f File) String() string {
	if !f.IsValid() {
		return "-"
	}
	return string(rune('a' + int(f)))
}

// Rank is a board row, rank 1=0 .. rank 8=7.
type Rank int8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	RankNone
	RankLength = 8
)

func (r Rank) IsValid() bool { return r >= Rank1 && r <= Rank8 }

func (r Rank) String() string {
	if !r.IsValid() {
		return "-"
	}
	return string(rune('1' + int(r)))
}

// Direction is a step offset on the 0..63 square index, valid only when the
// file-wraparound is checked by Square.To.
type Direction int8

const (
	North     Direction = 8
	East      Direction = 1
	South     Direction = -8
	West      Direction = -1
	Northeast Direction = 9
	Southeast Direction = -7
	Southwest Direction = -9
	Northwest Direction = 7
)

// Square is a board square, 0..63, a1=0, h8=63: sq = rank*8 + file.
type Square int8

const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone // 64 -- sentinel, also used as the "no en-passant square" value
)

// IsValid reports whether sq is one of the 64 real squares.
func (sq Square) IsValid() bool {
	return sq >= SqA1 && sq < SqNone
}

func (sq Square) FileOf() File { return File(sq & 7) }
func (sq Square) RankOf() Rank { return Rank(sq >> 3) }

// SquareOf builds a square from file and rank, returning SqNone for
// out-of-range inputs.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square(int(r)<<3 + int(f))
}

// MakeSquare parses a two-character algebraic square such as "e4".
// Returns SqNone if the string does not denote a valid square.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := File(s[0] - 'a')
	r := Rank(s[1] - '1')
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return SquareOf(f, r)
}

func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

// To returns the square reached by moving one step in direction d, or
// SqNone if that step would wrap around a file edge or fall off the board.
func (sq Square) To(d Direction) Square {
	switch d {
	case North:
		if sq+Square(d) > SqH8 {
			return SqNone
		}
		return sq + Square(d)
	case South:
		if sq+Square(d) < SqA1 {
			return SqNone
		}
		return sq + Square(d)
	case East, Northeast, Southeast:
		if sq.FileOf() == FileH {
			return SqNone
		}
	case West, Northwest, Southwest:
		if sq.FileOf() == FileA {
			return SqNone
		}
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
	ns := sq + Square(d)
	if !ns.IsValid() {
		return SqNone
	}
	return ns
}

// FlipVertical mirrors a square across the board's horizontal midline
// (used to index Black's piece-square tables with White's tables: sq XOR 56).
func (sq Square) FlipVertical() Square {
	return sq ^ 56
}

// SquareDistance returns the Chebyshev distance between two squares.
func SquareDistance(a, b Square) int {
	df := int(a.FileOf()) - int(b.FileOf())
	if df < 0 {
		df = -df
	}
	dr := int(a.RankOf()) - int(b.RankOf())
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}
