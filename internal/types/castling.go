package types

// CastlingRights is a 4-bit set of the rights {WK, WQ, BK, BQ}.
type CastlingRights uint8

const (
	CrWhiteKing CastlingRights = 1 << iota
	CrWhiteQueen
	CrBlackKing
	CrBlackQueen
	CrNone CastlingRights = 0
	CrAll  CastlingRights = CrWhiteKing | CrWhiteQueen | CrBlackKing | CrBlackQueen
)

// Has reports whether r grants the given right(s).
func (c CastlingRights) Has(r CastlingRights) bool { return c&r != 0 }

// Clear removes the given right(s) and returns the result.
func (c CastlingRights) Clear(r CastlingRights) CastlingRights { return c &^ r }

// KingSideRight returns the king-side right for a color.
func KingSideRight(c Color) CastlingRights {
	if c == White {
		return CrWhiteKing
	}
	return CrBlackKing
}

// QueenSideRight returns the queen-side right for a color.
func QueenSideRight(c Color) CastlingRights {
	if c == White {
		return CrWhiteQueen
	}
	return CrBlackQueen
}

// BothRights returns both castling rights belonging to a color.
func BothRights(c Color) CastlingRights {
	return KingSideRight(c) | QueenSideRight(c)
}

func (c CastlingRights) String() string {
	if c == CrNone {
		return "-"
	}
	s := ""
	if c.Has(CrWhiteKing) {
		s += "K"
	}
	if c.Has(CrWhiteQueen) {
		s += "Q"
	}
	if c.Has(CrBlackKing) {
		s += "k"
	}
	if c.Has(CrBlackQueen) {
		s += "q"
	}
	return s
}

// castlingRookSquares maps the king's *destination* square on a castling
// move to the rook's (from, to) displacement -- the four canonical
// rook moves: a1<->d1, h1<->f1, a8<->d8, h8<->f8.
var castlingRookSquares = map[Square][2]Square{
	SqG1: {SqH1, SqF1},
	SqC1: {SqA1, SqD1},
	SqG8: {SqH8, SqF8},
	SqC8: {SqA8, SqD8},
}

// CastlingRookMove returns the rook's (from, to) squares for a castling
// move whose king lands on kingTo.
func CastlingRookMove(kingTo Square) (from, to Square) {
	p := castlingRookSquares[kingTo]
	return p[0], p[1]
}
