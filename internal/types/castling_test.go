package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCastlingRightsHasAndClear(t *testing.T) {
	r := CrAll
	assert.True(t, r.Has(CrWhiteKing))
	r = r.Clear(CrWhiteKing)
	assert.False(t, r.Has(CrWhiteKing))
	assert.True(t, r.Has(CrWhiteQueen|CrBlackKing|CrBlackQueen))
}

func TestCastlingRightsString(t *testing.T) {
	assert.Equal(t, "-", CrNone.String())
	assert.Equal(t, "KQkq", CrAll.String())
	assert.Equal(t, "Kk", (CrWhiteKing | CrBlackKing).String())
}

func TestCastlingRookMove(t *testing.T) {
	from, to := CastlingRookMove(SqG1)
	assert.Equal(t, SqH1, from)
	assert.Equal(t, SqF1, to)

	from, to = CastlingRookMove(SqC8)
	assert.Equal(t, SqA8, from)
	assert.Equal(t, SqD8, to)
}

func TestBothRights(t *testing.T) {
	assert.Equal(t, CrWhiteKing|CrWhiteQueen, BothRights(White))
	assert.Equal(t, CrBlackKing|CrBlackQueen, BothRights(Black))
}
