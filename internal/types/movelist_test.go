package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveListAddLenAt(t *testing.T) {
	ml := NewMoveList()
	m1 := NewMove(SqE2, SqE4)
	m2 := NewMove(SqD2, SqD4)
	ml.Add(m1)
	ml.Add(m2)

	assert.Equal(t, 2, ml.Len())
	assert.Equal(t, m1, ml.At(0))
	assert.Equal(t, m2, ml.At(1))
}

func TestMoveListContains(t *testing.T) {
	ml := NewMoveList()
	m1 := NewMove(SqE2, SqE4)
	ml.Add(m1)

	assert.True(t, ml.Contains(m1))
	assert.False(t, ml.Contains(NewMove(SqA2, SqA4)))
}

func TestMoveListMoveToFront(t *testing.T) {
	ml := NewMoveList()
	a := NewMove(SqA2, SqA3)
	b := NewMove(SqB2, SqB3)
	c := NewMove(SqC2, SqC3)
	ml.Add(a)
	ml.Add(b)
	ml.Add(c)
	ml.SetScore(2, 500)

	ml.MoveToFront(2)

	assert.Equal(t, c, ml.At(0))
	assert.Equal(t, a, ml.At(1))
	assert.Equal(t, b, ml.At(2))
	assert.Equal(t, int32(500), ml.Score(0))
}

func TestMoveListClear(t *testing.T) {
	ml := NewMoveList()
	ml.Add(NewMove(SqA2, SqA3))
	ml.Clear()
	assert.Equal(t, 0, ml.Len())
}

func TestMoveListSwap(t *testing.T) {
	ml := NewMoveList()
	a := NewMove(SqA2, SqA3)
	b := NewMove(SqB2, SqB3)
	ml.Add(a)
	ml.Add(b)
	ml.Swap(0, 1)
	assert.Equal(t, b, ml.At(0))
	assert.Equal(t, a, ml.At(1))
}
