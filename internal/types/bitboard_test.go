package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardPushPopHas(t *testing.T) {
	bb := BbZero
	bb = bb.Push(SqE4)
	assert.True(t, bb.Has(SqE4))
	assert.Equal(t, 1, bb.PopCount())

	bb = bb.Pop(SqE4)
	assert.False(t, bb.Has(SqE4))
	assert.Equal(t, 0, bb.PopCount())
}

func TestBitboardPopLsbIteratesInOrder(t *testing.T) {
	bb := SqA1.Bb() | SqC1.Bb() | SqH8.Bb()
	var seen []Square
	for bb != BbZero {
		var sq Square
		sq, bb = bb.PopLsb()
		seen = append(seen, sq)
	}
	assert.Equal(t, []Square{SqA1, SqC1, SqH8}, seen)
}

func TestBitboardLsbOfEmptyIsSqNone(t *testing.T) {
	assert.Equal(t, SqNone, BbZero.Lsb())
}

func TestFileAndRankBb(t *testing.T) {
	assert.Equal(t, 8, FileA.Bb().PopCount())
	assert.Equal(t, 8, Rank1.Bb().PopCount())
	assert.True(t, FileA.Bb().Has(SqA1))
	assert.True(t, FileA.Bb().Has(SqA8))
	assert.False(t, FileA.Bb().Has(SqB1))
}
