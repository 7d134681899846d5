package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/mknight/chessengine/internal/types"
)

func TestProbeMissesOnEmptyTable(t *testing.T) {
	tt := New(1)
	_, _, hit := tt.Probe(0x1234, 5, -ValueInfinite, ValueInfinite)
	assert.False(t, hit)
}

func TestStoreThenProbeExactBound(t *testing.T) {
	tt := New(1)
	tt.Store(0xABCD, 4, Value(150), NewMove(SqE2, SqE4), BoundExact)

	score, move, hit := tt.Probe(0xABCD, 4, -ValueInfinite, ValueInfinite)
	assert.True(t, hit)
	assert.Equal(t, Value(150), score)
	assert.Equal(t, NewMove(SqE2, SqE4), move)
}

func TestProbeRespectsLowerBound(t *testing.T) {
	tt := New(1)
	tt.Store(0x11, 4, Value(100), MoveNone, BoundLower)

	_, _, hit := tt.Probe(0x11, 4, -ValueInfinite, Value(150))
	assert.False(t, hit, "a lower-bound entry below beta is not usable")

	_, _, hit = tt.Probe(0x11, 4, -ValueInfinite, Value(50))
	assert.True(t, hit, "a lower-bound entry at or above beta proves a cutoff")
}

func TestProbeRespectsUpperBound(t *testing.T) {
	tt := New(1)
	tt.Store(0x22, 4, Value(50), MoveNone, BoundUpper)

	_, _, hit := tt.Probe(0x22, 4, Value(10), ValueInfinite)
	assert.False(t, hit, "an upper-bound entry above alpha is not usable")

	_, _, hit = tt.Probe(0x22, 4, Value(100), ValueInfinite)
	assert.True(t, hit)
}

func TestProbeMissesOnShallowerStoredDepth(t *testing.T) {
	tt := New(1)
	tt.Store(0x33, 2, Value(10), MoveNone, BoundExact)

	_, bestMove, hit := tt.Probe(0x33, 6, -ValueInfinite, ValueInfinite)
	assert.False(t, hit, "a shallower stored search cannot answer a deeper probe")
	assert.Equal(t, MoveNone, bestMove, "no best move was stored for this slot")
}

func TestClearResetsTableAndStats(t *testing.T) {
	tt := New(1)
	tt.Store(0x44, 4, Value(10), MoveNone, BoundExact)
	tt.Probe(0x44, 4, -ValueInfinite, ValueInfinite)

	tt.Clear()
	hits, misses, stores := tt.Stats()
	assert.Zero(t, hits)
	assert.Zero(t, misses)
	assert.Zero(t, stores)

	_, _, hit := tt.Probe(0x44, 4, -ValueInfinite, ValueInfinite)
	assert.False(t, hit)
}

func TestHitRateComputation(t *testing.T) {
	tt := New(1)
	tt.Store(0x55, 4, Value(10), MoveNone, BoundExact)
	tt.Probe(0x55, 4, -ValueInfinite, ValueInfinite) // hit
	tt.Probe(0x66, 4, -ValueInfinite, ValueInfinite) // miss

	assert.InDelta(t, 0.5, tt.HitRate(), 0.0001)
}

func TestNewRoundsUpToAMinimumSlotCount(t *testing.T) {
	tt := New(0)
	assert.GreaterOrEqual(t, tt.Len(), 1024)
}
