package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mknight/chessengine/internal/position"
)

// https://www.chessprogramming.org/Perft_Results
func TestPerftFromStartingPosition(t *testing.T) {
	results := []uint64{1, 20, 400, 8_902, 197_281, 4_865_609}

	for depth, want := range results {
		p := position.NewPosition()
		got := Perft(p, depth)
		assert.Equal(t, want, got, "perft(%d)", depth)
	}
}

// The "Kiwipete" position: dense with captures, promotions, castling and
// en-passant, a standard move-generator stress test.
func TestPerftKiwipete(t *testing.T) {
	p, err := position.NewPositionFromFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	results := []uint64{1, 48, 2_039, 97_862}
	for depth, want := range results {
		assert.Equal(t, want, Perft(p, depth), "perft(%d)", depth)
	}
}

func TestPerftDoesNotMutateThePosition(t *testing.T) {
	p := position.NewPosition()
	before := p.Fen()
	Perft(p, 3)
	assert.Equal(t, before, p.Fen())
}
