package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mknight/chessengine/internal/config"
	"github.com/mknight/chessengine/internal/position"
)

func TestStartPositionScoreIsNearZero(t *testing.T) {
	e := NewEvaluator()
	p := position.NewPosition()
	score := e.Evaluate(p)
	assert.Less(t, int(score), 50)
	assert.Greater(t, int(score), -50)
}

func TestEvaluateIsColorSymmetric(t *testing.T) {
	e := NewEvaluator()
	whiteUpAKnight, err := position.NewPositionFromFen("4k3/8/8/8/8/8/3N4/4K3 w - - 0 1")
	require.NoError(t, err)
	// The vertical-flip, color-swap mirror of the position above: the same
	// material imbalance, now favoring the side to move from Black's seat.
	blackUpAKnight, err := position.NewPositionFromFen("4k3/3n4/8/8/8/8/8/4K3 b - - 0 1")
	require.NoError(t, err)

	assert.Equal(t, e.Evaluate(whiteUpAKnight), e.Evaluate(blackUpAKnight))
}

func TestFreeKnightIsWorthAtLeastThreeHundredCentipawns(t *testing.T) {
	e := NewEvaluator()
	base, err := position.NewPositionFromFen("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	withKnight, err := position.NewPositionFromFen("4k3/8/8/8/8/8/3N4/4K3 w - - 0 1")
	require.NoError(t, err)

	baseScore := e.Evaluate(base)
	knightScore := e.Evaluate(withKnight)
	assert.GreaterOrEqual(t, int(knightScore-baseScore), 300)
}

func TestEvaluateFlipsSignForBlackToMove(t *testing.T) {
	e := NewEvaluator()
	whiteUp, err := position.NewPositionFromFen("4k3/8/8/8/8/8/3N4/4K3 w - - 0 1")
	require.NoError(t, err)
	blackToMoveSamePosition, err := position.NewPositionFromFen("4k3/8/8/8/8/8/3N4/4K3 b - - 0 1")
	require.NoError(t, err)

	// The tempo term favors whichever side is to move, so apart from it the
	// two scores are exact negations of each other.
	tempoBonus := int(config.Settings.Eval.Tempo)
	assert.Equal(t, int(e.Evaluate(whiteUp))-tempoBonus, -(int(e.Evaluate(blackToMoveSamePosition)) - tempoBonus))
}

func TestGamePhaseClampsToRange(t *testing.T) {
	empty, err := position.NewPositionFromFen("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, 0, gamePhase(empty))

	full := position.NewPosition()
	assert.Equal(t, gamePhaseMax, gamePhase(full))
}
