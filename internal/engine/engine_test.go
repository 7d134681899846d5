package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mknight/chessengine/internal/search"
	. "github.com/mknight/chessengine/internal/types"
)

const startingFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func TestNewStartsAtTheStandardStartingPosition(t *testing.T) {
	e := New()
	assert.Equal(t, startingFen, e.Position().Fen())
}

func TestSetPositionFenReplacesTheCurrentPosition(t *testing.T) {
	e := New()
	err := e.SetPositionFen("k7/8/1K6/8/8/8/8/3Q4 w - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, "k7/8/1K6/8/8/8/8/3Q4 w - - 0 1", e.Position().Fen())
	assert.Len(t, e.hashes, 1, "setting a new FEN resets move history to just that position")
}

func TestSetPositionFenRejectsAMalformedFenWithoutMutatingTheCurrentPosition(t *testing.T) {
	e := New()
	before := e.Position().Fen()
	err := e.SetPositionFen("not a fen")
	assert.Error(t, err)
	assert.Equal(t, before, e.Position().Fen())
}

func TestSetPositionStartResetsToTheStandardPosition(t *testing.T) {
	e := New()
	require.NoError(t, e.SetPositionFen("k7/8/1K6/8/8/8/8/3Q4 w - - 0 1"))
	e.SetPositionStart()
	assert.Equal(t, startingFen, e.Position().Fen())
	assert.Len(t, e.hashes, 1)
}

func TestPlayUciMoveAppliesALegalMove(t *testing.T) {
	e := New()
	ok := e.PlayUciMove("e2e4")
	require.True(t, ok)
	assert.Equal(t, Pawn, e.Position().PieceAt(SqE4).TypeOf())
	assert.Len(t, e.hashes, 2)
}

func TestPlayUciMoveRejectsAnIllegalMoveWithoutMutatingTheBoard(t *testing.T) {
	e := New()
	before := e.Position().Fen()
	ok := e.PlayUciMove("e2e5")
	assert.False(t, ok)
	assert.Equal(t, before, e.Position().Fen())
	assert.Len(t, e.hashes, 1)
}

func TestNewGameClearsHistoryAndStartsFresh(t *testing.T) {
	e := New()
	require.True(t, e.PlayUciMove("e2e4"))
	require.True(t, e.PlayUciMove("e7e5"))
	e.NewGame()
	assert.Equal(t, startingFen, e.Position().Fen())
	assert.Len(t, e.hashes, 1)
}

func TestFindBestMoveReturnsAMoveForANonTerminalPosition(t *testing.T) {
	e := New()
	move, ok := e.FindBestMove(search.Params{MaxDepth: 2, MinThinkMs: 0})
	require.True(t, ok)
	assert.NotEqual(t, MoveNone, move)
}

func TestFindBestMoveReturnsFalseAtCheckmate(t *testing.T) {
	e := New()
	require.NoError(t, e.SetPositionFen("k7/1Q6/1K6/8/8/8/8/8 b - - 0 1"))
	_, ok := e.FindBestMove(search.Params{MaxDepth: 2, MinThinkMs: 0})
	assert.False(t, ok)
}

func TestLoadBookWithAMissingPathLeavesTheEngineSearchingNormally(t *testing.T) {
	e := New()
	e.LoadBook("/nonexistent/path/to/a/book.gob")
	move, ok := e.FindBestMove(search.Params{MaxDepth: 1, MinThinkMs: 0})
	require.True(t, ok)
	assert.NotEqual(t, MoveNone, move)
}

func TestLoadBookWithAnEmptyPathIsANoOp(t *testing.T) {
	e := New()
	e.LoadBook("")
	move, ok := e.FindBestMove(search.Params{MaxDepth: 1, MinThinkMs: 0})
	require.True(t, ok)
	assert.NotEqual(t, MoveNone, move)
}
