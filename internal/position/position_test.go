package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/mknight/chessengine/internal/types"
)

func TestNewPositionIsStartingPosition(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, StartFen, p.Fen())
	assert.Equal(t, CrAll, p.Castling())
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.Equal(t, 0, p.HalfmoveClock())
	assert.Equal(t, 1, p.FullmoveNumber())
	assert.Equal(t, SqE1, p.KingSquare(White))
	assert.Equal(t, SqE8, p.KingSquare(Black))
}

func TestFenRoundTripStartPosition(t *testing.T) {
	p, err := NewPositionFromFen(StartFen)
	require.NoError(t, err)
	assert.Equal(t, StartFen, p.Fen())
}

func TestFenRoundTripArbitraryPosition(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	p, err := NewPositionFromFen(fen)
	require.NoError(t, err)
	assert.Equal(t, fen, p.Fen())
}

func TestFenOmittedClocksDefault(t *testing.T) {
	p, err := NewPositionFromFen("8/8/8/8/8/8/8/K6k w - -")
	require.NoError(t, err)
	assert.Equal(t, 0, p.HalfmoveClock())
	assert.Equal(t, 1, p.FullmoveNumber())
}

func TestFenRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"8/8/8/8/8/8/8/K6k w", // fewer than 4 fields
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",        // missing a rank
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1", // bad piece char
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", // bad side to move
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w XQkq - 0 1", // bad castling char
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1",// bad ep square
	}
	for _, fen := range cases {
		_, err := NewPositionFromFen(fen)
		assert.Error(t, err, "expected an error for %q", fen)
		var fenErr *FenError
		assert.ErrorAs(t, err, &fenErr)
	}
}

func TestHashMatchesFromScratchRecomputation(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, p.computeHash(), p.Hash())
}

func TestDoMoveUndoMoveRestoresPositionExactly(t *testing.T) {
	p := NewPosition()
	before := p.Fen()
	beforeHash := p.Hash()

	m := NewMove(SqE2, SqE4)
	p.DoMove(m)
	assert.NotEqual(t, before, p.Fen())
	assert.NotEqual(t, beforeHash, p.Hash())

	p.UndoMove()
	assert.Equal(t, before, p.Fen())
	assert.Equal(t, beforeHash, p.Hash())
	assert.Equal(t, p.computeHash(), p.Hash())
}

func TestDoMoveIncrementalHashMatchesRecomputation(t *testing.T) {
	p := NewPosition()
	for _, uci := range []struct{ from, to Square }{
		{SqE2, SqE4}, {SqE7, SqE5}, {SqG1, SqF3}, {SqB8, SqC6},
	} {
		p.DoMove(NewMove(uci.from, uci.to))
		assert.Equal(t, p.computeHash(), p.Hash(), "hash drifted after %s%s", uci.from, uci.to)
	}
}

func TestEnPassantCaptureRemovesCapturedPawn(t *testing.T) {
	p, err := NewPositionFromFen("8/8/8/3pP3/8/8/8/k6K w - d6 0 1")
	require.NoError(t, err)
	p.DoMove(NewEnPassantMove(SqE5, SqD6))
	assert.Equal(t, PieceNone, p.PieceAt(SqD5))
	assert.Equal(t, WhitePawn, p.PieceAt(SqD6))
	p.UndoMove()
	assert.Equal(t, BlackPawn, p.PieceAt(SqD5))
	assert.Equal(t, PieceNone, p.PieceAt(SqD6))
}

func TestCastlingMovesRookToo(t *testing.T) {
	p, err := NewPositionFromFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	p.DoMove(NewCastleMove(SqE1, SqG1))
	assert.Equal(t, WhiteKing, p.PieceAt(SqG1))
	assert.Equal(t, WhiteRook, p.PieceAt(SqF1))
	assert.Equal(t, PieceNone, p.PieceAt(SqH1))
	assert.False(t, p.Castling().Has(CrWhiteKing))
	assert.False(t, p.Castling().Has(CrWhiteQueen))

	p.UndoMove()
	assert.Equal(t, WhiteKing, p.PieceAt(SqE1))
	assert.Equal(t, WhiteRook, p.PieceAt(SqH1))
	assert.True(t, p.Castling().Has(CrWhiteKing))
}

func TestPromotionReplacesThePawn(t *testing.T) {
	p, err := NewPositionFromFen("8/P6k/8/8/8/8/8/K7 w - - 0 1")
	require.NoError(t, err)
	p.DoMove(NewPromotionMove(SqA7, SqA8, PromoQueen))
	assert.Equal(t, WhiteQueen, p.PieceAt(SqA8))
	assert.Equal(t, PieceNone, p.PieceAt(SqA7))

	p.UndoMove()
	assert.Equal(t, WhitePawn, p.PieceAt(SqA7))
	assert.Equal(t, PieceNone, p.PieceAt(SqA8))
}

func TestHalfmoveClockResetsOnPawnMoveOrCapture(t *testing.T) {
	p, err := NewPositionFromFen("4k3/8/8/8/8/8/4P3/4K3 w - - 5 10")
	require.NoError(t, err)
	p.DoMove(NewMove(SqE2, SqE4))
	assert.Equal(t, 0, p.HalfmoveClock())
}

func TestHalfmoveClockIncrementsOnQuietMove(t *testing.T) {
	p, err := NewPositionFromFen("4k3/8/8/8/8/8/8/4K3 w - - 5 10")
	require.NoError(t, err)
	p.DoMove(NewMove(SqE1, SqD1))
	assert.Equal(t, 6, p.HalfmoveClock())
}

func TestInCheckDetectsAttackOnKing(t *testing.T) {
	p, err := NewPositionFromFen("4k3/8/8/8/8/8/8/4KR2 b - - 0 1")
	require.NoError(t, err)
	assert.False(t, p.InCheck(Black))

	p2, err := NewPositionFromFen("4k3/8/8/8/8/8/8/4RK2 b - - 0 1")
	require.NoError(t, err)
	assert.True(t, p2.InCheck(Black))
}

func TestCloneIsIndependent(t *testing.T) {
	p := NewPosition()
	clone := p.Clone()
	clone.DoMove(NewMove(SqE2, SqE4))
	assert.NotEqual(t, p.Fen(), clone.Fen())
	assert.Equal(t, StartFen, p.Fen())
}
