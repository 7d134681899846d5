package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mknight/chessengine/internal/position"
	. "github.com/mknight/chessengine/internal/types"
)

func TestStartingPositionHasTwentyLegalMoves(t *testing.T) {
	p := position.NewPosition()
	moves := GenerateLegalMoves(p)
	assert.Equal(t, 20, moves.Len())
}

func TestNoLegalMoveLeavesOwnKingInCheck(t *testing.T) {
	p := position.NewPosition()
	moves := GenerateLegalMoves(p)
	us := p.SideToMove()
	for i := 0; i < moves.Len(); i++ {
		p.DoMove(moves.At(i))
		assert.False(t, p.InCheck(us), "move %s leaves own king in check", moves.At(i))
		p.UndoMove()
	}
}

func TestPinnedPieceCannotMoveOffThePinLine(t *testing.T) {
	// White king e1, white rook e2 pinned by black rook e8.
	p, err := position.NewPositionFromFen("4r1k1/8/8/8/8/8/4R3/4K3 w - - 0 1")
	require.NoError(t, err)
	moves := GenerateLegalMoves(p)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.From() == SqE2 {
			assert.Equal(t, FileE, m.To().FileOf(), "pinned rook moved off the e-file: %s", m)
		}
	}
}

func TestPromotionGeneratesAllFourPieces(t *testing.T) {
	p, err := position.NewPositionFromFen("8/P6k/8/8/8/8/8/K7 w - - 0 1")
	require.NoError(t, err)
	moves := GenerateLegalMoves(p)

	seen := map[PromoPiece]bool{}
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.IsPromotion() && m.From() == SqA7 {
			seen[m.Promo()] = true
		}
	}
	assert.Len(t, seen, 4)
}

func TestCastlingRequiresEmptyAndUnattackedSquares(t *testing.T) {
	blocked, err := position.NewPositionFromFen("4k3/8/8/8/8/8/8/R3KB1R w K - 0 1")
	require.NoError(t, err)
	moves := GenerateLegalMoves(blocked)
	for i := 0; i < moves.Len(); i++ {
		assert.False(t, moves.At(i).IsCastle(), "castling should be blocked by the bishop on f1")
	}

	throughAttackedSquare, err := position.NewPositionFromFen("4k3/8/8/8/8/8/5r2/R3K2R w K - 0 1")
	require.NoError(t, err)
	moves = GenerateLegalMoves(throughAttackedSquare)
	for i := 0; i < moves.Len(); i++ {
		assert.False(t, moves.At(i).IsCastle(), "king may not castle through f1 while it is attacked")
	}

	clear, err := position.NewPositionFromFen("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)
	moves = GenerateLegalMoves(clear)
	castles := 0
	for i := 0; i < moves.Len(); i++ {
		if moves.At(i).IsCastle() {
			castles++
		}
	}
	assert.Equal(t, 2, castles)
}

func TestStalemateHasNoLegalMovesButIsNotCheck(t *testing.T) {
	p, err := position.NewPositionFromFen("k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	moves := GenerateLegalMoves(p)
	assert.Equal(t, 0, moves.Len())
	assert.False(t, p.InCheck(Black))
}

func TestCheckmateHasNoLegalMoves(t *testing.T) {
	p, err := position.NewPositionFromFen("k7/1Q6/1K6/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	moves := GenerateLegalMoves(p)
	assert.Equal(t, 0, moves.Len())
	assert.True(t, p.InCheck(Black))
}

func TestGenerateCapturesReturnsOnlyCaptures(t *testing.T) {
	p, err := position.NewPositionFromFen("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	captures := GenerateCaptures(p, false)
	for i := 0; i < captures.Len(); i++ {
		m := captures.At(i)
		assert.True(t, p.PieceAt(m.To()) != PieceNone || m.IsEnPassant(), "non-capture %s returned by GenerateCaptures", m)
	}
	assert.Equal(t, 1, captures.Len())
}

func TestMoveFromUciResolvesAgainstLegalMoves(t *testing.T) {
	p := position.NewPosition()
	m, ok := MoveFromUci(p, "e2e4")
	require.True(t, ok)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())

	_, ok = MoveFromUci(p, "e2e5")
	assert.False(t, ok)
}

func TestMoveFromUciRequiresPromotionLetterToMatch(t *testing.T) {
	p, err := position.NewPositionFromFen("8/P6k/8/8/8/8/8/K7 w - - 0 1")
	require.NoError(t, err)

	m, ok := MoveFromUci(p, "a7a8q")
	require.True(t, ok)
	assert.Equal(t, PromoQueen, m.Promo())

	_, ok = MoveFromUci(p, "a7a8")
	assert.False(t, ok, "a bare a7a8 should not resolve to a promotion move")
}
