package position

import (
	"github.com/mknight/chessengine/internal/assert"
	. "github.com/mknight/chessengine/internal/types"
)

// pawnPushDirection returns the direction a color's pawns move.
func pawnPushDirection(c Color) Direction {
	if c == White {
		return North
	}
	return South
}

// DoMove applies mv to p, mutating every field described in §3 and
// appending a MoveUndo record so UndoMove can restore the prior state
// bit-for-bit, including the hash (§4.5).
func (p *Position) DoMove(mv Move) {
	from, to := mv.From(), mv.To()
	moving := p.board[from]
	captured := PieceNone
	capturedSq := SqNone

	if assert.DEBUG {
		assert.Assert(moving != PieceNone, "DoMove: no piece on %s for move %s", from.String(), mv.String())
		assert.Assert(moving.ColorOf() == p.sideToMove, "DoMove: piece on %s does not belong to side to move", from.String())
		assert.Assert(p.board[to].TypeOf() != King, "DoMove: king cannot be captured by move %s", mv.String())
	}

	switch {
	case mv.IsEnPassant():
		capturedSq = to.To(pawnPushDirection(p.sideToMove.Opponent()))
		captured = p.board[capturedSq]
	case p.board[to] != PieceNone:
		captured = p.board[to]
		capturedSq = to
	}

	undo := MoveUndo{
		Move:           mv,
		CapturedPiece:  captured,
		CapturedSquare: capturedSq,
		PriorCastling:  p.castling,
		PriorEnPassant: p.enPassant,
		PriorHalfmove:  p.halfmoveClock,
		PriorHash:      p.hash,
	}
	p.history = append(p.history, undo)

	// --- XOR out the current state components (§4.5 step 3) ---
	p.hash ^= zobristPieceSquare(moving, from)
	if captured != PieceNone {
		p.hash ^= zobristPieceSquare(captured, capturedSq)
	}
	var castleRook Piece
	var rookFrom, rookTo Square
	if mv.IsCastle() {
		rookFrom, rookTo = CastlingRookMove(to)
		castleRook = p.board[rookFrom]
		p.hash ^= zobristPieceSquare(castleRook, rookFrom)
	}
	p.hash ^= zobristCastling(p.castling)
	p.hash ^= zobristEnPassant(p.enPassant)
	if p.sideToMove == Black {
		p.hash ^= zobrist.blackToMove
	}

	p.removePiece(from)
	if captured != PieceNone {
		p.removePiece(capturedSq)
	}

	switch {
	case mv.IsPromotion():
		p.putPiece(MakePiece(p.sideToMove, mv.Promo().PieceType()), to)
	default:
		p.putPiece(moving, to)
	}

	if mv.IsCastle() {
		p.movePiece(rookFrom, rookTo)
	}

	// castling-rights bookkeeping (§4.5 step 9)
	if moving.TypeOf() == King {
		p.castling = p.castling.Clear(BothRights(p.sideToMove))
	}
	p.clearCastlingRightOnTouch(from)
	p.clearCastlingRightOnTouch(to)

	p.recomputeOccAll()

	// en-passant target (§4.5 step 11)
	if moving.TypeOf() == Pawn && SquareDistance(from, to) == 2 && from.FileOf() == to.FileOf() {
		p.enPassant = from.To(pawnPushDirection(p.sideToMove))
	} else {
		p.enPassant = SqNone
	}

	// halfmove clock (§4.5 step 12)
	if moving.TypeOf() == Pawn || captured != PieceNone {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}

	if p.sideToMove == Black {
		p.fullmoveNo++
	}
	p.sideToMove = p.sideToMove.Opponent()

	// --- XOR in the new state components (§4.5 step 14) ---
	p.hash ^= zobristPieceSquare(p.board[to], to)
	if mv.IsCastle() {
		p.hash ^= zobristPieceSquare(castleRook, rookTo)
	}
	p.hash ^= zobristCastling(p.castling)
	p.hash ^= zobristEnPassant(p.enPassant)
	if p.sideToMove == Black {
		p.hash ^= zobrist.blackToMove
	}
}

// clearCastlingRightOnTouch clears the right tied to a1/h1/a8/h8 whenever
// that square is touched, either by the rook itself moving away or by an
// enemy piece capturing on it (§4.5 step 9).
func (p *Position) clearCastlingRightOnTouch(sq Square) {
	switch sq {
	case SqA1:
		p.castling = p.castling.Clear(CrWhiteQueen)
	case SqH1:
		p.castling = p.castling.Clear(CrWhiteKing)
	case SqA8:
		p.castling = p.castling.Clear(CrBlackQueen)
	case SqH8:
		p.castling = p.castling.Clear(CrBlackKing)
	}
}

// UndoMove reverses the most recent DoMove, restoring every field from
// the saved MoveUndo record. The hash is restored directly from the
// recorded pre-move hash rather than rewound incrementally -- simpler and
// provably correct (§4.5).
func (p *Position) UndoMove() {
	n := len(p.history)
	undo := p.history[n-1]
	p.history = p.history[:n-1]
	mv := undo.Move
	from, to := mv.From(), mv.To()

	if p.sideToMove == White {
		p.fullmoveNo--
	}
	p.sideToMove = p.sideToMove.Opponent()

	switch {
	case mv.IsPromotion():
		p.removePiece(to)
		p.putPiece(MakePiece(p.sideToMove, Pawn), from)
	case mv.IsCastle():
		p.movePiece(to, from)
		rookFrom, rookTo := CastlingRookMove(to)
		p.movePiece(rookTo, rookFrom)
	default:
		p.movePiece(to, from)
	}

	if undo.CapturedPiece != PieceNone {
		p.putPiece(undo.CapturedPiece, undo.CapturedSquare)
	}

	p.castling = undo.PriorCastling
	p.enPassant = undo.PriorEnPassant
	p.halfmoveClock = undo.PriorHalfmove
	p.hash = undo.PriorHash
	p.recomputeOccAll()
}
