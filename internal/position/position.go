// Package position implements the bitboard position representation (C3),
// its Zobrist hashing (C4), and incremental make/unmake (C6).
package position

import (
	"fmt"

	"github.com/mknight/chessengine/internal/assert"
	. "github.com/mknight/chessengine/internal/types"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is the central, mutable board-state entity (§3). Apart from the
// undo history (a slice, which Clone copies), all fields are fixed-size;
// normal usage mutates one instance in place via DoMove/UndoMove, which is
// far cheaper than copying 12 bitboards per ply.
type Position struct {
	pieces [ColorLength][PieceTypeLength]Bitboard
	occ    [ColorLength]Bitboard
	occAll Bitboard
	board  [64]Piece

	sideToMove    Color
	castling      CastlingRights
	enPassant     Square // SqNone (64) means "no en passant square"
	halfmoveClock int
	fullmoveNo    int
	kingSq        [ColorLength]Square

	hash uint64

	history []MoveUndo
}

// MoveUndo captures everything needed to reverse one DoMove call (§3).
type MoveUndo struct {
	Move            Move
	CapturedPiece   Piece
	CapturedSquare  Square
	PriorCastling   CastlingRights
	PriorEnPassant  Square
	PriorHalfmove   int
	PriorHash       uint64
}

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	p, err := NewPositionFromFen(StartFen)
	if err != nil {
		panic("start FEN must always parse: " + err.Error())
	}
	return p
}

// Clone returns a deep copy of p, independent for make/unmake.
func (p *Position) Clone() *Position {
	cp := *p
	cp.history = append([]MoveUndo(nil), p.history...)
	return &cp
}

// --- accessors (§4.3) ---

// PiecesBb returns the bitboard of pieces of type pt belonging to color c.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard { return p.pieces[c][pt] }

// OccupiedBb returns the union of all of color c's pieces.
func (p *Position) OccupiedBb(c Color) Bitboard { return p.occ[c] }

// OccupiedAll returns the union of both colors' pieces.
func (p *Position) OccupiedAll() Bitboard { return p.occAll }

// PieceAt returns the piece (if any) on sq by scanning the board cache
// (kept in sync by putPiece/removePiece; §4.3 "scanning piece bitboards
// masked by the square bit" is the conceptual contract this cache
// satisfies in O(1)).
func (p *Position) PieceAt(sq Square) Piece { return p.board[sq] }

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color { return p.sideToMove }

// Castling returns the current castling rights.
func (p *Position) Castling() CastlingRights { return p.castling }

// EnPassantSquare returns the current en-passant target square, or SqNone.
func (p *Position) EnPassantSquare() Square { return p.enPassant }

// HalfmoveClock returns plies since the last capture or pawn move.
func (p *Position) HalfmoveClock() int { return p.halfmoveClock }

// FullmoveNumber returns the current full-move counter.
func (p *Position) FullmoveNumber() int { return p.fullmoveNo }

// KingSquare returns the cached king square for color c.
func (p *Position) KingSquare(c Color) Square { return p.kingSq[c] }

// Hash returns the position's Zobrist fingerprint.
func (p *Position) Hash() uint64 { return p.hash }

// Ply returns the number of moves made on this Position since it was
// created (the length of its undo history).
func (p *Position) Ply() int { return len(p.history) }

// PieceCount returns the number of pieces of type pt belonging to c.
func (p *Position) PieceCount(c Color, pt PieceType) int {
	return p.pieces[c][pt].PopCount()
}

func (p *Position) putPiece(piece Piece, sq Square) {
	c, pt := piece.ColorOf(), piece.TypeOf()
	p.pieces[c][pt] = p.pieces[c][pt].Push(sq)
	p.occ[c] = p.occ[c].Push(sq)
	p.board[sq] = piece
	if pt == King {
		p.kingSq[c] = sq
	}
}

func (p *Position) removePiece(sq Square) Piece {
	piece := p.board[sq]
	if assert.DEBUG {
		assert.Assert(piece != PieceNone, "removePiece: no piece on %s", sq)
	}
	c, pt := piece.ColorOf(), piece.TypeOf()
	p.pieces[c][pt] = p.pieces[c][pt].Pop(sq)
	p.occ[c] = p.occ[c].Pop(sq)
	p.board[sq] = PieceNone
	return piece
}

func (p *Position) movePiece(from, to Square) {
	piece := p.removePiece(from)
	p.putPiece(piece, to)
}

func (p *Position) recomputeOccAll() {
	p.occAll = p.occ[White] | p.occ[Black]
}

func (p *Position) String() string {
	return fmt.Sprintf("%s\n", p.Fen())
}
