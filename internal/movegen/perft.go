package movegen

import (
	"github.com/mknight/chessengine/internal/position"
)

// Perft counts the leaf nodes reachable from a position at a given depth
// by full legal-move enumeration -- the canonical move-generator
// correctness test (§8, GLOSSARY).
func Perft(p *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := GenerateLegalMoves(p)
	if depth == 1 {
		return uint64(moves.Len())
	}
	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		p.DoMove(moves.At(i))
		nodes += Perft(p, depth-1)
		p.UndoMove()
	}
	return nodes
}

// Divide is Perft broken down per root move, useful for diagnosing a
// move-generator bug against a reference perft result.
func Divide(p *position.Position, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	moves := GenerateLegalMoves(p)
	for i := 0; i < moves.Len(); i++ {
		mv := moves.At(i)
		p.DoMove(mv)
		result[mv.String()] = Perft(p, depth-1)
		p.UndoMove()
	}
	return result
}
