// Package openingbook implements the optional hash-to-move lookup
// collaborator (§4.10): a serialized `hash -> (move, weight)+` mapping
// consulted before search starts. A missing or corrupt file disables the
// feature rather than failing the engine.
package openingbook

import (
	"encoding/gob"
	"math/rand"
	"os"

	myLogging "github.com/mknight/chessengine/internal/logging"
	"github.com/mknight/chessengine/internal/movegen"
	"github.com/mknight/chessengine/internal/position"
	. "github.com/mknight/chessengine/internal/types"
)

var log = myLogging.GetLog()

// WeightedMove pairs a candidate book move with its relative frequency,
// so that a book with several tried replies for one position can weight
// its choice instead of always playing the first one recorded.
type WeightedMove struct {
	Move   Move
	Weight int
}

// Book is a hash-indexed lookup of book moves, loaded from a gob-encoded
// map file. The zero value is a valid, empty, disabled book.
type Book struct {
	entries     map[uint64][]WeightedMove
	initialized bool
}

// NewBook returns an empty, disabled book -- callers must Load a file to
// enable it.
func NewBook() *Book {
	return &Book{entries: make(map[uint64][]WeightedMove)}
}

// Load reads a gob-encoded book file. Any error is returned to the
// caller but is never fatal to the engine (§4.10): on error the book
// stays in whatever state it was in before the call, and Enabled()
// reports false unless a previous Load already succeeded.
func (b *Book) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		log.Warningf("opening book %q not loaded: %s", path, err)
		return err
	}
	defer f.Close()

	decoded := make(map[uint64][]WeightedMove)
	if err := gob.NewDecoder(f).Decode(&decoded); err != nil {
		log.Warningf("opening book %q could not be decoded: %s", path, err)
		return err
	}

	b.entries = decoded
	b.initialized = true
	log.Infof("opening book %q loaded with %d positions", path, len(b.entries))
	return nil
}

// Enabled reports whether a book was successfully loaded.
func (b *Book) Enabled() bool {
	return b != nil && b.initialized
}

// Probe returns a book move for p, chosen at random weighted by
// recorded frequency, re-validated as legal in p before being returned
// (§4.10: "Any move returned must be validated legal against the
// current position"). Returns (MoveNone, false) when the book is
// disabled, has no entry for p, or every recorded move has since become
// illegal (a stale book entry).
func (b *Book) Probe(p *position.Position) (Move, bool) {
	if !b.Enabled() {
		return MoveNone, false
	}
	candidates, ok := b.entries[p.Hash()]
	if !ok || len(candidates) == 0 {
		return MoveNone, false
	}

	legal := movegen.GenerateLegalMoves(p)
	totalWeight := 0
	var usable []WeightedMove
	for _, c := range candidates {
		if legal.Contains(c.Move) {
			usable = append(usable, c)
			totalWeight += c.Weight
		}
	}
	if len(usable) == 0 {
		return MoveNone, false
	}
	if totalWeight <= 0 {
		return usable[0].Move, true
	}

	pick := rand.Intn(totalWeight)
	for _, c := range usable {
		if pick < c.Weight {
			return c.Move, true
		}
		pick -= c.Weight
	}
	return usable[len(usable)-1].Move, true
}
