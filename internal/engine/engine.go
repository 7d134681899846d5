// Package engine wires position history, the transposition table, the
// opening book, and search into the single façade the CLI and UCI
// frontends drive (§6).
package engine

import (
	"github.com/op/go-logging"

	"github.com/mknight/chessengine/internal/config"
	myLogging "github.com/mknight/chessengine/internal/logging"
	"github.com/mknight/chessengine/internal/movegen"
	"github.com/mknight/chessengine/internal/openingbook"
	"github.com/mknight/chessengine/internal/position"
	"github.com/mknight/chessengine/internal/search"
	. "github.com/mknight/chessengine/internal/types"
)

// Engine is a single game's worth of mutable state: the current position,
// the move history since the last `ucinewgame`/NewGame, and the
// collaborators needed to answer FindBestMove.
type Engine struct {
	log *logging.Logger

	searcher *search.Searcher
	book     *openingbook.Book

	current  *position.Position
	hashes   []uint64 // every position hash played since the last NewGame, for game-spanning repetition
}

// New builds an Engine at the standard starting position, with its own
// transposition table and an empty (disabled) opening book.
func New() *Engine {
	e := &Engine{
		log:      myLogging.GetLog(),
		searcher: search.NewSearcher(),
		book:     openingbook.NewBook(),
		current:  position.NewPosition(),
	}
	e.hashes = append(e.hashes, e.current.Hash())
	return e
}

// LoadBook attempts to load an opening book file. Failure is logged and
// otherwise ignored (§4.10): the engine plays on without a book.
func (e *Engine) LoadBook(path string) {
	if path == "" {
		return
	}
	if err := e.book.Load(path); err != nil {
		e.log.Warningf("opening book not available: %s", err)
	}
}

// NewGame resets all game-spanning state: the transposition table, and
// the move-history-based repetition tracker. Equivalent to UCI's
// `ucinewgame`.
func (e *Engine) NewGame() {
	e.searcher.ClearHash()
	e.current = position.NewPosition()
	e.hashes = e.hashes[:0]
	e.hashes = append(e.hashes, e.current.Hash())
}

// SetPositionFen replaces the current position with the one described by
// fen, resetting the move history to just that position.
func (e *Engine) SetPositionFen(fen string) error {
	p, err := position.NewPositionFromFen(fen)
	if err != nil {
		return err
	}
	e.current = p
	e.hashes = e.hashes[:0]
	e.hashes = append(e.hashes, e.current.Hash())
	return nil
}

// SetPositionStart resets the current position to the standard starting
// position, resetting the move history to just that position.
func (e *Engine) SetPositionStart() {
	e.current = position.NewPosition()
	e.hashes = e.hashes[:0]
	e.hashes = append(e.hashes, e.current.Hash())
}

// PlayUciMove applies a move given in pure coordinate notation to the
// current position, appending it to the move history. Returns false if
// the string does not name a legal move in the current position.
func (e *Engine) PlayUciMove(uciMove string) bool {
	m, ok := movegen.MoveFromUci(e.current, uciMove)
	if !ok {
		return false
	}
	e.current.DoMove(m)
	e.hashes = append(e.hashes, e.current.Hash())
	return true
}

// Position returns the current position.
func (e *Engine) Position() *position.Position {
	return e.current
}

// FindBestMove is the top-level operation named in §4.9: it first
// consults the opening book (when config.Settings.Search.UseBook is set
// and a book is loaded), then falls back to search. Returns
// (MoveNone, false) only when the position has no legal moves at all
// (checkmate or stalemate).
func (e *Engine) FindBestMove(params search.Params) (Move, bool) {
	if config.Settings.Search.UseBook && e.book.Enabled() {
		if m, ok := e.book.Probe(e.current); ok {
			e.log.Infof("book move %s", m.String())
			return m, true
		}
	}
	e.searcher.SeedGameHistory(e.hashes)
	return e.searcher.FindBestMove(e.current, params)
}

// Stats returns the metrics from the most recently completed search.
func (e *Engine) Stats() search.Statistics {
	return e.searcher.Stats()
}
