package search

import "github.com/mknight/chessengine/internal/config"

// Params carries the per-call search limits named in §4.9: a depth
// ceiling and a minimum think-time floor. A MaxDepth of zero or less falls
// back to the configured default depth and a negative MinThinkMs to the
// configured time floor; a MinThinkMs of zero means no floor, so the
// search stops after its first completed iteration.
type Params struct {
	MaxDepth     int
	MinThinkMs   int
}

// DefaultParams returns Params seeded from the configured search
// defaults (§9 Open Questions: time management beyond this floor is out
// of scope).
func DefaultParams() Params {
	return Params{
		MaxDepth:   config.Settings.Search.MaxDepth,
		MinThinkMs: config.Settings.Search.MinThinkTime,
	}
}

func (p Params) resolve() Params {
	if p.MaxDepth <= 0 {
		p.MaxDepth = config.Settings.Search.MaxDepth
	}
	if p.MinThinkMs < 0 {
		p.MinThinkMs = config.Settings.Search.MinThinkTime
	}
	return p
}
