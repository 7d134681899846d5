package config

// searchConfiguration holds every re-tunable search constant named in the
// design (iterative-deepening floor, TT sizing, quiescence depth/margin,
// move-ordering toggles) so none of it is a scattered numeric literal.
type searchConfiguration struct {
	// Opening book
	UseBook  bool
	BookPath string

	// Transposition table
	UseTT  bool
	TTSize int // MB

	// Quiescence search
	UseQuiescence   bool
	QuiescenceDepth int // additional plies past the nominal leaf
	DeltaMargin     int // cp, §4.9 delta-pruning margin

	// Move ordering
	UseKillerMoves bool
	KillerSlots    int

	// Iterative deepening
	MaxDepth      int
	MinThinkTime  int // ms, the minimum-time floor (§5)
	AbsoluteLimit int // hard node cap as a cooperative-cancellation backstop

	// Repetition handling
	TwoFoldIsDraw bool // §4.9.1: treat a single earlier repeat on the search path as a draw
}

func init() {
	Settings.Search.UseBook = true
	Settings.Search.BookPath = "./assets/book.bin"

	Settings.Search.UseTT = true
	Settings.Search.TTSize = 64

	Settings.Search.UseQuiescence = true
	Settings.Search.QuiescenceDepth = 6
	Settings.Search.DeltaMargin = 200

	Settings.Search.UseKillerMoves = true
	Settings.Search.KillerSlots = 2

	Settings.Search.MaxDepth = 20
	Settings.Search.MinThinkTime = 1000
	Settings.Search.AbsoluteLimit = 50_000_000

	Settings.Search.TwoFoldIsDraw = true
}

func setupSearch() {}
