// Command chess-engine is the reference CLI binary for the engine core
// (§6): it drives one search from a FEN, or runs a perft count, or
// serves a UCI session over stdin/stdout.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mknight/chessengine/internal/config"
	"github.com/mknight/chessengine/internal/engine"
	"github.com/mknight/chessengine/internal/logging"
	"github.com/mknight/chessengine/internal/movegen"
	"github.com/mknight/chessengine/internal/position"
	"github.com/mknight/chessengine/internal/search"
	"github.com/mknight/chessengine/internal/uci"
	"github.com/mknight/chessengine/internal/util"
	"github.com/mknight/chessengine/internal/version"
)

var out = message.NewPrinter(language.English)

const (
	exitOK            = 0
	exitArgError      = 1
	exitInternalError = 2
)

func main() {
	os.Exit(run())
}

// run recovers from a panic raised while the command runs and reports it
// as an internal-error exit code rather than an unhandled stack trace.
// The attack tables are built in package initialization, before run
// starts, so a failure there is not caught here.
func run() (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "internal error: %v\n", r)
			code = exitInternalError
		}
	}()
	return runFlags()
}

func runFlags() int {
	fenFlag := flag.String("fen", position.StartFen, "FEN of the position to search or perft from")
	depthFlag := flag.Int("depth", 6, "search depth (1..20)")
	timeFlag := flag.Int("time", 1000, "minimum think time in milliseconds")
	bookFlag := flag.String("book", "", "path to an opening book file")
	noBookFlag := flag.Bool("no-book", false, "disable the opening book even if --book is given")
	quietFlag := flag.Bool("quiet", false, "suppress informational logging")
	perftFlag := flag.Int("perft", 0, "run perft to the given depth instead of searching")
	versionFlag := flag.Bool("version", false, "print version and exit")
	uciFlag := flag.Bool("uci", false, "run a UCI session over stdin/stdout instead of a one-shot search")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile to ./cpu.pprof")
	flag.Parse()

	if *versionFlag {
		out.Println("chess-engine", version.Version())
		return exitOK
	}

	config.Setup()
	if *quietFlag {
		config.LogLevel = config.LogLevels["warning"]
	}
	log := logging.GetLog()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		defer log.Infof("%s", util.GcWithStats())
	}

	if *depthFlag < 1 || *depthFlag > 20 {
		fmt.Fprintln(os.Stderr, "--depth must be between 1 and 20")
		return exitArgError
	}

	if *uciFlag {
		uci.NewHandler().Loop()
		return exitOK
	}

	if *perftFlag > 0 {
		return runPerft(*fenFlag, *perftFlag)
	}

	return runSearch(*fenFlag, *depthFlag, *timeFlag, *bookFlag, *noBookFlag, log)
}

func runPerft(fen string, depth int) int {
	p, err := position.NewPositionFromFen(fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid FEN: %s\n", err)
		return exitArgError
	}
	for d := 1; d <= depth; d++ {
		start := time.Now()
		nodes := movegen.Perft(p, d)
		elapsed := time.Since(start)
		out.Printf("perft(%d) = %d (%d nps)\n", d, nodes, util.Nps(nodes, elapsed))
	}
	return exitOK
}

func runSearch(fen string, depth, thinkMs int, bookPath string, noBook bool, log interface {
	Infof(string, ...interface{})
}) int {
	eng := engine.New()
	if err := eng.SetPositionFen(fen); err != nil {
		fmt.Fprintf(os.Stderr, "invalid FEN: %s\n", err)
		return exitArgError
	}
	if noBook {
		config.Settings.Search.UseBook = false
	} else if bookPath != "" {
		eng.LoadBook(bookPath)
	}

	params := search.Params{MaxDepth: depth, MinThinkMs: thinkMs}
	move, ok := eng.FindBestMove(params)
	if !ok {
		p := eng.Position()
		if p.InCheck(p.SideToMove()) {
			out.Println("checkmate")
		} else {
			out.Println("stalemate")
		}
		return exitOK
	}

	stats := eng.Stats()
	nps := util.Nps(stats.NodesVisited, stats.Elapsed)
	log.Infof("nodes=%d depth=%d nps=%d ttHitRate=%.2f", stats.NodesVisited, stats.MaxDepthReached, nps, stats.TTHitRate())
	out.Printf("bestmove %s\n", move.String())
	return exitOK
}
