// Package uci implements the UCI protocol handler (§6): a line-oriented
// reader over the engine façade that speaks the minimal UCI command set
// a GUI needs to drive a search.
package uci

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"

	"github.com/mknight/chessengine/internal/config"
	"github.com/mknight/chessengine/internal/engine"
	myLogging "github.com/mknight/chessengine/internal/logging"
	"github.com/mknight/chessengine/internal/position"
	"github.com/mknight/chessengine/internal/search"
	"github.com/mknight/chessengine/internal/version"
)

var regexWhitespace = regexp.MustCompile(`\s+`)
var regexUciMove = regexp.MustCompile(`^[a-h][1-8][a-h][1-8][qrbn]?$`)

// Handler drives one UCI session: an input/output stream pair and the
// single engine instance they talk to.
type Handler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	eng *engine.Engine

	log    *logging.Logger
	uciLog *logging.Logger
}

// NewHandler builds a Handler reading stdin and writing stdout.
func NewHandler() *Handler {
	return &Handler{
		InIo:   bufio.NewScanner(os.Stdin),
		OutIo:  bufio.NewWriter(os.Stdout),
		eng:    engine.New(),
		log:    myLogging.GetLog(),
		uciLog: myLogging.GetUciLog(),
	}
}

// Loop reads and handles commands until "quit".
func (h *Handler) Loop() {
	for h.InIo.Scan() {
		if h.handle(h.InIo.Text()) {
			return
		}
	}
}

// Command handles a single line and returns whatever the handler wrote
// to OutIo for it -- used by tests instead of driving real stdin/stdout.
func (h *Handler) Command(cmd string) string {
	saved := h.OutIo
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.handle(cmd)
	_ = h.OutIo.Flush()
	h.OutIo = saved
	return buf.String()
}

func (h *Handler) send(s string) {
	_, _ = h.OutIo.WriteString(s)
	_, _ = h.OutIo.WriteString("\n")
	_ = h.OutIo.Flush()
}

// handle processes one line of input, returning true iff it was "quit".
func (h *Handler) handle(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	h.uciLog.Infof("<< %s", line)
	tokens := regexWhitespace.Split(line, -1)

	switch tokens[0] {
	case "quit":
		return true
	case "uci":
		h.uciCommand()
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		h.eng.NewGame()
	case "position":
		h.positionCommand(tokens)
	case "go":
		h.goCommand(tokens)
	case "stop":
		// search is synchronous in this engine; nothing to cancel mid-flight (§5)
	case "setoption":
		h.setOptionCommand(tokens)
	default:
		h.log.Warningf("unknown command: %s", line)
	}
	return false
}

func (h *Handler) uciCommand() {
	h.send("id name chess-engine " + version.Version())
	h.send("id author the chess-engine contributors")
	h.send("option name Hash type spin default 64 min 1 max 4096")
	h.send("option name OwnBook type check default true")
	h.send("uciok")
}

func (h *Handler) setOptionCommand(tokens []string) {
	name, value, ok := parseSetOption(tokens)
	if !ok {
		h.log.Warningf("malformed setoption: %v", tokens)
		return
	}
	switch name {
	case "Hash":
		if mb, err := strconv.Atoi(value); err == nil {
			config.Settings.Search.TTSize = mb
		}
	case "OwnBook":
		config.Settings.Search.UseBook = value == "true"
	default:
		h.log.Warningf("unknown option: %s", name)
	}
}

func parseSetOption(tokens []string) (name, value string, ok bool) {
	if len(tokens) < 3 || tokens[1] != "name" {
		return "", "", false
	}
	i := 2
	var nameParts []string
	for i < len(tokens) && tokens[i] != "value" {
		nameParts = append(nameParts, tokens[i])
		i++
	}
	name = strings.Join(nameParts, " ")
	if i < len(tokens) && tokens[i] == "value" && i+1 < len(tokens) {
		value = strings.Join(tokens[i+1:], " ")
	}
	return name, value, name != ""
}

// positionCommand handles `position [startpos | fen <FEN>] [moves <uci>...]`.
func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		h.log.Warning("malformed position command")
		return
	}
	i := 1
	switch tokens[i] {
	case "startpos":
		h.eng.SetPositionStart()
		i++
	case "fen":
		i++
		var fenParts []string
		for i < len(tokens) && tokens[i] != "moves" {
			fenParts = append(fenParts, tokens[i])
			i++
		}
		fen := strings.Join(fenParts, " ")
		if err := h.eng.SetPositionFen(fen); err != nil {
			h.log.Warningf("malformed position fen %q: %s", fen, err)
			return
		}
	default:
		h.log.Warningf("malformed position command: %v", tokens)
		return
	}

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			if err := h.playMove(tokens[i]); err != nil {
				h.log.Warningf("%s", err)
				return
			}
		}
	}
}

func (h *Handler) playMove(uciMove string) error {
	if !regexUciMove.MatchString(uciMove) {
		return &MoveError{Move: uciMove, Message: "not a well-formed UCI move"}
	}
	if !h.eng.PlayUciMove(uciMove) {
		return &MoveError{Move: uciMove, Message: "illegal in the current position"}
	}
	return nil
}

// goCommand handles `go [depth N | movetime MS | infinite]`.
func (h *Handler) goCommand(tokens []string) {
	params := search.DefaultParams()
	for i := 1; i < len(tokens); i++ {
		switch tokens[i] {
		case "depth":
			if i+1 < len(tokens) {
				if d, err := strconv.Atoi(tokens[i+1]); err == nil {
					params.MaxDepth = d
				}
				i++
			}
		case "movetime":
			if i+1 < len(tokens) {
				if ms, err := strconv.Atoi(tokens[i+1]); err == nil {
					params.MinThinkMs = ms
				}
				i++
			}
		case "infinite":
			params.MaxDepth = config.Settings.Search.MaxDepth
		}
	}

	start := time.Now()
	m, ok := h.eng.FindBestMove(params)
	if !ok {
		h.send("bestmove 0000")
		return
	}
	h.log.Debugf("search finished in %s", time.Since(start))
	h.send(fmt.Sprintf("bestmove %s", m.String()))
}

// StartFen re-exports position.StartFen for frontends that only import
// this package.
const StartFen = position.StartFen
