package uci

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mknight/chessengine/internal/config"
	"github.com/mknight/chessengine/internal/engine"
	myLogging "github.com/mknight/chessengine/internal/logging"
)

func newTestHandler() *Handler {
	return &Handler{
		InIo:   bufio.NewScanner(strings.NewReader("")),
		OutIo:  bufio.NewWriter(new(bytes.Buffer)),
		eng:    engine.New(),
		log:    myLogging.GetLog(),
		uciLog: myLogging.GetUciLog(),
	}
}

func TestUciCommandAnnouncesIdentityAndOptions(t *testing.T) {
	h := newTestHandler()
	out := h.Command("uci")
	assert.Contains(t, out, "id name")
	assert.Contains(t, out, "id author")
	assert.Contains(t, out, "option name Hash")
	assert.Contains(t, out, "uciok")
}

func TestIsReadyRespondsReadyOk(t *testing.T) {
	h := newTestHandler()
	assert.Equal(t, "readyok\n", h.Command("isready"))
}

func TestPositionStartposThenGoReturnsABestMove(t *testing.T) {
	h := newTestHandler()
	h.Command("position startpos moves e2e4 e7e5")
	out := h.Command("go depth 2")
	assert.True(t, strings.HasPrefix(out, "bestmove "))
}

func TestPositionRejectsAMalformedMoveWithoutPanicking(t *testing.T) {
	h := newTestHandler()
	assert.NotPanics(t, func() {
		h.Command("position startpos moves zz99")
	})
}

func TestSetOptionHashUpdatesTheConfiguredTableSize(t *testing.T) {
	h := newTestHandler()
	original := config.Settings.Search.TTSize
	defer func() { config.Settings.Search.TTSize = original }()

	h.Command("setoption name Hash value 128")
	assert.Equal(t, 128, config.Settings.Search.TTSize)
}

func TestSetOptionOwnBookTogglesBookUsage(t *testing.T) {
	h := newTestHandler()
	original := config.Settings.Search.UseBook
	defer func() { config.Settings.Search.UseBook = original }()

	h.Command("setoption name OwnBook value false")
	assert.False(t, config.Settings.Search.UseBook)
}

func TestQuitEndsTheLoop(t *testing.T) {
	h := newTestHandler()
	assert.True(t, h.handle("quit"))
	assert.False(t, h.handle("isready"))
}
