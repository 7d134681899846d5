// Package logging is a thin helper around "github.com/op/go-logging" so
// that every package that wants a logger can get one preconfigured
// instance in a single call instead of repeating backend/formatter
// boilerplate.
package logging

import (
	stdlog "log"
	"os"

	"github.com/op/go-logging"

	"github.com/mknight/chessengine/internal/config"
)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger
	uciLog      *logging.Logger

	standardFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-10.10s}:%{shortfile:-16.16s} %{level:-7.7s}:  %{message}`)
)

func init() {
	standardLog = logging.MustGetLogger("engine")
	searchLog = logging.MustGetLogger("search")
	uciLog = logging.MustGetLogger("uci")
}

func newBackend(level int) logging.Backend {
	backend := logging.NewLogBackend(os.Stdout, "", stdlog.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(level), "")
	return leveled
}

// GetLog returns the standard engine logger, reconfigured to the current
// config.LogLevel -- call again after changing the level (e.g. from a UCI
// `setoption` command) to pick it up.
func GetLog() *logging.Logger {
	standardLog.SetBackend(newBackend(config.LogLevel))
	return standardLog
}

// GetSearchLog returns the search-tracing logger, configured to
// config.SearchLogLevel. Kept separate from GetLog so that search node
// tracing can be enabled independently of general engine logging.
func GetSearchLog() *logging.Logger {
	searchLog.SetBackend(newBackend(config.SearchLogLevel))
	return searchLog
}

// GetUciLog returns the logger used to echo raw UCI protocol traffic.
func GetUciLog() *logging.Logger {
	uciLog.SetBackend(newBackend(config.LogLevel))
	return uciLog
}
