// Package config holds globally available configuration: search tunables,
// evaluation tunables and logging levels, either defaulted, read from a
// TOML settings file, or overridden from the command line.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	// ConfFile is the path to the settings file, relative to the working
	// directory unless absolute.
	ConfFile = "./config.toml"

	// LogLevel is the standard engine log level (go-logging levels:
	// 0=CRITICAL .. 5=DEBUG).
	LogLevel = 3
	// SearchLogLevel controls search node/cutoff tracing verbosity.
	SearchLogLevel = 3

	// Settings is the global configuration, populated by Setup.
	Settings conf

	initialized = false
)

// LogLevels maps the human-readable go-logging level names to their
// numeric values, for command-line flag parsing.
var LogLevels = map[string]int{
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}

type conf struct {
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup reads the TOML settings file (if present) and fills in defaults
// for anything the file does not set. A missing or malformed file is
// logged and never fatal -- only the attack tables are a hard
// startup dependency (§7).
func Setup() {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("config file not found or invalid, using defaults:", err)
	}
	setupSearch()
	setupEval()
	initialized = true
}

// String renders the current settings for diagnostics.
func (c *conf) String() string {
	var sb strings.Builder
	sb.WriteString("Search config:\n")
	dumpStruct(&sb, &c.Search)
	sb.WriteString("\nEval config:\n")
	dumpStruct(&sb, &c.Eval)
	return sb.String()
}

func dumpStruct(sb *strings.Builder, v interface{}) {
	s := reflect.ValueOf(v).Elem()
	t := s.Type()
	for i := 0; i < s.NumField(); i++ {
		sb.WriteString(fmt.Sprintf("%-2d: %-24s %-8s = %v\n", i, t.Field(i).Name, s.Field(i).Type(), s.Field(i).Interface()))
	}
}
