//go:build debug

package assert

import "fmt"

// DEBUG is true only in binaries built with -tags debug.
const DEBUG = true

// Assert panics with a formatted diagnostic when test is false. Reserved
// for internal invariant violations (§7): a piece-on-square lookup that
// finds no piece despite an occupancy bit being set, a hash that fails to
// match its full recomputation, and similar programming errors that must
// never pass silently in a debug build.
func Assert(test bool, msg string, a ...interface{}) {
	if !test {
		panic(fmt.Sprintf("assertion failed: "+msg, a...))
	}
}
