//go:build !debug

// Package assert provides a cheap internal-invariant check that compiles
// away entirely in release builds and aborts with a diagnostic in debug
// builds (built with -tags debug). Guard every call site with
// `if assert.DEBUG { ... }` so the message's argument evaluation (e.g.
// value.String()) is also eliminated by the compiler when DEBUG is false.
package assert

// DEBUG is true only in binaries built with -tags debug.
const DEBUG = false

// Assert is a no-op in release builds.
func Assert(test bool, msg string, a ...interface{}) {}
