// Package version holds the engine's release string, overridable at
// build time via -ldflags.
package version

// version is set via -ldflags "-X github.com/mknight/chessengine/internal/version.version=1.2.3"
// during release builds; "dev" otherwise.
var version = "dev"

// Version returns the engine's release identifier.
func Version() string {
	return version
}
