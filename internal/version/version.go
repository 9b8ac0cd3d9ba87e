// Package version exposes build metadata injected at link time.
package version

import "fmt"

// Build metadata, overridden with -ldflags "-X" during release builds.
//
//nolint:gochecknoglobals // Link-time variables must be package-level vars.
var (
	// Version is the semantic version of the build.
	Version = "0.1.0"
	// Commit is the VCS revision the binary was built from.
	Commit = "none"
	// BuildTime is the timestamp of the build.
	BuildTime = "unknown"
)

// Short returns the bare version string.
func Short() string {
	return Version
}

// Full returns the version together with commit and build time.
func Full() string {
	return fmt.Sprintf("version: %s, commit: %s, built at: %s", Version, Commit, BuildTime)
}
