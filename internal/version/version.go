// Package version carries the build metadata stamped into the tempoclash
// binaries and served at /api/version.
package version

// Overridden at build time via -ldflags; the defaults identify local
// development builds.
var (
	Version = "dev"
	Commit  = "none"
	Date    = ""
	Dirty   = "false"
)
