// Package version holds build metadata injected at link time.
package version

import "fmt"

// Set via -ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info returns a single-line human-readable version string.
func Info() string {
	return fmt.Sprintf("profiletool %s (commit %s, built %s)", Version, Commit, Date)
}
