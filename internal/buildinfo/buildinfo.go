// Package buildinfo carries version stamps injected with -ldflags.
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for the window title.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Attrs returns the build stamps as slog-style key/value pairs.
func Attrs() []any {
	return []any{"version", Version, "commit", Commit, "date", Date}
}

// String renders all stamps on one line.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
