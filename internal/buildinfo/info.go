package buildinfo

import "fmt"

// Set with -ldflags "-X github.com/caelum-dev/caelum/internal/buildinfo.Version=..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String formats the build information for `caelum --version`.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
