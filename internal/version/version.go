// Package version holds build metadata for linebar.
package version

import "fmt"

// Set at build time, e.g.
// go build -ldflags "-X github.com/pablasso/linebar/internal/version.Version=v1.0.0"
var (
	Version   = "dev"
	CommitSHA = "unknown"
	BuildDate = "unknown"
)

// String formats the metadata for --version output.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, CommitSHA, BuildDate)
}
