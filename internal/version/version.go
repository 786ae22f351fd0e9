package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/pathglob/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/pathglob/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/pathglob/internal/version.Date={{.Date}}
)

// Info returns the multi-line version report printed by "pathglob version"
func Info() string {
	return fmt.Sprintf("pathglob version %s\n  commit: %s\n  built:  %s\n", Version, Commit, Date)
}
