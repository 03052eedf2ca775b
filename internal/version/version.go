package version

import "fmt"

// Build metadata, injected with -ldflags "-X github.com/paucazou/wait-until/internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is the string shown by --version.
func Info() string {
	if Commit == "none" && Date == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
