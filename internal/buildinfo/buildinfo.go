package buildinfo

import "fmt"

// Overridden at build time:
//
//	go build -ldflags "-X github.com/aalvaropc/recordsort/internal/buildinfo.Version=v1.0.0" ./cmd/recordsort
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("recordsort %s (commit=%s, date=%s)", Version, Commit, Date)
}
