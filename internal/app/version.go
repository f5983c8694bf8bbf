package app

import "fmt"

// Name identifies this service in log records and build info.
const Name = "bookshelf"

// Version, Commit and BuildTime are set via ldflags at build time:
//
//	go build -ldflags "-X github.com/heartmarshall/bookshelf-backend/internal/app.Version=1.2.0" ./cmd/bookshelf
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion renders the build info, e.g. "bookshelf 1.2.0 (commit: abc123, built: 2026-10-01)".
func BuildVersion() string {
	return fmt.Sprintf("%s %s (commit: %s, built: %s)", Name, Version, Commit, BuildTime)
}
