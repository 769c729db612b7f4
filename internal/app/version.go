package app

import "fmt"

// Version, Commit and BuildTime are set via ldflags at build time:
//
//	go build -ldflags "-X github.com/heartmarshall/huayu-backend/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version reported in startup logs, /health and
// /api/capabilities. Unknown build metadata is left out.
func BuildVersion() string {
	switch {
	case Commit == "unknown" && BuildTime == "unknown":
		return Version
	case BuildTime == "unknown":
		return fmt.Sprintf("%s (commit: %s)", Version, Commit)
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
