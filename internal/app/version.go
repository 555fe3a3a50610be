package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit, and BuildTime are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/heartmarshall/datamarket-backend/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version reported in startup logs and /health.
// Without ldflags the commit falls back to the VCS revision the toolchain
// stamped into the binary.
func BuildVersion() string {
	return formatVersion(Version, commit(debug.ReadBuildInfo), BuildTime)
}

func formatVersion(version, commit, built string) string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, built)
}

func commit(readBuildInfo func() (*debug.BuildInfo, bool)) string {
	if Commit != "unknown" {
		return Commit
	}
	info, ok := readBuildInfo()
	if !ok {
		return Commit
	}

	var rev string
	dirty := false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return Commit
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if dirty {
		rev += "-dirty"
	}
	return rev
}
