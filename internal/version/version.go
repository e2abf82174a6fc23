package version

import (
	"fmt"
	"runtime"
)

// Version is the current version of the tool
const Version = "0.1.0"

var (
	// BuildTime is set during build using ldflags
	BuildTime = "unknown"

	// GitCommit is set during build using ldflags
	GitCommit = "unknown"
)

// String returns the one-line version banner
func String() string {
	return fmt.Sprintf("tabstat v%s", Version)
}

// FullString returns a detailed version string
func FullString() string {
	return fmt.Sprintf("%s (built: %s, commit: %s, go: %s, os: %s/%s)",
		String(), BuildTime, GitCommit, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
