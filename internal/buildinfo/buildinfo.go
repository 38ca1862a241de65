package buildinfo

import (
	"fmt"
	"runtime"
)

// Set through -ldflags "-X" at release time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String formats the build information for `livebot version`.
func String() string {
	return fmt.Sprintf("livebot %s (commit=%s, date=%s, %s/%s)", Version, Commit, Date, runtime.GOOS, runtime.GOARCH)
}
