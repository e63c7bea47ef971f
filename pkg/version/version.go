package version

import (
	"fmt"
	"runtime"
)

// These variables are set via ldflags during build, e.g.
//
//	-X kbd_marquee/pkg/version.Version=v0.3.0
var (
	Version   = "dev"
	Commit    = "none"
	Date      = "unknown"
	GoVersion = runtime.Version()
)

func Platform() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}

// Summary returns the version with a short commit, e.g. "v0.3.0 (abc1234)".
func Summary() string {
	v := Version
	if v == "" {
		v = "dev"
	}
	if Commit == "" || Commit == "none" {
		return v
	}
	short := Commit
	if len(short) > 7 {
		short = short[:7]
	}
	return fmt.Sprintf("%s (%s)", v, short)
}

// Build describes the binary on one line for the startup log.
func Build() string {
	return fmt.Sprintf("kbd_marquee %s built %s with %s for %s", Summary(), Date, GoVersion, Platform())
}
