// Package version provides build version information.
package version

import (
	"fmt"
	"runtime"
)

// These are set via ldflags at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Short returns just the version number.
func Short() string {
	return Version
}

// Info returns a one-line build description.
func Info() string {
	commitShort := Commit
	if len(commitShort) > 7 {
		commitShort = commitShort[:7]
	}
	kind := "release"
	switch {
	case IsDevBuild():
		kind = "dev"
	case IsPrerelease():
		kind = "prerelease"
	}
	return fmt.Sprintf("ymstat %s (%s, %s) built on %s with %s",
		Version, commitShort, kind, BuildDate, runtime.Version())
}
