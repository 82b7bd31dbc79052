// Package version reports the planner's build identity. Release builds
// stamp it via ldflags:
//
//	go build -ldflags "-X courseplan/version.Tag=v1.0.0"
//
// Commit and build time fall back to the module's VCS build info when not
// stamped explicitly.
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	Tag       = "dev"
	GitCommit = ""
	BuildTime = ""
)

func String() string {
	commit, buildTime := GitCommit, BuildTime
	if commit == "" || buildTime == "" {
		info, ok := debug.ReadBuildInfo()
		if ok {
			for _, s := range info.Settings {
				if s.Key == "vcs.revision" && commit == "" && len(s.Value) >= 8 {
					commit = s.Value[:8]
				}
				if s.Key == "vcs.time" && buildTime == "" {
					buildTime = s.Value
				}
			}
		}
	}
	if commit == "" {
		commit = "unknown"
	}
	if buildTime == "" {
		buildTime = "unknown"
	}
	return fmt.Sprintf("course planner %s (commit %s, built %s)", Tag, commit, buildTime)
}
