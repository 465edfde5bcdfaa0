// Package misc holds program identity helpers shared by all commands.
package misc

import "runtime/debug"

var (
	appName = "mbx"
	version = "0.1.0-dev"
	gitHash = "unknown"
)

// GetAppName returns short program name used in logs, temp files and reports.
func GetAppName() string {
	return appName
}

// GetVersion returns program version, overridden at build time via ldflags.
func GetVersion() string {
	return version
}

// GetGitHash returns VCS revision when build info carries one.
func GetGitHash() string {
	if gitHash != "unknown" {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 8 {
				return s.Value[:8]
			}
		}
	}
	return gitHash
}
