// Package version derives the application version from build metadata:
// an -ldflags override first, then VCS info from debug.BuildInfo, then a
// "dev" fallback for test and non-git builds.
package version

import "runtime/debug"

// AppName is used in version strings and protocol handshakes.
const AppName = "tarsy"

// gitCommitOverride is set via -ldflags for container builds where .git is
// unavailable.
var gitCommitOverride string

// GitCommit is the short git commit hash (8 chars), or "dev".
var GitCommit = resolveCommit()

func resolveCommit() string {
	if gitCommitOverride != "" {
		return shorten(gitCommitOverride)
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			return shorten(s.Value)
		}
	}
	return "dev"
}

func shorten(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "tarsy/<commit>" for user-agent strings and logging.
func Full() string {
	return AppName + "/" + GitCommit
}
