package main

import (
	_ "embed"
	"runtime/debug"
	"strings"
)

//go:embed VERSION
var rawVersion string

// Version reports the tool version. Module-aware installs carry the module
// version in build info; anything else is a development build, tagged with
// the short VCS revision when one is recorded.
func Version() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
		if rev := shortRevision(info); rev != "" {
			return "devel-" + strings.TrimSpace(rawVersion) + "+" + rev
		}
	}
	return "devel-" + strings.TrimSpace(rawVersion)
}

func shortRevision(info *debug.BuildInfo) string {
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return s.Value[:7]
		}
	}
	return ""
}
