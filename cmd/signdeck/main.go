// Command signdeck is a flashcard trainer for sign-language word lists.
package main

import (
	"os"
	"runtime/debug"

	"github.com/alexander-akhmetov/signdeck/internal/cli"
)

// Set via -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if version == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			b := buildFromSettings(info.Settings)
			commit, date = b.commit, b.date
		}
	}
	cli.SetVersionInfo(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

type build struct {
	commit string
	date   string
}

// buildFromSettings reads the vcs stamp the go tool embeds in dev builds.
func buildFromSettings(settings []debug.BuildSetting) build {
	b := build{commit: "unknown", date: "unknown"}
	var dirty bool
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if len(s.Value) >= 7 {
				b.commit = s.Value[:7]
			}
		case "vcs.time":
			if s.Value != "" {
				b.date = s.Value
			}
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if dirty && b.commit != "unknown" {
		b.commit += "-dirty"
	}
	return b
}
