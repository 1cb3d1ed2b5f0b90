// Package dirs provides XDG Base Directory Specification compliant paths
// for all signdeck directories.
package dirs

import (
	"os"
	"path/filepath"
)

const appName = "signdeck"

// ConfigDir returns the signdeck configuration directory.
// Resolution order: XDG_CONFIG_HOME/signdeck > ~/.config/signdeck.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", appName)
	}
	return filepath.Join(home, ".config", appName)
}

// StateDir returns the signdeck state directory, where word lists live.
// Resolution order: SIGNDECK_STATE_DIR > XDG_STATE_HOME/signdeck > ~/.local/state/signdeck.
func StateDir() string {
	if dir := os.Getenv("SIGNDECK_STATE_DIR"); dir != "" {
		return dir
	}
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".local", "state", appName)
	}
	return filepath.Join(home, ".local", "state", appName)
}

// LogsDir returns the practice journal directory (StateDir/logs).
func LogsDir() string {
	return filepath.Join(StateDir(), "logs")
}
