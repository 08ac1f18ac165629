// Package xdg provides helpers to resolve XDG Base Directory paths for identikit.
// It determines appropriate locations for configuration files and state data
// on Unix-like systems, falling back to traditional dot-directories when the
// XDG environment variables are not set.
//
// Directories holding configuration are created with private permissions
// because they can reference the identity server a user is logged into.
package xdg

import (
	"os"
	"path/filepath"
)

// ConfigDir returns the XDG config directory for identikit.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/identikit when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	dir := filepath.Join(base, "identikit")
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}

// StateDir returns the XDG state directory for identikit.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.local/state/identikit when XDG_STATE_HOME is unset.
func StateDir() (string, error) {
	base := os.Getenv("XDG_STATE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".local", "state")
	}
	dir := filepath.Join(base, "identikit")
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
