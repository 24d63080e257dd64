// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath resolves a configured file path: a leading ~ becomes the
// user's home directory and $VAR references are replaced from the
// environment. Paths that need neither are returned unchanged.
func ExpandPath(path string) string {
	switch {
	case path == "":
		return path
	case path == "~":
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	case strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~/"))
		}
	}

	// Environment variables expand after the tilde so a value like
	// ~/$APP_DIR/app.db resolves fully.
	return os.ExpandEnv(path)
}
