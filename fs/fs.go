// Package fs provides file-system backed helpers for diffmark.
package fs

import (
	"os"
	"path/filepath"
)

// DefaultCacheDir returns the default cache directory for diffmark.
// Uses XDG_CACHE_HOME if set, otherwise falls back to ~/.cache/diffmark,
// or system temp directory if home is unavailable.
func DefaultCacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "diffmark")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), "diffmark")
	}
	return filepath.Join(home, ".cache", "diffmark")
}
