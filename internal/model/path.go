// Package model holds the shared building blocks of dirhop: the slot label
// alphabet, path normalization, and the coded error type.
package model

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandTilde expands a leading ~ to the user's home directory.
func ExpandTilde(path string) string {
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return path
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// Normalize converts a path to its absolute, canonical form so that relative
// invocations and symlinked paths compare consistently. A path that does not
// resolve on disk is still returned cleaned and absolute.
func Normalize(path string) (string, error) {
	abs, err := filepath.Abs(ExpandTilde(path))
	if err != nil {
		return "", WrapError(err, CodeFilesystem, "cannot make %q absolute", path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return filepath.Clean(abs), nil
}

// IsDir reports whether path exists and is a directory, following symlinks.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
