// Package nav turns user queries into concrete directory paths: the
// three-phase name search, parent and history navigation, and the labeled
// interactive selection.
package nav

import (
	"os"
	"path/filepath"
	"sort"

	"dirhop/internal/logging"
	"dirhop/internal/model"
)

// MaxAncestorDepth bounds the upward phase of the name search.
const MaxAncestorDepth = 5

// Resolver searches bookmarks, the working directory's children, and a
// bounded ancestor walk, in that order. Cwd must be normalized.
type Resolver struct {
	Cwd       string
	Bookmarks []string
	History   []string
}

// Resolve finds the directory for a free-text name. Precedence is fixed:
// a bookmark whose final component equals name, then a direct child of the
// working directory, then the ancestor walk. First match wins.
func (r *Resolver) Resolve(name string) (string, error) {
	logger := logging.GetLogger("resolver")
	logger.Debug().Str("name", name).Str("cwd", r.Cwd).Msg("resolving")

	// The search matches a single path component. A query carrying a
	// separator, or "." / "..", can never equal a directory's final
	// component, so it fails without touching the filesystem.
	if name == "" || name == "." || name == ".." || name != filepath.Base(name) {
		return "", model.NewError(model.CodeNotFound, "directory not found: %s", name)
	}

	// Phase 1: bookmarks, by final path component, case-sensitive. A
	// bookmark whose directory is gone is skipped, not an error.
	for _, b := range r.Bookmarks {
		if filepath.Base(b) != name {
			continue
		}
		if !model.IsDir(b) {
			logger.Debug().Str("bookmark", b).Msg("bookmark matches but directory is gone")
			continue
		}
		logger.Debug().Str("path", b).Msg("matched bookmark")
		return b, nil
	}

	// Phase 2: immediate child of the working directory.
	if child := filepath.Join(r.Cwd, name); model.IsDir(child) {
		logger.Debug().Str("path", child).Msg("matched child directory")
		return child, nil
	}

	// Phase 3: walk upward through at most MaxAncestorDepth ancestors. At
	// each level the ancestor's subdirectory is checked before the ancestor's
	// own name; the shallowest hit wins.
	dir := r.Cwd
	for depth := 1; depth <= MaxAncestorDepth; depth++ {
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached the filesystem root
		}
		dir = parent
		if candidate := filepath.Join(dir, name); model.IsDir(candidate) {
			logger.Debug().Str("path", candidate).Int("depth", depth).Msg("matched under ancestor")
			return candidate, nil
		}
		if filepath.Base(dir) == name {
			logger.Debug().Str("path", dir).Int("depth", depth).Msg("matched ancestor itself")
			return dir, nil
		}
	}

	return "", model.NewError(model.CodeNotFound, "directory not found: %s", name)
}

// Up returns the parent of the working directory.
func (r *Resolver) Up() (string, error) {
	parent := filepath.Dir(r.Cwd)
	if parent == r.Cwd {
		return "", model.NewError(model.CodeAtRoot, "already at the filesystem root")
	}
	return parent, nil
}

// Back returns the most recent history entry, excluding the working
// directory itself so back never resolves to a no-op.
func (r *Resolver) Back() (string, error) {
	for _, h := range r.History {
		if h == r.Cwd {
			continue
		}
		if !model.IsDir(h) {
			return "", model.NewError(model.CodeNotFound, "previous directory no longer exists: %s", h)
		}
		return h, nil
	}
	return "", model.NewError(model.CodeEmptyHistory, "no directory history")
}

// Current returns the working directory verbatim.
func (r *Resolver) Current() string {
	return r.Cwd
}

// Subdirs lists the working directory's immediate subdirectories, sorted by
// name for determinism and capped at the slot alphabet so every offered
// entry is selectable.
func (r *Resolver) Subdirs() ([]string, error) {
	entries, err := os.ReadDir(r.Cwd)
	if err != nil {
		return nil, model.WrapError(err, model.CodeFilesystem, "cannot read %s", r.Cwd)
	}

	var dirs []string
	for _, entry := range entries {
		path := filepath.Join(r.Cwd, entry.Name())
		if model.IsDir(path) { // Stat rather than entry.IsDir, to follow symlinks
			dirs = append(dirs, path)
		}
	}
	sort.Strings(dirs)

	if len(dirs) > model.MaxSlots {
		dirs = dirs[:model.MaxSlots]
	}
	return dirs, nil
}
