// Package store persists the bookmark and history lists as two flat text
// files, one absolute path per line, and implements the list mutations with
// their dedup and capacity rules. Files are rewritten in full on every save,
// through a temporary file renamed over the original so a crash mid-write
// can never leave a partial file behind.
package store

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/adrg/xdg"

	"dirhop/internal/logging"
	"dirhop/internal/model"
)

const (
	// EnvStateDir overrides the directory holding both data files.
	EnvStateDir = "DIRHOP_STATE_DIR"

	appDir        = "dirhop"
	bookmarksFile = "bookmarks"
	historyFile   = "history"
)

// MaxBookmarks matches the slot alphabet: one bookmark per label.
const MaxBookmarks = model.MaxSlots

// Store holds the two in-memory lists and knows where they live on disk.
// Bookmarks keep insertion order; History is most-recent first.
type Store struct {
	BookmarkPath string
	HistoryPath  string

	Bookmarks []string
	History   []string
}

// New returns a Store rooted at the fixed, home-relative state directory
// ($XDG_STATE_HOME/dirhop, typically ~/.local/state/dirhop), honoring the
// DIRHOP_STATE_DIR override.
func New() *Store {
	dir := os.Getenv(EnvStateDir)
	if dir == "" {
		dir = filepath.Join(xdg.StateHome, appDir)
	}
	return &Store{
		BookmarkPath: filepath.Join(dir, bookmarksFile),
		HistoryPath:  filepath.Join(dir, historyFile),
	}
}

// Load reads both lists into memory. Missing files yield empty lists; a
// present but unreadable file aborts rather than silently truncating data.
func (s *Store) Load() error {
	logger := logging.GetLogger("store")

	bookmarks, err := readLines(s.BookmarkPath)
	if err != nil {
		return err
	}
	history, err := readLines(s.HistoryPath)
	if err != nil {
		return err
	}
	s.Bookmarks, s.History = bookmarks, history

	logger.Debug().
		Int("bookmarks", len(bookmarks)).
		Int("history", len(history)).
		Msg("loaded store files")
	return nil
}

// SaveBookmarks rewrites the bookmark file atomically.
func (s *Store) SaveBookmarks() error {
	logger := logging.GetLogger("store")
	logger.Debug().
		Int("count", len(s.Bookmarks)).
		Str("path", s.BookmarkPath).
		Msg("saving bookmarks")
	return writeLines(s.BookmarkPath, s.Bookmarks)
}

// SaveHistory rewrites the history file atomically.
func (s *Store) SaveHistory() error {
	logger := logging.GetLogger("store")
	logger.Debug().
		Int("count", len(s.History)).
		Str("path", s.HistoryPath).
		Msg("saving history")
	return writeLines(s.HistoryPath, s.History)
}

// AddBookmark appends path, normalized, if absent. It reports whether the
// list changed; adding past the slot alphabet fails with CapacityExceeded
// and leaves the list untouched.
func (s *Store) AddBookmark(path string) (bool, error) {
	norm, err := model.Normalize(path)
	if err != nil {
		return false, err
	}
	if slices.Contains(s.Bookmarks, norm) {
		return false, nil
	}
	if len(s.Bookmarks) >= MaxBookmarks {
		return false, model.NewError(model.CodeCapacityExceeded,
			"maximum of %d bookmarks reached, remove one first", MaxBookmarks)
	}
	s.Bookmarks = append(s.Bookmarks, norm)
	return true, nil
}

// RemoveBookmark deletes the first matching entry, reporting whether
// anything was removed. Forgetting an unbookmarked path is not an error.
func (s *Store) RemoveBookmark(path string) (bool, error) {
	norm, err := model.Normalize(path)
	if err != nil {
		return false, err
	}
	i := slices.Index(s.Bookmarks, norm)
	if i == -1 {
		return false, nil
	}
	s.Bookmarks = slices.Delete(s.Bookmarks, i, i+1)
	return true, nil
}

// ClearBookmarks empties the bookmark list.
func (s *Store) ClearBookmarks() {
	s.Bookmarks = nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, model.WrapError(err, model.CodeFilesystem, "cannot read %s", path)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, model.WrapError(err, model.CodeFilesystem, "error reading %s", path)
	}
	return lines, nil
}

// writeLines writes the full content to a sibling temporary file, flushes,
// then renames it over the target. Concurrent invocations are last-writer-
// wins, but a reader always sees either the old or the new complete file.
func writeLines(path string, lines []string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return model.WrapError(err, model.CodeFilesystem, "cannot create %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return model.WrapError(err, model.CodeFilesystem, "cannot create temporary file in %s", dir)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	for _, line := range lines {
		if _, err := fmt.Fprintln(tmp, line); err != nil {
			tmp.Close()
			return model.WrapError(err, model.CodeFilesystem, "cannot write %s", tmp.Name())
		}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return model.WrapError(err, model.CodeFilesystem, "cannot flush %s", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		return model.WrapError(err, model.CodeFilesystem, "cannot close %s", tmp.Name())
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return model.WrapError(err, model.CodeFilesystem, "cannot chmod %s", tmp.Name())
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return model.WrapError(err, model.CodeFilesystem, "cannot replace %s", path)
	}
	return nil
}
