package store

import (
	"slices"

	"dirhop/internal/logging"
)

// MaxHistory bounds the most-recently-visited list.
const MaxHistory = 10

// RecordVisit moves path to the front of the history, inserting it when new
// and evicting the oldest entry past capacity. The caller passes the
// normalized directory the invocation is resolving from; persistence stays
// the caller's responsibility via SaveHistory.
func (s *Store) RecordVisit(path string) {
	if i := slices.Index(s.History, path); i != -1 {
		s.History = slices.Delete(s.History, i, i+1)
	}
	s.History = append([]string{path}, s.History...)
	if len(s.History) > MaxHistory {
		s.History = s.History[:MaxHistory]
	}

	logger := logging.GetLogger("history")
	logger.Debug().
		Str("path", path).
		Int("entries", len(s.History)).
		Msg("recorded visit")
}
