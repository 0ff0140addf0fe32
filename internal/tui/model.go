// Package tui is the full-screen picker: bookmarks or subdirectories with
// their slot labels, cursor navigation and a substring filter. It renders on
// stderr so stdout stays reserved for the chosen path.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Source identifies which list the picker is showing.
type Source int

const (
	SourceBookmarks Source = iota
	SourceSubdirs
)

// PickerModel holds the picker state.
type PickerModel struct {
	// Data
	Bookmarks []string
	Subdirs   []string

	// LoadSubdirs supplies the subdirectory list on the first switch to
	// that view, so a picker opened over bookmarks never needs to read
	// the working directory.
	LoadSubdirs    func() ([]string, error)
	SubdirsFetched bool

	// UI State
	Source      Source
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg

	// Filter State
	InputMode       bool
	InputBuffer     textinput.Model
	FilteredIndices []int // Indices of the active list to show
	FilterActive    bool

	// Outcome
	Choice  string
	Aborted bool
}

// InitialModel returns a picker over the given lists.
func InitialModel(bookmarks, subdirs []string, source Source) PickerModel {
	ti := textinput.New()
	ti.Placeholder = "Directory name..."
	ti.CharLimit = 50
	ti.Width = 24

	m := PickerModel{
		Bookmarks:   bookmarks,
		Subdirs:     subdirs,
		Source:      source,
		InputBuffer: ti,
	}
	m.resetFilter()
	return m
}

func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Items returns the list for the active source.
func (m PickerModel) Items() []string {
	if m.Source == SourceSubdirs {
		return m.Subdirs
	}
	return m.Bookmarks
}
