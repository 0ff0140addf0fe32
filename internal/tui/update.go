package tui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"dirhop/internal/logging"
	"dirhop/internal/model"
)

// Update handles events.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.performFilter()
				return m, nil
			case tea.KeyEsc:
				m.InputMode = false
				m.InputBuffer.Blur()
				m.FilterActive = false
				m.InputBuffer.SetValue("")
				m.performFilter() // reset to all
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.Aborted = true
			return m, tea.Quit
		case "esc":
			if m.FilterActive {
				m.InputBuffer.Blur()
				m.FilterActive = false
				m.InputBuffer.SetValue("")
				m.performFilter()
				return m, nil
			}
			m.Aborted = true
			return m, tea.Quit
		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
			}
		case "down", "j":
			if m.SelectedIdx < len(m.FilteredIndices)-1 {
				m.SelectedIdx++
			}
		case "enter":
			if len(m.FilteredIndices) > 0 {
				m.Choice = m.Items()[m.FilteredIndices[m.SelectedIdx]]
				return m, tea.Quit
			}
		case "d":
			if m.Source != SourceSubdirs {
				m.fetchSubdirs()
				m.Source = SourceSubdirs
				m.resetFilter()
			}
		case "m":
			if m.Source != SourceBookmarks {
				m.Source = SourceBookmarks
				m.resetFilter()
			}
		case "/":
			m.InputMode = true
			m.InputBuffer.Focus()
			m.InputBuffer.SetValue("")
			return m, textinput.Blink
		}
	}

	return m, cmd
}

// fetchSubdirs runs the loader once. On failure the subdirs view comes up
// empty rather than tearing the picker down.
func (m *PickerModel) fetchSubdirs() {
	if m.SubdirsFetched || m.LoadSubdirs == nil {
		return
	}
	m.SubdirsFetched = true
	dirs, err := m.LoadSubdirs()
	if err != nil {
		logger := logging.GetLogger("picker")
		logger.Debug().Err(err).Msg("cannot list subdirectories")
		return
	}
	m.Subdirs = dirs
}

func (m *PickerModel) resetFilter() {
	m.FilterActive = false
	m.SelectedIdx = 0
	m.FilteredIndices = make([]int, len(m.Items()))
	for i := range m.Items() {
		m.FilteredIndices[i] = i
	}
}

func (m *PickerModel) performFilter() {
	term := strings.ToLower(m.InputBuffer.Value())
	if term == "" {
		m.resetFilter()
		return
	}

	m.FilterActive = true
	var result []int
	for i, item := range m.Items() {
		if strings.Contains(strings.ToLower(filepath.Base(item)), term) {
			result = append(result, i)
		}
	}
	m.FilteredIndices = result

	// Bounds check
	if m.SelectedIdx >= len(m.FilteredIndices) {
		if len(m.FilteredIndices) > 0 {
			m.SelectedIdx = len(m.FilteredIndices) - 1
		} else {
			m.SelectedIdx = 0
		}
	}
}

// Run opens the picker and returns the chosen path. The subdirectory list
// is loaded only when that view is actually shown. Quitting without a
// choice is reported as InvalidSelection so the caller exits without
// printing a path.
func Run(bookmarks []string, loadSubdirs func() ([]string, error), source Source) (string, error) {
	var subdirs []string
	fetched := false
	if source == SourceSubdirs && loadSubdirs != nil {
		dirs, err := loadSubdirs()
		if err != nil {
			return "", err
		}
		subdirs = dirs
		fetched = true
	}

	m := InitialModel(bookmarks, subdirs, source)
	m.LoadSubdirs = loadSubdirs
	m.SubdirsFetched = fetched
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(os.Stderr))

	final, err := p.Run()
	if err != nil {
		return "", model.WrapError(err, model.CodeInvalidSelection, "picker failed")
	}
	pm, ok := final.(PickerModel)
	if !ok || pm.Aborted || pm.Choice == "" {
		return "", model.NewError(model.CodeInvalidSelection, "no directory selected")
	}
	return pm.Choice, nil
}
