package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dirhop/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(lipgloss.Color("205")) // Pinkish

	unselectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(4).
				Foreground(lipgloss.Color("252"))

	slotLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")) // Sky Blue/Cyan

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

func (m PickerModel) View() string {
	var b strings.Builder

	title := "Bookmarks"
	if m.Source == SourceSubdirs {
		title = "Subdirectories"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if len(m.FilteredIndices) == 0 {
		if m.FilterActive {
			b.WriteString(dimStyle.Render("  no match for filter"))
		} else {
			b.WriteString(dimStyle.Render("  nothing to select"))
		}
		b.WriteString("\n")
	}

	// Windowing: keep the cursor visible when the list outgrows the screen.
	visible := len(m.FilteredIndices)
	if h := m.WindowSize.Height - 7; h > 0 && visible > h {
		visible = h
	}
	start := 0
	if m.SelectedIdx >= visible {
		start = m.SelectedIdx - visible + 1
	}

	for pos := start; pos < start+visible && pos < len(m.FilteredIndices); pos++ {
		idx := m.FilteredIndices[pos]
		line := fmt.Sprintf("%s %s",
			slotLabelStyle.Render(fmt.Sprintf("[%c]", model.Label(idx))),
			m.Items()[idx])
		if pos == m.SelectedIdx {
			b.WriteString(selectedItemStyle.Render("> " + line))
		} else {
			b.WriteString(unselectedItemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if m.InputMode {
		b.WriteString("\nFilter: " + m.InputBuffer.View() + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("enter select · j/k move · d subdirs · m bookmarks · / filter · q quit"))
	b.WriteString("\n")
	return b.String()
}
