package nav

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dirhop/internal/logging"
	"dirhop/internal/model"
)

var (
	slotStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")) // Sky Blue/Cyan
	itemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220")) // Yellow
)

// Selector presents a labeled list and blocks for a one-line selection.
// Everything it renders goes to the informational stream, keeping stdout
// reserved for the resolved path.
type Selector struct {
	In  io.Reader
	Out io.Writer

	// BaseNames renders only the final path component of each item.
	BaseNames bool
}

// Present renders items with their slot labels, reads one line, and returns
// the selected path. Malformed input fails immediately with
// InvalidSelection; there is no retry.
func (s *Selector) Present(items []string) (string, error) {
	for i, item := range items {
		display := item
		if s.BaseNames {
			display = filepath.Base(item)
		}
		fmt.Fprintf(s.Out, "%s %s\n",
			slotStyle.Render(fmt.Sprintf("[%c]", model.Label(i))),
			itemStyle.Render(display))
	}
	fmt.Fprint(s.Out, promptStyle.Render("Select directory (0-9, a-z): "))

	line, err := bufio.NewReader(s.In).ReadString('\n')
	if err != nil && line == "" {
		return "", model.NewError(model.CodeInvalidSelection, "no selection read")
	}
	logger := logging.GetLogger("selector")
	logger.Debug().Str("input", strings.TrimSpace(line)).Msg("read selection")

	return Pick(items, strings.TrimSpace(line))
}

// Pick resolves a label string against a presented list. The label must be a
// single character, matched case-insensitively; an alphabet-valid label whose
// index falls beyond the list is still an invalid selection.
func Pick(items []string, label string) (string, error) {
	runes := []rune(label)
	if len(runes) != 1 {
		return "", model.NewError(model.CodeInvalidSelection, "invalid selection %q", label)
	}
	idx, err := model.Index(runes[0])
	if err != nil {
		return "", model.WrapError(err, model.CodeInvalidSelection, "invalid selection %q", label)
	}
	if idx >= len(items) {
		return "", model.NewError(model.CodeInvalidSelection, "selection %q is out of range", label)
	}
	return items[idx], nil
}
