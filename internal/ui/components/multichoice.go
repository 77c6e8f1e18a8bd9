package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/retomath/internal/ui/theme"
)

// OptionLabels are the letters shown before options.
var OptionLabels = []string{"A", "B", "C", "D"}

// MultiChoice renders a list of options. Before an answer Chosen and
// Correct are -1 and Cursor marks the highlighted option; afterwards the
// correct option is green and a wrong choice red.
type MultiChoice struct {
	Options []string
	Cursor  int
	Chosen  int
	Correct int
}

// NewMultiChoice creates an unanswered selector.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{Options: options, Chosen: -1, Correct: -1}
}

// Move shifts the cursor by delta, clamped to the options.
func (m MultiChoice) Move(delta int) MultiChoice {
	m.Cursor += delta
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	if m.Cursor > len(m.Options)-1 {
		m.Cursor = len(m.Options) - 1
	}
	return m
}

// Revealed reports whether the answer is being shown.
func (m MultiChoice) Revealed() bool { return m.Correct >= 0 }

// OptionIndex maps "1".."4" or "a".."d" to an option index.
func OptionIndex(key string, n int) (int, bool) {
	if len(key) != 1 {
		return 0, false
	}
	var idx int
	switch c := key[0]; {
	case c >= '1' && c <= '9':
		idx = int(c - '1')
	case c >= 'a' && c <= 'z':
		idx = int(c - 'a')
	default:
		return 0, false
	}
	if idx >= n || idx >= len(OptionLabels) {
		return 0, false
	}
	return idx, true
}

// View renders the options.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor && !m.Revealed() {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, OptionLabels[i], opt)

		var style lipgloss.Style
		switch {
		case m.Revealed() && i == m.Correct:
			style = theme.Correct
			line += "  ✓"
		case m.Revealed() && i == m.Chosen:
			style = theme.Incorrect
			line += "  ✗"
		case m.Revealed():
			style = theme.Muted
		case i == m.Cursor:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
