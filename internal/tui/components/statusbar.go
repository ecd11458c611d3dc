package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/linebar/internal/tui/styles"
)

const statusSeparator = " • "

// StatusBar renders a one-line summary of the indicator state. Items that
// do not fit the width are dropped from the end so the line never wraps.
type StatusBar struct{}

// NewStatusBar creates a new StatusBar instance.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// Render joins the items that fit within width and pads to fill it.
func (s StatusBar) Render(width int, items []string) string {
	width = max(width, 0)
	sepWidth := lipgloss.Width(statusSeparator)

	var b strings.Builder
	used := 0
	for i, item := range items {
		w := lipgloss.Width(item)
		if i > 0 {
			w += sepWidth
		}
		if used+w > width {
			break
		}
		if i > 0 {
			b.WriteString(statusSeparator)
		}
		b.WriteString(item)
		used += w
	}

	return styles.StatusBarStyle.Width(width).Render(b.String())
}
