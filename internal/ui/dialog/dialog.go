// Package dialog provides the modal dialogs drawn over a screen: yes/no
// confirmation, single line prompt and key binding help.
package dialog

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/setbreak/internal/ui/styles"
)

// Dialog is a modal that owns all key input while open.
type Dialog interface {
	Update(msg tea.KeyMsg) (Dialog, tea.Cmd)
	View() string
}

// Closed is sent when a dialog closes without a result.
type Closed struct{}

func closeCmd() tea.Msg { return Closed{} }

// Frame draws a bordered box with a title, body and footer hint.
func Frame(title, body, footer string, width int) string {
	st := styles.T().S()
	parts := []string{st.Playing.Render(title), "", body}
	if footer != "" {
		parts = append(parts, "", st.Subtle.Render(footer))
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Padding(0, 1)
	if width > 0 {
		box = box.Width(width)
	}
	return box.Render(strings.Join(parts, "\n"))
}

// Overlay draws box centered over base, which is width by height cells.
// Base lines under the box keep their content left and right of it.
func Overlay(base, box string, width, height int) string {
	baseLines := strings.Split(base, "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}
	boxLines := strings.Split(box, "\n")
	boxWidth := 0
	for _, l := range boxLines {
		boxWidth = max(boxWidth, ansi.StringWidth(l))
	}

	top := max((height-len(boxLines))/2, 0)
	left := max((width-boxWidth)/2, 0)
	for i, l := range boxLines {
		row := top + i
		if row >= len(baseLines) {
			break
		}
		line := baseLines[row]
		if w := ansi.StringWidth(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		end := left + ansi.StringWidth(l)
		baseLines[row] = ansi.Cut(line, 0, left) + l + ansi.Cut(line, end, width)
	}
	return strings.Join(baseLines, "\n")
}
