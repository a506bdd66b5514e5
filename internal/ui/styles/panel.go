package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns a rounded panel whose border follows the focus state.
func PanelStyle(focused bool) lipgloss.Style {
	border := T().Border
	if focused {
		border = T().BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}

// Card is the bordered box used for the now-playing card and dialogs.
func Card(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(T().Secondary).
		Padding(0, 1).
		Width(max(width-2, 0))
}
