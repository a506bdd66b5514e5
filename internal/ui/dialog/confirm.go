package dialog

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/setbreak/internal/ui/styles"
)

// ConfirmResult is sent when a confirmation is answered.
type ConfirmResult struct {
	Confirmed bool
	Context   any // passed through from NewConfirm
}

// Confirm is a yes/no question.
type Confirm struct {
	title   string
	message string
	context any
}

// NewConfirm creates a confirmation. context is returned in the result.
func NewConfirm(title, message string, context any) *Confirm {
	return &Confirm{title: title, message: message, context: context}
}

// Update answers on enter/y or esc/n and ignores other keys.
func (c *Confirm) Update(msg tea.KeyMsg) (Dialog, tea.Cmd) {
	ctx := c.context
	switch msg.String() {
	case "enter", "y", "Y":
		return c, func() tea.Msg { return ConfirmResult{Confirmed: true, Context: ctx} }
	case "esc", "n", "N":
		return c, func() tea.Msg { return ConfirmResult{Confirmed: false, Context: ctx} }
	}
	return c, nil
}

// View renders the question.
func (c *Confirm) View() string {
	return Frame(c.title, styles.T().S().Base.Render(c.message), "enter/y confirm · esc/n cancel", 0)
}
