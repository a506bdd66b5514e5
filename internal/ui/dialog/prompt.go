package dialog

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const promptWidth = 40

// PromptResult is sent when a prompt is submitted with non-blank text.
type PromptResult struct {
	Value   string // trimmed
	Context any
}

// Prompt asks for one line of text.
type Prompt struct {
	title   string
	input   textinput.Model
	context any
}

// NewPrompt creates a focused prompt.
func NewPrompt(title, placeholder string, limit int, context any) *Prompt {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = promptWidth
	ti.Focus()
	return &Prompt{title: title, input: ti, context: context}
}

// Value returns the current text.
func (p *Prompt) Value() string {
	return p.input.Value()
}

// Update submits on enter, closes on esc and forwards other keys to the
// text input. Enter on blank text is ignored.
func (p *Prompt) Update(msg tea.KeyMsg) (Dialog, tea.Cmd) {
	switch msg.String() {
	case "enter":
		v := strings.TrimSpace(p.input.Value())
		if v == "" {
			return p, nil
		}
		ctx := p.context
		return p, func() tea.Msg { return PromptResult{Value: v, Context: ctx} }
	case "esc":
		return p, closeCmd
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// View renders the prompt.
func (p *Prompt) View() string {
	return Frame(p.title, p.input.View(), "enter save · esc cancel", promptWidth+4)
}
