package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/setbreak/internal/errmsg"
	"github.com/llehouerou/setbreak/internal/keymap"
	"github.com/llehouerou/setbreak/internal/ui/render"
	"github.com/llehouerou/setbreak/internal/ui/styles"
)

// status is the one-line message under the player bar.
type status struct {
	text  string
	isErr bool
	seq   int
}

// keyHint returns the first key bound to a, for status messages.
func (m *Model) keyHint(a keymap.Action) string {
	keys := m.keys.KeysFor(a)
	if len(keys) == 0 {
		return "?"
	}
	return keys[0]
}

func (m *Model) info(text string) tea.Cmd {
	m.status.seq++
	m.status.text = text
	m.status.isErr = false
	return clearStatusAfter(m.status.seq)
}

// fail shows a formatted error and logs it.
func (m *Model) fail(op errmsg.Op, subject string, err error) tea.Cmd {
	m.log.Error().Err(err).Str("op", string(op)).Str("subject", subject).Msg("operation failed")
	m.status.seq++
	m.status.text = errmsg.FormatWith(op, subject, err)
	m.status.isErr = true
	return clearStatusAfter(m.status.seq)
}

func (s status) view(width int) string {
	st := styles.T().S()
	if s.text == "" {
		return st.Subtle.Render(render.Truncate("? help · q quit", width))
	}
	style := st.Muted
	if s.isErr {
		style = st.Error
	}
	return style.Render(render.Truncate(s.text, width))
}
