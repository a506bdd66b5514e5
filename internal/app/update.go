package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/setbreak/internal/search"
	"github.com/llehouerou/setbreak/internal/ui/dialog"
	"github.com/llehouerou/setbreak/internal/ui/layout"
)

// Update handles messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case SessionEventMsg:
		cmd := m.handleSessionEvent(msg.Event)
		return m, tea.Batch(cmd, waitForEvent(m.feed))

	case FeedClosedMsg:
		return m, nil

	case statusClearMsg:
		if msg.seq == m.status.seq {
			m.status.text = ""
			m.status.isErr = false
		}
		return m, nil

	case dialog.Closed:
		m.dialog = nil
		return m, nil

	case dialog.ConfirmResult:
		m.dialog = nil
		if !msg.Confirmed {
			return m, nil
		}
		switch ctx := msg.Context.(type) {
		case deleteCollection:
			return m, m.deleteCollection(ctx)
		case clearHistory:
			return m, m.clearHistory()
		}
		return m, nil

	case search.ResultMsg:
		m.dialog = nil
		return m, m.handleSearchResult(msg.Item)

	case dialog.PromptResult:
		m.dialog = nil
		if _, ok := msg.Context.(newCollection); ok {
			return m, m.createCollection(msg.Value)
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	h := layout.ContentHeight(height)
	m.welcome.SetSize(width, h)
	m.browse.SetSize(width, h)
	m.tour.SetSize(width, h)
	m.player.SetSize(width, h)
	m.collections.SetSize(width, h)
	m.history.SetSize(width, h)
}
