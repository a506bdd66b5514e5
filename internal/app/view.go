package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/setbreak/internal/route"
	"github.com/llehouerou/setbreak/internal/ui/dialog"
	"github.com/llehouerou/setbreak/internal/ui/headerbar"
	"github.com/llehouerou/setbreak/internal/ui/layout"
	"github.com/llehouerou/setbreak/internal/ui/playerbar"
)

// View renders the header, the current screen, the player bar and the
// status line, with any dialog on top.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	snap := m.session.Snapshot()

	var content string
	switch m.route.Screen {
	case route.Welcome:
		content = m.welcome.View()
	case route.Browse:
		content = m.browse.View()
	case route.TourDetail:
		content = m.tour.View()
	case route.Player:
		content = m.player.View(snap)
	case route.Collections:
		content = m.collections.View()
	case route.History:
		content = m.history.View()
	}
	content = fitHeight(content, layout.ContentHeight(m.height))

	view := strings.Join([]string{
		headerbar.Render(m.route.Screen, m.width),
		content,
		playerbar.Render(playerbar.NewState(snap), m.width),
		m.status.view(m.width),
	}, "\n")

	if m.dialog != nil {
		view = dialog.Overlay(view, m.dialog.View(), m.width, m.height)
	}
	return view
}

// fitHeight pads or cuts s to exactly height lines.
func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Height(height).MaxHeight(height).Render(s)
}
