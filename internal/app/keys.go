package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/setbreak/internal/app/handler"
	"github.com/llehouerou/setbreak/internal/keymap"
	"github.com/llehouerou/setbreak/internal/route"
)

// contexts returns the key binding contexts of the focused screen, most
// specific first. Global and playback bindings always apply after these.
func (m Model) contexts() []string {
	switch m.route.Screen {
	case route.Browse:
		return m.browse.contexts()
	case route.Collections:
		return []string{keymap.ContextCollections, keymap.ContextList}
	case route.History:
		return []string{keymap.ContextHistory, keymap.ContextList}
	case route.Welcome, route.Player, route.TourDetail:
	}
	return []string{keymap.ContextList}
}

// handleKeyMsg sends keys to an open dialog, otherwise resolves them to an
// action and offers it to the screen, playback and global handlers in turn.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.dialog != nil {
		d, cmd := m.dialog.Update(msg)
		m.dialog = d
		return m, cmd
	}

	a := m.keys.ResolveChain(msg.String(), m.contexts()...)
	if a == "" {
		return m, nil
	}
	m.log.Debug().Str("key", msg.String()).Str("action", string(a)).Msg("key")

	if m.route.Screen == route.Player {
		m.player.sync(m.session.Snapshot())
	}
	mp := &m
	_, cmd := handler.Chain(a, mp.handleScreenAction, mp.handlePlaybackAction, mp.handleGlobalAction)
	return m, cmd
}

func (m *Model) handleScreenAction(a keymap.Action) handler.Result {
	switch m.route.Screen {
	case route.Welcome:
		return m.handleWelcomeAction(a)
	case route.Browse:
		return m.handleBrowseAction(a)
	case route.TourDetail:
		return m.handleTourAction(a)
	case route.Player:
		return m.handlePlayerAction(a)
	case route.Collections:
		return m.handleCollectionsAction(a)
	case route.History:
		return m.handleHistoryAction(a)
	}
	return handler.NotHandled
}
