package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/setbreak/internal/app/handler"
	"github.com/llehouerou/setbreak/internal/keymap"
	"github.com/llehouerou/setbreak/internal/route"
	"github.com/llehouerou/setbreak/internal/ui"
	"github.com/llehouerou/setbreak/internal/ui/dialog"
)

var screenKeys = map[keymap.Action]route.Screen{
	keymap.ActionScreenWelcome:     route.Welcome,
	keymap.ActionScreenBrowse:      route.Browse,
	keymap.ActionScreenPlayer:      route.Player,
	keymap.ActionScreenCollections: route.Collections,
	keymap.ActionScreenHistory:     route.History,
}

func (m *Model) handleGlobalAction(a keymap.Action) handler.Result {
	if s, ok := screenKeys[a]; ok {
		if s == route.Player && m.session.Show() == nil {
			return handler.Handled(m.info("Nothing loaded yet"))
		}
		return handler.Handled(m.navigate(route.Route{Screen: s}.Path()))
	}

	switch a {
	case keymap.ActionQuit:
		m.log.Info().Msg("quit")
		m.Close()
		return handler.Handled(tea.Quit)
	case keymap.ActionHelp:
		contexts := append(m.contexts(), keymap.ContextGlobal, keymap.ContextPlayback)
		m.dialog = dialog.NewHelp(contexts, max(m.height-ui.ChromeHeight-6, 3))
		return handler.HandledNoCmd
	case keymap.ActionBack:
		if m.route.Screen != route.Welcome {
			return handler.Handled(m.navigate(route.Route{Screen: route.Welcome}.Path()))
		}
		return handler.HandledNoCmd
	case keymap.ActionRandomShow:
		return handler.Handled(m.playShow(m.catalog.Random(m.rng)))
	case keymap.ActionToday:
		return handler.Handled(m.playShow(m.catalog.OnThisDay(m.now())))
	case keymap.ActionToggleFavorite:
		return handler.Handled(m.toggleFavorite())
	case keymap.ActionSearch:
		m.openSearch()
		return handler.HandledNoCmd
	}
	return handler.NotHandled
}
