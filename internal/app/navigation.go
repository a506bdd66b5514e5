package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/setbreak/internal/catalog"
	"github.com/llehouerou/setbreak/internal/errmsg"
	"github.com/llehouerou/setbreak/internal/route"
)

var (
	errTourNotFound = errors.New("tour not found")
	errNoShows      = errors.New("catalog has no shows")
)

// Navigate switches to the screen for path. The player screen redirects to
// the welcome screen while nothing is loaded. On error the current screen
// is kept.
func (m *Model) Navigate(path string) error {
	r, err := route.Parse(path)
	if err != nil {
		m.fail(errmsg.OpNavigate, path, err)
		return err
	}
	switch r.Screen {
	case route.Player:
		if m.session.Show() == nil {
			r = route.Route{Screen: route.Welcome}
		}
	case route.TourDetail:
		g, ok := m.catalog.TourBySlug(r.TourSlug)
		if !ok {
			err := fmt.Errorf("%w: %s", errTourNotFound, r.TourSlug)
			m.fail(errmsg.OpTourLookup, r.TourSlug, err)
			return err
		}
		m.tour.setGroup(g)
	case route.Collections:
		m.reloadCollections()
	case route.History:
		m.reloadHistory()
	case route.Welcome, route.Browse:
	}

	m.route = r
	m.log.Debug().Str("path", r.Path()).Msg("navigate")
	m.focusScreen()
	return nil
}

// navigate is Navigate for key handlers, which report errors on the status
// line already.
func (m *Model) navigate(path string) tea.Cmd {
	seq := m.status.seq
	_ = m.Navigate(path)
	if m.status.seq != seq {
		return clearStatusAfter(m.status.seq)
	}
	return nil
}

// playShow selects show, starts it and opens the player.
func (m *Model) playShow(show *catalog.Show) tea.Cmd {
	if show == nil {
		return m.fail(errmsg.OpShowLookup, "", errNoShows)
	}
	m.session.SelectShow(show)
	m.session.SetPlaying(true)
	m.player.setShow(m.session.Snapshot())
	m.log.Info().Str("show", show.ID).Msg("play show")
	return m.navigate(route.Route{Screen: route.Player}.Path())
}

func (m *Model) focusScreen() {
	m.welcome.menu.SetFocused(m.route.Screen == route.Welcome)
	m.browse.setFocus(m.route.Screen == route.Browse)
	m.tour.shows.SetFocused(m.route.Screen == route.TourDetail)
	m.player.setlist.SetFocused(m.route.Screen == route.Player)
	m.collections.setFocus(m.route.Screen == route.Collections)
	m.history.entries.SetFocused(m.route.Screen == route.History)
}
