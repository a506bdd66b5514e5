package app

import (
	"fmt"

	"github.com/llehouerou/setbreak/internal/app/handler"
	"github.com/llehouerou/setbreak/internal/catalog"
	"github.com/llehouerou/setbreak/internal/keymap"
	"github.com/llehouerou/setbreak/internal/route"
	"github.com/llehouerou/setbreak/internal/ui"
	"github.com/llehouerou/setbreak/internal/ui/list"
	"github.com/llehouerou/setbreak/internal/ui/render"
	"github.com/llehouerou/setbreak/internal/ui/styles"
)

type tourScreen struct {
	ui.Base
	group catalog.TourGroup
	shows list.Model[*catalog.Show]
}

func newTourScreen() tourScreen {
	return tourScreen{shows: list.New(renderShowRow, "No shows on this tour")}
}

func (s *tourScreen) setGroup(g catalog.TourGroup) {
	if s.group.Slug != g.Slug {
		s.shows.SetIndex(0)
	}
	s.group = g
	s.shows.SetItems(g.Shows)
}

func (s *tourScreen) SetSize(width, height int) {
	s.Base.SetSize(width, height)
	s.shows.SetSize(width, s.ListHeight(paneOverhead))
}

func (s tourScreen) View() string {
	st := styles.T().S()
	title := st.Playing.Render(s.group.Name) + "  " + st.Muted.Render(fmt.Sprintf("%d shows", len(s.group.Shows)))
	return title + "\n" + st.Subtle.Render(render.Separator(s.Width())) + "\n" + s.shows.View()
}

func (m *Model) handleTourAction(a keymap.Action) handler.Result {
	if a == keymap.ActionBack {
		return handler.Handled(m.navigate(route.Route{Screen: route.Browse}.Path()))
	}
	r := m.tour.shows.HandleAction(a)
	switch r.Action {
	case list.ActionMoved:
		return handler.HandledNoCmd
	case list.ActionActivate:
		show, _ := m.tour.shows.Selected()
		return handler.Handled(m.playShow(show))
	case list.ActionNone, list.ActionDelete, list.ActionRemove:
	}
	return handler.NotHandled
}
