package app

import (
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/setbreak/internal/app/handler"
	"github.com/llehouerou/setbreak/internal/catalog"
	"github.com/llehouerou/setbreak/internal/keymap"
	"github.com/llehouerou/setbreak/internal/route"
	"github.com/llehouerou/setbreak/internal/ui"
	"github.com/llehouerou/setbreak/internal/ui/calendar"
	"github.com/llehouerou/setbreak/internal/ui/layout"
	"github.com/llehouerou/setbreak/internal/ui/list"
	"github.com/llehouerou/setbreak/internal/ui/render"
	"github.com/llehouerou/setbreak/internal/ui/styles"
)

type browsePane int

const (
	paneTours browsePane = iota
	paneRecent
	paneCalendar
	browsePaneCount
)

const recentCount = 10

// paneOverhead is the title and separator above each browse list.
const paneOverhead = 2

type browseScreen struct {
	ui.Base
	pane    browsePane
	focused bool
	tours   list.Model[catalog.Tour]
	recent  list.Model[*catalog.Show]
	cal     calendar.Model
}

func newBrowseScreen(c *catalog.Catalog, now time.Time) browseScreen {
	s := browseScreen{
		tours:  list.New(renderTour, "No tours"),
		recent: list.New(renderShowRow, "No shows"),
	}
	s.tours.SetItems(c.Tours())
	s.recent.SetItems(c.Recent(recentCount))

	// Open the calendar on the latest show so there is something to pick.
	day := now
	dates := c.Dates()
	for i, d := range dates {
		if i == 0 || d.After(day) {
			day = d
		}
	}
	s.cal = calendar.New(day, dates)
	return s
}

func renderTour(t catalog.Tour, _ bool, width int) string {
	st := styles.T().S()
	right := st.Muted.Render(t.YearRange + "  " + strconv.Itoa(t.ShowCount) + " shows")
	return render.Row(st.Base.Render(render.Truncate(t.Name, max(width-lipgloss.Width(right)-1, 1))), right, width)
}

// renderShowRow is shared by every list of shows.
func renderShowRow(s *catalog.Show, _ bool, width int) string {
	st := styles.T().S()
	line := st.Base.Render(s.ID) + "  " + st.Muted.Render(s.Venue)
	if s.Location != "" {
		line += st.Subtle.Render(", " + s.Location)
	}
	return render.TruncateStyled(line, width)
}

func (s *browseScreen) SetSize(width, height int) {
	s.Base.SetSize(width, height)
	listHeight := s.ListHeight(paneOverhead)
	if layout.IsNarrow(width) {
		s.tours.SetSize(width, listHeight)
		s.recent.SetSize(width, listHeight)
		return
	}
	tw, rw, _ := layout.BrowseWidths(width)
	s.tours.SetSize(tw, listHeight)
	s.recent.SetSize(rw, listHeight)
}

func (s *browseScreen) setFocus(focused bool) {
	s.focused = focused
	s.tours.SetFocused(focused && s.pane == paneTours)
	s.recent.SetFocused(focused && s.pane == paneRecent)
}

func (s *browseScreen) nextPane() {
	s.pane = (s.pane + 1) % browsePaneCount
	s.setFocus(s.focused)
}

func (s browseScreen) paneTitle(p browsePane, title string) string {
	st := styles.T().S()
	if s.pane == p {
		return st.Playing.Render(title)
	}
	return st.Muted.Render(title)
}

func (s browseScreen) View() string {
	st := styles.T().S()
	cal := s.paneTitle(paneCalendar, "Calendar") + "\n" + s.cal.View()
	if s.Marked() {
		cal += "\n\n" + st.Marked.Render("enter to play")
	}

	if layout.IsNarrow(s.Width()) {
		// One pane at a time; tab cycles.
		switch s.pane {
		case paneTours:
			return s.paneTitle(paneTours, "Tours") + "\n" + st.Subtle.Render(render.Separator(s.Width())) + "\n" + s.tours.View()
		case paneRecent:
			return s.paneTitle(paneRecent, "Recent shows") + "\n" + st.Subtle.Render(render.Separator(s.Width())) + "\n" + s.recent.View()
		default:
			return cal
		}
	}

	tw, rw, cw := layout.BrowseWidths(s.Width())
	col := func(title string, p browsePane, body string, w int) string {
		return lipgloss.NewStyle().Width(w).Render(
			s.paneTitle(p, title) + "\n" + st.Subtle.Render(render.Separator(w)) + "\n" + body)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		col("Tours", paneTours, s.tours.View(), tw), " ",
		col("Recent shows", paneRecent, s.recent.View(), rw), " ",
		lipgloss.NewStyle().Width(cw).Render(cal),
	)
}

// Marked reports whether the calendar pane is active on a show date.
func (s browseScreen) Marked() bool {
	return s.pane == paneCalendar && s.cal.SelectedMarked()
}

func (s browseScreen) contexts() []string {
	if s.pane == paneCalendar {
		return []string{keymap.ContextCalendar}
	}
	return []string{keymap.ContextList}
}

func (m *Model) handleBrowseAction(a keymap.Action) handler.Result {
	b := &m.browse
	if a == keymap.ActionSwitchPane {
		b.nextPane()
		return handler.HandledNoCmd
	}

	switch b.pane {
	case paneCalendar:
		if b.cal.HandleAction(a) {
			return handler.HandledNoCmd
		}
		if a == keymap.ActionSelect {
			return handler.Handled(m.playDate(b.cal.Selected()))
		}
	case paneTours:
		r := b.tours.HandleAction(a)
		switch r.Action {
		case list.ActionMoved:
			return handler.HandledNoCmd
		case list.ActionActivate:
			t, _ := b.tours.Selected()
			return handler.Handled(m.navigate(route.Route{Screen: route.TourDetail, TourSlug: t.Slug}.Path()))
		case list.ActionNone, list.ActionDelete, list.ActionRemove:
		}
	case paneRecent:
		r := b.recent.HandleAction(a)
		switch r.Action {
		case list.ActionMoved:
			return handler.HandledNoCmd
		case list.ActionActivate:
			show, _ := b.recent.Selected()
			return handler.Handled(m.playShow(show))
		case list.ActionNone, list.ActionDelete, list.ActionRemove:
		}
	case browsePaneCount:
	}
	return handler.NotHandled
}

func (m *Model) playDate(day time.Time) tea.Cmd {
	show, ok := m.catalog.OnDate(day)
	if !ok {
		return m.info("No show on " + day.Format("January 2, 2006"))
	}
	return m.playShow(show)
}
