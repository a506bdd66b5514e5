package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/llehouerou/setbreak/internal/app/handler"
	"github.com/llehouerou/setbreak/internal/catalog"
	"github.com/llehouerou/setbreak/internal/keymap"
	"github.com/llehouerou/setbreak/internal/ui"
	"github.com/llehouerou/setbreak/internal/ui/list"
	"github.com/llehouerou/setbreak/internal/ui/render"
	"github.com/llehouerou/setbreak/internal/ui/styles"
)

type welcomeItem struct {
	label  string
	key    string
	action keymap.Action
}

var welcomeItems = []welcomeItem{
	{"Random show", "r", keymap.ActionRandomShow},
	{"Today in history", "t", keymap.ActionToday},
	{"Browse shows", "2", keymap.ActionScreenBrowse},
}

type welcomeScreen struct {
	ui.Base
	menu    list.Model[welcomeItem]
	summary string
	today   *catalog.Show // exact month/day match, nil when none
}

func newWelcomeScreen(c *catalog.Catalog, now time.Time) welcomeScreen {
	s := welcomeScreen{
		menu:    list.New(renderWelcomeItem, ""),
		summary: fmt.Sprintf("%d shows · %d tours", c.Len(), len(c.Tours())),
	}
	s.menu.SetItems(welcomeItems)
	if show := c.OnThisDay(now); show != nil {
		if d, err := catalog.ShowDate(show); err == nil && d.Month() == now.Month() && d.Day() == now.Day() {
			s.today = show
		}
	}
	return s
}

func renderWelcomeItem(it welcomeItem, selected bool, _ int) string {
	st := styles.T().S()
	prefix := "  "
	if selected {
		prefix = "› "
	}
	return prefix + st.Key.Render(it.key) + "  " + st.Base.Render(it.label)
}

func (s *welcomeScreen) SetSize(width, height int) {
	s.Base.SetSize(width, height)
	s.menu.SetSize(min(width, 40), len(welcomeItems))
}

func (s welcomeScreen) View() string {
	st := styles.T().S()
	lines := []string{
		styles.Banner("setbreak"),
		st.Muted.Render(s.summary),
		"",
		s.menu.View(),
		"",
	}
	if s.today != nil {
		lines = append(lines,
			st.Marked.Render("On this day"),
			st.Base.Render(render.Truncate(s.today.Date+" · "+s.today.Venue, s.Width())),
		)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) handleWelcomeAction(a keymap.Action) handler.Result {
	r := m.welcome.menu.HandleAction(a)
	switch r.Action {
	case list.ActionMoved:
		return handler.HandledNoCmd
	case list.ActionActivate:
		it, _ := m.welcome.menu.Selected()
		return m.handleGlobalAction(it.action)
	case list.ActionNone, list.ActionDelete, list.ActionRemove:
	}
	return handler.NotHandled
}
