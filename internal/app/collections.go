package app

import (
	"errors"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/setbreak/internal/app/handler"
	"github.com/llehouerou/setbreak/internal/catalog"
	"github.com/llehouerou/setbreak/internal/errmsg"
	"github.com/llehouerou/setbreak/internal/keymap"
	"github.com/llehouerou/setbreak/internal/state"
	"github.com/llehouerou/setbreak/internal/ui"
	"github.com/llehouerou/setbreak/internal/ui/dialog"
	"github.com/llehouerou/setbreak/internal/ui/layout"
	"github.com/llehouerou/setbreak/internal/ui/list"
	"github.com/llehouerou/setbreak/internal/ui/render"
	"github.com/llehouerou/setbreak/internal/ui/styles"
)

const collectionNameLimit = 40

// deleteCollection is the context of the delete confirmation.
type deleteCollection struct {
	id, name string
}

// newCollection is the context of the name prompt.
type newCollection struct{}

type collectionsScreen struct {
	ui.Base
	focused bool
	onShows bool // shows pane has focus
	cols    list.Model[state.Collection]
	shows   list.Model[*catalog.Show]
}

func newCollectionsScreen() collectionsScreen {
	return collectionsScreen{
		cols:  list.New(renderCollection, "No collections. Press N to create one."),
		shows: list.New(renderShowRow, "No shows in this collection"),
	}
}

func renderCollection(c state.Collection, _ bool, width int) string {
	st := styles.T().S()
	right := st.Muted.Render(strconv.Itoa(len(c.ShowIDs)))
	return render.Row(st.Base.Render(render.Truncate(c.Name, max(width-lipgloss.Width(right)-1, 1))), right, width)
}

func (s *collectionsScreen) setFocus(focused bool) {
	s.focused = focused
	s.cols.SetFocused(focused && !s.onShows)
	s.shows.SetFocused(focused && s.onShows)
}

func (s *collectionsScreen) SetSize(width, height int) {
	s.Base.SetSize(width, height)
	lh := s.ListHeight(paneOverhead)
	if layout.IsNarrow(width) {
		s.cols.SetSize(width, lh)
		s.shows.SetSize(width, lh)
		return
	}
	left, right := layout.Split(width, 1, 3)
	s.cols.SetSize(left, lh)
	s.shows.SetSize(right, lh)
}

func (s collectionsScreen) selected() (state.Collection, bool) {
	return s.cols.Selected()
}

func (s collectionsScreen) View() string {
	st := styles.T().S()
	title := func(text string, active bool) string {
		if active {
			return st.Playing.Render(text)
		}
		return st.Muted.Render(text)
	}
	showsTitle := "Shows"
	if c, ok := s.selected(); ok {
		showsTitle = c.Name
	}

	if layout.IsNarrow(s.Width()) {
		if s.onShows {
			return title(showsTitle, true) + "\n" + st.Subtle.Render(render.Separator(s.Width())) + "\n" + s.shows.View()
		}
		return title("Collections", true) + "\n" + st.Subtle.Render(render.Separator(s.Width())) + "\n" + s.cols.View()
	}
	left, right := layout.Split(s.Width(), 1, 3)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(left).Render(
			title("Collections", !s.onShows)+"\n"+st.Subtle.Render(render.Separator(left))+"\n"+s.cols.View()),
		" ",
		lipgloss.NewStyle().Width(right).Render(
			title(showsTitle, s.onShows)+"\n"+st.Subtle.Render(render.Separator(right))+"\n"+s.shows.View()),
	)
}

// reloadCollections refreshes both panes from the store, keeping the
// selected collection when it still exists.
func (m *Model) reloadCollections() {
	cols, err := m.store.ListCollections()
	if err != nil {
		m.fail(errmsg.OpCollectionLoad, "", err)
		return
	}
	c := &m.collections
	c.cols.SetItems(cols)
	m.refreshCollectionShows()
}

func (m *Model) refreshCollectionShows() {
	c := &m.collections
	col, ok := c.selected()
	if !ok {
		c.shows.SetItems(nil)
		return
	}
	shows := make([]*catalog.Show, 0, len(col.ShowIDs))
	for _, id := range col.ShowIDs {
		if s, ok := m.catalog.ByID(id); ok {
			shows = append(shows, s)
		}
	}
	c.shows.SetItems(shows)
}

func (m *Model) selectCollection(id string) {
	for i, c := range m.collections.cols.Items() {
		if c.ID == id {
			m.collections.cols.SetIndex(i)
			break
		}
	}
	m.refreshCollectionShows()
}

func (m *Model) handleCollectionsAction(a keymap.Action) handler.Result {
	c := &m.collections
	switch a {
	case keymap.ActionNewCollection:
		m.dialog = dialog.NewPrompt("New collection", "Collection name", collectionNameLimit, newCollection{})
		return handler.HandledNoCmd
	case keymap.ActionSwitchPane:
		c.onShows = !c.onShows
		c.setFocus(c.focused)
		return handler.HandledNoCmd
	case keymap.ActionBack:
		if c.onShows {
			c.onShows = false
			c.setFocus(c.focused)
			return handler.HandledNoCmd
		}
		return handler.NotHandled
	}

	if !c.onShows {
		r := c.cols.HandleAction(a)
		switch r.Action {
		case list.ActionMoved:
			m.refreshCollectionShows()
			return handler.HandledNoCmd
		case list.ActionActivate:
			c.onShows = true
			c.setFocus(c.focused)
			return handler.HandledNoCmd
		case list.ActionDelete:
			col, _ := c.selected()
			m.dialog = dialog.NewConfirm("Delete collection",
				fmt.Sprintf("Delete %q and its %d shows?", col.Name, len(col.ShowIDs)),
				deleteCollection{id: col.ID, name: col.Name})
			return handler.HandledNoCmd
		case list.ActionNone, list.ActionRemove:
		}
		return handler.NotHandled
	}

	r := c.shows.HandleAction(a)
	switch r.Action {
	case list.ActionMoved:
		return handler.HandledNoCmd
	case list.ActionActivate:
		show, _ := c.shows.Selected()
		return handler.Handled(m.playShow(show))
	case list.ActionRemove:
		col, _ := c.selected()
		show, _ := c.shows.Selected()
		if err := m.store.RemoveFromCollection(col.ID, show.ID); err != nil {
			return handler.Handled(m.fail(errmsg.OpCollectionRemove, col.Name, err))
		}
		m.reloadCollections()
		return handler.Handled(m.info("Removed " + show.ID + " from " + col.Name))
	case list.ActionNone, list.ActionDelete:
	}
	return handler.NotHandled
}

func (m *Model) createCollection(name string) tea.Cmd {
	col, err := m.store.CreateCollection(name)
	if err != nil {
		return m.fail(errmsg.OpCollectionCreate, name, err)
	}
	m.reloadCollections()
	m.selectCollection(col.ID)
	return m.info("Created " + col.Name)
}

func (m *Model) deleteCollection(d deleteCollection) tea.Cmd {
	if err := m.store.DeleteCollection(d.id); err != nil && !errors.Is(err, state.ErrCollectionNotFound) {
		return m.fail(errmsg.OpCollectionDelete, d.name, err)
	}
	m.reloadCollections()
	return m.info("Deleted " + d.name)
}

// toggleFavorite adds the loaded show to Favorites, or removes it, creating
// the collection when it is missing.
func (m *Model) toggleFavorite() tea.Cmd {
	show := m.session.Show()
	if show == nil {
		return m.info("Nothing loaded to favorite")
	}
	fav, err := m.store.CollectionByName(state.FavoritesName)
	if errors.Is(err, state.ErrCollectionNotFound) {
		fav, err = m.store.CreateCollection(state.FavoritesName)
	}
	if err != nil {
		return m.fail(errmsg.OpFavoriteToggle, show.ID, err)
	}
	added, err := m.store.ToggleInCollection(fav.ID, show.ID)
	if err != nil {
		return m.fail(errmsg.OpFavoriteToggle, show.ID, err)
	}
	m.reloadCollections()
	if added {
		return m.info("Added " + show.Date + " to " + fav.Name)
	}
	return m.info("Removed " + show.Date + " from " + fav.Name)
}
