package app

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/setbreak/internal/catalog"
	"github.com/llehouerou/setbreak/internal/route"
	"github.com/llehouerou/setbreak/internal/search"
)

// showItem makes a show searchable by date, place, tour, tags and songs.
type showItem struct {
	show *catalog.Show
}

func (i showItem) FilterValue() string {
	s := i.show
	parts := []string{s.ID, s.Date, s.Venue, s.Location, s.Tour}
	parts = append(parts, s.Tags...)
	for _, t := range s.Tracks {
		parts = append(parts, t.Title)
	}
	return strings.Join(parts, " ")
}

func (i showItem) DisplayText() string { return i.show.ID + " " + i.show.Venue }
func (i showItem) LeftColumn() string  { return i.DisplayText() }
func (i showItem) RightColumn() string { return i.show.Location }

type tourItem struct {
	tour catalog.Tour
}

func (i tourItem) FilterValue() string { return i.tour.Name + " tour " + i.tour.YearRange }
func (i tourItem) DisplayText() string { return "Tour: " + i.tour.Name }
func (i tourItem) LeftColumn() string  { return i.DisplayText() }
func (i tourItem) RightColumn() string { return strconv.Itoa(i.tour.ShowCount) + " shows" }

func searchItems(c *catalog.Catalog) []search.Item {
	shows := c.All()
	tours := c.Tours()
	items := make([]search.Item, 0, len(shows)+len(tours))
	for _, s := range shows {
		items = append(items, showItem{show: s})
	}
	for _, t := range tours {
		items = append(items, tourItem{tour: t})
	}
	return items
}

func (m *Model) openSearch() {
	m.dialog = search.New(m.searchItems, m.width, m.height)
}

// handleSearchResult plays a picked show or opens a picked tour.
func (m *Model) handleSearchResult(item search.Item) tea.Cmd {
	switch it := item.(type) {
	case showItem:
		return m.playShow(it.show)
	case tourItem:
		return m.navigate(route.Route{Screen: route.TourDetail, TourSlug: it.tour.Slug}.Path())
	}
	return nil
}
