package catalog

import (
	"strconv"
	"strings"

	"github.com/llehouerou/setbreak/internal/route"
)

// TourGroup is a tour with its shows in catalog order.
type TourGroup struct {
	Name  string
	Slug  string
	Shows []*Show
}

// Tour summarizes a tour for listing.
type Tour struct {
	Name      string
	Slug      string
	ShowCount int
	YearRange string // "1997" or "2019-2023"; empty when no date parses
}

// GroupByTour groups shows by tour name. Groups are ordered by first
// appearance and shows keep their catalog order within a group.
func (c *Catalog) GroupByTour() []TourGroup {
	index := make(map[string]int)
	var groups []TourGroup
	for _, s := range c.shows {
		i, ok := index[s.Tour]
		if !ok {
			i = len(groups)
			index[s.Tour] = i
			groups = append(groups, TourGroup{Name: s.Tour, Slug: route.Slug(s.Tour)})
		}
		groups[i].Shows = append(groups[i].Shows, s)
	}
	return groups
}

// Tours returns a summary of every tour, in first-appearance order.
func (c *Catalog) Tours() []Tour {
	groups := c.GroupByTour()
	out := make([]Tour, len(groups))
	for i, g := range groups {
		out[i] = Tour{
			Name:      g.Name,
			Slug:      g.Slug,
			ShowCount: len(g.Shows),
			YearRange: yearRange(g.Shows),
		}
	}
	return out
}

// TourBySlug finds a tour from a route slug. The slug is decoded back to a
// display name and compared case-insensitively, so tour names containing
// punctuation may not be found.
func (c *Catalog) TourBySlug(slug string) (TourGroup, bool) {
	name := route.TourName(slug)
	for _, g := range c.GroupByTour() {
		if strings.EqualFold(g.Name, name) {
			return g, true
		}
	}
	return TourGroup{}, false
}

func yearRange(shows []*Show) string {
	lo, hi := 0, 0
	for _, s := range shows {
		d, err := ShowDate(s)
		if err != nil {
			continue
		}
		y := d.Year()
		if lo == 0 || y < lo {
			lo = y
		}
		if y > hi {
			hi = y
		}
	}
	switch {
	case lo == 0:
		return ""
	case lo == hi:
		return strconv.Itoa(lo)
	default:
		return strconv.Itoa(lo) + "-" + strconv.Itoa(hi)
	}
}
