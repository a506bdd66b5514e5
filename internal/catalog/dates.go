package catalog

import (
	"fmt"
	"time"
)

const (
	displayDateLayout = "January 2, 2006"
	idDateLayout      = "2006-01-02"
)

// ShowDate returns the calendar date a show was performed on. The display
// date is preferred; the ISO identifier is used when it does not parse.
func ShowDate(s *Show) (time.Time, error) {
	if s == nil {
		return time.Time{}, fmt.Errorf("show date: %w", ErrEmptyID)
	}
	if t, err := time.Parse(displayDateLayout, s.Date); err == nil {
		return t, nil
	}
	t, err := time.Parse(idDateLayout, s.ID)
	if err != nil {
		return time.Time{}, fmt.Errorf("show %q: unparseable date %q", s.ID, s.Date)
	}
	return t, nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// OnThisDay returns the first show performed on the same month and day as t,
// in any year. When none matches it falls back to the first show of the
// catalog. Returns nil only for an empty catalog.
func (c *Catalog) OnThisDay(t time.Time) *Show {
	for _, s := range c.shows {
		d, err := ShowDate(s)
		if err != nil {
			continue
		}
		if d.Month() == t.Month() && d.Day() == t.Day() {
			return s
		}
	}
	return c.First()
}

// OnDate returns the show performed on the exact calendar date of t.
func (c *Catalog) OnDate(t time.Time) (*Show, bool) {
	for _, s := range c.shows {
		d, err := ShowDate(s)
		if err != nil {
			continue
		}
		if sameDay(d, t) {
			return s, true
		}
	}
	return nil, false
}

// Dates returns the performance dates of all shows with a parseable date,
// in catalog order.
func (c *Catalog) Dates() []time.Time {
	out := make([]time.Time, 0, len(c.shows))
	for _, s := range c.shows {
		if d, err := ShowDate(s); err == nil {
			out = append(out, d)
		}
	}
	return out
}
