package catalog

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var (
	ErrEmptyID          = errors.New("empty id")
	ErrDuplicateShow    = errors.New("duplicate show id")
	ErrDuplicateTrack   = errors.New("duplicate track id")
	ErrInvalidHighlight = errors.New("highlight offset outside track")
	ErrNegativeDuration = errors.New("negative track duration")
)

// Catalog is an immutable, ordered collection of shows.
type Catalog struct {
	shows []*Show
	byID  map[string]*Show
}

// New validates and copies shows into a Catalog, keeping their order.
func New(shows []Show) (*Catalog, error) {
	c := &Catalog{
		shows: make([]*Show, 0, len(shows)),
		byID:  make(map[string]*Show, len(shows)),
	}
	for i := range shows {
		if err := validateShow(&shows[i]); err != nil {
			return nil, err
		}
		if _, dup := c.byID[shows[i].ID]; dup {
			return nil, fmt.Errorf("show %q: %w", shows[i].ID, ErrDuplicateShow)
		}
		s := shows[i].clone()
		c.shows = append(c.shows, &s)
		c.byID[s.ID] = &s
	}
	return c, nil
}

func validateShow(s *Show) error {
	if s.ID == "" {
		return fmt.Errorf("show: %w", ErrEmptyID)
	}
	seen := make(map[string]bool, len(s.Tracks))
	for _, t := range s.Tracks {
		if t.ID == "" {
			return fmt.Errorf("show %q track: %w", s.ID, ErrEmptyID)
		}
		if seen[t.ID] {
			return fmt.Errorf("show %q track %q: %w", s.ID, t.ID, ErrDuplicateTrack)
		}
		seen[t.ID] = true
		if t.Duration < 0 {
			return fmt.Errorf("show %q track %q: %w", s.ID, t.ID, ErrNegativeDuration)
		}
		if t.Highlight && (t.HighlightAt < 0 || t.HighlightAt > t.Duration) {
			return fmt.Errorf("show %q track %q: %w", s.ID, t.ID, ErrInvalidHighlight)
		}
	}
	return nil
}

// ByID returns the show with the given identifier.
func (c *Catalog) ByID(id string) (*Show, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// All returns every show in insertion order.
func (c *Catalog) All() []*Show {
	out := make([]*Show, len(c.shows))
	copy(out, c.shows)
	return out
}

// Len returns the number of shows.
func (c *Catalog) Len() int {
	return len(c.shows)
}

// First returns the first show, or nil for an empty catalog.
func (c *Catalog) First() *Show {
	if len(c.shows) == 0 {
		return nil
	}
	return c.shows[0]
}

// Recent returns up to n shows from the start of the catalog.
func (c *Catalog) Recent(n int) []*Show {
	n = max(0, min(n, len(c.shows)))
	out := make([]*Show, n)
	copy(out, c.shows[:n])
	return out
}

// Random picks a show uniformly at random. A nil r uses the global source.
func (c *Catalog) Random(r *rand.Rand) *Show {
	if len(c.shows) == 0 {
		return nil
	}
	var i int
	if r != nil {
		i = r.IntN(len(c.shows))
	} else {
		i = rand.IntN(len(c.shows)) //nolint:gosec // not security sensitive
	}
	return c.shows[i]
}
