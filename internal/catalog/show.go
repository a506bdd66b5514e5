// Package catalog holds the read-only collection of recorded shows.
package catalog

import (
	"slices"
	"time"
)

// Track is one piece within a show's set list.
type Track struct {
	ID       string
	Title    string
	Duration time.Duration

	// Highlight marks a track with a notable jam segment starting at HighlightAt.
	Highlight   bool
	HighlightAt time.Duration
}

// HasHighlight reports whether the track has a usable highlight offset.
func (t *Track) HasHighlight() bool {
	return t != nil && t.Highlight && t.HighlightAt >= 0 && t.HighlightAt <= t.Duration
}

// Show is a recorded performance. Shows are never mutated once in a Catalog.
type Show struct {
	ID       string // ISO date, e.g. "1997-12-31"
	Date     string // display date, e.g. "December 31, 1997"
	Venue    string
	Location string
	Tour     string
	Rating   float64
	Tags     []string
	Tracks   []Track
	Source   string
}

// TrackIndex returns the index of the track with the given ID, or -1.
func (s *Show) TrackIndex(id string) int {
	if s == nil {
		return -1
	}
	for i := range s.Tracks {
		if s.Tracks[i].ID == id {
			return i
		}
	}
	return -1
}

// Track returns a pointer to the track at index i, or nil if out of range.
func (s *Show) Track(i int) *Track {
	if s == nil || i < 0 || i >= len(s.Tracks) {
		return nil
	}
	return &s.Tracks[i]
}

// IndexOf returns the set list index t points at, or -1 when t does not
// point into this show.
func (s *Show) IndexOf(t *Track) int {
	if s == nil || t == nil {
		return -1
	}
	for i := range s.Tracks {
		if &s.Tracks[i] == t {
			return i
		}
	}
	return -1
}

// TotalDuration returns the summed duration of all tracks.
func (s *Show) TotalDuration() time.Duration {
	var total time.Duration
	for _, t := range s.Tracks {
		total += t.Duration
	}
	return total
}

func (s Show) clone() Show {
	s.Tags = slices.Clone(s.Tags)
	s.Tracks = slices.Clone(s.Tracks)
	return s
}
