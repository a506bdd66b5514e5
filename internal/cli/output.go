package cli

import (
	"encoding/json"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/setbreak/internal/catalog"
	"github.com/llehouerou/setbreak/internal/ui/render"
)

// Table provides a simple table formatter.
type Table struct {
	w *tabwriter.Writer
}

// NewTable creates a table writing to out.
func NewTable(out io.Writer, headers ...string) *Table {
	t := &Table{w: tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)}
	if len(headers) > 0 {
		_, _ = t.w.Write([]byte(strings.Join(headers, "\t") + "\n"))
	}
	return t
}

// Row adds a row.
func (t *Table) Row(cols ...string) {
	_, _ = t.w.Write([]byte(strings.Join(cols, "\t") + "\n"))
}

// Flush writes the table.
func (t *Table) Flush() error {
	return t.w.Flush()
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// showJSON is the JSON shape of a show.
type showJSON struct {
	ID       string      `json:"id"`
	Date     string      `json:"date"`
	Venue    string      `json:"venue"`
	Location string      `json:"location,omitempty"`
	Tour     string      `json:"tour,omitempty"`
	Rating   float64     `json:"rating,omitempty"`
	Tags     []string    `json:"tags,omitempty"`
	Seconds  int64       `json:"seconds"`
	Tracks   []trackJSON `json:"tracks,omitempty"`
}

type trackJSON struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Seconds     int64  `json:"seconds"`
	HighlightAt *int64 `json:"highlight_at,omitempty"`
}

func toShowJSON(s *catalog.Show, withTracks bool) showJSON {
	out := showJSON{
		ID:       s.ID,
		Date:     s.Date,
		Venue:    s.Venue,
		Location: s.Location,
		Tour:     s.Tour,
		Rating:   s.Rating,
		Tags:     s.Tags,
		Seconds:  int64(s.TotalDuration().Seconds()),
	}
	if withTracks {
		for i := range s.Tracks {
			t := &s.Tracks[i]
			tj := trackJSON{ID: t.ID, Title: t.Title, Seconds: int64(t.Duration.Seconds())}
			if t.HasHighlight() {
				at := int64(t.HighlightAt.Seconds())
				tj.HighlightAt = &at
			}
			out.Tracks = append(out.Tracks, tj)
		}
	}
	return out
}

func writeShows(out io.Writer, shows []*catalog.Show, jsonOut bool) error {
	if jsonOut {
		rows := make([]showJSON, len(shows))
		for i, s := range shows {
			rows[i] = toShowJSON(s, false)
		}
		return writeJSON(out, rows)
	}
	t := NewTable(out, "ID", "VENUE", "LOCATION", "TOUR", "TRACKS", "LENGTH")
	for _, s := range shows {
		t.Row(s.ID, s.Venue, s.Location, s.Tour,
			humanize.Comma(int64(len(s.Tracks))), render.Duration(s.TotalDuration()))
	}
	return t.Flush()
}

// writeShow prints one show with its set list.
func writeShow(out io.Writer, s *catalog.Show, jsonOut bool) error {
	if jsonOut {
		return writeJSON(out, toShowJSON(s, true))
	}
	header := s.Date + " · " + s.Venue
	if s.Location != "" {
		header += ", " + s.Location
	}
	if _, err := io.WriteString(out, header+"\n"); err != nil {
		return err
	}
	if s.Tour != "" {
		_, _ = io.WriteString(out, s.Tour+"\n")
	}
	t := NewTable(out, "#", "TITLE", "LENGTH", "JAM")
	for i := range s.Tracks {
		tr := &s.Tracks[i]
		jam := ""
		if tr.HasHighlight() {
			jam = render.Duration(tr.HighlightAt)
		}
		t.Row(humanize.Ordinal(i+1), tr.Title, render.Duration(tr.Duration), jam)
	}
	return t.Flush()
}
