// Package playerbar renders the persistent now-playing bar and the larger
// now-playing card of the player screen.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/setbreak/internal/playback"
	"github.com/llehouerou/setbreak/internal/ui"
	"github.com/llehouerou/setbreak/internal/ui/render"
	"github.com/llehouerou/setbreak/internal/ui/styles"
)

// Height is the bar height including its border.
const Height = ui.PlayerBarHeight

const (
	playSymbol  = "▶"
	pauseSymbol = "⏸"
	separator   = "   "
)

// State holds everything needed to render the bar.
type State struct {
	Loaded    bool
	Playing   bool
	ShowDate  string
	Venue     string
	Title     string
	Index     int // 1-based set list position, 0 when no track
	Total     int
	Position  time.Duration
	Duration  time.Duration
	Remaining time.Duration
	Volume    float64
	Highlight bool
	// AtHighlight is set once the position has reached the highlight.
	AtHighlight bool
}

// NewState builds a State from a session snapshot.
func NewState(snap playback.Snapshot) State {
	if !snap.State().IsLoaded() {
		return State{Volume: snap.Volume}
	}
	s := State{
		Loaded:   true,
		Playing:  snap.Playing,
		ShowDate: snap.Show.Date,
		Venue:    snap.Show.Venue,
		Total:    len(snap.Show.Tracks),
		Position: snap.Position,
		Volume:   snap.Volume,
	}
	if t := snap.Track; t != nil {
		s.Title = t.Title
		s.Index = snap.TrackIndex + 1
		s.Duration = t.Duration
		s.Remaining = snap.Remaining()
		s.Highlight = t.HasHighlight()
		s.AtHighlight = s.Highlight && snap.Position >= t.HighlightAt
	}
	return s
}

// Progress returns position over duration in [0, 1].
func (s State) Progress() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return max(0, min(1, float64(s.Position)/float64(s.Duration)))
}

func (s State) symbol() string {
	if s.Playing {
		return playSymbol
	}
	return pauseSymbol
}

// Render returns the bordered bar for the given width. An empty session
// renders a hint instead of track details.
func Render(s State, width int) string {
	inner := max(width-6, 0)
	st := styles.T().S()

	var line string
	if !s.Loaded {
		line = st.Muted.Render("Nothing playing. Press r for a random show.")
	} else {
		line = compact(s, inner)
	}
	return styles.PanelStyle(false).
		Padding(0, 2).
		Width(max(width-2, 0)).
		Render(render.TruncateStyled(line, inner))
}

// compact lays out: title · venue   3/12   ▶ ━━━───   1:23 / 3:58   vol 70%
func compact(s State, width int) string {
	st := styles.T().S()

	title := s.Title
	if title == "" {
		title = "No track"
	}
	info := strings.Join(nonEmpty(s.ShowDate, s.Venue), " · ")
	timeStr := render.Duration(s.Position) + " / " + render.Duration(s.Duration)
	vol := Volume(s.Volume)
	count := ""
	if s.Index > 0 {
		count = fmt.Sprintf("%d/%d", s.Index, s.Total)
	}

	fixed := lipgloss.Width(s.symbol()+" ") + lipgloss.Width(timeStr) + lipgloss.Width(vol) + 3*len(separator)
	if count != "" {
		fixed += lipgloss.Width(count) + len(separator)
	}
	avail := width - fixed - 10

	text := st.Title.Render(render.Truncate(title, max(avail, 10)))
	if info != "" && lipgloss.Width(title)+len(separator)+lipgloss.Width(info) <= avail {
		text += separator + st.Muted.Render(info)
	}
	if s.AtHighlight {
		text += " " + st.Highlight.Render("JAM")
	}

	barWidth := max(width-lipgloss.Width(text)-fixed, ui.MinProgressBarWidth)
	bar := render.Bar(s.Progress(), barWidth, st.Playing, st.Subtle)

	parts := []string{text}
	if count != "" {
		parts = append(parts, st.Muted.Render(count))
	}
	parts = append(parts,
		s.symbol()+" "+bar,
		st.Muted.Render(timeStr),
		st.Muted.Render(vol),
	)
	return strings.Join(parts, separator)
}

// Volume formats a volume as a percentage.
func Volume(v float64) string {
	return fmt.Sprintf("vol %3d%%", int(v*100+0.5))
}

func nonEmpty(parts ...string) []string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
