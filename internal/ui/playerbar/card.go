package playerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/setbreak/internal/playback"
	"github.com/llehouerou/setbreak/internal/ui/render"
	"github.com/llehouerou/setbreak/internal/ui/styles"
)

const volumeBarWidth = 10

// Card renders the now-playing card of the player screen: show, track,
// progress with times, volume and the highlight badge.
func Card(snap playback.Snapshot, width int) string {
	s := NewState(snap)
	st := styles.T().S()
	inner := max(width-4, 10)

	var lines []string
	if !s.Loaded {
		lines = append(lines, st.Muted.Render("No show selected"))
		return styles.Card(width).Render(strings.Join(lines, "\n"))
	}

	lines = append(lines,
		st.Muted.Render(render.Truncate(strings.Join(nonEmpty(snap.Show.Date, snap.Show.Venue, snap.Show.Location), " · "), inner)),
	)

	title := s.Title
	if title == "" {
		title = "No tracks in this show"
	}
	head := st.Playing.Render(render.Truncate(title, inner-6))
	switch {
	case s.AtHighlight:
		head += " " + st.Highlight.Render("JAM")
	case s.Highlight:
		head += " " + st.Marked.Render("★ jam at "+render.Duration(snap.Track.HighlightAt))
	}
	lines = append(lines, head, "")

	pos := render.Duration(s.Position)
	dur := render.Duration(s.Duration)
	barWidth := inner - lipgloss.Width(s.symbol()) - lipgloss.Width(pos) - lipgloss.Width(dur) - 6
	if barWidth >= 3 {
		lines = append(lines, s.symbol()+"  "+pos+"  "+
			render.Bar(s.Progress(), barWidth, st.Playing, st.Subtle)+"  "+dur)
	} else {
		lines = append(lines, s.symbol()+"  "+pos+" / "+dur)
	}

	volume := st.Muted.Render("volume ") + render.Bar(s.Volume, volumeBarWidth, st.Base, st.Subtle) + " " + st.Muted.Render(Volume(s.Volume)[4:])
	if snap.Track != nil {
		rem := st.Muted.Render("-" + render.Duration(s.Remaining) + " left")
		if lipgloss.Width(volume)+lipgloss.Width(rem)+2 <= inner {
			volume = render.Row(volume, rem, inner)
		}
	}
	lines = append(lines, volume)
	return styles.Card(width).Render(strings.Join(lines, "\n"))
}
