package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/setbreak/internal/app/handler"
	"github.com/llehouerou/setbreak/internal/catalog"
	"github.com/llehouerou/setbreak/internal/errmsg"
	"github.com/llehouerou/setbreak/internal/keymap"
	"github.com/llehouerou/setbreak/internal/playback"
	"github.com/llehouerou/setbreak/internal/ui"
	"github.com/llehouerou/setbreak/internal/ui/layout"
	"github.com/llehouerou/setbreak/internal/ui/list"
	"github.com/llehouerou/setbreak/internal/ui/playerbar"
	"github.com/llehouerou/setbreak/internal/ui/render"
	"github.com/llehouerou/setbreak/internal/ui/styles"
)

// cardHeight is the rendered height of the now-playing card.
const cardHeight = 7

// showHeader is the show title, details and separator above the set list.
const showHeader = 3

type setlistRow struct {
	index   int
	track   *catalog.Track
	current bool
	playing bool
}

type playerScreen struct {
	ui.Base
	show    *catalog.Show
	track   int // index the cursor last followed
	setlist list.Model[setlistRow]
}

func newPlayerScreen() playerScreen {
	return playerScreen{setlist: list.New(renderSetlistRow, "No tracks in this show")}
}

func renderSetlistRow(r setlistRow, _ bool, width int) string {
	st := styles.T().S()
	marker := "  "
	title := st.Base.Render(r.track.Title)
	if r.current {
		marker = "⏸ "
		if r.playing {
			marker = "▶ "
		}
		title = st.Playing.Render(r.track.Title)
	}
	if r.track.HasHighlight() {
		title += " " + st.Marked.Render("★")
	}
	left := marker + st.Muted.Render(fmt.Sprintf("%2d. ", r.index+1)) + title
	right := st.Muted.Render(render.Duration(r.track.Duration))
	return render.Row(render.TruncateStyled(left, max(width-lipgloss.Width(right)-1, 1)), right, width)
}

// setShow rebuilds the set list for a new show and puts the cursor on the
// current track.
func (s *playerScreen) setShow(snap playback.Snapshot) {
	s.show = snap.Show
	s.track = snap.TrackIndex
	s.sync(snap)
	s.setlist.SetIndex(max(snap.TrackIndex, 0))
}

// follow catches the set list up with snap. It compares against the session
// rather than trusting single events, which the feed may drop when full.
func (s *playerScreen) follow(snap playback.Snapshot) {
	if snap.Show != s.show {
		s.setShow(snap)
		return
	}
	if snap.TrackIndex != s.track {
		s.track = snap.TrackIndex
		s.followTrack(snap.TrackIndex)
	}
}

// sync refreshes the current track markers from snap.
func (s *playerScreen) sync(snap playback.Snapshot) {
	if snap.Show != s.show {
		s.show = snap.Show
	}
	var rows []setlistRow
	if s.show != nil {
		rows = make([]setlistRow, len(s.show.Tracks))
		for i := range s.show.Tracks {
			rows[i] = setlistRow{
				index:   i,
				track:   &s.show.Tracks[i],
				current: i == snap.TrackIndex,
				playing: snap.Playing,
			}
		}
	}
	s.setlist.SetItems(rows)
}

func (s *playerScreen) SetSize(width, height int) {
	s.Base.SetSize(width, height)
	if layout.IsNarrow(width) {
		listHeight, _ := layout.PlayerHeights(height-showHeader, cardHeight)
		s.setlist.SetSize(width, max(listHeight, 1))
		return
	}
	left, _ := layout.Split(width, 3, 5)
	s.setlist.SetSize(left, max(height-showHeader, 1))
}

func (s playerScreen) header(width int) string {
	st := styles.T().S()
	if s.show == nil {
		return st.Muted.Render("No show selected")
	}
	title := st.Title.Render(s.show.Date) + "  " + st.Playing.Render(s.show.Venue)
	details := []string{s.show.Location, s.show.Tour}
	if s.show.Rating > 0 {
		details = append(details, fmt.Sprintf("★ %.1f", s.show.Rating))
	}
	details = append(details, render.Duration(s.show.TotalDuration()))
	if len(s.show.Tags) > 0 {
		details = append(details, strings.Join(s.show.Tags, ", "))
	}
	var kept []string
	for _, d := range details {
		if d != "" {
			kept = append(kept, d)
		}
	}
	return render.TruncateStyled(title, width) + "\n" +
		st.Muted.Render(render.Truncate(strings.Join(kept, " · "), width))
}

func (s playerScreen) View(snap playback.Snapshot) string {
	s.sync(snap)
	st := styles.T().S()
	top := s.header(s.Width()) + "\n" + st.Subtle.Render(render.Separator(s.Width()))

	if layout.IsNarrow(s.Width()) {
		return top + "\n" + s.setlist.View() + "\n" + playerbar.Card(snap, s.Width())
	}
	left, right := layout.Split(s.Width(), 3, 5)
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(left).Render(s.setlist.View()), " ",
		playerbar.Card(snap, right),
	)
	return top + "\n" + body
}

// followTrack moves the cursor to the playing track.
func (s *playerScreen) followTrack(index int) {
	if index >= 0 {
		s.setlist.SetIndex(index)
	}
}

func (m *Model) handlePlayerAction(a keymap.Action) handler.Result {
	r := m.player.setlist.HandleAction(a)
	switch r.Action {
	case list.ActionMoved:
		return handler.HandledNoCmd
	case list.ActionActivate:
		if err := m.session.PlayTrackAt(r.Index); err != nil {
			return handler.Handled(m.fail(errmsg.OpTrackSelect, "", err))
		}
		return handler.HandledNoCmd
	case list.ActionNone, list.ActionDelete, list.ActionRemove:
	}
	return handler.NotHandled
}
