package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/setbreak/internal/app/handler"
	"github.com/llehouerou/setbreak/internal/keymap"
	"github.com/llehouerou/setbreak/internal/playback"
	"github.com/llehouerou/setbreak/internal/route"
)

// handlePlaybackAction applies transport keys to the session. They work on
// every screen.
func (m *Model) handlePlaybackAction(a keymap.Action) handler.Result {
	s := m.session
	switch a {
	case keymap.ActionPlayPause:
		if s.Track() == nil {
			return handler.Handled(m.info("Nothing to play. Press " + m.keyHint(keymap.ActionRandomShow) + " for a random show."))
		}
		s.Toggle()
	case keymap.ActionNextTrack:
		s.Next()
	case keymap.ActionPrevTrack:
		s.Previous()
	case keymap.ActionSeekForward:
		s.SeekBy(m.cfg.GetSkipStep())
	case keymap.ActionSeekBack:
		s.SeekBy(-m.cfg.GetSkipStep())
	case keymap.ActionVolumeUp:
		s.SetVolume(s.Volume() + m.cfg.GetVolumeStep())
	case keymap.ActionVolumeDown:
		s.SetVolume(s.Volume() - m.cfg.GetVolumeStep())
	case keymap.ActionJumpHighlight:
		if !s.JumpToHighlight() {
			return handler.Handled(m.info("No highlight in this track"))
		}
	case keymap.ActionClearSession:
		s.Clear()
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

// handleSessionEvent keeps the screens in step with the session. Any event
// re-reads the session snapshot.
func (m *Model) handleSessionEvent(e playback.Event) tea.Cmd {
	snap := m.session.Snapshot()
	m.player.follow(snap)
	if snap.Show == nil && m.route.Screen == route.Player {
		return m.navigate(route.Route{Screen: route.Welcome}.Path())
	}
	if _, ok := e.(playback.ShowChange); ok && m.route.Screen == route.History {
		m.reloadHistory()
	}
	return nil
}
