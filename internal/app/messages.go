package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/setbreak/internal/playback"
)

// SessionEventMsg carries one playback session event into Update.
type SessionEventMsg struct {
	Event playback.Event
}

// FeedClosedMsg is sent once the session feed has been closed.
type FeedClosedMsg struct{}

// statusClearMsg clears the status line if it still shows message seq.
type statusClearMsg struct {
	seq int
}

const statusTimeout = 4 * time.Second

// waitForEvent returns a command that waits for the next session event.
func waitForEvent(f *playback.Feed) tea.Cmd {
	return func() tea.Msg {
		select {
		case e := <-f.Events:
			return SessionEventMsg{Event: e}
		case <-f.Done:
			return FeedClosedMsg{}
		}
	}
}

func clearStatusAfter(seq int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}
