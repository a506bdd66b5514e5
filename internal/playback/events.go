package playback

import (
	"time"

	"github.com/llehouerou/setbreak/internal/catalog"
)

// Event is a change notification published by a Session.
type Event interface {
	event()
}

// ShowChange is emitted when the selected show changes, including when the
// session is cleared (Current is nil).
type ShowChange struct {
	Previous *catalog.Show
	Current  *catalog.Show
}

// TrackChange is emitted when the selected track changes.
//
// Emitted by SelectShow, SelectTrack, PlayTrack, Next, Previous and by a
// clock tick that reaches the end of a track. Re-selecting the current track
// only resets the position and emits PositionChange.
type TrackChange struct {
	Previous *catalog.Track
	Current  *catalog.Track
	Index    int // -1 when Current is nil
}

// StateChange is emitted when the derived State changes.
type StateChange struct {
	Previous State
	Current  State
}

// PositionChange is emitted when the playback position changes, including
// the reset to zero that accompanies a track change.
type PositionChange struct {
	Position time.Duration
}

// VolumeChange is emitted when the volume changes.
type VolumeChange struct {
	Volume float64
}

func (ShowChange) event()     {}
func (TrackChange) event()    {}
func (StateChange) event()    {}
func (PositionChange) event() {}
func (VolumeChange) event()   {}
