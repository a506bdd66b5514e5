package playback

// State is the transport state of a session.
type State int

const (
	StateEmpty   State = iota // no show selected
	StatePaused               // show loaded, not playing
	StatePlaying              // show loaded, playing
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StatePaused:
		return "Paused"
	case StatePlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}

// IsLoaded returns true if a show is selected (playing or paused).
func (s State) IsLoaded() bool {
	return s == StatePlaying || s == StatePaused
}
