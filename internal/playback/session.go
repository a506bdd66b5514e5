// Package playback owns the playback session: what show and track are
// selected, whether they are playing, the position within the track and the
// volume. Changes are published to subscribers as events.
package playback

import (
	"math"
	"sync"
	"time"

	"github.com/llehouerou/setbreak/internal/catalog"
)

// DefaultVolume is the volume of a new session.
const DefaultVolume = 0.7

// TickStep is how far one clock tick moves the position.
const TickStep = time.Second

// TickResult reports what a clock tick did.
type TickResult int

const (
	TickIdle     TickResult = iota // not playing, nothing changed
	TickStale                      // tick armed for a superseded state, dropped
	TickMoved                      // position advanced by TickStep
	TickAdvanced                   // track ended, moved to the next track
)

// Snapshot is a copy of the session fields at one point in time.
type Snapshot struct {
	Show       *catalog.Show
	Track      *catalog.Track
	TrackIndex int // -1 when Track is nil
	Playing    bool
	Position   time.Duration
	Volume     float64
}

// State returns the transport state of the snapshot.
func (s Snapshot) State() State {
	switch {
	case s.Show == nil:
		return StateEmpty
	case s.Playing:
		return StatePlaying
	default:
		return StatePaused
	}
}

// Remaining returns the time left in the current track.
func (s Snapshot) Remaining() time.Duration {
	if s.Track == nil {
		return 0
	}
	return max(s.Track.Duration-s.Position, 0)
}

// Session is the single source of truth for playback state. Create one per
// application and pass it to the components that need it.
//
// Invariants: a track is selected only when it belongs to the selected show;
// playing is true only when a track is selected; the position stays within
// [0, track duration]; the volume stays within [0, 1].
type Session struct {
	mu       sync.RWMutex
	show     *catalog.Show
	index    int // index of the selected track in show.Tracks, -1 if none
	playing  bool
	position time.Duration
	volume   float64

	// epoch changes whenever the show, track or play flag changes; a clock
	// tick armed under an older epoch is stale.
	epoch uint64

	subs   []*Subscription
	subsMu sync.RWMutex
}

// Option configures a Session.
type Option func(*Session)

// WithVolume sets the initial volume (clamped to [0, 1]).
func WithVolume(v float64) Option {
	return func(s *Session) {
		if !math.IsNaN(v) {
			s.volume = clampVolume(v)
		}
	}
}

// NewSession creates an empty session.
func NewSession(opts ...Option) *Session {
	s := &Session{index: -1, volume: DefaultVolume}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// change captures the observable fields before a mutation so the events can
// be derived afterwards.
type change struct {
	show     *catalog.Show
	track    *catalog.Track
	state    State
	position time.Duration
}

func (s *Session) trackLocked() *catalog.Track {
	return s.show.Track(s.index)
}

func (s *Session) stateLocked() State {
	switch {
	case s.show == nil:
		return StateEmpty
	case s.playing:
		return StatePlaying
	default:
		return StatePaused
	}
}

func (s *Session) beginLocked() change {
	return change{
		show:     s.show,
		track:    s.trackLocked(),
		state:    s.stateLocked(),
		position: s.position,
	}
}

// endLocked computes the events for a mutation and bumps the epoch when the
// clock has to re-arm.
func (s *Session) endLocked(before change) []Event {
	var events []Event
	track := s.trackLocked()
	state := s.stateLocked()

	if before.show != s.show {
		events = append(events, ShowChange{Previous: before.show, Current: s.show})
	}
	if before.track != track {
		events = append(events, TrackChange{Previous: before.track, Current: track, Index: s.index})
	}
	if before.state != state {
		events = append(events, StateChange{Previous: before.state, Current: state})
	}
	if len(events) > 0 {
		s.epoch++
	}
	if before.position != s.position {
		events = append(events, PositionChange{Position: s.position})
	}
	return events
}

// mutate runs fn under the write lock and publishes the resulting events.
func (s *Session) mutate(fn func()) {
	s.mu.Lock()
	before := s.beginLocked()
	fn()
	events := s.endLocked(before)
	s.mu.Unlock()
	s.publish(events)
}

// SelectShow makes show the active show and selects its first track with the
// position reset. A show without tracks leaves no track selected and stops
// playback. A nil show clears the session. The play flag is otherwise kept.
func (s *Session) SelectShow(show *catalog.Show) {
	s.mutate(func() {
		if show == nil {
			s.clearLocked()
			return
		}
		s.show = show
		s.position = 0
		if len(show.Tracks) == 0 {
			s.index = -1
			s.playing = false
			return
		}
		s.index = 0
	})
}

// Clear returns the session to empty.
func (s *Session) Clear() {
	s.SelectShow(nil)
}

func (s *Session) clearLocked() {
	s.show = nil
	s.index = -1
	s.playing = false
	s.position = 0
}

// resolveLocked finds the set list index of track in the active show. The
// track matches by identity, or by ID for a copy of one of the show's tracks.
func (s *Session) resolveLocked(track *catalog.Track) (int, error) {
	if s.show == nil {
		return -1, ErrNoShow
	}
	if i := s.show.IndexOf(track); i >= 0 {
		return i, nil
	}
	if track != nil {
		if i := s.show.TrackIndex(track.ID); i >= 0 {
			return i, nil
		}
	}
	id := ""
	if track != nil {
		id = track.ID
	}
	return -1, &TrackNotInShowError{TrackID: id, ShowID: s.show.ID}
}

func (s *Session) selectLocked(index int, play bool) {
	s.index = index
	s.position = 0
	if play {
		s.playing = true
	}
}

func (s *Session) selectTrack(track *catalog.Track, play bool) error {
	var err error
	s.mutate(func() {
		var i int
		if i, err = s.resolveLocked(track); err == nil {
			s.selectLocked(i, play)
		}
	})
	return err
}

func (s *Session) selectTrackAt(index int, play bool) error {
	var err error
	s.mutate(func() {
		switch {
		case s.show == nil:
			err = ErrNoShow
		case index < 0 || index >= len(s.show.Tracks):
			err = ErrTrackIndex
		default:
			s.selectLocked(index, play)
		}
	})
	return err
}

// SelectTrack selects a track of the active show and resets the position.
// The play flag is unchanged.
func (s *Session) SelectTrack(track *catalog.Track) error {
	return s.selectTrack(track, false)
}

// PlayTrack selects a track of the active show and starts playing it.
func (s *Session) PlayTrack(track *catalog.Track) error {
	return s.selectTrack(track, true)
}

// SelectTrackAt selects the track at a set list index.
func (s *Session) SelectTrackAt(index int) error {
	return s.selectTrackAt(index, false)
}

// PlayTrackAt plays the track at a set list index.
func (s *Session) PlayTrackAt(index int) error {
	return s.selectTrackAt(index, true)
}

// SetPlaying sets the play flag. Starting playback with no track selected is
// ignored.
func (s *Session) SetPlaying(playing bool) {
	s.mutate(func() {
		if playing && s.trackLocked() == nil {
			return
		}
		s.playing = playing
	})
}

// Toggle flips the play flag, with the same guard as SetPlaying.
func (s *Session) Toggle() {
	s.mutate(func() {
		if !s.playing && s.trackLocked() == nil {
			return
		}
		s.playing = !s.playing
	})
}

// SetPosition moves the position within the current track, clamped to
// [0, track duration]. Without a track the position stays at zero.
func (s *Session) SetPosition(pos time.Duration) {
	s.mutate(func() {
		s.setPositionLocked(pos)
	})
}

// SeekBy moves the position by delta, clamped like SetPosition.
func (s *Session) SeekBy(delta time.Duration) {
	s.mutate(func() {
		s.setPositionLocked(s.position + delta)
	})
}

func (s *Session) setPositionLocked(pos time.Duration) {
	t := s.trackLocked()
	if t == nil {
		s.position = 0
		return
	}
	s.position = max(0, min(pos, t.Duration))
}

// JumpToHighlight seeks to the highlight of the current track. It returns
// false when the track has none.
func (s *Session) JumpToHighlight() bool {
	var ok bool
	s.mutate(func() {
		t := s.trackLocked()
		if !t.HasHighlight() {
			return
		}
		s.setPositionLocked(t.HighlightAt)
		ok = true
	})
	return ok
}

func clampVolume(v float64) float64 {
	return max(0, min(1, v))
}

// SetVolume sets the volume clamped to [0, 1]. NaN is ignored.
func (s *Session) SetVolume(v float64) {
	if math.IsNaN(v) {
		return
	}
	s.mu.Lock()
	v = clampVolume(v)
	changed := v != s.volume
	s.volume = v
	s.mu.Unlock()
	if changed {
		s.publish([]Event{VolumeChange{Volume: v}})
	}
}

// Next moves to the following track and plays it, wrapping from the last
// track to the first. It does nothing without a selected track.
func (s *Session) Next() {
	s.mutate(func() {
		s.stepLocked(1)
	})
}

// Previous moves to the preceding track and plays it, wrapping from the
// first track to the last. It does nothing without a selected track.
func (s *Session) Previous() {
	s.mutate(func() {
		s.stepLocked(-1)
	})
}

func (s *Session) stepLocked(delta int) {
	t := s.trackLocked()
	if t == nil {
		return
	}
	n := len(s.show.Tracks)
	i := s.show.TrackIndex(t.ID)
	if i < 0 {
		i = s.index
	}
	s.selectLocked(((i+delta)%n+n)%n, true)
}

// Tick applies one clock tick armed at epoch: while playing, it advances the
// position by TickStep, or moves to the next track once the position has
// reached the track duration. Ticks armed under an older epoch are dropped.
func (s *Session) Tick(epoch uint64) TickResult {
	var result TickResult
	s.mutate(func() {
		switch {
		case epoch != s.epoch:
			result = TickStale
		case !s.playing || s.trackLocked() == nil:
			result = TickIdle
		case s.position >= s.trackLocked().Duration:
			s.stepLocked(1)
			result = TickAdvanced
		default:
			s.setPositionLocked(s.position + TickStep)
			result = TickMoved
		}
	})
	return result
}

// Snapshot returns a copy of the current session fields.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Show:       s.show,
		Track:      s.trackLocked(),
		TrackIndex: s.index,
		Playing:    s.playing,
		Position:   s.position,
		Volume:     s.volume,
	}
}

// Show returns the selected show, or nil.
func (s *Session) Show() *catalog.Show {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.show
}

// Track returns the selected track, or nil.
func (s *Session) Track() *catalog.Track {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trackLocked()
}

// TrackIndex returns the set list index of the selected track, or -1.
func (s *Session) TrackIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index
}

// IsPlaying reports whether the session is playing.
func (s *Session) IsPlaying() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.playing
}

// Position returns the position within the selected track.
func (s *Session) Position() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.position
}

// Volume returns the volume in [0, 1].
func (s *Session) Volume() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.volume
}

// State returns the transport state.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked()
}

// Epoch returns the current epoch, for arming clock ticks.
func (s *Session) Epoch() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epoch
}

// tickState returns the epoch and whether a tick would do anything.
func (s *Session) tickState() (uint64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epoch, s.playing && s.trackLocked() != nil
}
