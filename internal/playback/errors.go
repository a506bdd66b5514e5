package playback

import (
	"errors"
	"fmt"
)

var (
	// ErrNoShow is returned when a track operation needs a selected show.
	ErrNoShow = errors.New("no show selected")

	// ErrTrackNotInShow matches any *TrackNotInShowError.
	ErrTrackNotInShow = errors.New("track not in show")

	// ErrTrackIndex is returned for an out of range set list index.
	ErrTrackIndex = errors.New("track index out of range")
)

// TrackNotInShowError reports a track that does not belong to the selected show.
type TrackNotInShowError struct {
	TrackID string
	ShowID  string
}

func (e *TrackNotInShowError) Error() string {
	return fmt.Sprintf("track %q not in show %q", e.TrackID, e.ShowID)
}

// Is lets errors.Is match ErrTrackNotInShow.
func (e *TrackNotInShowError) Is(target error) bool {
	return target == ErrTrackNotInShow
}
