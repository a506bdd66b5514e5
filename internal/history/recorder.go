// Package history records which shows were played during the session.
package history

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/llehouerou/setbreak/internal/playback"
)

// Store is the part of the state store the recorder writes to.
type Store interface {
	RecordPlay(showID string, at time.Time) error
}

// Recorder appends a history entry each time a show is selected.
type Recorder struct {
	store  Store
	log    zerolog.Logger
	now    func() time.Time
	sub    *playback.Subscription
	onSave func(showID string)
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithClock sets the time source for entries.
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) { r.now = now }
}

// WithLogger sets the logger for write failures.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Recorder) { r.log = log }
}

// OnRecord registers a callback run after each successful write.
func OnRecord(fn func(showID string)) Option {
	return func(r *Recorder) { r.onSave = fn }
}

// Start subscribes a recorder to session.
func Start(session *playback.Session, store Store, opts ...Option) *Recorder {
	r := &Recorder{store: store, log: zerolog.Nop(), now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	r.sub = session.Subscribe(r.handle)
	return r
}

// Stop unsubscribes the recorder.
func (r *Recorder) Stop() {
	r.sub.Close()
}

func (r *Recorder) handle(e playback.Event) {
	sc, ok := e.(playback.ShowChange)
	if !ok || sc.Current == nil {
		return
	}
	id := sc.Current.ID
	if err := r.store.RecordPlay(id, r.now()); err != nil {
		r.log.Warn().Err(err).Str("show", id).Msg("record play failed")
		return
	}
	r.log.Debug().Str("show", id).Msg("play recorded")
	if r.onSave != nil {
		r.onSave(id)
	}
}
