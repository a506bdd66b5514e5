package playback

import (
	"sync"
	"time"
)

// Clock drives a Session's simulated time. While the session is playing it
// calls Session.Tick once per interval; it re-arms whenever the show, track
// or play flag changes, so at most one tick is ever pending.
type Clock struct {
	session  *Session
	interval time.Duration

	onTick func(TickResult)

	mu      sync.Mutex
	running bool
	timer   *time.Timer
	seq     uint64 // invalidates timers that fired after being replaced
	sub     *Subscription
}

// ClockOption configures a Clock.
type ClockOption func(*Clock)

// OnTick registers fn to run after every tick that moved the session. It
// runs on the timer goroutine.
func OnTick(fn func(TickResult)) ClockOption {
	return func(c *Clock) {
		c.onTick = fn
	}
}

// NewClock creates a stopped clock for session. A non-positive interval uses
// TickStep, which keeps simulated time in step with wall time.
func NewClock(session *Session, interval time.Duration, opts ...ClockOption) *Clock {
	if interval <= 0 {
		interval = TickStep
	}
	c := &Clock{session: session, interval: interval}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start subscribes to the session and arms the first tick if it is playing.
func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.running {
		return
	}
	c.running = true
	c.sub = c.session.Subscribe(c.handle)
	c.armLocked()
}

// Stop cancels any pending tick and unsubscribes. A stopped clock can be
// started again.
func (c *Clock) Stop() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.running = false
	c.cancelLocked()
	sub := c.sub
	c.sub = nil
	c.mu.Unlock()
	sub.Close()
}

// Running reports whether the clock is started.
func (c *Clock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Interval returns the tick period.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

func (c *Clock) handle(e Event) {
	switch e.(type) {
	case ShowChange, TrackChange, StateChange:
		c.mu.Lock()
		if c.running {
			c.armLocked()
		}
		c.mu.Unlock()
	}
}

func (c *Clock) cancelLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.seq++
}

// armLocked replaces the pending tick with one for the session's current
// epoch. Nothing is armed while the session is idle.
func (c *Clock) armLocked() {
	c.cancelLocked()
	epoch, active := c.session.tickState()
	if !active {
		return
	}
	seq := c.seq
	c.timer = time.AfterFunc(c.interval, func() {
		c.fire(seq, epoch)
	})
}

func (c *Clock) fire(seq, epoch uint64) {
	c.mu.Lock()
	if !c.running || seq != c.seq {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.mu.Unlock()

	// Tick publishes synchronously and handle takes c.mu, so c.mu is not
	// held here.
	result := c.session.Tick(epoch)
	switch result {
	case TickMoved, TickAdvanced:
		// Runs before re-arming: pausing from the callback cancels the next
		// tick.
		if c.onTick != nil {
			c.onTick(result)
		}
		c.mu.Lock()
		// A track change already re-armed; wrapping within a one-track show
		// does not emit one.
		if c.running && c.timer == nil && seq == c.seq {
			c.armLocked()
		}
		c.mu.Unlock()
	case TickIdle, TickStale:
	}
}
