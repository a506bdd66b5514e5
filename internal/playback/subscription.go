package playback

import "sync"

const eventBufferSize = 16

// Subscription is a registered listener. Close it to stop receiving events.
type Subscription struct {
	session *Session
	fn      func(Event)
	once    sync.Once
}

// Close unsubscribes the listener. It is safe to call more than once.
func (sub *Subscription) Close() {
	if sub == nil {
		return
	}
	sub.once.Do(func() {
		sub.session.unsubscribe(sub)
	})
}

// Subscribe registers fn to be called synchronously, in mutation order, after
// every effective session change. fn runs on the mutating goroutine after the
// session lock is released; it may read the session but must not block.
func (s *Session) Subscribe(fn func(Event)) *Subscription {
	sub := &Subscription{session: s, fn: fn}
	s.subsMu.Lock()
	s.subs = append(s.subs, sub)
	s.subsMu.Unlock()
	return sub
}

func (s *Session) unsubscribe(sub *Subscription) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for i, other := range s.subs {
		if other == sub {
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			return
		}
	}
}

func (s *Session) publish(events []Event) {
	if len(events) == 0 {
		return
	}
	s.subsMu.RLock()
	subs := make([]*Subscription, len(s.subs))
	copy(subs, s.subs)
	s.subsMu.RUnlock()

	for _, e := range events {
		for _, sub := range subs {
			sub.fn(e)
		}
	}
}

// Feed adapts a subscription into channels for goroutine consumers.
type Feed struct {
	Events <-chan Event
	Done   <-chan struct{}

	events chan Event
	done   chan struct{}
	sub    *Subscription
	once   sync.Once
}

// NewFeed subscribes to s and buffers its events.
func NewFeed(s *Session) *Feed {
	f := &Feed{
		events: make(chan Event, eventBufferSize),
		done:   make(chan struct{}),
	}
	f.Events = f.events
	f.Done = f.done
	f.sub = s.Subscribe(f.send)
	return f
}

// send delivers an event without blocking the session.
func (f *Feed) send(e Event) {
	select {
	case f.events <- e:
	default:
		// Drop if buffer full
	}
}

// Close unsubscribes and signals Done.
func (f *Feed) Close() {
	f.once.Do(func() {
		f.sub.Close()
		close(f.done)
	})
}
