package dashboard

import "sync"

// Feed distributes complete snapshots of one data source to any number of
// subscribers. Each snapshot carries a ticket taken when its fetch began;
// a snapshot whose ticket is not newer than the last published one is
// dropped, so a slow, superseded response never overwrites a fresher one.
type Feed[T any] struct {
	mu        sync.Mutex
	issued    uint64
	published uint64
	latest    T
	subs      map[*Subscription[T]]struct{}
}

// NewFeed creates an empty feed.
func NewFeed[T any]() *Feed[T] {
	return &Feed[T]{subs: make(map[*Subscription[T]]struct{})}
}

// Begin issues an ordering ticket. Call it before starting the fetch whose
// result will be passed to Publish.
func (f *Feed[T]) Begin() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.issued++
	return f.issued
}

// Publish stores v as the latest snapshot and delivers it to subscribers.
// It reports false when v was superseded by a later ticket.
func (f *Feed[T]) Publish(ticket uint64, v T) bool {
	f.mu.Lock()
	if ticket <= f.published {
		f.mu.Unlock()
		return false
	}
	f.published = ticket
	f.latest = v
	subs := make([]*Subscription[T], 0, len(f.subs))
	for s := range f.subs {
		subs = append(subs, s)
	}
	f.mu.Unlock()

	for _, s := range subs {
		s.deliver(ticket, v)
	}
	return true
}

// Latest returns the most recent snapshot and whether one exists.
func (f *Feed[T]) Latest() (T, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.latest, f.published > 0
}

// Subscribe registers fn for future snapshots. If a snapshot was already
// published, fn receives it before Subscribe returns.
func (f *Feed[T]) Subscribe(fn func(T)) *Subscription[T] {
	s := &Subscription[T]{feed: f, fn: fn}

	f.mu.Lock()
	f.subs[s] = struct{}{}
	ticket, latest := f.published, f.latest
	f.mu.Unlock()

	if ticket > 0 {
		s.deliver(ticket, latest)
	}
	return s
}

func (f *Feed[T]) remove(s *Subscription[T]) {
	f.mu.Lock()
	delete(f.subs, s)
	f.mu.Unlock()
}

// Subscription is one consumer of a Feed.
type Subscription[T any] struct {
	feed   *Feed[T]
	mu     sync.Mutex
	fn     func(T)
	last   uint64
	closed bool
}

// deliver hands v to the consumer unless it is stale or the subscription is
// closed. The lock is held across fn so Close waits for a running delivery.
func (s *Subscription[T]) deliver(ticket uint64, v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || ticket <= s.last {
		return false
	}
	s.last = ticket
	s.fn(v)
	return true
}

// Close detaches the consumer. After Close returns fn is never called again.
func (s *Subscription[T]) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.feed.remove(s)
}
