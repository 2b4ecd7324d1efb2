// Package poller runs a fetch operation immediately and then on a fixed interval.
package poller

import (
	"context"
	"log"
	"sync"
	"time"
)

// DefaultInterval is the refresh period used by the dashboard.
const DefaultInterval = 10 * time.Second

// Operation is invoked on every tick. The context is cancelled on Deactivate.
type Operation func(ctx context.Context)

// Handle controls one running poller. It is returned by Activate and is the
// only way to stop the loop.
type Handle struct {
	name     string
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
	once     sync.Once
}

// Activate calls op once right away and then every interval until the
// handle is deactivated or ctx is cancelled. A non-positive interval falls
// back to DefaultInterval.
//
// Ticks are serialized: a slow op delays the next call rather than
// overlapping it, and ticks missed while op runs are dropped.
func Activate(ctx context.Context, name string, op Operation, interval time.Duration) *Handle {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{
		name:     name,
		interval: interval,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	go h.run(ctx, op)
	log.Printf("[poller] %s started, every %s", name, interval)
	return h
}

func (h *Handle) run(ctx context.Context, op Operation) {
	defer close(h.done)

	op(ctx)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// A tick and a cancellation can be ready together; cancellation wins.
			if ctx.Err() != nil {
				return
			}
			op(ctx)
		}
	}
}

// Deactivate stops the poller and waits for its loop to exit. Once it
// returns, op is not running and will not be called again. Safe to call
// more than once.
func (h *Handle) Deactivate() {
	h.once.Do(func() {
		h.cancel()
		<-h.done
		log.Printf("[poller] %s stopped", h.name)
	})
}

// Done is closed when the loop has exited.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Interval returns the tick period.
func (h *Handle) Interval() time.Duration { return h.interval }
