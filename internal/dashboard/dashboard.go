// Package dashboard wires the three telemetry pollers to the render surfaces.
//
// Each data source (fires, temperature, summary) is owned by one poller and
// published through its own Feed. The dashboard keeps the last-known value
// of each. Once every source has reported, it publishes a complete View
// whenever the rendered content changes.
package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Zachdehooge/wildfire-dashboard/internal/model"
	"github.com/Zachdehooge/wildfire-dashboard/internal/poller"
	"github.com/Zachdehooge/wildfire-dashboard/internal/projection"
)

// Source is the backend reader. fetcher.Client implements it.
type Source interface {
	FetchFires(ctx context.Context) []model.FireRecord
	FetchSummary(ctx context.Context) model.SummaryStats
	FetchTemperature(ctx context.Context) model.Temperature
}

// Dashboard polls a Source and keeps the rendered View current.
type Dashboard struct {
	source    Source
	projector *projection.Projector
	interval  time.Duration
	now       func() time.Time

	Fires       *Feed[[]model.FireRecord]
	Summary     *Feed[model.SummaryStats]
	Temperature *Feed[model.Temperature]
	views       *Feed[View]

	mu         sync.Mutex
	fires      []model.FireRecord
	summary    model.SummaryStats
	temp       model.Temperature
	reported   sourceSet
	lastDigest string
	handles    []*poller.Handle
	subs       []interface{ Close() }
}

type sourceSet uint8

const (
	sourceFires sourceSet = 1 << iota
	sourceSummary
	sourceTemperature

	allSources = sourceFires | sourceSummary | sourceTemperature
)

// Option configures a Dashboard.
type Option func(*Dashboard)

// WithInterval sets the refresh period of every poller.
func WithInterval(d time.Duration) Option {
	return func(db *Dashboard) {
		db.interval = d
	}
}

// WithProjector overrides the map projection.
func WithProjector(p *projection.Projector) Option {
	return func(db *Dashboard) {
		db.projector = p
	}
}

// New creates a stopped dashboard over src.
func New(src Source, opts ...Option) *Dashboard {
	d := &Dashboard{
		source:      src,
		projector:   projection.Default(),
		interval:    poller.DefaultInterval,
		now:         time.Now,
		Fires:       NewFeed[[]model.FireRecord](),
		Summary:     NewFeed[model.SummaryStats](),
		Temperature: NewFeed[model.Temperature](),
		views:       NewFeed[View](),
		fires:       []model.FireRecord{},
		temp:        model.UnknownTemperature(),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.subs = []interface{ Close() }{
		d.Fires.Subscribe(func(f []model.FireRecord) {
			d.update(sourceFires, func() { d.fires = f })
		}),
		d.Summary.Subscribe(func(s model.SummaryStats) {
			d.update(sourceSummary, func() { d.summary = s })
		}),
		d.Temperature.Subscribe(func(t model.Temperature) {
			d.update(sourceTemperature, func() { d.temp = t })
		}),
	}
	return d
}

// Start activates the three pollers. Each fetches immediately and then
// every interval until Stop or ctx is cancelled.
func (d *Dashboard) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.handles != nil {
		return fmt.Errorf("dashboard already started")
	}

	d.handles = []*poller.Handle{
		poller.Activate(ctx, "fires", pollInto(d.Fires, d.source.FetchFires), d.interval),
		poller.Activate(ctx, "temperature", pollInto(d.Temperature, d.source.FetchTemperature), d.interval),
		poller.Activate(ctx, "summary", pollInto(d.Summary, d.source.FetchSummary), d.interval),
	}
	return nil
}

// pollInto adapts a fetch function to a poller operation publishing to feed.
// A result that arrives after its poller was cancelled is discarded.
func pollInto[T any](feed *Feed[T], fetch func(context.Context) T) poller.Operation {
	return func(ctx context.Context) {
		ticket := feed.Begin()
		v := fetch(ctx)
		if ctx.Err() != nil {
			return
		}
		feed.Publish(ticket, v)
	}
}

// Stop deactivates the pollers. After Stop returns no poller writes to the
// dashboard again. It is safe to call Stop on a stopped dashboard.
func (d *Dashboard) Stop() {
	d.mu.Lock()
	handles := d.handles
	d.handles = nil
	d.mu.Unlock()

	for _, h := range handles {
		h.Deactivate()
	}
}

// Close stops the pollers and detaches the dashboard from its feeds.
func (d *Dashboard) Close() {
	d.Stop()
	for _, s := range d.subs {
		s.Close()
	}
}

// View returns the most recent published view. Before every source has
// reported it renders the last-known values, placeholders included.
func (d *Dashboard) View() View {
	if v, ok := d.views.Latest(); ok {
		return v
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return BuildView(d.fires, d.temp, d.summary, d.projector, d.now())
}

// Subscribe delivers the current view, if one was published, and every
// later one to fn. Nothing is delivered until every source has reported.
func (d *Dashboard) Subscribe(fn func(View)) *Subscription[View] {
	return d.views.Subscribe(fn)
}

// Projector returns the map projection in use.
func (d *Dashboard) Projector() *projection.Projector { return d.projector }

func (d *Dashboard) update(src sourceSet, apply func()) {
	d.mu.Lock()
	apply()
	d.reported |= src
	d.mu.Unlock()
	d.publishView()
}

// publishView is a no-op until all sources have reported and when the
// content is unchanged since the last published view.
func (d *Dashboard) publishView() {
	d.mu.Lock()
	if d.reported != allSources {
		d.mu.Unlock()
		return
	}
	v := BuildView(d.fires, d.temp, d.summary, d.projector, d.now())
	if v.Digest == d.lastDigest {
		d.mu.Unlock()
		return
	}
	d.lastDigest = v.Digest
	ticket := d.views.Begin()
	d.mu.Unlock()

	d.views.Publish(ticket, v)
}
