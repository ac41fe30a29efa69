// Package registry implements the tracker registry: one analytics client,
// one lazily created tracker per tracker kind, and helpers to send hits
// through the tracker of the currently selected kind.
package registry

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Config holds what the registry needs to create its client and trackers.
type Config struct {
	// Client is passed to the SDK client factory.
	Client ports.ClientOptions
	// Trackers maps each kind to its tracker resource. Missing kinds use the defaults.
	Trackers map[domain.TrackerKind]domain.TrackerSettings
	// DefaultKind is the kind selected before any SetTrackerKind call.
	DefaultKind domain.TrackerKind
	// OptOut disables data collection on the client.
	OptOut bool
}

// Option customizes a Registry.
type Option func(*Registry)

// WithClock sets the clock used for begin times and elapsed time.
func WithClock(c clockwork.Clock) Option {
	return func(r *Registry) {
		r.clock = c
	}
}

// Registry owns the analytics client and the tracker of every kind selected so far.
// It is safe for concurrent use.
type Registry struct {
	analytics ports.Analytics
	settings  map[domain.TrackerKind]domain.TrackerSettings
	clientOpt ports.ClientOptions
	optOut    bool
	logger    ports.Logger
	clock     clockwork.Clock

	initOnce sync.Once
	initErr  error

	mu        sync.Mutex
	client    ports.Client
	kind      domain.TrackerKind
	trackers  map[domain.TrackerKind]ports.Tracker
	beginTime *time.Time

	// screenMu keeps the set-send-clear sequence of a screen view atomic.
	screenMu sync.Mutex
}

// New creates a Registry. Nothing is created in the SDK until Init is called.
func New(analytics ports.Analytics, cfg Config, logger ports.Logger, opts ...Option) *Registry {
	settings := domain.DefaultTrackerSettings()
	for kind, s := range cfg.Trackers {
		settings[kind] = s
	}

	kind := cfg.DefaultKind
	if !kind.Valid() {
		kind = domain.TrackerApp
	}

	r := &Registry{
		analytics: analytics,
		settings:  settings,
		clientOpt: cfg.Client,
		optOut:    cfg.OptOut,
		logger:    logger,
		clock:     clockwork.NewRealClock(),
		kind:      kind,
		trackers:  make(map[domain.TrackerKind]ports.Tracker, len(domain.TrackerKinds)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Init creates the analytics client and the tracker of the current kind.
// Only the first call does any work; later calls return its result.
func (r *Registry) Init(ctx context.Context) error {
	r.initOnce.Do(func() {
		r.initErr = r.init(ctx)
	})
	return r.initErr
}

func (r *Registry) init(ctx context.Context) error {
	client, err := r.analytics.NewClient(ctx, r.clientOpt)
	if err != nil {
		return zerr.Wrap(err, domain.ErrClientCreateFailed.Error())
	}

	if r.optOut {
		client.SetAppOptOut(true)
		r.logger.Info("analytics opt-out is set, data collection disabled")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.client = client
	if _, err := r.trackerLocked(r.kind); err != nil {
		r.client = nil
		_ = client.Close(ctx)
		return err
	}
	return nil
}

// Initialized reports whether Init completed successfully.
func (r *Registry) Initialized() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.client != nil
}

// SetTrackerKind selects the tracker used by subsequent sends.
func (r *Registry) SetTrackerKind(kind domain.TrackerKind) error {
	if !kind.Valid() {
		return zerr.With(domain.ErrUnknownTrackerKind, "kind", int(kind))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.kind = kind
	return nil
}

// TrackerKind returns the currently selected kind.
func (r *Registry) TrackerKind() domain.TrackerKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.kind
}

// Trackers returns the kinds that already have a tracker, in declaration order.
func (r *Registry) Trackers() []domain.TrackerKind {
	r.mu.Lock()
	defer r.mu.Unlock()

	kinds := make([]domain.TrackerKind, 0, len(r.trackers))
	for kind := range r.trackers {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	return kinds
}

// Settings returns the tracker resource configured for kind.
func (r *Registry) Settings(kind domain.TrackerKind) domain.TrackerSettings {
	return r.settings[kind]
}

// Warm creates the trackers of the given kinds concurrently.
func (r *Registry) Warm(ctx context.Context, kinds ...domain.TrackerKind) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, kind := range kinds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, err := r.tracker(kind)
			return err
		})
	}
	return g.Wait()
}

// SendScreenView sends a screen view for name. The screen name is set on the
// active tracker for the duration of the send and cleared afterwards.
func (r *Registry) SendScreenView(ctx context.Context, name string) error {
	kind, t, err := r.active()
	if err != nil {
		return err
	}

	r.screenMu.Lock()
	defer r.screenMu.Unlock()

	t.SetScreenName(name)
	defer t.SetScreenName("")

	return r.send(ctx, kind, t, domain.NewScreenViewHit())
}

// SendEvent sends an event hit.
func (r *Registry) SendEvent(ctx context.Context, category, action, label string, value int64) error {
	return r.sendActive(ctx, domain.NewEventHit(category, action, label, value))
}

// SendTiming sends a user timing hit with an interval in milliseconds.
func (r *Registry) SendTiming(ctx context.Context, category string, intervalMillis int64, name, label string) error {
	return r.sendActive(ctx, domain.NewTimingHit(category, intervalMillis, name, label))
}

// SendException sends a non-fatal exception report.
func (r *Registry) SendException(ctx context.Context, description string) error {
	return r.sendActive(ctx, domain.NewExceptionHit(description))
}

// SetBeginTime marks the start of a timed interval.
func (r *Registry) SetBeginTime(t time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.beginTime = &t
}

// Begin marks the start of a timed interval at the current time.
func (r *Registry) Begin() {
	r.SetBeginTime(r.clock.Now())
}

// ClearBeginTime forgets the begin time.
func (r *Registry) ClearBeginTime() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.beginTime = nil
}

// ElapsedMillis returns the milliseconds elapsed since the begin time.
func (r *Registry) ElapsedMillis() (int64, error) {
	r.mu.Lock()
	begin := r.beginTime
	r.mu.Unlock()

	if begin == nil {
		return 0, domain.ErrNoBeginTimeSet
	}
	return r.clock.Since(*begin).Milliseconds(), nil
}

// Close releases the analytics client. It is a no-op before Init.
func (r *Registry) Close(ctx context.Context) error {
	r.mu.Lock()
	client := r.client
	r.mu.Unlock()

	if client == nil {
		return nil
	}
	return client.Close(ctx)
}

func (r *Registry) sendActive(ctx context.Context, hit domain.Hit) error {
	kind, t, err := r.active()
	if err != nil {
		return err
	}
	return r.send(ctx, kind, t, hit)
}

func (r *Registry) send(ctx context.Context, kind domain.TrackerKind, t ports.Tracker, hit domain.Hit) error {
	if err := t.Send(ctx, hit); err != nil {
		return zerr.With(
			zerr.With(zerr.Wrap(err, domain.ErrHitSendFailed.Error()), "kind", kind.String()),
			"hit_type", string(hit.Type),
		)
	}
	return nil
}

// active resolves the tracker of the current kind, creating it on first use.
func (r *Registry) active() (domain.TrackerKind, ports.Tracker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kind := r.kind
	t, err := r.trackerLocked(kind)
	return kind, t, err
}

func (r *Registry) tracker(kind domain.TrackerKind) (ports.Tracker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.trackerLocked(kind)
}

// trackerLocked must be called with mu held.
func (r *Registry) trackerLocked(kind domain.TrackerKind) (ports.Tracker, error) {
	if r.client == nil {
		return nil, domain.ErrNotInitialized
	}
	if t, ok := r.trackers[kind]; ok {
		return t, nil
	}
	if !kind.Valid() {
		return nil, zerr.With(domain.ErrUnknownTrackerKind, "kind", int(kind))
	}

	settings := r.settings[kind]
	t, err := r.client.NewTracker(settings)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTrackerCreateFailed.Error()), "kind", kind.String())
	}

	r.trackers[kind] = t
	r.logger.Info(fmt.Sprintf("created %s tracker from resource %s", kind, settings.Resource))
	return t, nil
}
