// Package poll implements time-bounded condition polling: a probe is
// evaluated repeatedly until a success rule accepts its result or a deadline
// computed once at entry passes. Probe errors are absorbed and remembered as
// the last observed error, never propagated mid-loop.
package poll

import (
	"context"
	"time"

	"github.com/aponysus/vigil/internal"
	"github.com/aponysus/vigil/observe"
)

// DefaultInterval is the pause between unaccepted probe evaluations. Each
// probe may itself be a round trip to an external engine, so the cadence
// trades responsiveness against probe cost.
const DefaultInterval = 50 * time.Millisecond

// MinTimeout is the floor applied to non-positive timeout budgets.
const MinTimeout = time.Second

// Poller owns the sleep cadence and error absorption for condition waits.
// It is stateless across calls; a single Poller may be shared freely.
type Poller struct {
	interval time.Duration
	clock    func() time.Time
	sleep    func(context.Context, time.Duration) error
	observer observe.Observer
}

// Options configures a Poller.
type Options struct {
	Interval time.Duration
	Clock    func() time.Time
	Sleep    func(context.Context, time.Duration) error
	Observer observe.Observer
}

// Option configures a Poller.
type Option func(*Options)

// WithInterval sets the pause between probe evaluations.
func WithInterval(d time.Duration) Option {
	return func(o *Options) {
		o.Interval = d
	}
}

// WithClock sets the clock function.
func WithClock(f func() time.Time) Option {
	return func(o *Options) {
		o.Clock = f
	}
}

// WithSleep sets the sleep function. The default sleeps on a timer and
// aborts when the context is done.
func WithSleep(f func(context.Context, time.Duration) error) Option {
	return func(o *Options) {
		o.Sleep = f
	}
}

// WithObserver sets the observer.
func WithObserver(obs observe.Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// New creates a Poller with default options.
func New(opts ...Option) *Poller {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewFromOptions(cfg)
}

// NewFromOptions creates a Poller from a config struct.
func NewFromOptions(opts Options) *Poller {
	p := &Poller{
		interval: opts.Interval,
		clock:    opts.Clock,
		sleep:    opts.Sleep,
		observer: opts.Observer,
	}

	if p.interval <= 0 {
		p.interval = DefaultInterval
	}
	if p.clock == nil {
		p.clock = time.Now
	}
	if p.sleep == nil {
		p.sleep = internal.SleepContext
	}
	if p.observer == nil {
		p.observer = observe.NoopObserver{}
	}

	return p
}

// Interval returns the configured pause between probe evaluations.
func (p *Poller) Interval() time.Duration { return p.interval }
