// Package retry implements count-bounded repetition of side-effecting
// actions. Unlike the time-bounded poll package, the attempt budget is a
// hard ceiling: an action is never invoked more than its budget allows,
// regardless of elapsed wall-clock time.
package retry

import (
	"context"
	"time"

	"github.com/aponysus/vigil/internal"
	"github.com/aponysus/vigil/observe"
)

const (
	// DefaultAttempts is the attempt budget used when none is configured.
	DefaultAttempts = 3

	// DefaultInterval is the fixed delay between attempts.
	DefaultInterval = 50 * time.Millisecond
)

// Action performs a side-effecting step and returns a derived value. The
// attempt index is zero-based and increments on every retry.
type Action[T any] func(ctx context.Context, attempt int) (T, error)

// Retrier re-executes an action up to a fixed number of attempts with a
// fixed delay in between. It is stateless across calls.
type Retrier struct {
	label    string
	attempts int
	interval time.Duration
	clock    func() time.Time
	sleep    func(context.Context, time.Duration) error
	observer observe.Observer
}

// Options configures a Retrier.
type Options struct {
	Label    string
	Attempts int
	Interval time.Duration
	Clock    func() time.Time
	Sleep    func(context.Context, time.Duration) error
	Observer observe.Observer
}

// Option configures a Retrier.
type Option func(*Options)

// WithLabel names the retrier in diagnostics.
func WithLabel(label string) Option {
	return func(o *Options) {
		o.Label = label
	}
}

// WithAttempts sets the attempt budget.
func WithAttempts(n int) Option {
	return func(o *Options) {
		o.Attempts = n
	}
}

// WithInterval sets the delay between attempts.
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

// WithSleep sets the sleep function.
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

// NewRetrier creates a Retrier with default options.
func NewRetrier(opts ...Option) *Retrier {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewRetrierFromOptions(cfg)
}

// NewRetrierFromOptions creates a Retrier from a config struct.
func NewRetrierFromOptions(opts Options) *Retrier {
	r := &Retrier{
		label:    opts.Label,
		attempts: opts.Attempts,
		interval: opts.Interval,
		clock:    opts.Clock,
		sleep:    opts.Sleep,
		observer: opts.Observer,
	}

	if r.attempts == 0 {
		r.attempts = DefaultAttempts
	}
	if r.attempts < 1 {
		r.attempts = 1
	}
	if r.interval <= 0 {
		r.interval = DefaultInterval
	}
	if r.clock == nil {
		r.clock = time.Now
	}
	if r.sleep == nil {
		r.sleep = internal.SleepContext
	}
	if r.observer == nil {
		r.observer = observe.NoopObserver{}
	}

	return r
}

// Attempts returns the configured attempt budget.
func (r *Retrier) Attempts() int { return r.attempts }

// Interval returns the configured delay between attempts.
func (r *Retrier) Interval() time.Duration { return r.interval }
