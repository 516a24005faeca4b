// Package vigil is the convenience facade over the poll and retry engines,
// bound to their shared lazy defaults.
package vigil

import (
	"context"
	"time"

	"github.com/aponysus/vigil/accept"
	"github.com/aponysus/vigil/poll"
	"github.com/aponysus/vigil/retry"
)

// Init sets the global default poller and retrier.
// It must be called before the package-level helpers are used.
func Init(p *poll.Poller, r *retry.Retrier) {
	if p != nil {
		poll.SetDefault(p)
	}
	if r != nil {
		retry.SetDefault(r)
	}
}

// Eventually waits until probe yields a non-zero result, using the default
// poller.
func Eventually[T any](ctx context.Context, label string, timeout time.Duration, probe poll.Probe[T]) (T, error) {
	return poll.Wait(ctx, poll.DefaultPoller(), poll.Request[T]{
		Label:   label,
		Timeout: timeout,
		Probe:   probe,
	})
}

// EventuallyOr is Eventually with a fallback returned instead of a timeout
// failure.
func EventuallyOr[T any](ctx context.Context, label string, timeout time.Duration, fallback T, probe poll.Probe[T]) (T, error) {
	return poll.Wait(ctx, poll.DefaultPoller(), poll.Request[T]{
		Label:   label,
		Timeout: timeout,
		Probe:   probe,
		Default: &fallback,
	})
}

// EventuallyTrue waits until probe yields true, using the default poller.
func EventuallyTrue(ctx context.Context, label string, timeout time.Duration, probe poll.Probe[bool]) (bool, error) {
	return poll.WaitTrue(ctx, poll.DefaultPoller(), label, timeout, probe)
}

// Retry re-executes action up to attempts times with interval between
// attempts; exhaustion re-raises the final attempt's error.
func Retry[T any](ctx context.Context, attempts int, interval time.Duration, action retry.Action[T]) (T, error) {
	r := retry.NewRetrier(retry.WithAttempts(attempts), retry.WithInterval(interval))
	return retry.Do(ctx, r, action)
}

// BestEffort re-executes action up to attempts times and returns the last
// observed value on exhaustion, never an exhaustion error. A nil rule
// defaults to accept.NonZero.
func BestEffort[T any](ctx context.Context, attempts int, interval time.Duration, action retry.Action[T], rule accept.Func[T]) (T, error) {
	r := retry.NewRetrier(retry.WithAttempts(attempts), retry.WithInterval(interval))
	return retry.BestEffort(ctx, r, action, rule)
}
