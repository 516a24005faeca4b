package poll

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aponysus/vigil/observe"
)

// fakeTime drives the poller clock from recorded sleeps so wait loops run
// instantly and deterministically.
type fakeTime struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

func (f *fakeTime) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeTime) Sleep(_ context.Context, d time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sleeps = append(f.sleeps, d)
	f.now = f.now.Add(d)
	return nil
}

func (f *fakeTime) Sleeps() []time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]time.Duration(nil), f.sleeps...)
}

func newTestPoller(t *testing.T, interval time.Duration) (*Poller, *fakeTime) {
	t.Helper()
	ft := &fakeTime{now: time.Unix(1000, 0)}
	p := New(WithInterval(interval), WithClock(ft.Now), WithSleep(ft.Sleep))
	return p, ft
}

func attemptInfo(ctx context.Context) (int, bool) {
	info, ok := observe.AttemptFromContext(ctx)
	return info.Attempt, ok
}
