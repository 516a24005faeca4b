package internal

import (
	"context"
	"time"
)

// SleepContext blocks for d or until ctx is done, whichever comes first.
// It returns ctx.Err() when the wait was interrupted.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)

	defer func() {
		if !timer.Stop() {
			select {
			case <-timer.C: // drain any pending tick so the channel doesn't retain value
			default:
			}
		}
	}()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
