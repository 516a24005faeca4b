package observe

import (
	"context"
	"time"
)

// AttemptRecord describes a single probe or action invocation.
type AttemptRecord struct {
	Attempt   int
	StartTime time.Time
	EndTime   time.Time

	// Accepted reports whether the success rule accepted this attempt's
	// result.
	Accepted bool

	Err error

	// Wait is the interval slept before this attempt.
	Wait time.Duration
}

// Trace is the structured record of a single poll or retry call and all of
// its attempts.
type Trace struct {
	Label string
	Start time.Time
	End   time.Time

	Attempts []AttemptRecord
	FinalErr error
}

// Observer receives lifecycle callbacks for a single call.
type Observer interface {
	OnStart(ctx context.Context, label string)
	OnAttempt(ctx context.Context, label string, rec AttemptRecord)

	OnSuccess(ctx context.Context, label string, tr Trace)
	OnFailure(ctx context.Context, label string, tr Trace)
}
