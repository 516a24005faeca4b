package poll

import (
	"context"
	"time"

	"github.com/aponysus/vigil/accept"
)

// Probe evaluates external state and returns a result to be judged by the
// success rule. It may fail; failures are absorbed and polling continues.
type Probe[T any] func(ctx context.Context) (T, error)

// Request describes a single wait. Requests are ephemeral; every call is
// independent and carries no identity beyond its label.
type Request[T any] struct {
	// Label names the condition in diagnostics. It has no semantic effect.
	Label string

	// Timeout is the wall-clock budget. Non-positive values are treated as
	// MinTimeout.
	Timeout time.Duration

	Probe Probe[T]

	// Accept decides whether a probe result ends the wait. Nil defaults to
	// accept.NonZero, which for bool probes accepts only true.
	Accept accept.Func[T]

	// Default, when non-nil, is returned instead of a timeout failure once
	// the deadline passes.
	Default *T
}

func (r Request[T]) normalize() Request[T] {
	if r.Timeout <= 0 {
		r.Timeout = MinTimeout
	}
	if r.Accept == nil {
		r.Accept = accept.NonZero[T]()
	}
	return r
}
