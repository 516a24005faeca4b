package poll

import (
	"context"
	"time"

	"github.com/aponysus/vigil/accept"
	"github.com/aponysus/vigil/observe"
)

// Wait evaluates req.Probe until req.Accept is satisfied or the deadline
// passes. The deadline is computed once at entry and never extended. On
// success the accepted value is returned immediately. On timeout the
// request's default is returned if one was supplied, otherwise a
// *TimeoutError carrying the label and the last absorbed probe error.
//
// Wait is a package function rather than a method because methods cannot
// carry type parameters.
func Wait[T any](ctx context.Context, p *Poller, req Request[T]) (T, error) {
	val, _, err := wait(ctx, p, req)
	return val, err
}

// WaitOutcome is Wait plus the tagged Outcome describing how the call
// resolved.
func WaitOutcome[T any](ctx context.Context, p *Poller, req Request[T]) (T, Outcome, error) {
	return wait(ctx, p, req)
}

// WaitTrue waits for a boolean condition. Only true is accepted; false is a
// valid but unaccepted result and polling continues.
func WaitTrue(ctx context.Context, p *Poller, label string, timeout time.Duration, probe Probe[bool]) (bool, error) {
	return Wait(ctx, p, Request[bool]{
		Label:   label,
		Timeout: timeout,
		Probe:   probe,
		Accept:  accept.Func[bool](accept.True),
	})
}

func wait[T any](ctx context.Context, p *Poller, req Request[T]) (T, Outcome, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if p == nil {
		p = New()
	}
	req = req.normalize()

	var zero T

	start := p.clock()
	deadline := start.Add(req.Timeout)

	out := Outcome{Label: req.Label, Start: start}
	tr := observe.Trace{Label: req.Label, Start: start}
	p.observer.OnStart(ctx, req.Label)

	var lastErr error
	var slept time.Duration

	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			o, ferr := p.finish(ctx, &out, &tr, OutcomeCanceled, lastErr, &CanceledError{Label: req.Label, Err: err})
			return zero, o, ferr
		}

		attemptCtx := observe.WithAttemptInfo(ctx, observe.AttemptInfo{Attempt: attempt, Label: req.Label})

		began := p.clock()
		val, err := req.Probe(attemptCtx)
		accepted := err == nil && req.Accept(val)

		rec := observe.AttemptRecord{
			Attempt:   attempt,
			StartTime: began,
			EndTime:   p.clock(),
			Accepted:  accepted,
			Err:       err,
			Wait:      slept,
		}
		out.Attempts++
		tr.Attempts = append(tr.Attempts, rec)
		p.observer.OnAttempt(ctx, req.Label, rec)

		if accepted {
			out.Kind = OutcomeSuccess
			out.End = p.clock()
			tr.End = out.End
			p.observer.OnSuccess(ctx, req.Label, tr)
			return val, out, nil
		}
		if err != nil {
			lastErr = err
		}

		if !p.clock().Before(deadline) {
			if req.Default != nil {
				out.Kind = OutcomeDefault
				out.End = p.clock()
				out.LastErr = lastErr
				tr.End = out.End
				p.observer.OnSuccess(ctx, req.Label, tr)
				return *req.Default, out, nil
			}
			terr := &TimeoutError{Label: req.Label, Timeout: req.Timeout, LastErr: lastErr}
			o, ferr := p.finish(ctx, &out, &tr, OutcomeTimeout, lastErr, terr)
			return zero, o, ferr
		}

		slept = p.interval
		if err := p.sleep(ctx, p.interval); err != nil {
			o, ferr := p.finish(ctx, &out, &tr, OutcomeCanceled, lastErr, &CanceledError{Label: req.Label, Err: err})
			return zero, o, ferr
		}
	}
}

func (p *Poller) finish(ctx context.Context, out *Outcome, tr *observe.Trace, kind OutcomeKind, lastErr, final error) (Outcome, error) {
	out.Kind = kind
	out.End = p.clock()
	out.LastErr = lastErr
	tr.End = out.End
	tr.FinalErr = final
	p.observer.OnFailure(ctx, out.Label, *tr)
	return *out, final
}
