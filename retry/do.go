package retry

import (
	"context"

	"github.com/aponysus/vigil/accept"
	"github.com/aponysus/vigil/observe"
)

// Do invokes action until it returns without error or the attempt budget is
// exhausted. A clean return is acceptance; the returned value is not judged
// further (actions are expected to fail when their post-condition was not
// met). On exhaustion the final attempt's error is returned verbatim, not
// wrapped, so the caller can match it with errors.Is/As.
//
// Do and BestEffort are package functions rather than methods because
// methods cannot carry type parameters.
func Do[T any](ctx context.Context, r *Retrier, action Action[T]) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if r == nil {
		r = NewRetrier()
	}

	var zero T
	tr := observe.Trace{Label: r.label, Start: r.clock()}
	r.observer.OnStart(ctx, r.label)

	var lastErr error

	for attempt := 0; attempt < r.attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, r.fail(ctx, &tr, err)
		}

		val, err := invoke(ctx, r, &tr, attempt, action, nil)
		if err == nil {
			tr.End = r.clock()
			r.observer.OnSuccess(ctx, r.label, tr)
			return val, nil
		}
		lastErr = err

		if attempt == r.attempts-1 {
			break
		}
		if err := r.sleep(ctx, r.interval); err != nil {
			return zero, r.fail(ctx, &tr, err)
		}
	}

	return zero, r.fail(ctx, &tr, lastErr)
}

// BestEffort invokes action until rule accepts its result or the attempt
// budget is exhausted. Action errors count as unaccepted attempts and are
// absorbed. On exhaustion the last observed value is returned with a nil
// error; callers must inspect the value themselves. A nil rule defaults to
// accept.NonZero.
//
// The asymmetry with Do is deliberate: Do is for actions whose failure must
// be visible, BestEffort for "return what you found" scans.
func BestEffort[T any](ctx context.Context, r *Retrier, action Action[T], rule accept.Func[T]) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if r == nil {
		r = NewRetrier()
	}
	if rule == nil {
		rule = accept.NonZero[T]()
	}

	tr := observe.Trace{Label: r.label, Start: r.clock()}
	r.observer.OnStart(ctx, r.label)

	var last T
	var lastErr error

	for attempt := 0; attempt < r.attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return last, r.fail(ctx, &tr, err)
		}

		val, err := invoke(ctx, r, &tr, attempt, action, rule)
		if err == nil {
			last = val
			if rule(val) {
				tr.End = r.clock()
				r.observer.OnSuccess(ctx, r.label, tr)
				return val, nil
			}
		} else {
			lastErr = err
		}

		if attempt == r.attempts-1 {
			break
		}
		if err := r.sleep(ctx, r.interval); err != nil {
			return last, r.fail(ctx, &tr, err)
		}
	}

	// Degrade to the last observed value; exhaustion is not an error here.
	tr.End = r.clock()
	tr.FinalErr = lastErr
	r.observer.OnFailure(ctx, r.label, tr)
	return last, nil
}

func invoke[T any](ctx context.Context, r *Retrier, tr *observe.Trace, attempt int, action Action[T], rule accept.Func[T]) (T, error) {
	attemptCtx := observe.WithAttemptInfo(ctx, observe.AttemptInfo{Attempt: attempt, Label: r.label})

	began := r.clock()
	val, err := action(attemptCtx, attempt)

	rec := observe.AttemptRecord{
		Attempt:   attempt,
		StartTime: began,
		EndTime:   r.clock(),
		Accepted:  err == nil && (rule == nil || rule(val)),
		Err:       err,
	}
	if attempt > 0 {
		rec.Wait = r.interval
	}
	tr.Attempts = append(tr.Attempts, rec)
	r.observer.OnAttempt(ctx, r.label, rec)

	return val, err
}

func (r *Retrier) fail(ctx context.Context, tr *observe.Trace, err error) error {
	tr.End = r.clock()
	tr.FinalErr = err
	r.observer.OnFailure(ctx, r.label, *tr)
	return err
}
