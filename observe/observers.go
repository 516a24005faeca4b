package observe

import "context"

// BaseObserver implements Observer with no-op methods.
//
// Users can embed BaseObserver to implement only the callbacks they need.
type BaseObserver struct{}

func (BaseObserver) OnStart(context.Context, string)                  {}
func (BaseObserver) OnAttempt(context.Context, string, AttemptRecord) {}
func (BaseObserver) OnSuccess(context.Context, string, Trace)         {}
func (BaseObserver) OnFailure(context.Context, string, Trace)         {}

// MultiObserver fans out events to multiple observers.
type MultiObserver struct {
	Observers []Observer
}

func (m MultiObserver) OnStart(ctx context.Context, label string) {
	for _, o := range m.Observers {
		if o != nil {
			o.OnStart(ctx, label)
		}
	}
}

func (m MultiObserver) OnAttempt(ctx context.Context, label string, rec AttemptRecord) {
	for _, o := range m.Observers {
		if o != nil {
			o.OnAttempt(ctx, label, rec)
		}
	}
}

func (m MultiObserver) OnSuccess(ctx context.Context, label string, tr Trace) {
	for _, o := range m.Observers {
		if o != nil {
			o.OnSuccess(ctx, label, tr)
		}
	}
}

func (m MultiObserver) OnFailure(ctx context.Context, label string, tr Trace) {
	for _, o := range m.Observers {
		if o != nil {
			o.OnFailure(ctx, label, tr)
		}
	}
}
