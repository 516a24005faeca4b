package poll

import (
	"errors"
	"fmt"
	"time"
)

// ErrTimeout is matched by errors.Is for any wait that exhausted its budget.
var ErrTimeout = errors.New("vigil: condition not met before deadline")

// TimeoutError reports a wait that reached its deadline without an accepted
// result and without a configured default.
type TimeoutError struct {
	Label   string
	Timeout time.Duration
	LastErr error
}

func (e *TimeoutError) Error() string {
	if e.LastErr != nil {
		return fmt.Sprintf("vigil: condition %q not met within %s: %v", e.Label, e.Timeout, e.LastErr)
	}
	return fmt.Sprintf("vigil: condition %q not met within %s", e.Label, e.Timeout)
}

func (e *TimeoutError) Unwrap() error { return e.LastErr }

func (e *TimeoutError) Is(target error) bool { return target == ErrTimeout }

// CanceledError reports a wait interrupted by its context. It is distinct
// from TimeoutError: the budget was not exhausted, the caller gave up.
type CanceledError struct {
	Label string
	Err   error
}

func (e *CanceledError) Error() string {
	return fmt.Sprintf("vigil: wait for %q interrupted: %v", e.Label, e.Err)
}

func (e *CanceledError) Unwrap() error { return e.Err }
