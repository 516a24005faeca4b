package retry

import (
	"log"
	"sync"
)

var (
	globalRetrier *Retrier
	globalOnce    sync.Once
)

// DefaultRetrier returns the shared, lazy-initialized default retrier.
func DefaultRetrier() *Retrier {
	globalOnce.Do(func() {
		if globalRetrier == nil {
			globalRetrier = NewRetrier()
		}
	})
	return globalRetrier
}

// SetDefault configures the default retrier.
// It must be called before DefaultRetrier() is used (e.g. at startup).
// If called after initialization, it logs a warning and does nothing.
func SetDefault(r *Retrier) {
	if r == nil {
		return
	}

	if globalRetrier != nil {
		log.Printf("retry: SetDefault called after default retrier already initialized; ignoring.")
		return
	}

	globalOnce.Do(func() {
		globalRetrier = r
	})
}
