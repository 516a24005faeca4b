package poll

import (
	"log"
	"sync"
)

var (
	globalPoller *Poller
	globalOnce   sync.Once
)

// DefaultPoller returns the shared, lazy-initialized default poller.
func DefaultPoller() *Poller {
	globalOnce.Do(func() {
		if globalPoller == nil {
			globalPoller = New()
		}
	})
	return globalPoller
}

// SetDefault configures the default poller.
// It must be called before DefaultPoller() is used (e.g. at startup).
// If called after initialization, it logs a warning and does nothing.
func SetDefault(p *Poller) {
	if p == nil {
		return
	}

	if globalPoller != nil {
		log.Printf("poll: SetDefault called after default poller already initialized; ignoring.")
		return
	}

	globalOnce.Do(func() {
		globalPoller = p
	})
}
