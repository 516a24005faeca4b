package poll

import "time"

// OutcomeKind tags how a wait resolved. Success and timeout are mutually
// exclusive; a wait never reports both.
type OutcomeKind int

const (
	OutcomeUnknown OutcomeKind = iota
	OutcomeSuccess
	OutcomeDefault
	OutcomeTimeout
	OutcomeCanceled
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeDefault:
		return "default"
	case OutcomeTimeout:
		return "timeout"
	case OutcomeCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Outcome is the tagged result of a single wait.
type Outcome struct {
	Label string
	Kind  OutcomeKind
	Start time.Time
	End   time.Time

	// Attempts is the number of probe invocations performed.
	Attempts int

	// LastErr is the most recent absorbed probe error, if any.
	LastErr error
}
