// Package accept defines the success rules shared by the poll and retry
// engines: predicates that distinguish a "done" result from a "keep going"
// result.
package accept

import (
	"reflect"

	"github.com/aponysus/vigil/internal"
)

// Func reports whether a result value counts as success.
type Func[T any] func(T) bool

// NonZero returns the default success rule: a value is accepted when it is
// neither the zero value of T nor a typed nil hiding behind an interface.
//
// For T == bool this means only true is accepted, matching True.
func NonZero[T any]() Func[T] {
	return func(v T) bool {
		if internal.IsTypedNil(v) {
			return false
		}
		rv := reflect.ValueOf(v)
		return rv.IsValid() && !rv.IsZero()
	}
}

// True accepts only true. It is the boolean form of NonZero, provided so
// call sites waiting on a condition read naturally.
func True(v bool) bool { return v }

// All combines rules into a conjunction. Nil rules are skipped; All with no
// effective rules accepts everything.
func All[T any](rules ...Func[T]) Func[T] {
	return func(v T) bool {
		for _, rule := range rules {
			if rule == nil {
				continue
			}
			if !rule(v) {
				return false
			}
		}
		return true
	}
}
