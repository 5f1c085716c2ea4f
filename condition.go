// Copyright 2026 The retry Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"errors"

	"github.com/gogama/retry/transient"
)

// A Condition decides whether a failed attempt should be retried. It
// receives the error from the attempt and returns true to allow
// another attempt, or false to stop the session and surface the error.
//
// The retry loop evaluates the condition once per failed attempt,
// before consulting the delay strategy, so a non-retryable error never
// advances the strategy's state.
//
// A Condition must be a pure predicate with respect to correctness: it
// may keep state (for example, counting evaluations in a test) but the
// loop must behave correctly regardless of any side effects it has.
//
// Simple conditions can be composed into complex decision trees using
// the logical composition methods And and Or, and inverted with Not.
type Condition func(err error) bool

// Always is the default retry condition. It retries every error.
var Always Condition = func(error) bool {
	return true
}

// TransientErr is a condition that retries an error if it is transient
// according to transient.Categorize: a timeout, a refused connection,
// or a reset connection, whether directly or as a wrapped cause.
//
// TransientErr stops on context cancellation, since a canceled context
// is never transient.
var TransientErr Condition = func(err error) bool {
	return transient.Categorize(err) != transient.Not
}

// Is constructs a condition that retries an error if it matches any of
// the given target errors per errors.Is. Use it to retry only on known
// sentinel errors:
//
//	cond := retry.Is(io.ErrUnexpectedEOF, errBusy)
func Is(targets ...error) Condition {
	ts := make([]error, len(targets))
	copy(ts, targets)
	return func(err error) bool {
		for _, t := range ts {
			if errors.Is(err, t) {
				return true
			}
		}
		return false
	}
}

// And composes two conditions into a new condition which retries only
// if both sub-conditions retry.
//
// Short-circuit logic is used, so d will not be evaluated if c returns
// false.
func (c Condition) And(d Condition) Condition {
	return func(err error) bool {
		return c(err) && d(err)
	}
}

// Or composes two conditions into a new condition which retries if
// either of the two sub-conditions retries, but stops if both stop.
//
// Short-circuit logic is used, so d will not be evaluated if c returns
// true.
func (c Condition) Or(d Condition) Condition {
	return func(err error) bool {
		return c(err) || d(err)
	}
}

// Not inverts a condition: errors the sub-condition would retry stop
// the session, and vice versa.
func Not(c Condition) Condition {
	return func(err error) bool {
		return !c(err)
	}
}
