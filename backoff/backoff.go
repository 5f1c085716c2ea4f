// Copyright 2026 The retry Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package backoff

import (
	"math"
	"time"
)

// A Strategy produces the ordered sequence of wait durations separating
// the attempts of a retry session.
//
// Next returns the next delay in the sequence and true, or a zero
// duration and false once the sequence is exhausted. Exhaustion is
// permanent: after Next has returned false it returns false on every
// subsequent call. A zero delay with true is a valid element meaning
// "retry immediately" and is distinct from exhaustion.
//
// A Strategy is a mutable state machine exclusively owned by one retry
// session for the session's lifetime. Implementations need not be, and
// the built-in implementations are not, safe for concurrent use.
type Strategy interface {
	Next() (time.Duration, bool)
}

// The StrategyFunc type is an adapter to allow the use of ordinary
// functions as delay strategies. If f is a function with the
// appropriate signature, StrategyFunc(f) is a Strategy that calls f.
type StrategyFunc func() (time.Duration, bool)

// Next calls f().
func (f StrategyFunc) Next() (time.Duration, bool) {
	return f()
}

const maxDuration = time.Duration(math.MaxInt64)

// saturatingDouble doubles d, clamping at the maximum representable
// duration instead of wrapping.
func saturatingDouble(d time.Duration) time.Duration {
	if d > maxDuration/2 {
		return maxDuration
	}
	return d * 2
}

// saturatingAdd sums a and b, clamping at the maximum representable
// duration instead of wrapping. Both arguments must be non-negative.
func saturatingAdd(a, b time.Duration) time.Duration {
	if a > maxDuration-b {
		return maxDuration
	}
	return a + b
}
