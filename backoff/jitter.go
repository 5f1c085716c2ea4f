// Copyright 2026 The retry Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package backoff

import (
	"math/rand"
	"time"
)

// Jitter is a decorator Strategy that randomizes the delays of the
// strategy it wraps. On each call it pulls the next delay d from the
// inner strategy and emits a uniformly random duration in [0, d]. When
// the inner strategy is exhausted, Jitter is exhausted.
//
// This is the "Full Jitter" approach described in:
// https://aws.amazon.com/blogs/architecture/exponential-backoff-and-jitter.
// Randomizing the delay prevents a fleet of clients that failed at the
// same moment from retrying in lockstep. A jittered delay never exceeds
// the delay of the wrapped strategy.
//
// Construct with NewJitter.
type Jitter struct {
	inner Strategy
	rand  *rand.Rand
}

// NewJitter wraps a Strategy with full jitter.
//
// Parameter jitter configures the random number generator. You may
// specify either a seed value (as a time.Time, int, or int64) or a
// random number generator (as a rand.Source or *rand.Rand). Pass nil
// to seed from the current time. A fixed seed makes the sequence
// reproducible, which is useful in tests.
//
// NewJitter panics if inner is nil or if jitter is not one of the
// supported types.
func NewJitter(inner Strategy, jitter interface{}) *Jitter {
	if inner == nil {
		panic("backoff: inner strategy may not be nil")
	}
	return &Jitter{
		inner: inner,
		rand:  jitterToRand(jitter),
	}
}

// Next implements Strategy.
func (s *Jitter) Next() (time.Duration, bool) {
	d, ok := s.inner.Next()
	if !ok {
		return 0, false
	}
	if d <= 0 {
		return 0, true
	}
	// Int63n draws from the half-open interval [0, n), so draw on
	// [0, d+1) to include d itself. At d equal to the maximum
	// representable duration d+1 would overflow; fall back to the
	// half-open draw there.
	if d == maxDuration {
		return time.Duration(s.rand.Int63()), true
	}
	return time.Duration(s.rand.Int63n(int64(d) + 1)), true
}

func jitterToRand(jitter interface{}) *rand.Rand {
	var s rand.Source
	switch j := jitter.(type) {
	case nil:
		s = rand.NewSource(time.Now().UnixNano())
	case time.Time:
		s = rand.NewSource(j.UnixNano())
	case int:
		s = rand.NewSource(int64(j))
	case int64:
		s = rand.NewSource(j)
	case *rand.Rand:
		if j == nil {
			panic("backoff: jitter may not be a typed nil")
		}
		return j
	case rand.Source:
		s = j
	default:
		panic("backoff: invalid jitter type")
	}
	return rand.New(s)
}
