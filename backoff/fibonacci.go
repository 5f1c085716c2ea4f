// Copyright 2026 The retry Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package backoff

import "time"

// Fibonacci is a Strategy that emits the Fibonacci sequence scaled by
// a base delay: base, base, 2*base, 3*base, 5*base, 8*base, and so on.
// The running sum saturates at the maximum representable duration
// rather than overflowing.
//
// Fibonacci grows more gently than Exponential in the early attempts,
// which makes it a reasonable middle ground between a fixed delay and
// a doubling one.
//
// Construct with NewFibonacci and configure with WithMaxDelay and
// WithMaxRetries.
type Fibonacci struct {
	current    time.Duration
	next       time.Duration
	maxDelay   time.Duration
	maxRetries int
	capped     bool
	limited    bool
	attempt    int
}

// NewFibonacci constructs a Fibonacci strategy whose first two elements
// are the given base delay. The sequence is infinite and uncapped until
// configured otherwise.
//
// The base may be zero, producing a sequence of zero delays.
// NewFibonacci panics if base is negative.
func NewFibonacci(base time.Duration) *Fibonacci {
	if base < 0 {
		panic("backoff: fibonacci base must not be negative")
	}
	return &Fibonacci{current: base, next: base}
}

// WithMaxDelay caps the emitted delay at max. As with Exponential, the
// cap applies only to the emitted value; the internal sequence keeps
// advancing past the cap, saturating at the maximum representable
// duration.
//
// WithMaxDelay panics if max is negative.
func (s *Fibonacci) WithMaxDelay(max time.Duration) *Fibonacci {
	if max < 0 {
		panic("backoff: max delay must not be negative")
	}
	s.maxDelay = max
	s.capped = true
	return s
}

// WithMaxRetries bounds the sequence at m elements. The mth call to
// Next is the last to emit a delay; every later call reports
// exhaustion.
//
// WithMaxRetries panics if m is negative.
func (s *Fibonacci) WithMaxRetries(m int) *Fibonacci {
	if m < 0 {
		panic("backoff: max retries must not be negative")
	}
	s.maxRetries = m
	s.limited = true
	return s
}

// Next implements Strategy.
func (s *Fibonacci) Next() (time.Duration, bool) {
	if s.limited && s.attempt >= s.maxRetries {
		return 0, false
	}
	s.attempt++

	delay := s.current
	if s.capped && delay > s.maxDelay {
		delay = s.maxDelay
	}

	s.current, s.next = s.next, saturatingAdd(s.current, s.next)

	return delay, true
}
