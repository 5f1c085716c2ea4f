// Copyright 2026 The retry Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package backoff

import "time"

// Exponential is a Strategy that doubles the wait duration on each
// call: the kth call emits base * 2^(k-1). Doubling saturates at the
// maximum representable duration rather than overflowing.
//
// Construct with NewExponential and configure with WithMaxDelay and
// WithMaxRetries.
type Exponential struct {
	current    time.Duration
	maxDelay   time.Duration
	maxRetries int
	capped     bool
	limited    bool
	attempt    int
}

// NewExponential constructs an Exponential strategy starting at the
// given base delay. The sequence is infinite and uncapped until
// configured otherwise.
//
// The base may be zero, producing a sequence of zero delays.
// NewExponential panics if base is negative.
func NewExponential(base time.Duration) *Exponential {
	if base < 0 {
		panic("backoff: exponential base must not be negative")
	}
	return &Exponential{current: base}
}

// WithMaxDelay caps the emitted delay at max. The cap applies only to
// the value emitted by Next; the internal doubling progression
// continues past the cap (saturating at the maximum representable
// duration), so removing the cap mid-sequence would expose the
// uncapped values.
//
// WithMaxDelay panics if max is negative.
func (s *Exponential) WithMaxDelay(max time.Duration) *Exponential {
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
// WithMaxRetries panics if m is negative. WithMaxRetries(0) produces a
// strategy that is exhausted from the first call, equivalent to
// Limit(s, 0).
func (s *Exponential) WithMaxRetries(m int) *Exponential {
	if m < 0 {
		panic("backoff: max retries must not be negative")
	}
	s.maxRetries = m
	s.limited = true
	return s
}

// Next implements Strategy.
func (s *Exponential) Next() (time.Duration, bool) {
	if s.limited && s.attempt >= s.maxRetries {
		return 0, false
	}
	s.attempt++

	delay := s.current
	if s.capped && delay > s.maxDelay {
		delay = s.maxDelay
	}

	s.current = saturatingDouble(s.current)

	return delay, true
}
