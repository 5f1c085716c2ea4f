// Copyright 2026 The retry Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package backoff

import "time"

// Limit bounds a Strategy at its first n elements. The returned
// strategy emits at most n delays from inner, then reports exhaustion
// on every subsequent call without consulting inner again.
//
// Limit is interchangeable with the built-in WithMaxRetries methods on
// Exponential and Fibonacci: Limit(NewExponential(b), n) and
// NewExponential(b).WithMaxRetries(n) emit identical sequences. Limit
// is the only way to bound strategies without a built-in limit, such
// as NewFixed.
//
// Limit panics if inner is nil or n is negative. Limit(inner, 0) is
// exhausted from the first call.
func Limit(inner Strategy, n int) Strategy {
	if inner == nil {
		panic("backoff: inner strategy may not be nil")
	}
	if n < 0 {
		panic("backoff: limit must not be negative")
	}
	return &limit{inner: inner, remaining: n}
}

type limit struct {
	inner     Strategy
	remaining int
}

func (s *limit) Next() (time.Duration, bool) {
	if s.remaining <= 0 {
		return 0, false
	}
	s.remaining--
	return s.inner.Next()
}
