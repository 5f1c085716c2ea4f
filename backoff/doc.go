// Copyright 2026 The retry Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package backoff provides delay sequence strategies which control how
// long a retry session waits between attempts.
//
// The interface Strategy defines a delay sequence: a stateful generator
// whose Next method is pulled once per retry, and which signals
// exhaustion when the sequence ends. Exhaustion stops the retry session;
// it is a terminal signal, not an error.
//
// Constructors are provided for the common sequences:
//
//	fixed := backoff.NewFixed(time.Second)
//	exp := backoff.NewExponential(100 * time.Millisecond).
//		WithMaxDelay(5 * time.Second)
//	fib := backoff.NewFibonacci(250 * time.Millisecond).
//		WithMaxRetries(8)
//
// Any strategy can be bounded with the Limit decorator, which is
// interchangeable with the built-in WithMaxRetries methods:
//
//	bounded := backoff.Limit(backoff.NewFixed(time.Second), 3)
//
// and randomized with the Jitter decorator, which applies the "Full
// Jitter" approach to whatever sequence it wraps:
//
//	jittered := backoff.NewJitter(exp, time.Now())
//
// Strategies are mutable state machines owned by a single retry
// session. They are NOT safe for concurrent use; construct a fresh
// strategy for each session.
package backoff
