// Copyright 2026 The retry Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package retry re-executes a fallible operation until it succeeds, a
budget is exhausted, or the error is judged non-retryable.

Create a Retry with a delay strategy and an operation, then run it:

	strategy := backoff.NewExponential(100 * time.Millisecond).
		WithMaxRetries(5)
	result, err := retry.New(strategy, fetchData).Run(ctx)

The operation is any function producing a result and an error:

	func fetchData(ctx context.Context) (string, error) {
		...
	}

It is invoked once per attempt, so it must be safe to call repeatedly.

For control over which errors are retried, set a Condition. The default
retries every error. Conditions compose with And, Or, and Not:

	result, err := retry.New(strategy, fetchData).
		WithCondition(retry.TransientErr.Or(retry.Is(errBusy))).
		Run(ctx)

For a ceiling on the total wall-clock time spent across all attempts
and delays, set a budget with WithMaxDuration. The budget is checked
after every failed attempt, and again before every delay so that the
session never commits to a sleep that would overrun it:

	result, err := retry.New(backoff.NewFixed(time.Second), fetchData).
		WithMaxDuration(10 * time.Second).
		Run(ctx)

Whichever way the session stops — non-retryable error, exhausted delay
strategy, or exceeded budget — the error returned is the operation's
last error, unmodified. The package never wraps operation errors and
has no synthetic "retries exhausted" error type.

Delay sequencing lives in package backoff: fixed, exponential, and
Fibonacci sequences, a full-jitter decorator, and a take-first-N
limiter. See that package for details.

Waiting between attempts goes through the Sleeper interface, which is
injected at construction. The default sleeper blocks on a timer and
honors context cancellation; tests can inject a sleeper that records
durations without actually waiting.

To observe a session from outside — for logging, metrics, or tracing —
install event handlers. The retry loop itself emits nothing:

	var handlers retry.HandlerGroup
	handlers.PushBack(retry.BeforeWait, retry.HandlerFunc(
		func(evt retry.Event, s *retry.Session) {
			log.Printf("attempt %d failed (%v); retrying in %v",
				s.Attempt, s.Err, s.Wait)
		}))
	result, err := retry.New(strategy, fetchData).
		WithHandlers(&handlers).
		Run(ctx)

Each Retry value runs one session at a time: the strategy it holds is
stateful. Construct a fresh Retry (and strategy) per logical operation
rather than sharing one across goroutines.
*/
package retry
