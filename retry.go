// Copyright 2026 The retry Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"context"
	"time"

	"github.com/gogama/retry/backoff"
)

// An Operation is the fallible unit of work a retry session drives. It
// is invoked once per attempt, so it must be safe to call repeatedly,
// and it should honor cancellation of the context it receives.
type Operation[T any] func(ctx context.Context) (T, error)

// A Retry pairs an operation with the policy for re-executing it: a
// delay strategy, a retry condition, an optional time budget, and a
// sleeper. Configure it with the With methods, then execute it with
// Run.
//
// A Retry owns its delay strategy, which is stateful, so a Retry value
// describes a single retry session: construct a fresh Retry (with a
// fresh strategy) for each logical operation, and do not share one
// across goroutines. Independent Retry values share no state and may
// run concurrently without coordination.
type Retry[T any] struct {
	strategy    backoff.Strategy
	operation   Operation[T]
	condition   Condition
	maxDuration time.Duration
	sleeper     Sleeper
	handlers    *HandlerGroup
}

var emptyHandlers = HandlerGroup{}

// New constructs a Retry that re-executes operation, waiting between
// attempts according to strategy. The returned Retry retries every
// error and has no time budget; adjust with WithCondition and
// WithMaxDuration.
//
// New panics if strategy or operation is nil.
func New[T any](strategy backoff.Strategy, operation Operation[T]) *Retry[T] {
	if strategy == nil {
		panic("retry: nil strategy")
	}
	if operation == nil {
		panic("retry: nil operation")
	}
	return &Retry[T]{
		strategy:  strategy,
		operation: operation,
	}
}

// WithCondition replaces the retry condition. The condition is
// evaluated on every attempt error, before the delay strategy is
// consulted; if it returns false the session stops immediately and
// surfaces the error.
//
// A nil condition restores the default, Always.
func (r *Retry[T]) WithCondition(c Condition) *Retry[T] {
	r.condition = c
	return r
}

// WithMaxDuration sets a budget: a ceiling on the total wall-clock
// time of the session, spanning all attempts and delays. Once the
// budget is met or exceeded after a failed attempt, or taking the next
// delay would push the session past it, the session stops and surfaces
// the last attempt error.
//
// The budget bounds the session, not individual attempts; an attempt
// already in flight when the budget runs out is not interrupted. A
// max duration of zero means no budget.
func (r *Retry[T]) WithMaxDuration(d time.Duration) *Retry[T] {
	r.maxDuration = d
	return r
}

// WithSleeper replaces the sleeper used to suspend between attempts.
// A nil sleeper restores DefaultSleeper. Tests typically inject a
// sleeper that records durations without waiting.
func (r *Retry[T]) WithSleeper(s Sleeper) *Retry[T] {
	r.sleeper = s
	return r
}

// WithHandlers installs a group of event handlers which will be run as
// the session progresses. See the Event constants for the available
// plug-in points.
func (r *Retry[T]) WithHandlers(g *HandlerGroup) *Retry[T] {
	r.handlers = g
	return r
}

// Run executes the retry session to completion and returns the
// operation's result.
//
// Run invokes the operation; a success returns immediately. On
// failure, Run stops and returns the attempt's error — unwrapped and
// unannotated — as soon as any of the following holds: the budget is
// already spent, the condition rejects the error, the delay strategy
// is exhausted, or the next delay would overrun the budget. Otherwise
// Run suspends for the delay and attempts again.
//
// Cancellation is cooperative. The operation receives ctx and its
// error, on a canceled attempt, flows through the session like any
// other; a cancellation that interrupts the sleep between attempts
// ends the session with ctx.Err().
func (r *Retry[T]) Run(ctx context.Context) (T, error) {
	var zero T

	condition := r.condition
	if condition == nil {
		condition = Always
	}

	sleeper := r.sleeper
	if sleeper == nil {
		sleeper = DefaultSleeper
	}

	handlers := r.handlers
	if handlers == nil {
		handlers = &emptyHandlers
	}

	s := Session{Start: time.Now()}
	handlers.run(BeforeSessionStart, &s)

	for {
		s.Attempt++
		handlers.run(BeforeAttempt, &s)

		value, err := r.operation(ctx)
		s.Err = err
		handlers.run(AfterAttempt, &s)

		if err == nil {
			finish(handlers, &s)
			return value, nil
		}

		// Budget already spent before any further work.
		if r.maxDuration > 0 && s.Duration() >= r.maxDuration {
			finish(handlers, &s)
			return zero, err
		}

		// A rejected error must not advance the strategy's state, so
		// the condition runs first.
		if !condition(err) {
			finish(handlers, &s)
			return zero, err
		}

		delay, ok := r.strategy.Next()
		if !ok {
			finish(handlers, &s)
			return zero, err
		}

		// Never commit to a sleep that would overrun the budget.
		if r.maxDuration > 0 && s.Duration()+delay > r.maxDuration {
			finish(handlers, &s)
			return zero, err
		}

		s.Wait = delay
		handlers.run(BeforeWait, &s)

		if serr := sleeper.Sleep(ctx, delay); serr != nil {
			finish(handlers, &s)
			return zero, serr
		}
		s.Wait = 0
	}
}

func finish(handlers *HandlerGroup, s *Session) {
	s.End = time.Now()
	handlers.run(AfterSessionEnd, s)
}
