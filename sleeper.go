// Copyright 2026 The retry Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"context"
	"time"
)

// A Sleeper suspends the calling goroutine between retry attempts. It
// is the retry loop's only connection to a scheduler, injected at
// construction so the loop stays agnostic to the mechanism behind the
// delay.
//
// Sleep blocks for at least d, or until ctx is done, whichever comes
// first. It returns nil after sleeping the full duration and the
// context's error if the context ended the sleep early. The duration
// is a lower bound only; no exactness is guaranteed.
//
// Implementations of Sleeper must be safe for concurrent use by
// multiple goroutines.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// The SleeperFunc type is an adapter to allow the use of ordinary
// functions as sleepers. If f is a function with the appropriate
// signature, SleeperFunc(f) is a Sleeper that calls f.
type SleeperFunc func(ctx context.Context, d time.Duration) error

// Sleep calls f(ctx, d).
func (f SleeperFunc) Sleep(ctx context.Context, d time.Duration) error {
	return f(ctx, d)
}

// DefaultSleeper is the sleeper used by retry loops that have not been
// given one. It blocks on a standard timer raced against the context.
var DefaultSleeper Sleeper = timerSleeper{}

type timerSleeper struct{}

func (timerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		if !timer.Stop() {
			<-timer.C
		}
		return ctx.Err()
	}
}
