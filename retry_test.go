// Copyright 2026 The retry Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/gogama/retry/backoff"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// recordingSleeper records requested sleep durations without waiting.
type recordingSleeper struct {
	sleeps []time.Duration
}

func (s *recordingSleeper) Sleep(_ context.Context, d time.Duration) error {
	s.sleeps = append(s.sleeps, d)
	return nil
}

func TestNew(t *testing.T) {
	operation := func(_ context.Context) (int, error) { return 0, nil }
	t.Run("nil strategy", func(t *testing.T) {
		assert.Panics(t, func() {
			New[int](nil, operation)
		})
	})
	t.Run("nil operation", func(t *testing.T) {
		assert.Panics(t, func() {
			New[int](backoff.NewFixed(time.Second), nil)
		})
	})
}

func TestRunSuccessFirstAttempt(t *testing.T) {
	sleeper := &recordingSleeper{}
	invocations := 0
	value, err := New(backoff.NewFixed(time.Second), func(_ context.Context) (string, error) {
		invocations++
		return "done", nil
	}).WithSleeper(sleeper).Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "done", value)
	assert.Equal(t, 1, invocations)
	assert.Empty(t, sleeper.sleeps, "success returns immediately, no sleeps")
}

func TestRunSuccessOnAttemptK(t *testing.T) {
	for _, k := range []int{2, 3, 5} {
		t.Run(fmt.Sprintf("k=%d", k), func(t *testing.T) {
			sleeper := &recordingSleeper{}
			invocations := 0
			value, err := New(backoff.NewExponential(10*time.Millisecond), func(_ context.Context) (int, error) {
				invocations++
				if invocations < k {
					return 0, fmt.Errorf("attempt %d failed", invocations)
				}
				return invocations, nil
			}).WithSleeper(sleeper).Run(context.Background())

			require.NoError(t, err)
			assert.Equal(t, k, value)
			assert.Equal(t, k, invocations, "exactly k invocations")
			require.Len(t, sleeper.sleeps, k-1, "exactly k-1 sleeps")
			for i, d := range sleeper.sleeps {
				assert.Equal(t, 10*time.Millisecond<<i, d, "sleeps follow the strategy sequence")
			}
		})
	}
}

func TestRunConditionRejects(t *testing.T) {
	errAuth := errors.New("permanent auth error")
	sleeper := &recordingSleeper{}
	strategyCalls := 0
	strategy := backoff.StrategyFunc(func() (time.Duration, bool) {
		strategyCalls++
		return time.Second, true
	})
	invocations := 0
	_, err := New(strategy, func(_ context.Context) (string, error) {
		invocations++
		return "", errAuth
	}).
		WithCondition(func(error) bool { return false }).
		WithSleeper(sleeper).
		Run(context.Background())

	assert.Same(t, errAuth, err, "error surfaced verbatim")
	assert.Equal(t, 1, invocations, "exactly one attempt")
	assert.Empty(t, sleeper.sleeps, "no sleeps")
	assert.Equal(t, 0, strategyCalls, "rejected error must not advance the strategy")
}

func TestRunStrategyExhausted(t *testing.T) {
	sleeper := &recordingSleeper{}
	var errs []error
	_, err := New(backoff.Limit(backoff.NewFixed(time.Millisecond), 3), func(_ context.Context) (string, error) {
		e := fmt.Errorf("attempt %d failed", len(errs)+1)
		errs = append(errs, e)
		return "", e
	}).WithSleeper(sleeper).Run(context.Background())

	require.Len(t, errs, 4, "1 initial attempt + 3 retries")
	assert.Same(t, errs[3], err, "last observed error surfaced verbatim")
	assert.Len(t, sleeper.sleeps, 3)
}

func TestRunBudgetAlreadySpent(t *testing.T) {
	errFail := errors.New("fail")
	sleeper := &recordingSleeper{}
	conditionCalls := 0
	invocations := 0
	_, err := New(backoff.NewFixed(time.Millisecond), func(_ context.Context) (string, error) {
		invocations++
		return "", errFail
	}).
		WithCondition(func(error) bool { conditionCalls++; return true }).
		WithMaxDuration(1 * time.Nanosecond).
		WithSleeper(sleeper).
		Run(context.Background())

	assert.Same(t, errFail, err)
	assert.Equal(t, 1, invocations)
	assert.Empty(t, sleeper.sleeps)
	assert.Equal(t, 0, conditionCalls, "budget is checked before the condition")
}

func TestRunDelayWouldExceedBudget(t *testing.T) {
	errFail := errors.New("fail")
	sleeper := &recordingSleeper{}
	invocations := 0
	_, err := New(backoff.NewFixed(time.Hour), func(_ context.Context) (string, error) {
		invocations++
		return "", errFail
	}).
		WithMaxDuration(10 * time.Second).
		WithSleeper(sleeper).
		Run(context.Background())

	assert.Same(t, errFail, err)
	assert.Equal(t, 1, invocations)
	assert.Empty(t, sleeper.sleeps, "must not commit to a sleep that overruns the budget")
}

func TestRunBudgetWallClock(t *testing.T) {
	// Budget of 75ms with fixed 50ms delays: the first sleep fits
	// (0+50 <= 75) but the second would overrun (50+50 > 75), so the
	// session makes exactly 2 attempts and 1 sleep.
	errFail := errors.New("fail")
	invocations := 0
	start := time.Now()
	_, err := New(backoff.NewFixed(50*time.Millisecond), func(_ context.Context) (string, error) {
		invocations++
		return "", errFail
	}).
		WithMaxDuration(75 * time.Millisecond).
		Run(context.Background())
	elapsed := time.Since(start)

	assert.Same(t, errFail, err)
	assert.Equal(t, 2, invocations)
	assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
	assert.Less(t, elapsed, 75*time.Millisecond+50*time.Millisecond,
		"may overrun by at most one committed sleep")
}

func TestRunCancelDuringSleep(t *testing.T) {
	errFail := errors.New("fail")
	ctx, cancel := context.WithCancel(context.Background())
	invocations := 0
	done := make(chan struct{})
	var err error
	go func() {
		defer close(done)
		_, err = New(backoff.NewFixed(time.Hour), func(_ context.Context) (string, error) {
			invocations++
			return "", errFail
		}).Run(ctx)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("session did not terminate after cancellation")
	}

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, invocations, "no further attempts after cancellation")
}

func TestRunCancelDuringOperation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	invocations := 0
	done := make(chan struct{})
	var err error
	go func() {
		defer close(done)
		_, err = New(backoff.NewFixed(time.Millisecond), func(ctx context.Context) (string, error) {
			invocations++
			<-ctx.Done()
			return "", ctx.Err()
		}).
			WithCondition(TransientErr).
			Run(ctx)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("session did not terminate after cancellation")
	}

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, invocations, "cancellation is not transient, so no retry")
}

func TestRunZeroValueOnFailure(t *testing.T) {
	type result struct {
		n int
		s string
	}
	errFail := errors.New("fail")
	value, err := New(backoff.Limit(backoff.NewFixed(0), 1), func(_ context.Context) (result, error) {
		return result{n: 42, s: "partial"}, errFail
	}).WithSleeper(&recordingSleeper{}).Run(context.Background())

	assert.Same(t, errFail, err)
	assert.Equal(t, result{}, value, "failure yields the zero value")
}

// The controller never applies an attempt bound of its own, so a
// built-in WithMaxRetries bound and an external Limit bound behave
// identically and are never double-applied.
func TestRunLimiterInterchangeability(t *testing.T) {
	run := func(s backoff.Strategy) (invocations int, sleeps int) {
		sleeper := &recordingSleeper{}
		New(s, func(_ context.Context) (string, error) {
			invocations++
			return "", errors.New("fail")
		}).WithSleeper(sleeper).Run(context.Background())
		return invocations, len(sleeper.sleeps)
	}

	builtinInvocations, builtinSleeps := run(backoff.NewExponential(time.Millisecond).WithMaxRetries(3))
	externalInvocations, externalSleeps := run(backoff.Limit(backoff.NewExponential(time.Millisecond), 3))

	assert.Equal(t, 4, builtinInvocations)
	assert.Equal(t, 3, builtinSleeps)
	assert.Equal(t, builtinInvocations, externalInvocations)
	assert.Equal(t, builtinSleeps, externalSleeps)
}

func TestRunConcurrentSessions(t *testing.T) {
	// Independent sessions share no state: run many concurrently, each
	// with its own strategy and operation, and verify each succeeds
	// after its own attempt count.
	var g errgroup.Group
	for i := 0; i < 16; i++ {
		failures := 2 + i%3
		g.Go(func() error {
			invocations := 0
			value, err := New(backoff.Limit(backoff.NewFixed(0), 10), func(_ context.Context) (int, error) {
				invocations++
				if invocations <= failures {
					return 0, errors.New("transient failure")
				}
				return invocations, nil
			}).Run(context.Background())
			if err != nil {
				return err
			}
			if value != failures+1 {
				return fmt.Errorf("expected success on attempt %d, got %d", failures+1, value)
			}
			return nil
		})
	}
	assert.NoError(t, g.Wait())
}
