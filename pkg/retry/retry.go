// Package retry wraps a remote operation with bounded exponential backoff.
// Only errors the classifier reports as retryable (rate limits) are retried;
// anything else propagates immediately, since an invalid request or
// credential does not become valid by waiting.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrBudgetExhausted is returned once every allowed attempt was rate
// limited. Callers can distinguish it from the request simply being wrong.
var ErrBudgetExhausted = errors.New("retry budget exhausted")

// BudgetExhaustedError carries the last rate-limit error seen before the
// budget ran out.
type BudgetExhaustedError struct {
	Attempts int
	Last     error
}

func (e *BudgetExhaustedError) Error() string {
	return fmt.Sprintf("retry budget exhausted after %d attempts: %v", e.Attempts, e.Last)
}

func (e *BudgetExhaustedError) Unwrap() error { return e.Last }

func (e *BudgetExhaustedError) Is(target error) bool { return target == ErrBudgetExhausted }

// Options configures one retried call.
type Options struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	// Retryable reports whether an error is worth waiting out. Required.
	Retryable func(error) bool
	// sleep is replaceable in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// DefaultOptions returns the backoff bounds used across the sync pipeline
// unless configuration overrides them.
func DefaultOptions(retryable func(error) bool) Options {
	return Options{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		MaxDelay:    30 * time.Second,
		Retryable:   retryable,
	}
}

// WithSleep replaces the delay function, for tests.
func (o Options) WithSleep(sleep func(ctx context.Context, d time.Duration) error) Options {
	o.sleep = sleep
	return o
}

// Delay returns the backoff before retry number attempt (0-based):
// min(base * 2^attempt, max).
func (o Options) Delay(attempt int) time.Duration {
	d := o.BaseDelay << uint(attempt)
	if o.MaxDelay > 0 && d > o.MaxDelay {
		return o.MaxDelay
	}
	return d
}

// Do executes op, retrying rate-limited attempts with exponential backoff.
// It is generic over the result type so every call site shares one
// implementation of the backoff math.
func Do[T any](ctx context.Context, opts Options, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 1
	}
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = time.Second
	}
	sleep := opts.sleep
	if sleep == nil {
		sleep = sleepCtx
	}

	var lastErr error

	for attempt := 0; attempt < opts.MaxAttempts; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}

		if opts.Retryable == nil || !opts.Retryable(err) {
			return zero, err
		}

		lastErr = err

		if attempt == opts.MaxAttempts-1 {
			break
		}

		delay := opts.Delay(attempt)
		logrus.WithFields(logrus.Fields{
			"attempt": attempt + 1,
			"delay":   delay.String(),
		}).Warn("retry: rate limited, backing off")

		if err := sleep(ctx, delay); err != nil {
			return zero, err
		}
	}

	return zero, &BudgetExhaustedError{Attempts: opts.MaxAttempts, Last: lastErr}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
