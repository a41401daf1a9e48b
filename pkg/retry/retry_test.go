package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRateLimited = errors.New("rate limited")

func retryable(err error) bool { return errors.Is(err, errRateLimited) }

func noSleep(delays *[]time.Duration) func(ctx context.Context, d time.Duration) error {
	return func(_ context.Context, d time.Duration) error {
		*delays = append(*delays, d)
		return nil
	}
}

func TestDo_SucceedsAfterRetries(t *testing.T) {
	var delays []time.Duration
	opts := DefaultOptions(retryable).WithSleep(noSleep(&delays))

	calls := 0
	result, err := Do(context.Background(), opts, func(context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", errRateLimited
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, delays)
}

func TestDo_NonRetryableFailsImmediately(t *testing.T) {
	var delays []time.Duration
	opts := DefaultOptions(retryable).WithSleep(noSleep(&delays))

	errBoom := errors.New("invalid request")
	calls := 0
	_, err := Do(context.Background(), opts, func(context.Context) (int, error) {
		calls++
		return 0, errBoom
	})

	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 1, calls)
	assert.Empty(t, delays)
}

func TestDo_BudgetExhausted(t *testing.T) {
	var delays []time.Duration
	opts := DefaultOptions(retryable).WithSleep(noSleep(&delays))

	calls := 0
	_, err := Do(context.Background(), opts, func(context.Context) (int, error) {
		calls++
		return 0, errRateLimited
	})

	assert.ErrorIs(t, err, ErrBudgetExhausted)
	assert.ErrorIs(t, err, errRateLimited)
	assert.Equal(t, opts.MaxAttempts, calls)
	// no sleep after the final attempt
	assert.Len(t, delays, opts.MaxAttempts-1)

	var exhausted *BudgetExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, opts.MaxAttempts, exhausted.Attempts)
}

func TestDo_ContextCancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	opts := DefaultOptions(retryable).WithSleep(func(ctx context.Context, _ time.Duration) error {
		cancel()
		return ctx.Err()
	})

	_, err := Do(ctx, opts, func(context.Context) (int, error) {
		return 0, errRateLimited
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestOptions_DelayCapsAtMax(t *testing.T) {
	opts := Options{BaseDelay: time.Second, MaxDelay: 5 * time.Second}

	assert.Equal(t, time.Second, opts.Delay(0))
	assert.Equal(t, 2*time.Second, opts.Delay(1))
	assert.Equal(t, 4*time.Second, opts.Delay(2))
	assert.Equal(t, 5*time.Second, opts.Delay(3))
	assert.Equal(t, 5*time.Second, opts.Delay(10))
}
