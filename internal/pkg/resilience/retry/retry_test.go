package retry

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/gabapcia/txbatch/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error")
	os.Exit(m.Run())
}

func fast(opts ...Option) Retry {
	return New(append([]Option{WithDelay(time.Millisecond), WithMaxDelay(5 * time.Millisecond)}, opts...)...)
}

func TestRetry_Execute(t *testing.T) {
	t.Run("should call a successful operation once", func(t *testing.T) {
		calls := 0

		err := fast().Execute(t.Context(), func(context.Context) error {
			calls++
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("should retry until success", func(t *testing.T) {
		calls := 0

		err := fast(WithAttempts(3)).Execute(t.Context(), func(context.Context) error {
			calls++
			if calls < 2 {
				return errors.New("temporary error")
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("should return the last error once attempts run out", func(t *testing.T) {
		calls := 0
		expected := errors.New("persistent error")

		err := fast(WithAttempts(3)).Execute(t.Context(), func(context.Context) error {
			calls++
			return expected
		})

		assert.ErrorIs(t, err, expected)
		assert.Equal(t, 3, calls)
	})

	t.Run("should stop at a permanent error", func(t *testing.T) {
		calls := 0
		expected := errors.New("bad request")

		err := fast(WithAttempts(5)).Execute(t.Context(), func(context.Context) error {
			calls++
			return Permanent(expected)
		})

		assert.ErrorIs(t, err, expected)
		assert.Equal(t, 1, calls)
	})

	t.Run("should stop when the context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		calls := 0

		err := New(WithAttempts(5), WithDelay(time.Second)).Execute(ctx, func(context.Context) error {
			calls++
			cancel()
			return errors.New("would retry")
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})

	t.Run("should pass the context to the operation", func(t *testing.T) {
		type key struct{}
		ctx := context.WithValue(t.Context(), key{}, "value")

		err := fast().Execute(ctx, func(ctx context.Context) error {
			assert.Equal(t, "value", ctx.Value(key{}))
			return nil
		})

		assert.NoError(t, err)
	})
}

func TestNew(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		r, ok := New().(*retrier)
		require.True(t, ok)

		assert.Equal(t, uint(3), r.cfg.attempts)
		assert.Equal(t, time.Second, r.cfg.delay)
		assert.Equal(t, 5*time.Second, r.cfg.maxDelay)
		assert.Equal(t, "operation", r.cfg.name)
	})

	t.Run("should apply options", func(t *testing.T) {
		r, ok := New(
			WithName("webhook"),
			WithAttempts(5),
			WithDelay(2*time.Second),
			WithMaxDelay(10*time.Second),
		).(*retrier)
		require.True(t, ok)

		assert.Equal(t, "webhook", r.cfg.name)
		assert.Equal(t, uint(5), r.cfg.attempts)
		assert.Equal(t, 2*time.Second, r.cfg.delay)
		assert.Equal(t, 10*time.Second, r.cfg.maxDelay)
	})

	t.Run("should turn zero attempts into a single attempt", func(t *testing.T) {
		calls := 0

		err := New(WithAttempts(0)).Execute(t.Context(), func(context.Context) error {
			calls++
			return errors.New("fail")
		})

		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}
