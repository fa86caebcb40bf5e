package redis

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/gabapcia/txbatch/internal/bus"
	"github.com/gabapcia/txbatch/internal/pkg/logger"

	"github.com/google/uuid"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error")
	os.Exit(m.Run())
}

// newBus connects to a disposable Redis server on a fresh channel, skipping
// the test when none is configured.
func newBus(t *testing.T) *pubsub {
	t.Helper()

	addr := os.Getenv("TXBATCH_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TXBATCH_TEST_REDIS_ADDR not set")
	}

	b, err := NewBus(t.Context(), addr, "", "", 0, "txbatch:test:"+uuid.NewString())
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func TestMapClosed(t *testing.T) {
	t.Run("should map a closed client to a closed bus", func(t *testing.T) {
		assert.ErrorIs(t, mapClosed(redis.ErrClosed), bus.ErrBusClosed)
	})

	t.Run("should keep other errors", func(t *testing.T) {
		err := errors.New("timeout")
		assert.Same(t, err, mapClosed(err))
	})

	t.Run("should keep nil", func(t *testing.T) {
		assert.NoError(t, mapClosed(nil))
	})
}

func TestNewBus(t *testing.T) {
	t.Run("should fail when the server is unreachable", func(t *testing.T) {
		_, err := NewBus(t.Context(), "127.0.0.1:1", "", "", 0, "")
		assert.Error(t, err)
	})
}

func TestBus(t *testing.T) {
	t.Run("should deliver envelopes to every subscriber", func(t *testing.T) {
		b := newBus(t)

		first, err := b.Subscribe(t.Context())
		require.NoError(t, err)
		second, err := b.Subscribe(t.Context())
		require.NoError(t, err)

		env, err := bus.NewEnvelope("s-1", bus.TypeGetBatch, "r-1", nil)
		require.NoError(t, err)
		require.NoError(t, b.Publish(t.Context(), env))

		for _, ch := range []<-chan bus.Envelope{first, second} {
			select {
			case got := <-ch:
				assert.Equal(t, env, got)
			case <-time.After(2 * time.Second):
				t.Fatal("envelope not delivered")
			}
		}
	})

	t.Run("should end the subscription with its context", func(t *testing.T) {
		b := newBus(t)

		ctx, cancel := context.WithCancel(t.Context())
		ch, err := b.Subscribe(ctx)
		require.NoError(t, err)
		cancel()

		assert.Eventually(t, func() bool {
			_, ok := <-ch
			return !ok
		}, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("should carry a correlated round trip", func(t *testing.T) {
		b := newBus(t)

		requests, err := b.Subscribe(t.Context())
		require.NoError(t, err)
		go func() {
			for env := range requests {
				if env.Type != bus.TypeGetBatch {
					continue
				}
				reply := env
				reply.Type = bus.TypeBatchResponse
				_ = b.Publish(context.Background(), reply)
			}
		}()

		c := bus.NewCorrelator(b, "s-1", []bus.MessageType{bus.TypeBatchResponse})
		require.NoError(t, c.Start(t.Context()))
		t.Cleanup(c.Close)

		resp, err := c.RoundTrip(t.Context(), bus.TypeGetBatch, map[string]bool{"batchActive": false})
		require.NoError(t, err)
		assert.Equal(t, bus.TypeBatchResponse, resp.Type)
	})

	t.Run("should reject publishes after close", func(t *testing.T) {
		b := newBus(t)
		require.NoError(t, b.Close())

		env, err := bus.NewEnvelope("s-1", bus.TypeResetBatch, "", nil)
		require.NoError(t, err)
		assert.ErrorIs(t, b.Publish(t.Context(), env), bus.ErrBusClosed)
	})
}
