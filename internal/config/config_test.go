package config

import (
	"testing"
	"time"

	"github.com/gabapcia/txbatch/internal/pkg/validator"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "default", cfg.SessionID)
		assert.Equal(t, 1500*time.Millisecond, cfg.RoundTripTimeout)
		assert.Equal(t, common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"), cfg.Aggregator())
		assert.Equal(t, ":8545", cfg.Server.Addr)
		assert.Equal(t, 30*time.Second, cfg.Upstream.Timeout)
		assert.Zero(t, cfg.Upstream.RetryMax)
		assert.Equal(t, DriverMemory, cfg.Storage.Driver)
		assert.Equal(t, "txbatch", cfg.Storage.Namespace)
		assert.Zero(t, cfg.Storage.TTL)
		assert.Equal(t, DriverMemory, cfg.Bus.Driver)
		assert.Equal(t, "txbatch:bus", cfg.Bus.Channel)
		assert.False(t, cfg.Telemetry.Enabled)
		assert.Equal(t, "txbatch", cfg.Telemetry.ServiceName)
		assert.Equal(t, uint(3), cfg.Webhook.Attempts)
	})

	t.Run("should read nested variables", func(t *testing.T) {
		t.Setenv("TXBATCH_LOG_LEVEL", "debug")
		t.Setenv("TXBATCH_SESSION_ID", "tab-7")
		t.Setenv("TXBATCH_ROUND_TRIP_TIMEOUT", "2s")
		t.Setenv("TXBATCH_UPSTREAM_URL", "http://127.0.0.1:8546")
		t.Setenv("TXBATCH_STORAGE_DRIVER", "redis")
		t.Setenv("TXBATCH_BUS_DRIVER", "redis")
		t.Setenv("TXBATCH_REDIS_ADDR", "localhost:6379")
		t.Setenv("TXBATCH_REDIS_DB", "2")
		t.Setenv("TXBATCH_STORAGE_TTL", "24h")
		t.Setenv("TXBATCH_WEBHOOK_URL", "https://hooks.example.com/txbatch")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "tab-7", cfg.SessionID)
		assert.Equal(t, 2*time.Second, cfg.RoundTripTimeout)
		assert.Equal(t, "http://127.0.0.1:8546", cfg.Upstream.URL)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
		assert.Equal(t, 2, cfg.Redis.DB)
		assert.Equal(t, 24*time.Hour, cfg.Storage.TTL)
		assert.Equal(t, "https://hooks.example.com/txbatch", cfg.Webhook.URL)
		assert.True(t, cfg.NeedsRedis())
	})

	t.Run("should reject an unknown storage driver", func(t *testing.T) {
		t.Setenv("TXBATCH_STORAGE_DRIVER", "postgres")

		_, err := Load()
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("should reject an invalid aggregator address", func(t *testing.T) {
		t.Setenv("TXBATCH_AGGREGATOR_ADDRESS", "0x1234")

		_, err := Load()
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("should require a redis address for the redis bus", func(t *testing.T) {
		t.Setenv("TXBATCH_BUS_DRIVER", "redis")

		_, err := Load()
		assert.ErrorIs(t, err, ErrRedisAddrRequired)
	})

	t.Run("should reject a malformed duration", func(t *testing.T) {
		t.Setenv("TXBATCH_ROUND_TRIP_TIMEOUT", "soon")

		_, err := Load()
		assert.ErrorContains(t, err, "read environment")
	})

	t.Run("should reject an invalid log level", func(t *testing.T) {
		t.Setenv("TXBATCH_LOG_LEVEL", "loud")

		_, err := Load()
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})
}

func TestConfig_NeedsRedis(t *testing.T) {
	t.Run("should be false for in-process drivers", func(t *testing.T) {
		cfg := Config{Storage: Storage{Driver: DriverSQLite}, Bus: Bus{Driver: DriverMemory}}
		assert.False(t, cfg.NeedsRedis())
	})

	t.Run("should be true for redis storage alone", func(t *testing.T) {
		cfg := Config{Storage: Storage{Driver: DriverRedis}, Bus: Bus{Driver: DriverMemory}}
		assert.True(t, cfg.NeedsRedis())
	})
}
