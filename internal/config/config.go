// Package config loads the process configuration from TXBATCH_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/txbatch/internal/pkg/validator"

	"github.com/ethereum/go-ethereum/common"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name.
const Prefix = "TXBATCH"

const (
	// DriverMemory keeps state in process.
	DriverMemory = "memory"

	// DriverRedis uses the Redis section.
	DriverRedis = "redis"

	// DriverSQLite stores batches in the file at Storage.SQLitePath.
	DriverSQLite = "sqlite"
)

var (
	// ErrRedisAddrRequired is returned when a redis driver is selected
	// without TXBATCH_REDIS_ADDR.
	ErrRedisAddrRequired = errors.New("redis address required by the selected drivers")

	// ErrUpstreamURLRequired is returned when the proxy is built without
	// TXBATCH_UPSTREAM_URL.
	ErrUpstreamURLRequired = errors.New("upstream url required")
)

// Telemetry controls the OpenTelemetry exporters.
type Telemetry struct {
	Enabled     bool   `envconfig:"ENABLED" default:"false"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"txbatch" validate:"required"`
}

// Server is the HTTP JSON-RPC endpoint.
type Server struct {
	Addr            string        `envconfig:"ADDR" default:":8545" validate:"required"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s" validate:"gt=0"`
}

// Upstream is the wallet node the proxy forwards to. Retries apply to
// transport failures only and are off by default, since a retried
// eth_sendTransaction can be submitted twice.
type Upstream struct {
	URL          string        `envconfig:"URL" validate:"omitempty,url"`
	Timeout      time.Duration `envconfig:"TIMEOUT" default:"30s" validate:"gt=0"`
	RetryMax     int           `envconfig:"RETRY_MAX" default:"0" validate:"gte=0"`
	RetryWaitMin time.Duration `envconfig:"RETRY_WAIT_MIN" default:"500ms"`
	RetryWaitMax time.Duration `envconfig:"RETRY_WAIT_MAX" default:"5s"`
}

// Storage selects where batches are persisted.
type Storage struct {
	Driver     string `envconfig:"DRIVER" default:"memory" validate:"oneof=memory redis sqlite"`
	SQLitePath string `envconfig:"SQLITE_PATH" default:"txbatch.db" validate:"required_if=Driver sqlite"`

	// Namespace and TTL apply to the redis driver.
	Namespace string        `envconfig:"NAMESPACE" default:"txbatch"`
	TTL       time.Duration `envconfig:"TTL" default:"0s" validate:"gte=0"`
}

// Bus selects how the proxy and the session store talk.
type Bus struct {
	Driver  string `envconfig:"DRIVER" default:"memory" validate:"oneof=memory redis"`
	Channel string `envconfig:"CHANNEL" default:"txbatch:bus"`
}

// Redis is the connection shared by the redis storage and bus drivers.
type Redis struct {
	Addr     string `envconfig:"ADDR"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0" validate:"gte=0"`
}

// Webhook enables the batch started webhook when URL is set.
type Webhook struct {
	URL      string `envconfig:"URL" validate:"omitempty,url"`
	Attempts uint   `envconfig:"ATTEMPTS" default:"3" validate:"gte=1"`
}

// Config is the whole process configuration, read from TXBATCH_*
// environment variables.
type Config struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	SessionID string `envconfig:"SESSION_ID" default:"default" validate:"required"`

	AggregatorAddress string        `envconfig:"AGGREGATOR_ADDRESS" default:"0x5FbDB2315678afecb367f032d93F642f64180aa3" validate:"eth_addr"`
	RoundTripTimeout  time.Duration `envconfig:"ROUND_TRIP_TIMEOUT" default:"1500ms" validate:"gt=0"`

	Telemetry Telemetry `envconfig:"TELEMETRY"`
	Server    Server    `envconfig:"SERVER"`
	Upstream  Upstream  `envconfig:"UPSTREAM"`
	Storage   Storage   `envconfig:"STORAGE"`
	Bus       Bus       `envconfig:"BUS"`
	Redis     Redis     `envconfig:"REDIS"`
	Webhook   Webhook   `envconfig:"WEBHOOK"`
}

// Aggregator returns the aggregator contract address.
func (c Config) Aggregator() common.Address {
	return common.HexToAddress(c.AggregatorAddress)
}

// NeedsRedis reports whether a selected driver talks to Redis.
func (c Config) NeedsRedis() bool {
	return c.Storage.Driver == DriverRedis || c.Bus.Driver == DriverRedis
}

// Validate checks the field rules and the rules spanning several sections.
func (c Config) Validate() error {
	if err := validator.Validate(c); err != nil {
		return err
	}

	if c.NeedsRedis() && c.Redis.Addr == "" {
		return ErrRedisAddrRequired
	}
	return nil
}

// Load reads and validates the configuration.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
