// Package retry runs operations with exponential backoff on top of
// retry-go. Operations mark failures that must not be retried with
// Permanent.
package retry

import (
	"context"
	"time"

	"github.com/gabapcia/txbatch/internal/pkg/logger"

	retry "github.com/avast/retry-go/v4"
)

// Retry runs an operation until it succeeds, fails permanently, runs out of
// attempts or ctx is done.
type Retry interface {
	// Execute returns nil on success, otherwise the last error seen (or the
	// context error when ctx ended the loop).
	Execute(ctx context.Context, operation func(ctx context.Context) error) error
}

type config struct {
	name     string
	attempts uint
	delay    time.Duration
	maxDelay time.Duration
}

// Option configures a Retry.
type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New returns a Retry making 3 attempts with a backoff starting at 1s and
// capped at 5s, unless overridden.
func New(opts ...Option) Retry {
	cfg := config{
		name:     "operation",
		attempts: 3,
		delay:    1 * time.Second,
		maxDelay: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	// retry-go treats zero attempts as "forever"
	if cfg.attempts == 0 {
		cfg.attempts = 1
	}

	return &retrier{
		cfg: cfg,
	}
}

// Execute runs operation until it succeeds or the attempts run out. It stops
// early when ctx ends or the error is Permanent.
func (r *retrier) Execute(ctx context.Context, operation func(ctx context.Context) error) error {
	return retry.Do(
		func() error { return operation(ctx) },
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			logger.Debug(ctx, "retrying", "retry.name", r.cfg.name, "retry.attempt", n+1, "error", err)
		}),
	)
}

// Permanent stops Execute at err without further attempts. Execute still
// returns err itself, so errors.Is and errors.As keep working.
func Permanent(err error) error {
	return retry.Unrecoverable(err)
}

// WithName labels the retry log entries.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithAttempts sets the total number of attempts, the first one included.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the wait before the first retry. Later waits double.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the wait between attempts.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}
