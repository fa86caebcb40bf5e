// Package redis persists session batches in Redis.
package redis

import (
	"context"
	"errors"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// DefaultNamespace prefixes every key unless configured.
const DefaultNamespace = "txbatch"

type client struct {
	conn      *redis.Client
	namespace string
	ttl       time.Duration
}

// Option configures the client.
type Option func(*client)

// WithNamespace prefixes keys with ns, so several deployments can share a
// server.
func WithNamespace(ns string) Option {
	return func(c *client) {
		if ns != "" {
			c.namespace = ns
		}
	}
}

// WithTTL expires a batch d after its last capture. Zero keeps batches
// until they are reset.
func WithTTL(d time.Duration) Option {
	return func(c *client) {
		c.ttl = d
	}
}

// Close releases the connection pool.
func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to Redis and checks the connection with PING.
func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		return nil, errors.Join(err, conn.Close())
	}

	c := &client{
		conn:      conn,
		namespace: DefaultNamespace,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}
