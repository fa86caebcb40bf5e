// Package redis carries bus envelopes over Redis pub/sub, so the session
// store and the proxy can run in different processes.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/txbatch/internal/bus"
	"github.com/gabapcia/txbatch/internal/pkg/logger"
	"github.com/gabapcia/txbatch/internal/pkg/x/chflow"

	redis "github.com/redis/go-redis/v9"
)

// DefaultChannel is the pub/sub channel used unless configured.
const DefaultChannel = "txbatch:bus"

// subscriptionBuffer bounds the envelopes waiting for a slow subscriber.
const subscriptionBuffer = 256

type pubsub struct {
	conn    *redis.Client
	channel string
}

var _ bus.Bus = (*pubsub)(nil)

// NewBus connects to Redis, checks the connection with PING and returns a
// bus publishing on channel.
func NewBus(ctx context.Context, addr, username, password string, db int, channel string) (*pubsub, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		return nil, errors.Join(err, conn.Close())
	}

	if channel == "" {
		channel = DefaultChannel
	}

	return &pubsub{
		conn:    conn,
		channel: channel,
	}, nil
}

// Close releases the connection pool. Subscriptions end and publishes fail
// with bus.ErrBusClosed afterwards.
func (p *pubsub) Close() error {
	return p.conn.Close()
}

func mapClosed(err error) error {
	if errors.Is(err, redis.ErrClosed) {
		return bus.ErrBusClosed
	}
	return err
}

// Publish encodes env as JSON and publishes it on the bus channel.
func (p *pubsub) Publish(ctx context.Context, env bus.Envelope) error {
	raw, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}

	return mapClosed(p.conn.Publish(ctx, p.channel, raw).Err())
}

// Subscribe returns once Redis confirmed the subscription, so envelopes
// published afterwards are not missed.
func (p *pubsub) Subscribe(ctx context.Context) (<-chan bus.Envelope, error) {
	sub := p.conn.Subscribe(ctx, p.channel)
	if _, err := sub.Receive(ctx); err != nil {
		return nil, errors.Join(mapClosed(err), sub.Close())
	}

	out := make(chan bus.Envelope, subscriptionBuffer)
	go func() {
		defer close(out)
		defer sub.Close()

		messages := sub.Channel()
		for {
			msg, ok := chflow.Receive(ctx, messages)
			if !ok {
				return
			}

			var env bus.Envelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				logger.Warn(ctx, "dropping malformed envelope", "bus.channel", p.channel, "error", err)
				continue
			}

			if env.Source != bus.Source {
				continue
			}

			if !chflow.Send(ctx, out, env) {
				return
			}
		}
	}()

	return out, nil
}
