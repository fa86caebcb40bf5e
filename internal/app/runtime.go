// Package app builds the txbatch components from the configuration.
//
// Backends are connected on first use, so a command only reaches the
// stores and servers it needs. Close releases everything that was built.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gabapcia/txbatch/internal/batch"
	"github.com/gabapcia/txbatch/internal/bus"
	"github.com/gabapcia/txbatch/internal/config"
	"github.com/gabapcia/txbatch/internal/gateway"
	"github.com/gabapcia/txbatch/internal/handlers/cli"
	"github.com/gabapcia/txbatch/internal/handlers/rpc"
	redisbus "github.com/gabapcia/txbatch/internal/infra/messaging/redis"
	"github.com/gabapcia/txbatch/internal/infra/notifier/webhook"
	providerjsonrpc "github.com/gabapcia/txbatch/internal/infra/provider/jsonrpc"
	"github.com/gabapcia/txbatch/internal/infra/storage/memory"
	redisstorage "github.com/gabapcia/txbatch/internal/infra/storage/redis"
	"github.com/gabapcia/txbatch/internal/infra/storage/sqlite"
	"github.com/gabapcia/txbatch/internal/interception"
	"github.com/gabapcia/txbatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/txbatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/txbatch/internal/selector"
	"github.com/gabapcia/txbatch/internal/sessionstore"
)

// Runtime builds the components every CLI command needs from a Config.
//
// Backends (storage, bus) are created on first use and shared by every
// component built afterwards, so a process talks to Redis or SQLite through
// one connection. Close releases them.
type Runtime struct {
	cfg config.Config

	mu      sync.Mutex
	storage sessionstore.Storage
	bus     bus.Bus
	closers []func() error
}

// Ensure compile-time compliance with the cli.Runtime interface.
var _ cli.Runtime = (*Runtime)(nil)

// New creates a Runtime for cfg. Nothing is connected until a component is
// requested.
//
// Parameters:
//   - cfg: the validated process configuration.
//
// Returns:
//   - A Runtime whose Close must be called once the commands are done.
func New(cfg config.Config) *Runtime {
	return &Runtime{cfg: cfg}
}

// Close releases the backends in reverse order of creation.
func (r *Runtime) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		errs = append(errs, r.closers[i]())
	}

	r.closers = nil
	r.storage = nil
	r.bus = nil
	return errors.Join(errs...)
}

func (r *Runtime) storageLocked(ctx context.Context) (sessionstore.Storage, error) {
	if r.storage != nil {
		return r.storage, nil
	}

	switch r.cfg.Storage.Driver {
	case config.DriverRedis:
		s, err := redisstorage.NewClient(ctx, r.cfg.Redis.Addr, r.cfg.Redis.Username, r.cfg.Redis.Password, r.cfg.Redis.DB,
			redisstorage.WithNamespace(r.cfg.Storage.Namespace),
			redisstorage.WithTTL(r.cfg.Storage.TTL),
		)
		if err != nil {
			return nil, fmt.Errorf("connect redis storage: %w", err)
		}
		r.closers = append(r.closers, s.Close)
		r.storage = s
	case config.DriverSQLite:
		s, err := sqlite.Open(ctx, r.cfg.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		r.closers = append(r.closers, s.Close)
		r.storage = s
	default:
		r.storage = memory.NewBatchStorage()
	}

	return r.storage, nil
}

func (r *Runtime) busLocked(ctx context.Context) (bus.Bus, error) {
	if r.bus != nil {
		return r.bus, nil
	}

	switch r.cfg.Bus.Driver {
	case config.DriverRedis:
		b, err := redisbus.NewBus(ctx, r.cfg.Redis.Addr, r.cfg.Redis.Username, r.cfg.Redis.Password, r.cfg.Redis.DB, r.cfg.Bus.Channel)
		if err != nil {
			return nil, fmt.Errorf("connect redis bus: %w", err)
		}
		r.closers = append(r.closers, b.Close)
		r.bus = b
	default:
		b := bus.NewMemory()
		r.closers = append(r.closers, func() error {
			b.Close()
			return nil
		})
		r.bus = b
	}

	return r.bus, nil
}

// sessionComponents returns the session store of sessionID and, when a
// webhook is configured, its notifier ahead of it.
func (r *Runtime) sessionComponents(ctx context.Context, sessionID string) (sessionstore.Service, []gateway.Component, error) {
	storage, err := r.storageLocked(ctx)
	if err != nil {
		return nil, nil, err
	}

	b, err := r.busLocked(ctx)
	if err != nil {
		return nil, nil, err
	}

	opts := []sessionstore.Option{sessionstore.WithTimeout(r.cfg.RoundTripTimeout)}

	var components []gateway.Component
	if r.cfg.Webhook.URL != "" {
		n := webhook.New(r.cfg.Webhook.URL, webhook.WithRetry(retry.New(
			retry.WithName("webhook"),
			retry.WithAttempts(r.cfg.Webhook.Attempts),
		)))
		opts = append(opts, sessionstore.WithNotifier(n))
		components = append(components, n)
	}

	svc := sessionstore.New(sessionID, b, storage, opts...)
	return svc, append(components, svc), nil
}

// Session returns the unstarted session store of sessionID, for one-off
// administration.
func (r *Runtime) Session(ctx context.Context, sessionID string) (sessionstore.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	svc, _, err := r.sessionComponents(ctx, sessionID)
	return svc, err
}

// SessionStore returns the session store process: the store actor and its
// notifier.
func (r *Runtime) SessionStore(ctx context.Context) (gateway.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, components, err := r.sessionComponents(ctx, r.cfg.SessionID)
	if err != nil {
		return nil, err
	}
	return gateway.New(components...), nil
}

// Gateway returns the proxy process: the intercepting provider behind the
// JSON-RPC server. With the in-process bus the session store runs inside
// it too.
func (r *Runtime) Gateway(ctx context.Context) (gateway.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cfg.Upstream.URL == "" {
		return nil, config.ErrUpstreamURLRequired
	}

	b, err := r.busLocked(ctx)
	if err != nil {
		return nil, err
	}

	var components []gateway.Component
	if r.cfg.Bus.Driver != config.DriverRedis {
		_, store, err := r.sessionComponents(ctx, r.cfg.SessionID)
		if err != nil {
			return nil, err
		}
		components = append(components, store...)
	}

	conn := jsonrpc.NewClient(r.cfg.Upstream.URL,
		jsonrpc.WithTimeout(r.cfg.Upstream.Timeout),
		jsonrpc.WithRetryMax(r.cfg.Upstream.RetryMax),
		jsonrpc.WithRetryWaitMin(r.cfg.Upstream.RetryWaitMin),
		jsonrpc.WithRetryWaitMax(r.cfg.Upstream.RetryWaitMax),
	)

	coordinator := batch.NewCoordinator(b, r.cfg.SessionID, batch.WithTimeout(r.cfg.RoundTripTimeout))
	proxy := interception.New(providerjsonrpc.NewWallet(conn), coordinator,
		interception.WithAggregator(r.cfg.Aggregator()),
	)

	components = append(components,
		coordinator,
		interception.NewResponder(b, r.cfg.SessionID, proxy),
		rpc.NewServer(r.cfg.Server.Addr, proxy, rpc.WithShutdownTimeout(r.cfg.Server.ShutdownTimeout)),
	)
	return gateway.New(components...), nil
}

// Resolver returns a selector resolver hashing locally, or through the
// upstream node when one is configured.
func (r *Runtime) Resolver() selector.Resolver {
	if r.cfg.Upstream.URL == "" {
		return selector.NewResolver()
	}

	conn := jsonrpc.NewClient(r.cfg.Upstream.URL, jsonrpc.WithTimeout(r.cfg.Upstream.Timeout))
	return selector.NewResolver(selector.WithHasher(providerjsonrpc.NewWallet(conn)))
}

// SessionID is the configured session.
func (r *Runtime) SessionID() string {
	return r.cfg.SessionID
}
