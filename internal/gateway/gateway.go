// Package gateway runs the long-lived parts of a txbatch process as one
// unit: the session store, the bus correlators, the notifier and the
// JSON-RPC server.
package gateway

import (
	"context"
	"errors"
	"sync"
)

// ErrServiceAlreadyStarted is returned if Start is called more than once.
var ErrServiceAlreadyStarted = errors.New("service already started")

// Component is a part with a start/stop lifecycle.
type Component interface {
	Start(ctx context.Context) error
	Close()
}

// Service starts its components in order and stops them in reverse.
type Service interface {
	// Start starts every component. When one fails, those already started
	// are closed and the error is returned.
	Start(ctx context.Context) error

	// Close stops every component. It is safe to call on a service that
	// never started.
	Close()
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	components []Component
}

var _ Service = new(service)

// Start starts every component in order, closing the started ones if one fails.
func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	started := make([]Component, 0, len(s.components))
	closeStarted := func() {
		for i := len(started) - 1; i >= 0; i-- {
			started[i].Close()
		}
	}

	for _, c := range s.components {
		if err := c.Start(ctx); err != nil {
			closeStarted()
			cancel()
			return err
		}
		started = append(started, c)
	}

	s.closeFunc = func() {
		closeStarted()
		cancel()
	}
	s.isStarted = true
	return nil
}

// Close closes the components in reverse start order.
func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.isStarted = false
}

// New returns a Service over components, in start order. Subscribers go
// before the parts that publish to them.
func New(components ...Component) *service {
	return &service{
		components: components,
	}
}
