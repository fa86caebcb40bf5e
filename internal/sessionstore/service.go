// Package sessionstore owns the batch of a session. It answers the
// interception side's bus queries, captures approvals, and exposes the
// owner operations used by the CLI.
package sessionstore

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/txbatch/internal/batch"
	"github.com/gabapcia/txbatch/internal/bus"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrServiceAlreadyStarted is returned if Start is called more than once.
	ErrServiceAlreadyStarted = errors.New("session store already started")

	// ErrNoSelectedAddress is returned when the interception side has no account.
	ErrNoSelectedAddress = errors.New("no selected address")
)

// Service is the session store of a single session.
type Service interface {
	// Start serves bus queries until Close.
	Start(ctx context.Context) error

	// Close stops serving.
	Close()

	// GetBatchState returns the current batch.
	GetBatchState(ctx context.Context) (batch.State, error)

	// CaptureApproval appends a to the batch. The first capture of a batch
	// activates it and sends the batch started notification.
	CaptureApproval(ctx context.Context, a batch.Approval) error

	// ResetBatch empties the batch and returns it to idle.
	ResetBatch(ctx context.Context) error

	// FindApprovalByMatch returns the first approval matching q, or nil.
	FindApprovalByMatch(ctx context.Context, q batch.AllowanceQuery) (*batch.Approval, error)

	// SetInterception turns interception on or off on the proxy side.
	SetInterception(ctx context.Context, enabled bool) error

	// SelectedAddress asks the proxy side for its selected account.
	SelectedAddress(ctx context.Context) (common.Address, error)
}

type service struct {
	sessionID  string
	bus        bus.Bus
	storage    Storage
	notifier   Notifier
	correlator *bus.Correlator

	mu        sync.Mutex
	isStarted bool
	closeFunc func()
}

var _ Service = (*service)(nil)

type config struct {
	notifier Notifier
	timeout  time.Duration
}

// Option configures the Service.
type Option func(*config)

// WithNotifier replaces the log notifier.
func WithNotifier(n Notifier) Option {
	return func(c *config) {
		c.notifier = n
	}
}

// WithTimeout bounds the round trips the store makes to the proxy side.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// New returns the store of sessionID, persisting to storage and talking over b.
func New(sessionID string, b bus.Bus, storage Storage, opts ...Option) *service {
	cfg := config{
		notifier: NewLogNotifier(),
		timeout:  bus.DefaultTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		sessionID:  sessionID,
		bus:        b,
		storage:    storage,
		notifier:   cfg.notifier,
		correlator: bus.NewCorrelator(b, sessionID, []bus.MessageType{bus.TypeAddressResponse}, bus.WithTimeout(cfg.timeout)),
	}
}

// Start subscribes to the bus and handles the session's envelopes one at a
// time in arrival order.
func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	envelopes, err := s.bus.Subscribe(ctx)
	if err != nil {
		cancel()
		return err
	}

	if err := s.correlator.Start(ctx); err != nil {
		cancel()
		return err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)

		for env := range envelopes {
			if env.For(s.sessionID) {
				s.handle(ctx, env)
			}
		}
	}()

	s.closeFunc = func() {
		cancel()
		<-done
		s.correlator.Close()
	}
	s.isStarted = true
	return nil
}

// Close stops handling envelopes and waits for the one in progress.
func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.isStarted = false
}
