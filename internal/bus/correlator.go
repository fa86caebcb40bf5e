package bus

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/txbatch/internal/pkg/logger"
	"github.com/gabapcia/txbatch/internal/pkg/types"
	"github.com/gabapcia/txbatch/internal/pkg/x/chflow"

	"github.com/google/uuid"
)

// DefaultTimeout bounds every correlated round trip.
const DefaultTimeout = 1500 * time.Millisecond

var (
	// ErrCorrelatorAlreadyStarted is returned if Start is called more than once.
	ErrCorrelatorAlreadyStarted = errors.New("correlator already started")

	// ErrCorrelatorNotStarted is returned by RoundTrip before Start.
	ErrCorrelatorNotStarted = errors.New("correlator not started")

	// ErrRoundTripTimeout is returned when no response arrived before the deadline.
	ErrRoundTripTimeout = errors.New("round trip timed out")
)

// PendingRequest is an in-flight round trip. It resolves exactly once,
// either with the matching response or by its deadline.
type PendingRequest struct {
	RequestID string
	CreatedAt time.Time
	Deadline  time.Time

	resolution chan Envelope
}

// Correlator issues requests on a bus and matches responses to them by
// request id. Only envelopes for its session and of its response types are
// considered.
type Correlator struct {
	bus       Bus
	sessionID string
	timeout   time.Duration
	responses types.Set[MessageType]

	mu      sync.Mutex
	pending map[string]*PendingRequest

	lifecycleMu sync.Mutex
	isStarted   bool
	closeFunc   func()
}

// CorrelatorOption configures a Correlator.
type CorrelatorOption func(*Correlator)

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) CorrelatorOption {
	return func(c *Correlator) {
		c.timeout = d
	}
}

// NewCorrelator returns a Correlator resolving responses of the given types
// published for sessionID.
func NewCorrelator(b Bus, sessionID string, responses []MessageType, opts ...CorrelatorOption) *Correlator {
	c := &Correlator{
		bus:       b,
		sessionID: sessionID,
		timeout:   DefaultTimeout,
		responses: types.NewSet(responses...),
		pending:   make(map[string]*PendingRequest),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start subscribes to the bus and resolves pending requests until Close.
func (c *Correlator) Start(ctx context.Context) error {
	c.lifecycleMu.Lock()
	defer c.lifecycleMu.Unlock()

	if c.isStarted {
		return ErrCorrelatorAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	envelopes, err := c.bus.Subscribe(ctx)
	if err != nil {
		cancel()
		return err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)

		for env := range envelopes {
			if !env.For(c.sessionID) || !c.responses.Has(env.Type) {
				continue
			}

			if !c.Resolve(env) {
				logger.Debug(ctx, "dropping response without pending request",
					"request.id", env.RequestID,
					"message.type", env.Type,
				)
			}
		}
	}()

	c.closeFunc = func() {
		cancel()
		<-done
	}
	c.isStarted = true
	return nil
}

// Close stops consuming responses. Round trips in flight run into their deadline.
func (c *Correlator) Close() {
	c.lifecycleMu.Lock()
	defer c.lifecycleMu.Unlock()

	if c.closeFunc != nil {
		c.closeFunc()
	}

	c.closeFunc = nil
	c.isStarted = false
}

func (c *Correlator) started() bool {
	c.lifecycleMu.Lock()
	defer c.lifecycleMu.Unlock()

	return c.isStarted
}

func (c *Correlator) register(requestID string) *PendingRequest {
	now := time.Now()
	req := &PendingRequest{
		RequestID:  requestID,
		CreatedAt:  now,
		Deadline:   now.Add(c.timeout),
		resolution: make(chan Envelope, 1),
	}

	c.mu.Lock()
	c.pending[requestID] = req
	c.mu.Unlock()

	return req
}

// Resolve delivers env to the request waiting on its id and removes the
// entry. It reports false when no such request is pending.
func (c *Correlator) Resolve(env Envelope) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	req, ok := c.pending[env.RequestID]
	if !ok {
		return false
	}

	delete(c.pending, env.RequestID)
	return chflow.Offer(req.resolution, env)
}

// expire removes a request whose wait ended. When a response won the race
// in the meantime, that response is returned.
func (c *Correlator) expire(req *PendingRequest) (Envelope, bool) {
	c.mu.Lock()
	_, stillPending := c.pending[req.RequestID]
	delete(c.pending, req.RequestID)
	c.mu.Unlock()

	if stillPending {
		return Envelope{}, false
	}
	return <-req.resolution, true
}

// Pending returns the number of unresolved requests.
func (c *Correlator) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.pending)
}

// RoundTrip publishes a request of type t with a fresh request id and waits
// for the matching response, the deadline or ctx, whichever comes first.
func (c *Correlator) RoundTrip(ctx context.Context, t MessageType, payload any) (Envelope, error) {
	if !c.started() {
		return Envelope{}, ErrCorrelatorNotStarted
	}

	req := c.register(uuid.NewString())

	env, err := NewEnvelope(c.sessionID, t, req.RequestID, payload)
	if err != nil {
		c.expire(req)
		return Envelope{}, err
	}

	if err := c.bus.Publish(ctx, env); err != nil {
		c.expire(req)
		return Envelope{}, err
	}

	waitCtx, cancel := context.WithDeadline(ctx, req.Deadline)
	defer cancel()

	if resp, ok := chflow.Receive(waitCtx, req.resolution); ok {
		return resp, nil
	}

	if resp, ok := c.expire(req); ok {
		return resp, nil
	}

	if err := ctx.Err(); err != nil {
		return Envelope{}, err
	}
	return Envelope{}, ErrRoundTripTimeout
}
