package batch

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/txbatch/internal/bus"
	"github.com/gabapcia/txbatch/internal/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/gabapcia/txbatch/internal/batch"

// Coordinator is the interception side of the session store conversation.
// Queries never fail: when the store does not answer in time the caller
// gets the "unknown" result and proceeds as if nothing was batched.
type Coordinator interface {
	// Start begins matching store responses to outstanding queries.
	Start(ctx context.Context) error

	// Close stops matching responses.
	Close()

	// GetBatchState returns the session's batch, or false when the store
	// did not answer in time.
	GetBatchState(ctx context.Context) (State, bool)

	// FindApproval returns the captured approval matching q, or nil when
	// there is none or the store did not answer in time.
	FindApproval(ctx context.Context, q AllowanceQuery) *Approval

	// CaptureApproval hands a to the store without waiting for it.
	CaptureApproval(ctx context.Context, a Approval) error
}

type coordinator struct {
	bus        bus.Bus
	sessionID  string
	correlator *bus.Correlator
	tracer     trace.Tracer
}

var _ Coordinator = (*coordinator)(nil)

type config struct {
	timeout time.Duration
}

// Option configures a Coordinator.
type Option func(*config)

// WithTimeout bounds every round trip to the store.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// NewCoordinator returns a Coordinator talking to the store of sessionID over b.
func NewCoordinator(b bus.Bus, sessionID string, opts ...Option) *coordinator {
	cfg := config{timeout: bus.DefaultTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &coordinator{
		bus:       b,
		sessionID: sessionID,
		correlator: bus.NewCorrelator(b, sessionID,
			[]bus.MessageType{bus.TypeBatchResponse, bus.TypeApprovalMatch},
			bus.WithTimeout(cfg.timeout),
		),
		tracer: otel.Tracer(tracerName),
	}
}

// Start subscribes to the answers published by the session store.
func (c *coordinator) Start(ctx context.Context) error {
	return c.correlator.Start(ctx)
}

// Close stops waiting for answers. Pending queries time out.
func (c *coordinator) Close() {
	c.correlator.Close()
}

func (c *coordinator) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return c.tracer.Start(ctx, name, trace.WithAttributes(attribute.String("session.id", c.sessionID)))
}

// roundTrip runs a query and decodes its payload into v. The failure is
// logged and recorded on the span, never returned.
func (c *coordinator) roundTrip(ctx context.Context, span trace.Span, t bus.MessageType, payload, v any) bool {
	resp, err := c.correlator.RoundTrip(ctx, t, payload)
	if err == nil {
		err = resp.Decode(v)
		if errors.Is(err, bus.ErrEmptyPayload) {
			return true
		}
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		level := logger.Warn
		if errors.Is(err, bus.ErrRoundTripTimeout) {
			level = logger.Debug
		}
		level(ctx, "session store query failed",
			"session.id", c.sessionID,
			"message.type", t,
			"error", err,
		)
		return false
	}
	return true
}

// GetBatchState asks the session store for the batch. ok is false when no
// answer arrives in time.
func (c *coordinator) GetBatchState(ctx context.Context) (State, bool) {
	ctx, span := c.startSpan(ctx, "batch.GetBatchState")
	defer span.End()

	var state State
	if !c.roundTrip(ctx, span, bus.TypeGetBatch, nil, &state) {
		return State{}, false
	}

	span.SetAttributes(
		attribute.Bool("batch.active", state.Active),
		attribute.Int("batch.approvals", len(state.Approvals)),
	)
	return state, true
}

// FindApproval asks the session store for an approval matching q.
func (c *coordinator) FindApproval(ctx context.Context, q AllowanceQuery) *Approval {
	ctx, span := c.startSpan(ctx, "batch.FindApproval")
	defer span.End()

	var match *Approval
	if !c.roundTrip(ctx, span, bus.TypeFindApproval, q, &match) {
		return nil
	}

	span.SetAttributes(attribute.Bool("batch.approval_found", match != nil))
	return match
}

// CaptureApproval hands a to the session store without waiting.
func (c *coordinator) CaptureApproval(ctx context.Context, a Approval) error {
	ctx, span := c.startSpan(ctx, "batch.CaptureApproval")
	defer span.End()

	env, err := bus.NewEnvelope(c.sessionID, bus.TypeCaptureApproval, "", a)
	if err != nil {
		span.RecordError(err)
		return err
	}

	if err := c.bus.Publish(ctx, env); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
