// Package interception wraps a wallet provider so approvals are captured
// instead of sent, captured approvals answer allowance reads, and the next
// transaction is folded together with the batch into one aggregator call.
package interception

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/gabapcia/txbatch/internal/batch"
	"github.com/gabapcia/txbatch/internal/pkg/logger"
	"github.com/gabapcia/txbatch/internal/provider"
	"github.com/gabapcia/txbatch/internal/selector"

	"github.com/ethereum/go-ethereum/common"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// DefaultAggregator is the aggregator address used unless configured.
var DefaultAggregator = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")

// ErrApprovalCaptured rejects an approval that was captured for batching
// instead of being sent.
var ErrApprovalCaptured = &provider.Error{
	Code:    4001,
	Message: "transaction blocked: approval captured for batching",
}

// InterceptingProvider is a provider.Provider wrapping an upstream one.
type InterceptingProvider struct {
	upstream    provider.Provider
	coordinator batch.Coordinator
	resolver    selector.Resolver
	aggregator  common.Address

	enabled       atomic.Bool
	tracer        trace.Tracer
	meterProvider metric.MeterProvider
	metrics       metrics
}

var (
	_ provider.Provider      = (*InterceptingProvider)(nil)
	_ provider.AccountSource = (*InterceptingProvider)(nil)
)

// Option configures an InterceptingProvider.
type Option func(*InterceptingProvider)

// WithAggregator sets the aggregator contract address.
func WithAggregator(addr common.Address) Option {
	return func(p *InterceptingProvider) {
		p.aggregator = addr
	}
}

// WithMeterProvider records metrics on mp instead of the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(p *InterceptingProvider) {
		p.meterProvider = mp
	}
}

// WithResolver replaces the selector resolver.
func WithResolver(r selector.Resolver) Option {
	return func(p *InterceptingProvider) {
		p.resolver = r
	}
}

// New wraps upstream. Interception starts enabled. Unless WithResolver is
// given, selectors are hashed by upstream when it is a provider.Hasher and
// locally otherwise.
func New(upstream provider.Provider, coordinator batch.Coordinator, opts ...Option) *InterceptingProvider {
	p := &InterceptingProvider{
		upstream:    upstream,
		coordinator: coordinator,
		aggregator:  DefaultAggregator,
		tracer:      otel.Tracer(instrumentationName),
	}
	p.enabled.Store(true)

	for _, opt := range opts {
		opt(p)
	}
	p.metrics = newMetrics(p.meterProvider)

	if p.resolver == nil {
		var resolverOpts []selector.Option
		if h, ok := upstream.(provider.Hasher); ok {
			resolverOpts = append(resolverOpts, selector.WithHasher(h))
		}
		p.resolver = selector.NewResolver(resolverOpts...)
	}
	return p
}

// SetEnabled turns interception on or off. When off every call is forwarded
// untouched.
func (p *InterceptingProvider) SetEnabled(enabled bool) {
	p.enabled.Store(enabled)
}

// Enabled reports whether calls are intercepted.
func (p *InterceptingProvider) Enabled() bool {
	return p.enabled.Load()
}

// Request intercepts req and returns its result.
func (p *InterceptingProvider) Request(ctx context.Context, req provider.Request) (json.RawMessage, error) {
	if !p.Enabled() {
		return p.upstream.Request(ctx, req)
	}

	ctx, span := p.tracer.Start(ctx, "interception.Request", trace.WithAttributes(attribute.String("rpc.method", req.Method)))
	defer span.End()

	pl := p.plan(ctx, req)
	span.SetAttributes(attribute.String("interception.kind", pl.kind.String()))

	if pl.answered {
		if pl.err != nil {
			span.SetStatus(codes.Error, pl.err.Error())
		}
		return pl.result, pl.err
	}

	result, err := p.upstream.Request(ctx, pl.request)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return result, err
	}

	if pl.rewrite == nil {
		return result, nil
	}
	return p.applyRewrite(ctx, pl.rewrite, result), nil
}

// SelectedAddress returns the upstream's selected account, or the first
// account it lists.
func (p *InterceptingProvider) SelectedAddress(ctx context.Context) (common.Address, error) {
	if src, ok := p.upstream.(provider.AccountSource); ok {
		addr, err := src.SelectedAddress(ctx)
		if err == nil {
			return addr, nil
		}

		logger.Debug(ctx, "selected address unavailable, listing accounts", "error", err)
	}

	raw, err := p.upstream.Request(ctx, provider.Request{Method: provider.MethodAccounts})
	if err != nil {
		return common.Address{}, err
	}

	var accounts []common.Address
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return common.Address{}, fmt.Errorf("decode %s result: %w", provider.MethodAccounts, err)
	}

	if len(accounts) == 0 {
		return common.Address{}, provider.ErrNoAccount
	}
	return accounts[0], nil
}

// applyRewrite post-processes an upstream result. A panicking rewrite
// leaves the result unchanged.
func (p *InterceptingProvider) applyRewrite(ctx context.Context, rewrite func(json.RawMessage) (json.RawMessage, bool), result json.RawMessage) (out json.RawMessage) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error(ctx, "result rewrite panicked, returning upstream result", "panic", r)
			p.metrics.fallback(ctx, reasonPanic)
			out = result
		}
	}()

	rewritten, ok := rewrite(result)
	if !ok {
		p.metrics.fallback(ctx, reasonResultMalformed)
		return result
	}
	return rewritten
}
