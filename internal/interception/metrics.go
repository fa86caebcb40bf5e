package interception

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/gabapcia/txbatch/internal/interception"

// Fallback reasons recorded on txbatch.interception.fallbacks.
const (
	reasonCaptureFailed   = "capture_failed"
	reasonBatchUnknown    = "batch_unknown"
	reasonNoSender        = "no_sender"
	reasonNoTarget        = "no_target"
	reasonSelectorFailed  = "selector_failed"
	reasonEncodeFailed    = "encode_failed"
	reasonResultMalformed = "result_malformed"
	reasonPanic           = "panic"
)

type metrics struct {
	captured  metric.Int64Counter
	batches   metric.Int64Counter
	answered  metric.Int64Counter
	fallbacks metric.Int64Counter
}

// newMetrics registers the interception counters on mp, or on the global
// provider when mp is nil. A counter that cannot be created is replaced by a
// no-op one.
func newMetrics(mp metric.MeterProvider) metrics {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter(instrumentationName)
	nop := noop.NewMeterProvider().Meter(instrumentationName)

	counter := func(name, description string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(description))
		if err != nil {
			c, _ = nop.Int64Counter(name)
		}
		return c
	}

	return metrics{
		captured:  counter("txbatch.interception.approvals_captured", "Approvals captured for batching"),
		batches:   counter("txbatch.interception.batches_sent", "Aggregated transactions sent upstream"),
		answered:  counter("txbatch.interception.allowances_answered", "Allowance reads answered from captured approvals"),
		fallbacks: counter("txbatch.interception.fallbacks", "Calls forwarded unchanged after an interception failure"),
	}
}

func (m metrics) fallback(ctx context.Context, reason string) {
	m.fallbacks.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}
