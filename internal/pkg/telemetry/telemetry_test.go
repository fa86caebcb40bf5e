package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

func serviceNameOf(t *testing.T, serviceName string) string {
	t.Helper()

	res, err := newResource(serviceName)
	require.NoError(t, err)
	require.NotNil(t, res)

	for _, attr := range res.Attributes() {
		if attr.Key == semconv.ServiceNameKey {
			return attr.Value.AsString()
		}
	}

	t.Fatal("service name attribute not found in resource")
	return ""
}

func TestNewResource(t *testing.T) {
	t.Run("should set the service name", func(t *testing.T) {
		assert.Equal(t, "txbatch", serviceNameOf(t, "txbatch"))
	})

	t.Run("should keep special characters", func(t *testing.T) {
		assert.Equal(t, "txbatch-gateway_01", serviceNameOf(t, "txbatch-gateway_01"))
	})

	t.Run("should accept an empty service name", func(t *testing.T) {
		res, err := newResource("")
		require.NoError(t, err)
		assert.NotNil(t, res)
	})
}

func TestLoggerProvider(t *testing.T) {
	t.Cleanup(func() { setLoggerProvider(nil) })

	t.Run("should be nil before init", func(t *testing.T) {
		setLoggerProvider(nil)
		assert.Nil(t, LoggerProvider())
	})

	t.Run("should return the registered provider", func(t *testing.T) {
		lp := sdklog.NewLoggerProvider()
		defer lp.Shutdown(context.Background())

		setLoggerProvider(lp)
		assert.Same(t, lp, LoggerProvider())
	})
}

func TestInit(t *testing.T) {
	originalMeterProvider := otel.GetMeterProvider()
	originalTracerProvider := otel.GetTracerProvider()
	t.Cleanup(func() {
		otel.SetMeterProvider(originalMeterProvider)
		otel.SetTracerProvider(originalTracerProvider)
		setLoggerProvider(nil)
	})

	t.Run("should return a working shutdown function", func(t *testing.T) {
		// exporters connect lazily, so no collector is needed here
		shutdown, err := Init(context.Background(), "txbatch-test")
		require.NoError(t, err)
		require.NotNil(t, shutdown)
		assert.NotNil(t, LoggerProvider())

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		if err := shutdown(ctx); err != nil {
			t.Logf("shutdown without a collector returned: %v", err)
		}
		assert.Nil(t, LoggerProvider())
	})
}
