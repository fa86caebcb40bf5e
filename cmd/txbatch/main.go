package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/txbatch/internal/app"
	"github.com/gabapcia/txbatch/internal/config"
	"github.com/gabapcia/txbatch/internal/handlers/cli"
	"github.com/gabapcia/txbatch/internal/pkg/logger"
	"github.com/gabapcia/txbatch/internal/pkg/telemetry"
)

const telemetryShutdownTimeout = 5 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		return 2
	}

	// telemetry goes first so the logger can attach the OTEL bridge
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(ctx, cfg.Telemetry.ServiceName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "start telemetry: %v\n", err)
			return 1
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), telemetryShutdownTimeout)
			defer cancel()
			_ = shutdown(ctx)
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "start logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	ctx = logger.Derive(ctx, "session.id", cfg.SessionID)

	rt := app.New(cfg)
	defer func() {
		if err := rt.Close(); err != nil {
			logger.Warn(ctx, "failed to release backends", "error", err)
		}
	}()

	if err := cli.Run(ctx, rt); err != nil {
		logger.Error(ctx, "command failed", "error", err)
		return 1
	}
	return 0
}
