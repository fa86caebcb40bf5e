package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/txbatch/internal/gateway"

	"github.com/urfave/cli/v3"
)

// runUntilSignal starts svc and keeps it running until SIGINT, SIGTERM or
// the end of ctx.
func runUntilSignal(ctx context.Context, svc gateway.Service) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	if err := svc.Start(ctx); err != nil {
		return err
	}
	defer svc.Close()

	select {
	case <-quit:
	case <-ctx.Done():
	}
	return nil
}

// serveCommand runs the proxy.
//
//	txbatch serve
func serveCommand(rt Runtime) *cli.Command {
	return &cli.Command{
		Name:        "serve",
		Description: "Serves the intercepting wallet provider over JSON-RPC. With the in-process bus the session store runs in the same process.",
		Usage:       "Runs the proxy until Ctrl+C or a termination signal.",
		Action: func(ctx context.Context, c *cli.Command) error {
			svc, err := rt.Gateway(ctx)
			if err != nil {
				return err
			}
			return runUntilSignal(ctx, svc)
		},
	}
}

// sessionStoreCommand runs the session store on its own, for deployments
// sharing a Redis bus with one or more proxies.
//
//	txbatch session-store
func sessionStoreCommand(rt Runtime) *cli.Command {
	return &cli.Command{
		Name:        "session-store",
		Description: "Runs the session store that owns the batch and answers the proxy over the bus.",
		Usage:       "Runs the session store until Ctrl+C or a termination signal.",
		Action: func(ctx context.Context, c *cli.Command) error {
			svc, err := rt.SessionStore(ctx)
			if err != nil {
				return err
			}
			return runUntilSignal(ctx, svc)
		},
	}
}
