// Package cli is the txbatch command line.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/gabapcia/txbatch/internal/gateway"
	"github.com/gabapcia/txbatch/internal/selector"
	"github.com/gabapcia/txbatch/internal/sessionstore"

	"github.com/urfave/cli/v3"
)

// Runtime builds what the commands run. Building may connect to backends,
// so each command asks only for what it uses.
type Runtime interface {
	// Gateway returns the proxy process behind the JSON-RPC server.
	Gateway(ctx context.Context) (gateway.Service, error)

	// SessionStore returns the session store process.
	SessionStore(ctx context.Context) (gateway.Service, error)

	// Session returns an unstarted session store of sessionID.
	Session(ctx context.Context, sessionID string) (sessionstore.Service, error)

	Resolver() selector.Resolver

	// SessionID is the configured session.
	SessionID() string
}

func newApp(rt Runtime) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "txbatch",
		Description:           "Wallet provider proxy that captures token approvals and sends them in one aggregated transaction.",
		Usage:                 "txbatch [command] [flags]",
		Commands: []*cli.Command{
			serveCommand(rt),
			sessionStoreCommand(rt),
			batchCommand(rt),
			selectorCommand(rt),
		},
	}
}

// Run parses os.Args and runs the matching command.
func Run(ctx context.Context, rt Runtime) error {
	return newApp(rt).Run(ctx, os.Args)
}

// output is where commands print their results.
func output(c *cli.Command) io.Writer {
	if w := c.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
