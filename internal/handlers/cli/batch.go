package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/txbatch/internal/sessionstore"

	"github.com/urfave/cli/v3"
)

func sessionFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "session",
		Usage: "Session id (defaults to TXBATCH_SESSION_ID)",
	}
}

// session opens the store of the --session flag, or the configured one.
func session(ctx context.Context, rt Runtime, c *cli.Command) (sessionstore.Service, error) {
	id := c.String("session")
	if id == "" {
		id = rt.SessionID()
	}
	return rt.Session(ctx, id)
}

// batchCommand groups the batch administration commands.
//
//	txbatch batch show --session tab-1
//	txbatch batch reset
//	txbatch batch intercept --enabled=false
func batchCommand(rt Runtime) *cli.Command {
	return &cli.Command{
		Name:        "batch",
		Description: "Inspect and manage the approval batch of a session.",
		Usage:       "Batch administration.",
		Commands: []*cli.Command{
			{
				Name:        "show",
				Description: "Prints the batch state and its captured approvals as JSON.",
				Usage:       "Shows the batch of a session.",
				Flags:       []cli.Flag{sessionFlag()},
				Action: func(ctx context.Context, c *cli.Command) error {
					store, err := session(ctx, rt, c)
					if err != nil {
						return err
					}

					state, err := store.GetBatchState(ctx)
					if err != nil {
						return err
					}

					enc := json.NewEncoder(output(c))
					enc.SetIndent("", "  ")
					return enc.Encode(state)
				},
			},
			{
				Name:        "reset",
				Description: "Drops every captured approval and returns the batch to idle.",
				Usage:       "Resets the batch of a session.",
				Flags:       []cli.Flag{sessionFlag()},
				Action: func(ctx context.Context, c *cli.Command) error {
					store, err := session(ctx, rt, c)
					if err != nil {
						return err
					}
					return store.ResetBatch(ctx)
				},
			},
			{
				Name:        "intercept",
				Description: "Turns interception on or off in the proxies serving the session.",
				Usage:       "Toggles interception.",
				Flags: []cli.Flag{
					sessionFlag(),
					&cli.BoolFlag{
						Name:  "enabled",
						Usage: "Whether approvals are captured",
						Value: true,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					store, err := session(ctx, rt, c)
					if err != nil {
						return err
					}

					enabled := c.Bool("enabled")
					if err := store.SetInterception(ctx, enabled); err != nil {
						return err
					}

					_, err = fmt.Fprintf(output(c), "interception enabled: %t\n", enabled)
					return err
				},
			},
		},
	}
}
