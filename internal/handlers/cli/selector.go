package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/txbatch/internal/selector"

	"github.com/urfave/cli/v3"
)

// selectorCommand prints the 4-byte selector of a function signature.
//
//	txbatch selector --signature "approve(address,uint256)"
func selectorCommand(rt Runtime) *cli.Command {
	return &cli.Command{
		Name:        "selector",
		Description: "Prints the selector of a function signature, hashed by the upstream node when configured and locally otherwise.",
		Usage:       "Computes a function selector.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "signature",
				Usage: "Canonical function signature",
				Value: selector.ExecuteSignature,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			s, err := rt.Resolver().Resolve(ctx, c.String("signature"))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(output(c), s.String())
			return err
		},
	}
}
