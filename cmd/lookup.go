package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-faster/jx"
	"github.com/spf13/cobra"

	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/api/handler/v1handler"
	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/config"
	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/lookup"
)

// lookupCommand constructs the 'lookup' subcommand that runs the provider
// chain once for a code and prints the outcome as JSON. It needs no database.
func lookupCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <code>",
		Short: "Resolves a barcode against the provider chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			code, err := lookup.NormalizeCode(args[0])
			if err != nil {
				return err //nolint: wrapcheck
			}

			outcome := getAggregator(ctx, cfg, nil).Resolve(ctx, code)

			e := jx.GetEncoder()
			defer jx.PutEncoder(e)
			v1handler.EncodeOutcome(e, outcome)
			if _, err := fmt.Fprintln(os.Stdout, e.String()); err != nil {
				return fmt.Errorf("could not write outcome: %w", err)
			}

			return nil
		},
	}

	return cmd
}
