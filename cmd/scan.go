package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/config"
	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/navigator"
	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/session"
	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/session/linecam"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/domain"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/logger"
)

// scanCommand constructs the 'scan' subcommand that drives a scan session
// from decoded lines (see package linecam) read from a file or stdin. Events
// are printed to stdout as JSON lines. The session is restarted after every
// code until the input ends or the camera fails.
func scanCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Runs a scan session over decoded codes read line by line",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			input, _ := cmd.Flags().GetString("input")
			displayOnly, _ := cmd.Flags().GetBool("display-only")
			rate, _ := cmd.Flags().GetFloat64("rate")

			var r io.Reader = os.Stdin
			if input != "" && input != "-" {
				f, err := os.Open(input)
				if err != nil {
					return fmt.Errorf("could not open input: %w", err)
				}
				defer f.Close()
				r = f
			}

			browser := navigator.NewOSBrowser(os.Stderr)
			if displayOnly {
				browser.Run = func(string, ...string) error { return navigator.ErrNoOpener }
			}

			options := session.NewOptions(cfg)
			if rate > 0 {
				options.MaxScansPerSecond = rate
			}

			cam := linecam.New(r)
			s := session.New(session.Deps{
				Camera:    cam,
				Decoder:   linecam.Decoder{},
				Resolver:  getAggregator(ctx, cfg, nil),
				Navigator: navigator.New(browser),
				Sink:      newLineSink(os.Stdout),
			}, options)
			defer func() { _ = s.Close() }()

			go func() {
				<-ctx.Done()
				s.Stop()
			}()

			for !cam.Exhausted() && ctx.Err() == nil {
				if err := s.Start(ctx); err != nil {
					return err //nolint: wrapcheck
				}
				s.Wait()

				if st := s.State(); st.Phase == domain.PhaseTerminal {
					return fmt.Errorf("scan session failed: %s", st)
				}
			}

			if err := cam.Err(); err != nil {
				logger.Error(ctx, "input ended with an error", zap.Error(err))

				return fmt.Errorf("could not read input: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringP("input", "i", "", "File to read codes from, stdin when empty or \"-\"")
	cmd.Flags().Bool("display-only", false, "Print URLs instead of opening them")
	cmd.Flags().Float64("rate", 0, "Maximum frames decoded per second (config value when 0)")

	return cmd
}
