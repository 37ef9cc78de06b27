package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/api"
	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/api/handler/v1handler"
	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/config"
	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/lookup"
	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/worker"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/logger"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/metrics"
)

// serveCommand constructs the 'serve' subcommand that runs the API server and
// the lookup workers until SIGINT or SIGTERM.
func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				return fmt.Errorf("could not create meter provider: %w", err)
			}
			defer func() {
				if err := mp.Shutdown(context.Background()); err != nil {
					logger.Warn(ctx, "could not shut meter provider down", zap.Error(err))
				}
			}()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			aggregator := getAggregator(ctx, cfg, mp)
			service := lookup.NewService(strg, aggregator, lookup.NewServiceOptions(cfg))

			server, err := api.NewServer(api.Deps{
				Deps:          v1handler.Deps{Lookups: service, Resolver: aggregator},
				MeterProvider: mp,
			}, api.NewOptions(cfg))
			if err != nil {
				return fmt.Errorf("could not create webserver: %w", err)
			}

			logger.Info(ctx, "starting lookup workers...")
			riverClient, err := worker.Start(ctx, strg.Pool, service, worker.NewOptions(cfg))
			if err != nil {
				return fmt.Errorf("could not start workers: %w", err)
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("webserver stopped: %w", err)
				}

				return nil
			})
			g.Go(func() error {
				// wait for interrupt or a failed server
				<-gctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.GracefulShutdownTimeout)
				defer cancel()

				logger.Info(ctx, "stopping webserver...")
				if err := server.Shutdown(shutdownCtx); err != nil {
					logger.Error(ctx, "could not stop webserver", zap.Error(err))
				}
				logger.Info(ctx, "stopping lookup workers...")
				if err := riverClient.Stop(shutdownCtx); err != nil {
					logger.Error(ctx, "could not stop workers", zap.Error(err))
				}

				return nil
			})

			return g.Wait() //nolint: wrapcheck
		},
	}

	return cmd
}
