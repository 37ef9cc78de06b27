// Package worker runs the River job queue that processes asynchronous lookups.
package worker

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"

	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/config"
	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/lookup"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/logger"
)

// Options tune the job queue.
type Options struct {
	// MaxWorkers is the number of jobs processed concurrently.
	MaxWorkers int
	// ChainsPerSecond caps how many provider chains start per second across
	// all workers. Zero or less disables the cap.
	ChainsPerSecond float64
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:      cfg.Worker.MaxWorkers,
		ChainsPerSecond: cfg.Worker.ChainsPerSecond,
	}
}

// Start registers the lookup worker and starts a River client on dbPool.
// The caller stops the returned client.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	service lookup.Service,
	options Options) (*river.Client[pgx.Tx], error) {
	if options.MaxWorkers <= 0 {
		options.MaxWorkers = 1
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewLookupWorker(service, options.ChainsPerSecond))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.MaxWorkers},
		},
		Workers: workers,
		Logger:  logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
