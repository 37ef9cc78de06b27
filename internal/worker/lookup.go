package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/lookup"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/logger"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/serrors"
)

// LookupWorker is a River worker that resolves queued lookups.
//
// Every job runs the whole provider chain, so all workers share one token
// bucket that bounds how many chains start per second. Upstream open data
// services publish fair-use limits per client; a burst of queued lookups
// must not turn into a burst of upstream requests.
//
// Error handling: a lookup that was deleted or already processed cancels the
// job. Other errors are returned so River retries; on the last attempt the
// lookup is marked failed.
type LookupWorker struct {
	river.WorkerDefaults[lookup.JobArgs]

	service lookup.Service
	limiter *rate.Limiter
}

// NewLookupWorker constructs a LookupWorker. chainsPerSecond <= 0 disables
// the shared rate limit.
func NewLookupWorker(service lookup.Service, chainsPerSecond float64) *LookupWorker {
	limit := rate.Inf
	if chainsPerSecond > 0 {
		limit = rate.Limit(chainsPerSecond)
	}

	return &LookupWorker{
		service: service,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Work processes a single lookup job.
func (w *LookupWorker) Work(ctx context.Context, job *river.Job[lookup.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.Int("attempt", job.Attempt),
		zap.Stringer(logger.LookupIDKey, job.Args.LookupID))

	if err := w.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("could not wait for chain budget: %w", err)
	}

	res, err := w.service.Process(ctx, job.Args.LookupID)
	if err != nil {
		if errors.Is(err, serrors.ErrConflict) {
			logger.Info(ctx, "lookup is not pending anymore, cancelling job", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in processing lookup", zap.Error(err))

		if job.Attempt >= job.MaxAttempts {
			if failErr := w.service.Fail(ctx, job.Args.LookupID, err); failErr != nil {
				logger.Error(ctx, "could not mark lookup failed", zap.Error(failErr))
			}
		}

		return fmt.Errorf("could not process lookup: %w", err)
	}

	logger.Info(ctx, "lookup processed",
		zap.Bool("found", res.Outcome.Found()),
		zap.Bool("allFailed", res.Outcome.AllFailed()))

	return nil
}
