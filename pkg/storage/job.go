package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage queues the background work of a lookup.
//
//	added, err := tx.AddJob(ctx, lookup.NewJobArgs(id, maxAttempts), nil)
type JobStorage interface {
	// AddJob queues args. Inside a transaction the job commits or rolls back
	// with it. The boolean is false when River dropped the insert because a
	// unique job for the same lookup is already queued.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
