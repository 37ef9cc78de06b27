package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"

	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/storage"
)

// AddJob inserts a River job. Inside a transaction the job becomes visible
// only when the transaction commits, so a lookup and the job resolving it
// are stored together or not at all. Outside a transaction the insert runs
// in a transaction of its own.
//
// The returned boolean is false when River skipped the insert as a duplicate
// of a unique job.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	tx, ok := p.DB.(*sql.Tx)
	if !ok {
		var added bool
		err := p.WithTx(ctx, func(s storage.AllStorage) error {
			var err error
			added, err = s.AddJob(ctx, args, opts)

			return err
		})

		return added, err
	}

	if p.jobs == nil {
		return false, fmt.Errorf("could not insert %s job: storage has no job client", args.Kind())
	}

	res, err := p.jobs.InsertTx(ctx, tx, args, opts)
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
