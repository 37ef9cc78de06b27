package lookup

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"

	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/domain"
)

// JobArgs contains the arguments for a lookup job submitted to River.
type JobArgs struct {
	// LookupID is the lookup to process. It is marked as unique so River keeps
	// at most one live job per lookup.
	LookupID domain.LookupID `json:"lookupId" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// NewJobArgs builds the job for a stored lookup.
func NewJobArgs(lookupID domain.LookupID, maxAttempts int) JobArgs {
	return JobArgs{LookupID: lookupID, maxAttempts: maxAttempts}
}

// Kind returns the River job kind used to register and dispatch the lookup worker.
func (args JobArgs) Kind() string { return "ResolveCodeJob" }

// InsertOpts returns the River options that control how the job is enqueued.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
