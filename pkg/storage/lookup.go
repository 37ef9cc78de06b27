package storage

import (
	"context"
	"time"

	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/domain"
)

// LookupUpdates describes a set of optional fields that can be applied to an
// existing lookup during an update. Only non-nil fields will be updated.
type LookupUpdates struct {
	// Status is the new status to set for the lookup.
	Status domain.LookupStatus
	// Outcome, when provided, replaces the stored provider chain result.
	Outcome *domain.LookupOutcome
	// LastError, when provided, sets the last error text. An empty string value
	// indicates the error should be cleared (set to NULL).
	LastError *string
	// FromStatus, when set, only updates a lookup that still has this status.
	// A lookup completed or failed in the meantime is left untouched.
	FromStatus domain.LookupStatus
}

// UserLookups groups a page of lookups returned for a user together with an
// optional NextCursor used for pagination.
type UserLookups struct {
	// Lookups contains the current page of lookup records.
	Lookups []domain.Lookup
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// LookupStorage defines CRUD and query operations related to lookups.
// Soft-deleted rows are invisible to every method.
type LookupStorage interface {
	// StoreLookup inserts a lookup and returns the stored row as it exists in
	// the database (including generated fields).
	StoreLookup(ctx context.Context, lookup domain.Lookup) (*domain.Lookup, error)
	// UpdateLookupByID updates a single lookup and returns the updated row, or
	// nil when it does not exist or no longer has updates.FromStatus. Attempts
	// is incremented by 1 and updated_at is set automatically. Only provided
	// fields are changed.
	UpdateLookupByID(ctx context.Context, ID domain.LookupID, updates LookupUpdates) (*domain.Lookup, error)
	// PendingLookupByID returns the lookup when it exists and is still pending,
	// otherwise nil. Inside a transaction the row is locked until commit.
	PendingLookupByID(ctx context.Context, ID domain.LookupID) (*domain.Lookup, error)
	// LookupByID fetches a lookup by its ID for the given user. Returns nil when not found.
	LookupByID(ctx context.Context, userID domain.UserID, ID domain.LookupID) (*domain.Lookup, error)
	// DeleteLookup performs a soft delete for the given lookup ID and user ID
	// and returns the deleted lookup, or nil if it was not found.
	DeleteLookup(ctx context.Context, userID domain.UserID, ID domain.LookupID) (*domain.Lookup, error)
	// UserLookups returns a page of lookups for a user created before the
	// optional cursor time, limited by the given limit. If status is non-empty,
	// results are filtered to records with the given status.
	UserLookups(ctx context.Context,
		userID domain.UserID,
		status domain.LookupStatus,
		cursor time.Time,
		limit uint) (UserLookups, error)
}
