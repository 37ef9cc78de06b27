// Package lookup resolves barcodes against an ordered chain of product data
// providers and manages asynchronous lookups requested through the API.
package lookup

import (
	"context"

	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/domain"
)

// Resolver runs the provider chain for a code.
//
//go:generate mockgen -package mocklookup -source=interface.go -destination=mock/mocklookup.go *
type Resolver interface {
	Resolve(ctx context.Context, code string) domain.LookupOutcome
}

// Service persists lookups requested by users and processes them in the background.
type Service interface {
	Enqueue(ctx context.Context, userID domain.UserID, code string, format domain.CodeFormat) (*domain.Lookup, error)
	UserLookups(ctx context.Context,
		userID domain.UserID,
		status domain.LookupStatus,
		cursor string,
		limit uint) ([]domain.Lookup, string, error)
	Result(ctx context.Context, userID domain.UserID, lookupID domain.LookupID) (*domain.Lookup, error)
	Delete(ctx context.Context, userID domain.UserID, lookupID domain.LookupID) error
	// Process runs the chain for a pending lookup and stores the outcome.
	// It returns serrors.ErrConflict when the lookup is gone or no longer pending.
	Process(ctx context.Context, lookupID domain.LookupID) (*domain.Lookup, error)
	// Fail marks a lookup failed after its job ran out of attempts.
	Fail(ctx context.Context, lookupID domain.LookupID, cause error) error
}
