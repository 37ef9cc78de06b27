// Package storage is the persistence contract of the lookup service: lookups,
// the River jobs that resolve them, and the transactions tying both together.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is what a lookup operation may touch, in or out of a transaction.
type AllStorage interface {
	LookupStorage
	JobStorage
}

// TxStorage is an AllStorage bound to one open transaction. It must not be
// used after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the long-lived handle the service and the workers share.
type Storage interface {
	AllStorage

	// Close releases the connection pool.
	Close() error

	// Begin opens a transaction. Calling it on a TxStorage is not possible;
	// backends report nesting attempts with ErrAlreadyInTx.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx commits when cb returns nil and rolls back otherwise. A lookup
	// and its job are stored through one WithTx call.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
