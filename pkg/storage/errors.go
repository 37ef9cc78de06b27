package storage

import "errors"

var (
	// ErrAlreadyInTx is returned by Begin on a transaction handle.
	ErrAlreadyInTx = errors.New("storage: transaction already open")
	// ErrNotInTx is returned by Commit and Rollback outside a transaction.
	ErrNotInTx = errors.New("storage: no open transaction")
)
