package domain

import (
	"time"

	"github.com/google/uuid"
)

// LookupID uniquely identifies an asynchronous lookup request.
type LookupID uuid.UUID

func (id LookupID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the id in its canonical UUID form.
func (id LookupID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText parses any UUID form accepted by uuid.Parse.
func (id *LookupID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// ParseLookupID parses s as a LookupID.
func ParseLookupID(s string) (LookupID, error) {
	id, err := uuid.Parse(s)

	return LookupID(id), err //nolint: wrapcheck
}

// LookupStatus represents the lifecycle state of an asynchronous lookup.
type LookupStatus string

const (
	// LookupStatusPending indicates the lookup is queued and the provider chain has not run yet.
	LookupStatusPending LookupStatus = "PENDING"
	// LookupStatusCompleted indicates the provider chain ran; Outcome tells whether a record was found.
	LookupStatusCompleted LookupStatus = "COMPLETED"
	// LookupStatusFailed indicates the job could not run the chain after all retries.
	LookupStatusFailed LookupStatus = "FAILED"
)

// Lookup is a barcode resolution requested through the API and processed by a
// background worker.
type Lookup struct {
	// ID is the unique identifier of the lookup.
	ID LookupID `json:"id"`
	// UserID is the caller who requested the lookup.
	UserID UserID `json:"userId"`

	// Code is the barcode payload to resolve.
	Code string `json:"code"`
	// Format is the symbology the code was read from, when known.
	Format CodeFormat `json:"format"`
	// Status is the current lifecycle state.
	Status LookupStatus `json:"status"`
	// Outcome holds the provider chain result once Status is COMPLETED.
	Outcome LookupOutcome `json:"outcome"`

	// Attempts counts how many times a worker picked the job up.
	Attempts uint `json:"attempts"`
	// LastError is the most recent processing error, if any.
	LastError string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	DeletedAt time.Time `json:"-"`
}
