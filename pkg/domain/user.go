package domain

import "github.com/google/uuid"

// UserID identifies the API caller that owns a lookup.
type UserID uuid.UUID

func (id UserID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the id in its canonical UUID form.
func (id UserID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText parses any UUID form accepted by uuid.Parse.
func (id *UserID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }
