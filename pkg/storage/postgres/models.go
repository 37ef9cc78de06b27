package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/domain"
)

// PgLookup is the row shape of the lookups table.
type PgLookup struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Code    string          `db:"code"`
	Format  string          `db:"format"`
	Status  string          `db:"status"`
	Outcome json.RawMessage `db:"outcome" goqu:"skipinsert"`

	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

// ToDomain converts the row. A NULL outcome (pending lookups) yields a zero
// outcome carrying only the code.
func (p *PgLookup) ToDomain() (*domain.Lookup, error) {
	outcome := domain.LookupOutcome{Code: p.Code}
	if len(p.Outcome) > 0 && string(p.Outcome) != "null" {
		if err := json.Unmarshal(p.Outcome, &outcome); err != nil {
			return nil, fmt.Errorf("could not unmarshal lookup outcome: %w", err)
		}
	}

	return &domain.Lookup{
		ID:        domain.LookupID(p.ID),
		UserID:    domain.UserID(p.UserID),
		Code:      p.Code,
		Format:    domain.CodeFormat(p.Format),
		Status:    domain.LookupStatus(p.Status),
		Outcome:   outcome,
		Attempts:  p.Attempts,
		LastError: p.LastError.String,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
		DeletedAt: p.DeletedAt.Time,
	}, nil
}

// FromDomain fills the row from a domain lookup. Generated columns are left
// to the database on insert.
func (p *PgLookup) FromDomain(lookup domain.Lookup) {
	*p = PgLookup{
		ID:       uuid.UUID(lookup.ID),
		UserID:   uuid.UUID(lookup.UserID),
		Code:     lookup.Code,
		Format:   string(lookup.Format),
		Status:   string(lookup.Status),
		Attempts: lookup.Attempts,
		LastError: sql.NullString{
			String: lookup.LastError,
			Valid:  lookup.LastError != "",
		},
		CreatedAt: lookup.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  lookup.UpdatedAt,
			Valid: !lookup.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  lookup.DeletedAt,
			Valid: !lookup.DeletedAt.IsZero(),
		},
	}
}

func pgLookupsToDomain(rows []PgLookup) ([]domain.Lookup, error) {
	out := make([]domain.Lookup, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
