package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"

	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/domain"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/storage"
)

const (
	lookupsTable = "lookups"
)

// StoreLookup inserts a lookup and returns the stored row.
func (p *PgSQL) StoreLookup(ctx context.Context, lookup domain.Lookup) (*domain.Lookup, error) {
	var row PgLookup
	row.FromDomain(lookup)

	var stored PgLookup
	if _, err := p.Builder.Insert(lookupsTable).
		Rows(row).
		Returning(&PgLookup{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store lookup into pg: %w", err)
	}

	return stored.ToDomain()
}

// UpdateLookupByID applies updates to a live lookup, optionally only while it
// has updates.FromStatus. Attempts is incremented by 1 and updated_at is set.
func (p *PgSQL) UpdateLookupByID(ctx context.Context,
	id domain.LookupID,
	updates storage.LookupUpdates) (*domain.Lookup, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"attempts":   goqu.L("attempts + 1"),
	}
	if updates.Status != "" {
		rec["status"] = string(updates.Status)
	}
	if updates.Outcome != nil {
		b, err := json.Marshal(updates.Outcome)
		if err != nil {
			return nil, fmt.Errorf("could not marshal outcome: %w", err)
		}

		rec["outcome"] = b
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			// set to NULL when empty string provided
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	w := []goqu.Expression{
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	}
	if updates.FromStatus != "" {
		w = append(w, goqu.I("status").Eq(string(updates.FromStatus)))
	}

	var row PgLookup
	found, err := p.Builder.Update(lookupsTable).
		Set(rec).Where(w...).
		Returning(&PgLookup{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update lookup in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// PendingLookupByID returns a live pending lookup, locking its row for the
// rest of the surrounding transaction.
func (p *PgSQL) PendingLookupByID(ctx context.Context, id domain.LookupID) (*domain.Lookup, error) {
	var row PgLookup
	found, err := p.Builder.From(lookupsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("status").Eq(string(domain.LookupStatusPending)),
			goqu.I("deleted_at").IsNull(),
		).
		ForUpdate(exp.Wait).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch pending lookup: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// LookupByID returns a lookup by its ID, excluding soft-deleted rows.
func (p *PgSQL) LookupByID(ctx context.Context, userID domain.UserID, id domain.LookupID) (*domain.Lookup, error) {
	var row PgLookup
	found, err := p.Builder.From(lookupsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch lookup by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// DeleteLookup performs a soft delete by setting deleted_at timestamp
// for a given lookup id and user, returning the deleted record.
func (p *PgSQL) DeleteLookup(ctx context.Context, userID domain.UserID, id domain.LookupID) (*domain.Lookup, error) {
	var row PgLookup
	found, err := p.Builder.Update(lookupsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgLookup{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete lookup in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UserLookups returns a page of a user's lookups created before cursor,
// ordered by created_at DESC, id DESC.
func (p *PgSQL) UserLookups(ctx context.Context,
	userID domain.UserID,
	status domain.LookupStatus,
	cursor time.Time,
	limit uint) (storage.UserLookups, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if status != "" {
		w = append(w, goqu.I("status").Eq(string(status)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(lookupsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgLookup
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserLookups{}, fmt.Errorf("could not fetch user lookups from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	lookups, err := pgLookupsToDomain(rows)
	if err != nil {
		return storage.UserLookups{}, err
	}

	return storage.UserLookups{
		Lookups:    lookups,
		NextCursor: nextCursor,
	}, nil
}
