package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/lookup"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/domain"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/storage"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/storage/postgres"
)

func pendingLookup(userID domain.UserID, code string) domain.Lookup {
	return domain.Lookup{
		UserID: userID,
		Code:   code,
		Format: domain.FormatEAN13,
		Status: domain.LookupStatusPending,
	}
}

func countJobs(t *testing.T, pg *postgres.PgSQL, id domain.LookupID) int {
	t.Helper()
	var c int
	row := pg.DB.QueryRowContext(context.Background(),
		`SELECT COUNT(*) FROM river_job WHERE args->>'lookupId' = $1`, uuid.UUID(id).String())
	require.NoError(t, row.Scan(&c))

	return c
}

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = txStorage.Rollback() }()

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)
}

func TestPgSQL_CommitAndRollback_NotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
}

func TestPgSQL_Tx_LookupVisibleOnlyAfterCommit(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)

	l, err := tx.StoreLookup(ctx, pendingLookup(userID, "5901234123457"))
	require.NoError(t, err)

	got, err := pg.LookupByID(ctx, userID, l.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	got, err = tx.LookupByID(ctx, userID, l.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	require.NoError(t, tx.Commit())

	got, err = pg.LookupByID(ctx, userID, l.ID)
	require.NoError(t, err)
	require.Equal(t, l.ID, got.ID)
}

func TestPgSQL_Tx_RollbackDropsLookup(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)

	l, err := tx.StoreLookup(ctx, pendingLookup(userID, "4006381333931"))
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	got, err := pg.LookupByID(ctx, userID, l.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPgSQL_WithTx_LookupAndJobTogether(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	t.Run("commit keeps both", func(t *testing.T) {
		var stored *domain.Lookup
		err := pg.WithTx(ctx, func(s storage.AllStorage) error {
			var err error
			stored, err = s.StoreLookup(ctx, pendingLookup(userID, "036000291452"))
			if err != nil {
				return err //nolint: wrapcheck
			}
			_, err = s.AddJob(ctx, lookup.NewJobArgs(stored.ID, 3), nil)

			return err //nolint: wrapcheck
		})
		require.NoError(t, err)

		got, err := pg.LookupByID(ctx, userID, stored.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, 1, countJobs(t, pg, stored.ID))
	})

	t.Run("a failing callback drops both", func(t *testing.T) {
		var stored *domain.Lookup
		boom := errors.New("enqueue rejected")
		err := pg.WithTx(ctx, func(s storage.AllStorage) error {
			var err error
			stored, err = s.StoreLookup(ctx, pendingLookup(userID, "1234567890128"))
			require.NoError(t, err)
			added, err := s.AddJob(ctx, lookup.NewJobArgs(stored.ID, 3), nil)
			require.NoError(t, err)
			require.True(t, added)

			return boom
		})
		require.ErrorIs(t, err, boom)

		got, err := pg.LookupByID(ctx, userID, stored.ID)
		require.NoError(t, err)
		require.Nil(t, got)
		require.Zero(t, countJobs(t, pg, stored.ID))
	})

	t.Run("a panicking callback rolls back", func(t *testing.T) {
		var id domain.LookupID
		require.Panics(t, func() {
			_ = pg.WithTx(ctx, func(s storage.AllStorage) error {
				stored, err := s.StoreLookup(ctx, pendingLookup(userID, "40063813"))
				require.NoError(t, err)
				id = stored.ID

				panic("provider chain exploded")
			})
		})

		got, err := pg.LookupByID(ctx, userID, id)
		require.NoError(t, err)
		require.Nil(t, got)
	})
}

func TestPgSQL_PendingLookupByID_LocksUntilCommit(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	userID := domain.UserID(uuid.New())
	l := storePending(t, pg, userID, "9780201379624")

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)

	pending, err := tx.PendingLookupByID(ctx, l.ID)
	require.NoError(t, err)
	require.NotNil(t, pending)

	deleted := make(chan *domain.Lookup, 1)
	go func() {
		d, err := pg.DeleteLookup(ctx, userID, l.ID)
		if err != nil {
			d = nil
		}
		deleted <- d
	}()

	require.Never(t, func() bool { return len(deleted) > 0 }, 300*time.Millisecond, 20*time.Millisecond)

	name := "Notebook"
	noError := ""
	completed, err := tx.UpdateLookupByID(ctx, l.ID, storage.LookupUpdates{
		Status:     domain.LookupStatusCompleted,
		Outcome:    &domain.LookupOutcome{Code: l.Code, Record: &domain.ProductRecord{Name: &name, Source: "upcitemdb"}},
		LastError:  &noError,
		FromStatus: domain.LookupStatusPending,
	})
	require.NoError(t, err)
	require.NotNil(t, completed)
	require.NoError(t, tx.Commit())

	select {
	case d := <-deleted:
		require.NotNil(t, d)
		require.Equal(t, domain.LookupStatusCompleted, d.Status)
	case <-time.After(5 * time.Second):
		t.Fatal("delete did not finish after commit")
	}
}

func TestPgSQL_UpdateLookupByID_FromStatus(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	l := storePending(t, pg, domain.UserID(uuid.New()), "10012345678902")

	completed, err := pg.UpdateLookupByID(ctx, l.ID, storage.LookupUpdates{
		Status:     domain.LookupStatusCompleted,
		FromStatus: domain.LookupStatusPending,
	})
	require.NoError(t, err)
	require.Equal(t, domain.LookupStatusCompleted, completed.Status)

	msg := "late failure"
	failed, err := pg.UpdateLookupByID(ctx, l.ID, storage.LookupUpdates{
		Status:     domain.LookupStatusFailed,
		LastError:  &msg,
		FromStatus: domain.LookupStatusPending,
	})
	require.NoError(t, err)
	require.Nil(t, failed)

	got, err := pg.LookupByID(ctx, l.UserID, l.ID)
	require.NoError(t, err)
	require.Equal(t, domain.LookupStatusCompleted, got.Status)
	require.Empty(t, got.LastError)
}
