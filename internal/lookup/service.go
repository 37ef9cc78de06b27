package lookup

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/config"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/domain"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/logger"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/serrors"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/storage"
)

// MaxCodeLength bounds accepted codes; longer input is not a barcode.
const MaxCodeLength = 128

// NormalizeCode trims code and rejects empty or overlong codes with
// serrors.ErrBadRequest.
func NormalizeCode(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", serrors.With(serrors.ErrBadRequest, "code is required")
	}
	if len(code) > MaxCodeLength {
		return "", serrors.With(serrors.ErrBadRequest, "code is longer than %d characters", MaxCodeLength)
	}

	return code, nil
}

// ServiceOptions configure how lookup jobs are enqueued.
type ServiceOptions struct {
	// MaxAttempts is the maximum number of attempts the background worker should
	// make when processing a lookup job before marking it failed.
	MaxAttempts int
}

// NewServiceOptions constructs a ServiceOptions value from the provided application config.
func NewServiceOptions(cfg *config.Config) ServiceOptions {
	return ServiceOptions{
		MaxAttempts: cfg.Worker.MaxAttempts,
	}
}

// service is the concrete implementation of the Service interface.
// It coordinates persistence with the storage layer, job enqueueing and the
// provider chain.
type service struct {
	options  ServiceOptions
	storage  storage.Storage
	resolver Resolver
}

// Enqueue stores a pending lookup and enqueues the background job that will
// resolve it, in one transaction. Every request runs the chain again; results
// of earlier lookups for the same code are not reused.
func (s service) Enqueue(ctx context.Context,
	userID domain.UserID,
	code string,
	format domain.CodeFormat) (*domain.Lookup, error) {
	code, err := NormalizeCode(code)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	if format == "" {
		format = domain.FormatUnknown
	}

	var lookup *domain.Lookup
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StoreLookup(ctx, domain.Lookup{
			UserID:  userID,
			Code:    code,
			Format:  format,
			Status:  domain.LookupStatusPending,
			Outcome: domain.LookupOutcome{Code: code},
		})
		if err != nil {
			return fmt.Errorf("could not store lookup: %w", err)
		}
		lookup = stored

		if _, err := tx.AddJob(ctx, NewJobArgs(stored.ID, s.options.MaxAttempts), nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not enqueue lookup: %w", err)
	}

	return lookup, nil
}

// UserLookups returns a page of lookups for the given user filtered by status.
// It supports cursor-based pagination using an RFC3339 timestamp string and
// returns the next cursor when more results are available.
func (s service) UserLookups(ctx context.Context,
	userID domain.UserID,
	status domain.LookupStatus,
	cursor string,
	limit uint) ([]domain.Lookup, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339Nano, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := s.storage.UserLookups(ctx, userID, status, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user lookups: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339Nano)
	}

	return page.Lookups, next, nil
}

// Result fetches a single lookup by ID for the given user.
func (s service) Result(ctx context.Context, userID domain.UserID, lookupID domain.LookupID) (*domain.Lookup, error) {
	res, err := s.storage.LookupByID(ctx, userID, lookupID)
	if err != nil {
		return nil, fmt.Errorf("could not get lookup: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "lookup not found")
	}

	return res, nil
}

// Delete soft-deletes a lookup belonging to the given user. A queued job for
// it is cancelled by the worker once it sees the lookup is gone.
func (s service) Delete(ctx context.Context, userID domain.UserID, lookupID domain.LookupID) error {
	res, err := s.storage.DeleteLookup(ctx, userID, lookupID)
	if err != nil {
		return fmt.Errorf("could not delete lookup: %w", err)
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "lookup not found")
	}

	return nil
}

// Process resolves a pending lookup. The provider chain runs outside any
// transaction; the outcome is only stored while the lookup is still pending,
// so a lookup deleted or completed meanwhile yields ErrConflict.
func (s service) Process(ctx context.Context, lookupID domain.LookupID) (*domain.Lookup, error) {
	ctx = logger.WithFields(ctx, zap.Stringer(logger.LookupIDKey, lookupID))

	pending, err := s.storage.PendingLookupByID(ctx, lookupID)
	if err != nil {
		return nil, fmt.Errorf("could not get pending lookup: %w", err)
	}
	if pending == nil {
		return nil, serrors.With(serrors.ErrConflict, "lookup is not pending anymore")
	}

	outcome := s.resolver.Resolve(ctx, pending.Code)
	noError := ""
	processed, err := s.storage.UpdateLookupByID(ctx, lookupID, storage.LookupUpdates{
		Status:     domain.LookupStatusCompleted,
		Outcome:    &outcome,
		LastError:  &noError,
		FromStatus: domain.LookupStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store lookup outcome: %w", err)
	}
	if processed == nil {
		return nil, serrors.With(serrors.ErrConflict, "lookup was deleted or completed while resolving")
	}

	logger.Info(ctx, "lookup processed", zap.Bool("found", processed.Outcome.Found()))

	return processed, nil
}

// Fail records cause on a still pending lookup and marks it failed.
func (s service) Fail(ctx context.Context, lookupID domain.LookupID, cause error) error {
	msg := cause.Error()
	if _, err := s.storage.UpdateLookupByID(ctx, lookupID, storage.LookupUpdates{
		Status:     domain.LookupStatusFailed,
		LastError:  &msg,
		FromStatus: domain.LookupStatusPending,
	}); err != nil {
		return fmt.Errorf("could not mark lookup failed: %w", err)
	}

	return nil
}

// NewService creates a new Service backed by the provided storage and resolver.
func NewService(storage storage.Storage, resolver Resolver, options ServiceOptions) Service {
	return &service{
		options:  options,
		storage:  storage,
		resolver: resolver,
	}
}
