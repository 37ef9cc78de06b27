package serrors_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/serrors"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrInternal,
		serrors.ErrTimeout,
		serrors.ErrNetwork,
		serrors.ErrMalformedResponse,
		serrors.ErrRateLimited,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}

	require.NotEqual(t, serrors.ErrNetwork, serrors.ErrTimeout)
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("connection refused")

	e1 := serrors.With(serrors.ErrNotFound, "lookup %d not found", 42)
	require.Equal(t, "lookup 42 not found", e1.Error())

	e2 := serrors.Wrap(serrors.ErrNetwork, base, "fetching product")
	require.Equal(t, "fetching product: connection refused", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrMalformedResponse)
	require.Equal(t, "MALFORMED_RESPONSE", e3.Error())

	var nilErr *serrors.Error
	require.Equal(t, "<nil>", nilErr.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrTimeout, base, "reading")

	require.ErrorIs(t, e, serrors.ErrTimeout)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrNetwork)

	wrapped := fmt.Errorf("outer: %w", serrors.Wrap(serrors.ErrTimeout, context.DeadlineExceeded, "provider"))
	require.ErrorIs(t, wrapped, serrors.ErrTimeout)
	require.ErrorIs(t, wrapped, context.DeadlineExceeded)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	require.Nil(t, serrors.KindOf(nil))
	require.Nil(t, serrors.KindOf(errors.New("plain")))
	require.Equal(t, serrors.ErrConflict, serrors.KindOf(serrors.With(serrors.ErrConflict, "busy")))

	wrapped := fmt.Errorf("start: %w", serrors.With(serrors.ErrConflict, "busy"))
	require.Equal(t, serrors.ErrConflict, serrors.KindOf(wrapped))
}
