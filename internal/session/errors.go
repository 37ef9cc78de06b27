package session

import (
	"context"
	"errors"

	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/domain"
)

// CameraErrorFrom maps an acquisition error to the CameraError shown to the
// user. Errors that already are a CameraError are kept as they are.
func CameraErrorFrom(err error) *domain.CameraError {
	var camErr *domain.CameraError
	if errors.As(err, &camErr) {
		return camErr
	}

	kind := domain.CameraUnknown
	switch {
	case errors.Is(err, ErrPermissionDenied):
		kind = domain.CameraPermissionDenied
	case errors.Is(err, ErrDeviceNotFound):
		kind = domain.CameraDeviceNotFound
	case errors.Is(err, ErrDeviceBusy):
		kind = domain.CameraDeviceBusy
	case errors.Is(err, ErrConstraintsUnsupported):
		kind = domain.CameraConstraintsUnsupported
	case errors.Is(err, ErrUnsupported), errors.Is(err, domain.ErrInsecureContext):
		kind = domain.CameraUnsupported
	case errors.Is(err, context.DeadlineExceeded):
		kind = domain.CameraDeviceBusy
	}

	return &domain.CameraError{Kind: kind, Cause: err}
}
