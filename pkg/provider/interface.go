// Package provider defines the capability every external product data source
// implements, plus the normalization and HTTP plumbing the adapters share.
// Adapters live in sub-packages, one per upstream response shape.
package provider

import (
	"context"

	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/domain"
)

// Provider resolves a barcode into a product record.
//
// Fetch returns (nil, nil) when the upstream answered but does not know the
// code. Any error means the attempt failed; adapters tag errors with
// serrors.ErrTimeout, serrors.ErrNetwork or serrors.ErrMalformedResponse.
// A returned record's Source equals Name().
//
//go:generate mockgen -package mockprovider -source=interface.go -destination=mock/mockprovider.go *
type Provider interface {
	// Name is the stable identifier used as ProductRecord.Source.
	Name() string
	// Fetch looks the code up upstream.
	Fetch(ctx context.Context, code string) (*domain.ProductRecord, error)
}
