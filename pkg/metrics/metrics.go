// Package metrics holds the OpenTelemetry instruments of the lookup pipeline
// and the wiring that exports them to Prometheus.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/domain"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

const meterName = "github.com/ozvarsergen-rgb/qr-scanner-app/lookup"

// NewMeterProvider returns a meter provider whose instruments are exported
// through the given Prometheus registerer.
func NewMeterProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// Lookup records provider attempts and whole-chain resolutions.
// A nil *Lookup is valid and records nothing.
type Lookup struct {
	attempts    metric.Int64Counter
	latency     metric.Float64Histogram
	resolutions metric.Int64Counter
}

// NewLookup creates the lookup instruments on the given meter provider.
func NewLookup(mp metric.MeterProvider) (*Lookup, error) {
	meter := mp.Meter(meterName)

	attempts, err := meter.Int64Counter("lookup_provider_attempts",
		metric.WithDescription("Provider calls made while resolving codes, by provider and outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create attempts counter: %w", err)
	}
	latency, err := meter.Float64Histogram("lookup_provider_duration",
		metric.WithDescription("Provider call latency."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create latency histogram: %w", err)
	}
	resolutions, err := meter.Int64Counter("lookup_resolutions",
		metric.WithDescription("Completed provider chain runs, by result."))
	if err != nil {
		return nil, fmt.Errorf("could not create resolutions counter: %w", err)
	}

	return &Lookup{attempts: attempts, latency: latency, resolutions: resolutions}, nil
}

// Attempt records one provider call.
func (l *Lookup) Attempt(ctx context.Context, a domain.Attempt) {
	if l == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("provider", a.Provider),
		attribute.String("outcome", string(a.Outcome)),
		attribute.String("error_kind", string(a.ErrorKind)),
	)
	l.attempts.Add(ctx, 1, attrs)
	l.latency.Record(ctx, a.Elapsed.Seconds(), metric.WithAttributes(attribute.String("provider", a.Provider)))
}

// Resolution records a finished chain run.
func (l *Lookup) Resolution(ctx context.Context, o domain.LookupOutcome) {
	if l == nil {
		return
	}

	result := "not_found"
	switch {
	case o.Found():
		result = "found"
	case o.AllFailed():
		result = "errored"
	}
	l.resolutions.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}

// Since is a small helper returning the elapsed time since start, truncated
// to the millisecond so recorded attempts stay readable.
func Since(start time.Time) time.Duration {
	return time.Since(start).Truncate(time.Millisecond)
}
