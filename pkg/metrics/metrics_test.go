package metrics_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/domain"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/metrics"
)

func TestNilLookupIsNoop(t *testing.T) {
	var l *metrics.Lookup

	require.NotPanics(t, func() {
		l.Attempt(context.Background(), domain.Attempt{Provider: "a"})
		l.Resolution(context.Background(), domain.LookupOutcome{})
	})
}

func TestLookupWithNoopProvider(t *testing.T) {
	l, err := metrics.NewLookup(noop.NewMeterProvider())
	require.NoError(t, err)

	require.NotPanics(t, func() {
		l.Attempt(context.Background(), domain.Attempt{
			Provider: "openfoodfacts",
			Outcome:  domain.AttemptSuccess,
			Elapsed:  20 * time.Millisecond,
		})
	})
}

func TestLookupExportsToPrometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	l, err := metrics.NewLookup(mp)
	require.NoError(t, err)

	ctx := context.Background()
	l.Attempt(ctx, domain.Attempt{Provider: "upcitemdb", Outcome: domain.AttemptEmpty, Elapsed: time.Millisecond})
	l.Resolution(ctx, domain.LookupOutcome{Attempts: []domain.Attempt{{Outcome: domain.AttemptEmpty}}})

	families, err := reg.Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	require.True(t, names["lookup_provider_attempts_total"], "got %v", names)
	require.True(t, names["lookup_resolutions_total"], "got %v", names)
}

func TestSinceTruncates(t *testing.T) {
	d := metrics.Since(time.Now().Add(-1500 * time.Microsecond))
	require.Equal(t, time.Duration(0), d%time.Millisecond)
}
