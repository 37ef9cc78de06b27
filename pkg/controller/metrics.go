package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/ozvarsergen-rgb/qr-scanner-app/http"

// WithMetrics returns a router middleware counting requests and their latency
// by route template, method and status code. Routes are labelled by template
// ("/v1/lookups/{id}") so ids do not blow up cardinality.
func WithMetrics(mp metric.MeterProvider) (mux.MiddlewareFunc, error) {
	meter := mp.Meter(meterName)

	requests, err := meter.Int64Counter("http_server_requests",
		metric.WithDescription("HTTP requests served, by route, method and status."))
	if err != nil {
		return nil, fmt.Errorf("could not create requests counter: %w", err)
	}
	latency, err := meter.Float64Histogram("http_server_duration",
		metric.WithDescription("HTTP request latency."),
		metric.WithUnit("s"))
	if err != nil {
		return nil, fmt.Errorf("could not create latency histogram: %w", err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			route := "unmatched"
			if current := mux.CurrentRoute(r); current != nil {
				if tpl, err := current.GetPathTemplate(); err == nil {
					route = tpl
				}
			}
			attrs := metric.WithAttributes(
				attribute.String("route", route),
				attribute.String("method", r.Method),
				attribute.String("status", strconv.Itoa(rec.status)),
			)
			requests.Add(r.Context(), 1, attrs)
			latency.Record(r.Context(), time.Since(start).Seconds(), attrs)
		})
	}, nil
}
