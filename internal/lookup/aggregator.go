package lookup

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/domain"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/logger"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/metrics"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/provider"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/serrors"
)

// DefaultProviderTimeout is used when Options.ProviderTimeout is not positive.
const DefaultProviderTimeout = 5 * time.Second

const tracerName = "github.com/ozvarsergen-rgb/qr-scanner-app/internal/lookup"

// ProviderSpec places a provider in the chain. Lower Priority runs first.
type ProviderSpec struct {
	// Name identifies the provider in attempts and as the record source.
	// Defaults to Provider.Name().
	Name     string
	Priority int
	Provider provider.Provider
}

// Options tunes an Aggregator.
type Options struct {
	// ProviderTimeout bounds every single provider call.
	ProviderTimeout time.Duration
	// Metrics records attempts and resolutions. Nil records nothing.
	Metrics *metrics.Lookup
	// Tracer opens one span per provider call. Defaults to the global tracer.
	Tracer trace.Tracer
}

// Registry collects provider specs and builds an Aggregator from them.
type Registry struct {
	specs []ProviderSpec
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends specs in registration order and returns the registry for chaining.
func (r *Registry) Register(specs ...ProviderSpec) *Registry {
	r.specs = append(r.specs, specs...)

	return r
}

// Build validates the registered specs and freezes them into an Aggregator.
// Specs are ordered by Priority; equal priorities keep registration order.
// Nil providers, empty or duplicate names and an empty chain are rejected.
func (r *Registry) Build(options Options) (*Aggregator, error) {
	if len(r.specs) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "no lookup providers registered")
	}

	specs := make([]ProviderSpec, 0, len(r.specs))
	seen := make(map[string]struct{}, len(r.specs))
	for i, spec := range r.specs {
		if spec.Provider == nil {
			return nil, serrors.With(serrors.ErrBadRequest, "provider spec #%d has no provider", i)
		}
		if spec.Name == "" {
			spec.Name = spec.Provider.Name()
		}
		if spec.Name == "" {
			return nil, serrors.With(serrors.ErrBadRequest, "provider spec #%d has no name", i)
		}
		if _, ok := seen[spec.Name]; ok {
			return nil, serrors.With(serrors.ErrBadRequest, "duplicate provider name %q", spec.Name)
		}
		seen[spec.Name] = struct{}{}
		specs = append(specs, spec)
	}
	slices.SortStableFunc(specs, func(a, b ProviderSpec) int {
		return cmp.Compare(a.Priority, b.Priority)
	})

	if options.ProviderTimeout <= 0 {
		options.ProviderTimeout = DefaultProviderTimeout
	}
	if options.Tracer == nil {
		options.Tracer = otel.Tracer(tracerName)
	}

	return &Aggregator{specs: specs, options: options}, nil
}

// Aggregator resolves codes against an ordered provider chain. Providers are
// asked one at a time and the first record wins. It is safe for concurrent use.
type Aggregator struct {
	specs   []ProviderSpec
	options Options
}

// Ensure Aggregator conforms to the Resolver interface at compile time.
var _ Resolver = (*Aggregator)(nil)

// Providers returns the provider names in the order they are asked.
func (a *Aggregator) Providers() []string {
	names := make([]string, len(a.specs))
	for i, spec := range a.specs {
		names[i] = spec.Name
	}

	return names
}

// Resolve walks the chain until a provider returns a record. Empty answers and
// failures are recorded and the next provider is asked. When ctx is done the
// remaining providers are skipped and do not appear in the attempts.
// Resolve never fails; a nil Record with AllFailed distinguishes "lookup
// errored" from "not found".
func (a *Aggregator) Resolve(ctx context.Context, code string) domain.LookupOutcome {
	ctx = logger.WithFields(ctx, zap.String(logger.CodeKey, code))

	outcome := domain.LookupOutcome{
		Code:     code,
		Attempts: make([]domain.Attempt, 0, len(a.specs)),
	}
	for i, spec := range a.specs {
		if err := ctx.Err(); err != nil {
			logger.Warn(ctx, "resolution interrupted, skipping remaining providers",
				zap.Int("skipped", len(a.specs)-i), zap.Error(err))

			break
		}

		attempt, record := a.attempt(ctx, spec, code)
		outcome.Attempts = append(outcome.Attempts, attempt)
		if record != nil {
			outcome.Record = record

			break
		}
	}

	a.options.Metrics.Resolution(ctx, outcome)
	logger.Info(ctx, "code resolved",
		zap.Bool("found", outcome.Found()),
		zap.Bool("allFailed", outcome.AllFailed()),
		zap.Int("attempts", len(outcome.Attempts)))

	return outcome
}

// attempt asks a single provider under its own deadline.
func (a *Aggregator) attempt(ctx context.Context,
	spec ProviderSpec,
	code string) (domain.Attempt, *domain.ProductRecord) {
	ctx = logger.WithProvider(ctx, spec.Name)
	ctx, span := a.options.Tracer.Start(ctx, "lookup.provider",
		trace.WithAttributes(attribute.String("provider", spec.Name)))
	defer span.End()

	callCtx, cancel := context.WithTimeout(ctx, a.options.ProviderTimeout)
	defer cancel()

	start := time.Now()
	record, err := fetch(callCtx, spec.Provider, code)
	attempt := domain.Attempt{Provider: spec.Name, Elapsed: metrics.Since(start)}

	switch {
	case err != nil:
		attempt.Outcome = domain.AttemptFailed
		attempt.ErrorKind = errorKind(callCtx, err)
		attempt.Error = err.Error()
		record = nil

		span.RecordError(err)
		span.SetStatus(codes.Error, string(attempt.ErrorKind))
		logger.Warn(ctx, "provider attempt failed",
			zap.String("errorKind", string(attempt.ErrorKind)),
			zap.Duration("elapsed", attempt.Elapsed),
			zap.Error(err))
	case record == nil:
		attempt.Outcome = domain.AttemptEmpty
		logger.Debug(ctx, "provider does not know the code", zap.Duration("elapsed", attempt.Elapsed))
	default:
		// the chain owns attribution
		stamped := *record
		stamped.Source = spec.Name
		record = &stamped

		attempt.Outcome = domain.AttemptSuccess
		logger.Debug(ctx, "provider returned a record", zap.Duration("elapsed", attempt.Elapsed))
	}

	span.SetAttributes(attribute.String("outcome", string(attempt.Outcome)))
	a.options.Metrics.Attempt(ctx, attempt)

	return attempt, record
}

type fetchResult struct {
	record *domain.ProductRecord
	err    error
}

// fetch calls p and returns as soon as ctx is done, even when p ignores ctx.
// A panicking provider counts as a failed attempt.
func fetch(ctx context.Context, p provider.Provider, code string) (*domain.ProductRecord, error) {
	done := make(chan fetchResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fetchResult{err: serrors.With(serrors.ErrInternal, "provider panicked: %v", r)}
			}
		}()

		record, err := p.Fetch(ctx, code)
		done <- fetchResult{record: record, err: err}
	}()

	select {
	case res := <-done:
		return res.record, res.err
	case <-ctx.Done():
		select {
		case res := <-done:
			return res.record, res.err
		default:
		}

		return nil, fmt.Errorf("provider did not answer in time: %w", ctx.Err())
	}
}

// errorKind maps a provider error onto the kinds recorded in attempts.
// Anything that is neither a timeout nor a decoding failure, rate limiting
// included, counts as a network failure.
func errorKind(ctx context.Context, err error) domain.ProviderErrorKind {
	switch {
	case errors.Is(err, serrors.ErrTimeout),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(ctx.Err(), context.DeadlineExceeded):
		return domain.ProviderErrorTimeout
	case errors.Is(err, serrors.ErrMalformedResponse):
		return domain.ProviderErrorMalformedResponse
	default:
		return domain.ProviderErrorNetwork
	}
}
