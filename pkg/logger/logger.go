// Package logger provides a structured logging facility using zap logger.
// It offers context-aware logging capabilities, environment-specific configuration,
// and helper functions for different log levels.
package logger

import (
	"context"
	"log/slog"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

const (
	// DevelopmentEnvironment represents the development environment setting.
	// In this environment, the logger is configured with development settings (more verbose, human-readable).
	DevelopmentEnvironment = "development"

	// ProductionEnvironment represents the production environment setting.
	// In this environment, the logger is configured with production settings (less verbose, JSON format).
	ProductionEnvironment = "production"

	// TestEnvironment discards every log entry.
	TestEnvironment = "test"
)

// Field keys shared by every package so log queries can rely on them.
const (
	SessionIDKey = "sessionID"
	ProviderKey  = "provider"
	CodeKey      = "code"
	LookupIDKey  = "lookupID"
)

// defaultLogger is the package-level logger used when no logger is found in context.
// It starts as a no-op logger so packages stay usable before Setup runs.
var defaultLogger atomic.Pointer[zap.Logger] //nolint: gochecknoglobals

func init() { //nolint: gochecknoinits
	defaultLogger.Store(zap.NewNop())
}

// Setup initializes the default logger based on the environment.
// It configures the logger with appropriate settings for either development or production use.
//
// Parameters:
//   - environment: "development", "production" or "test".
func Setup(environment string) {
	var (
		l   *zap.Logger
		err error
	)
	switch environment {
	case ProductionEnvironment:
		l, err = zap.NewProduction()
	case TestEnvironment:
		l = zap.NewNop()
	default:
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return
	}

	defaultLogger.Store(l)
}

// key is a custom type used as a context key for storing and retrieving logger instances.
type key struct{}

// Get retrieves a logger from the provided context.
// If no logger is found in the context, it returns the default logger.
func Get(ctx context.Context) *zap.Logger {
	if logger, _ := ctx.Value(key{}).(*zap.Logger); logger != nil {
		return logger
	}

	return defaultLogger.Load()
}

// WithLogger creates a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, logger)
}

// WithFields creates a new context with a logger that includes the specified fields.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// WithSession tags every entry logged through ctx with the scan session id.
func WithSession(ctx context.Context, sessionID string) context.Context {
	return WithFields(ctx, zap.String(SessionIDKey, sessionID))
}

// WithProvider tags every entry logged through ctx with the lookup provider name.
func WithProvider(ctx context.Context, name string) context.Context {
	return WithFields(ctx, zap.String(ProviderKey, name))
}

// Slog returns a log/slog logger writing to the zap core carried by ctx.
// Libraries that only accept slog (the job queue) log through it.
func Slog(ctx context.Context) *slog.Logger {
	return slog.New(zapslog.NewHandler(Get(ctx).Core()))
}

// IsDebug checks if the logger in the context is configured at debug level.
func IsDebug(ctx context.Context) bool {
	return Get(ctx).Core().Enabled(zap.DebugLevel)
}

// Debug logs a message at debug level with the given fields.
func Debug(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Debug(msg, fields...)
}

// Info logs a message at info level with the given fields.
func Info(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Info(msg, fields...)
}

// Warn logs a message at warn level with the given fields.
func Warn(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Warn(msg, fields...)
}

// Error logs a message at error level with the given fields.
func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Error(msg, fields...)
}

// Fatal logs a message at fatal level with the given fields.
func Fatal(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Fatal(msg, fields...)
}
