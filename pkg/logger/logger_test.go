package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/logger"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
	}{
		{name: "development", environment: logger.DevelopmentEnvironment},
		{name: "production", environment: logger.ProductionEnvironment},
		{name: "test", environment: logger.TestEnvironment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				logger.Setup(tt.environment)
			})
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestGet(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx), "should return default logger when context has no logger")

	customLogger, _ := zap.NewDevelopment()
	require.Equal(t, customLogger, logger.Get(logger.WithLogger(ctx, customLogger)))
}

func observed(level zapcore.Level) (context.Context, *observer.ObservedLogs) {
	core, logs := observer.New(level)

	return logger.WithLogger(context.Background(), zap.New(core)), logs
}

func TestWithSessionAndProvider(t *testing.T) {
	ctx, logs := observed(zap.DebugLevel)

	ctx = logger.WithSession(ctx, "s-1")
	ctx = logger.WithProvider(ctx, "openfoodfacts")
	logger.Info(ctx, "attempt")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "s-1", fields[logger.SessionIDKey])
	require.Equal(t, "openfoodfacts", fields[logger.ProviderKey])
}

func TestIsDebug(t *testing.T) {
	debugCtx, _ := observed(zap.DebugLevel)
	require.True(t, logger.IsDebug(debugCtx))

	infoCtx, _ := observed(zap.InfoLevel)
	require.False(t, logger.IsDebug(infoCtx))
}

func TestLoggingFunctions(t *testing.T) {
	ctx, logs := observed(zap.DebugLevel)

	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message")

	require.Equal(t, 4, logs.Len())
	require.Equal(t, zap.ErrorLevel, logs.All()[3].Level)
}

func TestSlogWritesToZapCore(t *testing.T) {
	ctx, logs := observed(zap.DebugLevel)

	logger.Slog(ctx).Info("from slog", "queue", "default")

	require.Equal(t, 1, logs.FilterMessage("from slog").Len())
}
