// Package main provides the CLI entrypoint for the code scanner service.
// It wires subcommands (serve, migrate, jwt, lookup, classify, scan), loads
// configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/config"
	"github.com/ozvarsergen-rgb/qr-scanner-app/internal/lookup"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/logger"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/metrics"
	"github.com/ozvarsergen-rgb/qr-scanner-app/pkg/storage/postgres"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getAggregator builds the provider chain from configuration. Instruments are
// created on mp when it is not nil.
func getAggregator(ctx context.Context, cfg *config.Config, mp metric.MeterProvider) *lookup.Aggregator {
	registry, err := lookup.RegistryFromConfig(cfg, &http.Client{})
	if err != nil {
		logger.Fatal(ctx, "invalid lookup provider configuration", zap.Error(err))
	}

	var m *metrics.Lookup
	if mp != nil {
		if m, err = metrics.NewLookup(mp); err != nil {
			logger.Fatal(ctx, "could not create lookup metrics", zap.Error(err))
		}
	}

	agg, err := registry.Build(lookup.Options{
		ProviderTimeout: cfg.Lookup.ProviderTimeout,
		Metrics:         m,
	})
	if err != nil {
		logger.Fatal(ctx, "could not build provider chain", zap.Error(err))
	}
	logger.Debug(ctx, "provider chain ready", zap.Strings("providers", agg.Providers()))

	return agg
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:           "qrscanner",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.SetOutput(new(nopWriter))
	configPath := flags.String("c", "config.yml", "The config file path")
	// subcommand flags are unknown here; only a leading -c is picked up
	_ = flags.Parse(os.Args[1:])

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		serveCommand(cfg),
		migrateCommand(cfg),
		JWTCommand(cfg),
		lookupCommand(cfg),
		classifyCommand(),
		scanCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
