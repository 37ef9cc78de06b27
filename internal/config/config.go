// Package config loads the application configuration from a YAML file,
// environment variables and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Provider kinds understood by the lookup registry builder.
const (
	ProviderKindOpenFacts = "offacts"
	ProviderKindUPCItemDB = "upcitemdb"
	ProviderKindHTMLMeta  = "htmlmeta"
)

// Provider configures one entry of the lookup chain. Entries are tried in
// ascending Priority; ties keep their order in the file.
type Provider struct {
	// Name is reported as the record source and in attempts. Must be unique.
	Name string `yaml:"name"`
	// Kind selects the adapter: offacts, upcitemdb or htmlmeta.
	Kind string `yaml:"kind"`
	// Priority orders the chain, lower first.
	Priority int `yaml:"priority"`
	// BaseURL overrides the adapter's default upstream. For htmlmeta it is the
	// page URL template and must contain "{code}".
	BaseURL string `yaml:"baseURL"`
	// APIKey is sent by adapters that support authenticated plans.
	APIKey string `yaml:"apiKey"`
	// NotFoundMarker is matched against the page title by htmlmeta providers.
	NotFoundMarker string `yaml:"notFoundMarker"`
	// Disabled removes the entry from the chain without deleting it.
	Disabled bool `yaml:"disabled"`
}

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// token verification, the lookup chain, background workers, scan sessions and
// graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request.
		// Synchronous resolves run the whole provider chain inside it.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists CORS origins; "*" allows any.
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-default:"*" yaml:"allowedOrigins"`
		// EnablePprof mounts net/http/pprof under /debug/pprof.
		EnablePprof bool `env:"HTTP_ENABLE_PPROF" env-default:"false" yaml:"enablePprof"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"qrscanner" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT holds the RS256 key pair. The public key verifies API bearer tokens,
	// the private key is only needed by the jwt command.
	JWT struct {
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		PublicKey  string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
	} `yaml:"jwt"`

	// Lookup configures the provider chain.
	Lookup struct {
		// ProviderTimeout bounds every single provider call.
		ProviderTimeout time.Duration `env:"LOOKUP_PROVIDER_TIMEOUT" env-default:"5s" yaml:"providerTimeout"`
		// UserAgent is sent to every upstream. Open data upstreams ask for a
		// descriptive one.
		UserAgent string `env:"LOOKUP_USER_AGENT" yaml:"userAgent"`
		// Providers is the ordered chain. When empty the default chain is used.
		Providers []Provider `yaml:"providers"`
	} `yaml:"lookup"`

	// Worker configures background lookup jobs.
	Worker struct {
		// MaxWorkers is the number of lookup jobs processed concurrently.
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"20" yaml:"maxWorkers"`
		// MaxAttempts is how many times a job is tried before the lookup is marked failed.
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
		// ChainsPerSecond caps how many provider chains all workers start per
		// second, keeping the process within upstream fair-use limits.
		ChainsPerSecond float64 `env:"WORKER_CHAINS_PER_SECOND" env-default:"1.5" yaml:"chainsPerSecond"`
	} `yaml:"worker"`

	// Session configures interactive scan sessions.
	Session struct {
		// MaxScansPerSecond throttles frame decoding.
		MaxScansPerSecond float64 `env:"SESSION_MAX_SCANS_PER_SECOND" env-default:"5" yaml:"maxScansPerSecond"`
		// FacingMode is the preferred camera, "environment" (rear) or "user" (front).
		FacingMode string `env:"SESSION_FACING_MODE" env-default:"environment" yaml:"facingMode"`
	} `yaml:"session"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// Variables from a .env file in the working directory are exported first, so
// they take part in the environment override. A missing .env is not an error.
// An empty configPath reads the environment only.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not load .env file: %w", err)
	}

	var cfg Config
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from environment: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
