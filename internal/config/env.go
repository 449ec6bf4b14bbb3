package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort           = "8080"
	defaultBackendURL     = "http://localhost:8000"
	defaultBaseURL        = "http://localhost:8080"
	defaultRateLimit      = "120-M"
	defaultBackendTimeout = 30 * time.Second
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	return FromLookup(os.Getenv)
}

// builds a Config from any getenv-style lookup
func FromLookup(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Port:               withDefault(getenv("PORT"), defaultPort),
		Environment:        withDefault(getenv("ENVIRONMENT"), "development"),
		BaseURL:            strings.TrimRight(withDefault(getenv("BASE_URL"), defaultBaseURL), "/"),
		BackendURL:         strings.TrimRight(withDefault(getenv("SOLARI_BACKEND_URL"), defaultBackendURL), "/"),
		InternalKey:        getenv("SOLARI_INTERNAL_KEY"),
		JWTSecret:          getenv("JWT_SECRET"),
		SessionSecret:      getenv("SESSION_SECRET"),
		DocstoreDriver:     strings.ToLower(withDefault(getenv("DOCSTORE_DRIVER"), DriverMemory)),
		RedisURL:           getenv("REDIS_URL"),
		DatabaseURL:        getenv("DATABASE_URL"),
		RateLimit:          withDefault(getenv("RATE_LIMIT"), defaultRateLimit),
		AccessFailPolicy:   strings.ToLower(withDefault(getenv("ACCESS_FAIL_POLICY"), FailOpen)),
		GoogleClientID:     getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: getenv("GOOGLE_CLIENT_SECRET"),
		BackendTimeout:     defaultBackendTimeout,
	}

	// the internal key is attached to almost every backend call, so a
	// missing value is a startup error rather than a per-request one
	if cfg.InternalKey == "" {
		return nil, fmt.Errorf("SOLARI_INTERNAL_KEY environment variable is required")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is required")
	}

	if raw := getenv("BACKEND_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("BACKEND_TIMEOUT must be a positive duration, got %q", raw)
		}
		cfg.BackendTimeout = d
	}

	switch cfg.DocstoreDriver {
	case DriverMemory:
	case DriverRedis:
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("REDIS_URL environment variable is required for the redis docstore")
		}
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable is required for the postgres docstore")
		}
	default:
		return nil, fmt.Errorf("unknown DOCSTORE_DRIVER %q", cfg.DocstoreDriver)
	}

	if cfg.AccessFailPolicy != FailOpen && cfg.AccessFailPolicy != FailClosed {
		return nil, fmt.Errorf("ACCESS_FAIL_POLICY must be %q or %q", FailOpen, FailClosed)
	}

	if origins := getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
			}
		}
	}

	return cfg, nil
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
