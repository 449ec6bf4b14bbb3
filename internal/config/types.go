package config

import (
	"strings"
	"time"
)

type Config struct {
	Port               string
	Environment        string
	BaseURL            string
	BackendURL         string
	InternalKey        string
	BackendTimeout     time.Duration
	JWTSecret          string
	SessionSecret      string
	DocstoreDriver     string
	RedisURL           string
	DatabaseURL        string
	RateLimit          string
	CORSAllowedOrigins []string
	AccessFailPolicy   string
	GoogleClientID     string
	GoogleClientSecret string
}

// document store drivers
const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// access gate read-error policies
const (
	FailOpen   = "open"
	FailClosed = "closed"
)

// reports whether OAuth login can be offered
func (c *Config) LoginEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// cookies are marked Secure when served over https
func (c *Config) SecureCookies() bool {
	return strings.HasPrefix(c.BaseURL, "https://")
}
