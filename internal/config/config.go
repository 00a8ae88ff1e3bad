// Package config loads runtime configuration from the environment via
// envconfig struct tags. Local development overrides come from a .env
// file loaded in main before Load runs.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Store backends selectable through STORE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Config holds every runtime setting of the portal.
type Config struct {
	Port string `envconfig:"PORT" default:"8080"`

	// memory serves the seeded fixture; postgres expects DATABASE_URL.
	StoreBackend string `envconfig:"STORE_BACKEND" default:"memory"`
	DatabaseURL  string `envconfig:"DATABASE_URL"`

	JWTSecret     string `envconfig:"JWT_SECRET"`
	JWTIssuer     string `envconfig:"JWT_ISSUER" default:"motionmatrix-portal"`
	JWTTTLMinutes int    `envconfig:"JWT_TTL_MINUTES" default:"60"`

	CORSOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	// Directory holding the durable session copy used by the console
	// portal. Empty means the user config dir.
	SessionDir string `envconfig:"SESSION_DIR"`

	// Cosmetic screen-transition pause; zero disables staging.
	TransitionDelayMS int `envconfig:"TRANSITION_DELAY_MS" default:"0"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the environment and validates the combination of settings.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects setting combinations the server cannot start with.
func (c Config) Validate() error {
	switch c.StoreBackend {
	case BackendMemory:
	case BackendPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return errors.New("DATABASE_URL is required when STORE_BACKEND=postgres")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}
	if strings.TrimSpace(c.JWTSecret) == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.JWTTTLMinutes <= 0 {
		return errors.New("JWT_TTL_MINUTES must be > 0")
	}
	if c.TransitionDelayMS < 0 {
		return errors.New("TRANSITION_DELAY_MS must be >= 0")
	}
	return nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// JWTTTL returns the token lifetime as a duration.
func (c Config) JWTTTL() time.Duration {
	return time.Duration(c.JWTTTLMinutes) * time.Minute
}

// TransitionDelay returns the staged-transition pause as a duration.
func (c Config) TransitionDelay() time.Duration {
	return time.Duration(c.TransitionDelayMS) * time.Millisecond
}
