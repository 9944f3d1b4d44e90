package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration, loaded from environment variables.
// The admin credentials default to known development placeholders and must be
// overridden in any real deployment.
type Config struct {
	// DatabaseURL selects the Postgres backend when non-empty.
	// When empty the server falls back to a local SQLite file.
	DatabaseURL string `env:"DATABASE_URL"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"prefiction.db"`

	Port int `env:"PORT" envDefault:"3000"`

	AdminAPIKey string `env:"ADMIN_API_KEY" envDefault:"dev-secret"`
	// AdminPassword may be either a plaintext secret or a bcrypt hash.
	AdminPassword string `env:"ADMIN_PANEL_PASSWORD" envDefault:"admin1234"`

	Env string `env:"ENV" envDefault:"development"`

	// StaticDir serves the site files when set; the API works without it.
	StaticDir string `env:"STATIC_DIR"`

	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*"`

	// ContactRateLimit caps POST /api/contact requests per minute per IP.
	ContactRateLimit int `env:"CONTACT_RATE_LIMIT" envDefault:"30"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"INFO"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Production reports whether the server runs with production hardening
// (currently: the Secure attribute on the admin session cookie).
func (c *Config) Production() bool {
	return c.Env == "production"
}
