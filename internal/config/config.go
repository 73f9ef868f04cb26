// Package config loads process-wide configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds every setting the service reads. It is loaded once at
// startup and read-only afterwards.
type Config struct {
	Addr   string
	WebDir string

	DatabaseURL string

	// SessionSecret signs session tokens. Rotating it invalidates every
	// outstanding session.
	SessionSecret string
	SessionTTL    time.Duration
	BcryptCost    int

	// OAuth/OIDC login. SSO stays disabled unless both client id and
	// secret are set.
	OIDCIssuer        string
	OAuthClientID     string
	OAuthClientSecret string
	OAuthRedirectURL  string
}

// Load reads configuration from the environment, consulting a .env file
// when present, and validates the required settings.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:   getEnv("ADDR", ":8080"),
		WebDir: getEnv("WEB_DIR", "web"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionTTL:    getEnvAsDuration("SESSION_TTL", 24*time.Hour),
		BcryptCost:    getEnvAsInt("BCRYPT_COST", bcrypt.DefaultCost),

		OIDCIssuer:        getEnv("OIDC_ISSUER", "https://accounts.google.com"),
		OAuthClientID:     os.Getenv("OAUTH_CLIENT_ID"),
		OAuthClientSecret: os.Getenv("OAUTH_CLIENT_SECRET"),
		OAuthRedirectURL:  getEnv("OAUTH_REDIRECT_URL", "http://localhost:8080/api/auth/sso/callback"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first missing or unusable required setting.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}

// SSOEnabled reports whether the OAuth login path is configured.
func (c *Config) SSOEnabled() bool {
	return c.OAuthClientID != "" && c.OAuthClientSecret != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
