package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTSecret                  string
	JWTExpiryDuration          time.Duration
	JWTIssuer                  string
	RefreshTokenExpiryDuration time.Duration

	PosthogAPIKey   string
	PosthogEndpoint string

	CORSAllowedOrigins []string
	RateLimit          string // ulule/limiter format, e.g. "100-M"
	AuthRateLimit      string

	DefaultRulesetVersion string // empty keeps the embedded default
	MigrationsPath        string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// A missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", true)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "sme-tax-estimator")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY_DURATION", "168h")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("AUTH_RATE_LIMIT", "5-M")
	viper.SetDefault("DEFAULT_RULESET_VERSION", "")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")

	viper.AutomaticEnv()

	jwtExpiry, err := parseDuration("JWT_EXPIRY_DURATION", time.Hour)
	if err != nil {
		return nil, err
	}
	refreshExpiry, err := parseDuration("REFRESH_TOKEN_EXPIRY_DURATION", 7*24*time.Hour)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DatabaseURL:                viper.GetString("PGSQL_URL"),
		Port:                       viper.GetString("PORT"),
		IsProduction:               viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:              viper.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:                  viper.GetString("JWT_SECRET"),
		JWTExpiryDuration:          jwtExpiry,
		JWTIssuer:                  viper.GetString("JWT_ISSUER"),
		RefreshTokenExpiryDuration: refreshExpiry,
		PosthogAPIKey:              viper.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:            viper.GetString("POSTHOG_ENDPOINT"),
		CORSAllowedOrigins:         splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		RateLimit:                  viper.GetString("RATE_LIMIT"),
		AuthRateLimit:              viper.GetString("AUTH_RATE_LIMIT"),
		DefaultRulesetVersion:      strings.TrimSpace(viper.GetString("DEFAULT_RULESET_VERSION")),
		MigrationsPath:             viper.GetString("MIGRATIONS_PATH"),
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret
		slog.Warn("JWT_SECRET not set, using default insecure key")
	}

	return cfg, nil
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(viper.GetString(key))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
