package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// insecureJWTSecret is only acceptable outside production.
const insecureJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// ErrInsecureJWTSecret is returned when production would sign admin tokens with the built-in key.
var ErrInsecureJWTSecret = errors.New("JWT_SECRET must be set to a non-default value in production")

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string
	JWTSecret      string

	// BusinessID selects the business_configs row whose base currency anchors all conversions.
	BusinessID string
	// SnapshotCacheTTL is how long a pricing snapshot is reused; zero disables caching.
	SnapshotCacheTTL time.Duration

	// PricingRateLimit is a ulule/limiter formatted rate for the public pricing routes, e.g. "300-M".
	PricingRateLimit   string
	CORSAllowedOrigins []string

	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("BUSINESS_ID", "default")
	v.SetDefault("SNAPSHOT_CACHE_TTL", "30s")
	v.SetDefault("PRICING_RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:      v.GetString("PGSQL_URL"),
		Port:             v.GetString("PORT"),
		IsProduction:     v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:    v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:   v.GetString("MIGRATIONS_PATH"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		BusinessID:       v.GetString("BUSINESS_ID"),
		PricingRateLimit: v.GetString("PRICING_RATE_LIMIT"),
		PosthogAPIKey:    v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:  v.GetString("POSTHOG_ENDPOINT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.IsProduction && (cfg.JWTSecret == "" || cfg.JWTSecret == insecureJWTSecret) {
		return nil, ErrInsecureJWTSecret
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = insecureJWTSecret
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if cfg.BusinessID == "" {
		cfg.BusinessID = "default"
		log.Printf("Warning: BUSINESS_ID not set. Defaulting to %s.\n", cfg.BusinessID)
	}

	ttlStr := v.GetString("SNAPSHOT_CACHE_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil || ttl < 0 {
		ttl = 30 * time.Second
		log.Printf("Warning: Invalid value for SNAPSHOT_CACHE_TTL ('%s'). Defaulting to %s.\n", ttlStr, ttl)
	}
	cfg.SnapshotCacheTTL = ttl

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
