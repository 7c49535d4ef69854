package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

var (
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is not set")
	ErrMissingJWTSecret   = errors.New("JWT_SECRET is not set")
)

// Config holds environment-driven configuration.
type Config struct {
	Addr             string
	DatabaseURL      string
	JWTSecret        string
	LogLevel         string
	CORSAllowOrigins string
	SeedFile         string

	SessionTTL           time.Duration
	SessionSweepInterval time.Duration

	NotifyOnAddFailure    bool
	NotifyOnRemoveFailure bool

	FavoriteRateLimitRPS   float64
	FavoriteRateLimitBurst int
}

// Load reads configuration from environment variables. Missing or malformed
// values fall back to their defaults.
func Load() Config {
	return Config{
		Addr:             getString("APP_ADDR", ":8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		LogLevel:         getString("LOG_LEVEL", "info"),
		CORSAllowOrigins: getString("CORS_ALLOW_ORIGINS", "*"),
		SeedFile:         getString("SEED_FILE", "seed/catalog.yaml"),

		SessionTTL:           getDuration("SESSION_TTL", 30*time.Minute),
		SessionSweepInterval: getDuration("SESSION_SWEEP_INTERVAL", time.Minute),

		NotifyOnAddFailure:    getBool("FAVORITE_NOTIFY_ON_ADD_FAILURE", false),
		NotifyOnRemoveFailure: getBool("FAVORITE_NOTIFY_ON_REMOVE_FAILURE", true),

		FavoriteRateLimitRPS:   getFloat("FAVORITE_RATE_LIMIT_RPS", 5),
		FavoriteRateLimitBurst: getInt("FAVORITE_RATE_LIMIT_BURST", 10),
	}
}

// Validate reports settings the Postgres entry point cannot start without.
func (c Config) Validate() error {
	var errs []error
	if c.DatabaseURL == "" {
		errs = append(errs, ErrMissingDatabaseURL)
	}
	if c.JWTSecret == "" {
		errs = append(errs, ErrMissingJWTSecret)
	}
	return errors.Join(errs...)
}

func getString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func getBool(key string, def bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return b
}

func getInt(key string, def int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func getFloat(key string, def float64) float64 {
	f, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || f <= 0 {
		return def
	}
	return f
}
