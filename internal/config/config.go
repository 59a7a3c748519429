// Package config loads server settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the server reads at startup.
type Config struct {
	Port int

	// DBDriver is "sqlite" or "postgres".
	DBDriver string
	// DBDSN is a file path for sqlite and a connection URL for postgres.
	DBDSN string

	// RedisAddr empty disables the balance cache.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	CacheTTL       time.Duration
	CacheOpTimeout time.Duration

	JWTSecret         string
	AccessTokenExpiry time.Duration

	LogLevel  string
	LogFormat string
}

// CacheEnabled reports whether a Redis address was configured.
func (c *Config) CacheEnabled() bool {
	return c.RedisAddr != ""
}

// Load reads .env files (if any) and then the process environment.
// Variables already set in the environment take precedence over .env values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return fromEnv()
}

func fromEnv() (*Config, error) {
	var errs []error

	cfg := &Config{
		Port:          getEnvInt("PORT", 8080, &errs),
		DBDriver:      strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0, &errs),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
	}

	cfg.CacheTTL = time.Duration(getEnvInt("CACHE_EXPIRATION_SECONDS", 300, &errs)) * time.Second
	cfg.CacheOpTimeout = time.Duration(getEnvInt("CACHE_OP_TIMEOUT_MS", 250, &errs)) * time.Millisecond
	cfg.AccessTokenExpiry = time.Duration(getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 24*60, &errs)) * time.Minute

	switch cfg.DBDriver {
	case "sqlite":
		cfg.DBDSN = getEnv("DB_PATH", "./data/ledger.db")
	case "postgres":
		cfg.DBDSN = getEnv("DATABASE_URL", "")
		if cfg.DBDSN == "" {
			errs = append(errs, errors.New("DATABASE_URL is required when DB_DRIVER=postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver))
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", cfg.Port))
	}
	if cfg.CacheTTL <= 0 {
		errs = append(errs, errors.New("CACHE_EXPIRATION_SECONDS must be positive"))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int, errs *[]error) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %q is not an integer", key, value))
		return fallback
	}
	return n
}
