package main

import (
	"os"
	"time"
)

// Config holds all configuration for the terminal service.
type Config struct {
	Port            string
	Env             string
	RedisURL        string
	Currency        string
	Locale          string
	CatalogCacheTTL time.Duration
}

// LoadConfig reads configuration from environment variables. Postgres
// credentials are read by the database package itself.
func LoadConfig() *Config {
	return &Config{
		Port:            getEnv("PORT", "8090"),
		Env:             getEnv("ENV", "development"),
		RedisURL:        getEnv("REDIS_URL", "redis://localhost:6379"),
		Currency:        getEnv("POS_CURRENCY", "CZK"),
		Locale:          getEnv("POS_LOCALE", "cs-CZ"),
		CatalogCacheTTL: getDurationEnv("CATALOG_CACHE_TTL", 5*time.Minute),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
