package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all service settings, sourced from the environment.
type Config struct {
	Host                  string
	Port                  string
	UserAgent             string
	DefaultAcceptLanguage string
	FxEndpoint            string
	FxCacheTTL            time.Duration
	FetchTimeout          time.Duration
	RateLimitPerSecond    float64
}

// Load reads the configuration from environment variables, falling back to
// sensible defaults for local development.
func Load() *Config {
	return &Config{
		Host:                  getEnv("HOST", "0.0.0.0"),
		Port:                  getEnv("PORT", "8080"),
		UserAgent:             getEnv("APP_STORE_USER_AGENT", ""),
		DefaultAcceptLanguage: getEnv("DEFAULT_ACCEPT_LANGUAGE", "en-US"),
		FxEndpoint:            getEnv("FX_ENDPOINT", ""),
		FxCacheTTL:            getEnvDuration("FX_CACHE_TTL", time.Hour),
		FetchTimeout:          getEnvDuration("FETCH_TIMEOUT", 30*time.Second),
		RateLimitPerSecond:    getEnvFloat("RATE_LIMIT_PER_SECOND", 5),
	}
}

// getEnv gets an environment variable with a fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvFloat gets a float environment variable with a fallback
func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

// getEnvDuration gets a duration environment variable with a fallback
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
