package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first; it never overrides variables that are
// already set.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	cfg.APIBaseURL = getEnv("QUICKSERVE_API_URL", cfg.APIBaseURL)
	cfg.SessionDBPath = getEnv("QUICKSERVE_SESSION_DB", cfg.SessionDBPath)
	cfg.SessionKey = getEnv("QUICKSERVE_SESSION_KEY", cfg.SessionKey)
	cfg.RequestTimeout = getEnvDuration("QUICKSERVE_REQUEST_TIMEOUT", cfg.RequestTimeout)
	cfg.LogLevel = getEnv("QUICKSERVE_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("QUICKSERVE_LOG_FORMAT", cfg.LogFormat)
	cfg.MetricsAddr = getEnv("QUICKSERVE_METRICS_ADDR", cfg.MetricsAddr)
	cfg.OTLPEndpoint = getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.OTLPEndpoint)
	cfg.OTLPInsecure = getEnvBool("OTEL_EXPORTER_OTLP_INSECURE", cfg.OTLPInsecure)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
