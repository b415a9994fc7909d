package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds environment-driven configuration.
type Config struct {
	Addr          string
	CatalogAPIURL string
	HTTPTimeout   time.Duration
	LogLevel      string
	LogFormat     string
}

// Load reads configuration from environment variables.
func Load() Config {
	timeout := 30
	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}

	return Config{
		Addr:          getenv("MARKETPLACE_ADDR", ":8080"),
		CatalogAPIURL: getenv("CATALOG_API_URL", "http://localhost:8000"),
		HTTPTimeout:   time.Duration(timeout) * time.Second,
		LogLevel:      getenv("LOG_LEVEL", "info"),
		LogFormat:     getenv("LOG_FORMAT", "console"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
