package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Config struct {
	// Base URL of the storefront REST API.
	APIBaseURL string

	// Timeout applied to every outbound request.
	RequestTimeout time.Duration

	// Stripe key used to confirm payment intents issued by the backend.
	StripeAPIKey string

	// Directory holding the persisted session file.
	StateDir string

	LogLevel  string
	LogFormat string
}

func Load() Config {
	cfg := Config{
		APIBaseURL:     getenv("STOREFRONT_API_URL", "http://localhost:8080/api"),
		RequestTimeout: parseDuration(getenv("STOREFRONT_TIMEOUT", "15s"), 15*time.Second),
		StripeAPIKey:   getenv("STRIPE_API_KEY", ""),
		StateDir:       getenv("STOREFRONT_STATE_DIR", defaultStateDir()),
		LogLevel:       getenv("LOG_LEVEL", "warn"),
		LogFormat:      getenv("LOG_FORMAT", "text"),
	}
	return cfg
}

func defaultStateDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".storefront"
	}
	return filepath.Join(base, "storefront")
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
