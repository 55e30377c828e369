package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "http://localhost:8080/api", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.NotEmpty(t, cfg.StateDir)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STOREFRONT_API_URL", "https://shop.example.com/api")
	t.Setenv("STOREFRONT_TIMEOUT", "3s")
	t.Setenv("STOREFRONT_STATE_DIR", "/tmp/storefront-test")
	t.Setenv("LOG_FORMAT", "json")

	cfg := Load()
	assert.Equal(t, "https://shop.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "/tmp/storefront-test", cfg.StateDir)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestBadTimeoutFallsBack(t *testing.T) {
	t.Setenv("STOREFRONT_TIMEOUT", "soon")
	assert.Equal(t, 15*time.Second, Load().RequestTimeout)
}
