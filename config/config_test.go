package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var managedKeys = []string{
	"PORT", "RATE_LIMIT", "RATE_WINDOW", "REQUEST_TIMEOUT", "CORS_ORIGINS",
	"LOG_LEVEL", "LOG_PRETTY", "CACHE_SIZE", "CACHE_TTL", "CACHE_SHARDS",
	"BASE_PRICE", "AUTH_ENABLED", "API_KEYS", "JWT_SECRET_KEY", "JWT_ISSUER",
	"JWT_TOKEN_TTL", "MONGODB_ENABLED", "MONGODB_DATABASE",
}

// cleanEnv blanks every variable Load reads and points ENV_FILE at nothing.
func cleanEnv(t *testing.T) {
	t.Helper()
	for _, k := range managedKeys {
		t.Setenv(k, "")
	}
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
}

func TestLoad_Defaults(t *testing.T) {
	cleanEnv(t)

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"http://localhost:5173", "http://127.0.0.1:5173"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
	assert.Equal(t, 10000, cfg.Cache.Size)
	assert.Equal(t, 30*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 16, cfg.Cache.Shards)
	assert.Equal(t, 120, cfg.Pricing.BasePrice)
	assert.False(t, cfg.Auth.Enabled)
	assert.Nil(t, cfg.Auth.APIKeys)
	assert.Equal(t, "coffee-builder", cfg.Auth.JWTIssuer)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "coffee_builder", cfg.Database.DatabaseName)
}

func TestLoad_FromEnvironment(t *testing.T) {
	cleanEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT", "50")
	t.Setenv("RATE_WINDOW", "30s")
	t.Setenv("REQUEST_TIMEOUT", "2s")
	t.Setenv("CORS_ORIGINS", " https://shop.example.com , ")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_PRETTY", "true")
	t.Setenv("CACHE_SIZE", "500")
	t.Setenv("CACHE_TTL", "10m")
	t.Setenv("CACHE_SHARDS", "4")
	t.Setenv("BASE_PRICE", "150")
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("API_KEYS", " key1 , key2 ,")
	t.Setenv("JWT_SECRET_KEY", "s3cret")
	t.Setenv("JWT_TOKEN_TTL", "15m")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 50, cfg.Server.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
	assert.Equal(t, 2*time.Second, cfg.Server.RequestTimeout)
	assert.Contains(t, cfg.Server.CORSOrigins, "https://shop.example.com")
	assert.Len(t, cfg.Server.CORSOrigins, 3)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
	assert.Equal(t, 500, cfg.Cache.Size)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 4, cfg.Cache.Shards)
	assert.Equal(t, 150, cfg.Pricing.BasePrice)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, map[string]bool{"key1": true, "key2": true}, cfg.Auth.APIKeys)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecretKey)
	assert.Equal(t, 15*time.Minute, cfg.Auth.TokenTTL)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	cleanEnv(t)
	t.Setenv("RATE_LIMIT", "many")
	t.Setenv("AUTH_ENABLED", "sometimes")
	t.Setenv("RATE_WINDOW", "soon")
	t.Setenv("BASE_PRICE", "1.20")

	cfg := Load()

	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	assert.Equal(t, 120, cfg.Pricing.BasePrice)
}

func TestLoad_EnvFile(t *testing.T) {
	cleanEnv(t)

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("COFFEE_TEST_ONLY=from-file\nPORT=7070\n"), 0o600))
	t.Setenv("ENV_FILE", path)
	t.Setenv("PORT", "9999")
	t.Cleanup(func() { _ = os.Unsetenv("COFFEE_TEST_ONLY") })

	cfg := Load()

	assert.Equal(t, "from-file", os.Getenv("COFFEE_TEST_ONLY"))
	assert.Equal(t, "9999", cfg.Server.Port, "environment wins over the file")
}

func TestAuthConfig_KeyList(t *testing.T) {
	tests := []struct {
		name string
		keys map[string]bool
		want []string
	}{
		{name: "no keys", keys: nil, want: nil},
		{name: "sorted", keys: map[string]bool{"zeta": true, "alpha": true}, want: []string{"alpha", "zeta"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AuthConfig{APIKeys: tt.keys}.KeyList())
		})
	}
}
