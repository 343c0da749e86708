//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/guttosm/coffee-builder/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeRouter(t *testing.T) {
	cfg := config.Config{
		Server: config.ServerConfig{
			RateLimit:      50,
			RateWindow:     time.Minute,
			RequestTimeout: 3 * time.Second,
			CORSOrigins:    []string{"http://localhost:5173"},
			SwaggerUser:    "docs",
			SwaggerPass:    "secret",
		},
		Auth: config.AuthConfig{
			Enabled:      true,
			APIKeys:      map[string]bool{"b": true, "a": true},
			JWTSecretKey: "secret",
		},
	}

	services := InitializeServices(cfg, nil)
	t.Cleanup(services.Close)

	components := InitializeRouter(cfg, services, nil, nil)
	require.NotNil(t, components)
	assert.NotNil(t, components.Handler)
	assert.NotNil(t, components.HealthHandler)

	routerCfg := components.Config
	assert.Equal(t, 50, routerCfg.RateLimit)
	assert.Equal(t, 3*time.Second, routerCfg.RequestTimeout)
	assert.True(t, routerCfg.EnableAuth)
	assert.True(t, routerCfg.EnableIdempotency)
	assert.Equal(t, []string{"a", "b"}, routerCfg.APIKeys)
	assert.Equal(t, []string{"http://localhost:5173"}, routerCfg.CORSOrigins)
	assert.Equal(t, "docs", routerCfg.SwaggerUser)
	assert.NotNil(t, routerCfg.TokenVerifier)
	assert.Nil(t, routerCfg.AsyncLogger)
}
