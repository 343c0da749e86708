//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	t.Run("collections are wired", func(t *testing.T) {
		assert.NotNil(t, db.Client)
		assert.NotNil(t, db.Database)
		assert.Equal(t, "catalogs", db.Catalogs.Name())
		assert.Equal(t, "logs", db.Logs.Name())
	})

	t.Run("health check", func(t *testing.T) {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		assert.NoError(t, db.HealthCheck(pingCtx))
	})

	t.Run("set logs TTL is repeatable", func(t *testing.T) {
		require.NoError(t, db.SetLogsTTL(ctx, 30))
		assert.NoError(t, db.SetLogsTTL(ctx, 60))
	})

	t.Run("connect fails for unreachable server", func(t *testing.T) {
		cfg := DefaultMongoConfig()
		cfg.ConnectTimeout = 500 * time.Millisecond
		cfg.ServerSelectionTimeout = 500 * time.Millisecond

		_, err := NewMongoDBWithConfig("mongodb://127.0.0.1:1", "unreachable", cfg)
		assert.Error(t, err)
	})
}
