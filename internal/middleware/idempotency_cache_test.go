package middleware

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyCache(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewIdempotencyCache(time.Minute, 3)
	c.now = clock.now
	defer c.Stop()

	c.Set("a", &cachedResponse{StatusCode: 201, Body: []byte("a")})
	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 201, got.StatusCode)
	assert.Equal(t, clock.now(), got.Timestamp)

	_, ok = c.Get("missing")
	assert.False(t, ok)

	t.Run("expires after ttl", func(t *testing.T) {
		clock.advance(2 * time.Minute)
		_, ok := c.Get("a")
		assert.False(t, ok)

		c.cleanup()
		assert.Zero(t, c.Len())
	})

	t.Run("evicts oldest when full", func(t *testing.T) {
		for i := 0; i < 4; i++ {
			c.Set(fmt.Sprintf("k%d", i), &cachedResponse{StatusCode: 200})
			clock.advance(time.Second)
		}

		assert.Equal(t, 3, c.Len())
		_, ok := c.Get("k0")
		assert.False(t, ok)
		_, ok = c.Get("k3")
		assert.True(t, ok)
	})
}

func TestIdempotencyCache_StopIsIdempotent(t *testing.T) {
	c := NewIdempotencyCache(time.Minute, 0)

	assert.Equal(t, defaultIdempotencyEntries, c.maxEntries)
	assert.NotPanics(t, func() {
		c.Stop()
		c.Stop()
	})
}
