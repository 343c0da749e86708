package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/coffee-builder/internal/domain/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (f *fakeClock) now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *fakeClock) advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.t = f.t.Add(d)
}

func TestNewShardedRateLimiter(t *testing.T) {
	tests := []struct {
		name       string
		numShards  int
		wantShards int
	}{
		{name: "default shards when zero", numShards: 0, wantShards: defaultNumShards},
		{name: "default shards when negative", numShards: -1, wantShards: defaultNumShards},
		{name: "custom shard count", numShards: 8, wantShards: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl := NewShardedRateLimiter(10, time.Minute, tt.numShards)
			defer rl.Stop()

			assert.Equal(t, tt.wantShards, rl.numShards)
			assert.Len(t, rl.shards, tt.wantShards)
		})
	}
}

func TestRateLimit(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(2, time.Minute)
	rl.now = clock.now
	defer rl.Stop()

	router := newTestRouter(RequestID(), rl.RateLimit())
	router.POST("/api/quote", func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/quote", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	first := send("10.0.0.1")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, send("10.0.0.1").Code)

	clock.advance(15 * time.Second)
	limited := send("10.0.0.1")
	require.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "45", limited.Header().Get("Retry-After"))
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(limited.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeRateLimit, resp.Error)

	assert.Equal(t, http.StatusOK, send("10.0.0.2").Code, "other clients keep their own budget")

	clock.advance(time.Minute)
	assert.Equal(t, http.StatusOK, send("10.0.0.1").Code, "window resets")
}

func TestSubjectRateLimit(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()

	router := newTestRouter(func(c *gin.Context) {
		if subject := c.GetHeader("X-Test-Subject"); subject != "" {
			c.Set(string(SubjectKey), subject)
		}
	}, rl.SubjectRateLimit())
	router.PUT("/api/catalog", func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(subject string) int {
		req := httptest.NewRequest(http.MethodPut, "/api/catalog", nil)
		req.RemoteAddr = "10.0.0.9:1234"
		if subject != "" {
			req.Header.Set("X-Test-Subject", subject)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("alice"))
	assert.Equal(t, http.StatusTooManyRequests, send("alice"))
	assert.Equal(t, http.StatusOK, send("bob"))
	assert.Equal(t, http.StatusOK, send(""), "anonymous falls back to IP")
	assert.Equal(t, http.StatusTooManyRequests, send(""))
}

func TestRateLimiter_CleanupExpired(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	rl := NewShardedRateLimiter(5, time.Second, 4)
	rl.now = clock.now
	defer rl.Stop()

	for i := 0; i < 10; i++ {
		rl.checkRateLimit(fmt.Sprintf("ip:%d", i))
	}
	total, perShard := rl.Stats()
	assert.Equal(t, 10, total)
	assert.Len(t, perShard, 4)

	clock.advance(3 * time.Second)
	rl.cleanupExpired()

	total, _ = rl.Stats()
	assert.Zero(t, total)
}

func TestRateLimiter_ConcurrentAccess(t *testing.T) {
	rl := NewRateLimiter(1000, time.Minute)
	defer rl.Stop()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for g := 0; g < 10; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 150; i++ {
				if ok, _, _ := rl.checkRateLimit("ip:shared"); ok {
					mu.Lock()
					allowed++
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1000, allowed)
}
