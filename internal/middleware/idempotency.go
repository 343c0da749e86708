package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/coffee-builder/internal/domain/dto"
	"github.com/guttosm/coffee-builder/internal/i18n"
)

const (
	// IdempotencyKeyHeader is the HTTP header name for idempotency key.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from the idempotency cache.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is the TTL for cached idempotency responses.
	IdempotencyKeyTTL = 5 * time.Minute
	// maxIdempotencyKeyLength caps client keys.
	maxIdempotencyKeyLength = 255
	// maxIdempotencyBodyBytes caps the request body hashed into the cache key.
	maxIdempotencyBodyBytes = 1 << 20
	// defaultIdempotencyEntries bounds the number of cached responses.
	defaultIdempotencyEntries = 10000
)

// replayedHeaders are copied from the original response on replay.
var replayedHeaders = []string{"Content-Type", "Location"}

// cachedResponse stores a cached HTTP response for idempotency.
type cachedResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
	Timestamp  time.Time
}

// IdempotencyConfig holds configuration for idempotency middleware.
type IdempotencyConfig struct {
	Cache   *IdempotencyCache
	TTL     time.Duration
	Enabled bool
}

// DefaultIdempotencyConfig returns default idempotency configuration.
// The caller owns the cache and should Stop it on shutdown.
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		Cache:   NewIdempotencyCache(IdempotencyKeyTTL, defaultIdempotencyEntries),
		TTL:     IdempotencyKeyTTL,
		Enabled: true,
	}
}

// Idempotency replays the first successful response for a repeated
// Idempotency-Key on POST, PUT and PATCH requests. The key is scoped by
// method, path and body so reusing a key for a different request is not
// replayed. A retried session create therefore returns the same session.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Cache == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}
		if len(key) > maxIdempotencyKeyLength {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInvalidRequest, i18n.GetLocale(c))
			c.AbortWithStatusJSON(http.StatusBadRequest,
				dto.NewError(dto.ErrCodeInvalidRequest, message).WithRequestID(GetRequestID(c)))
			return
		}

		cacheKey, err := generateCacheKey(key, c.Request)
		if err != nil {
			_ = c.Error(err).SetType(gin.ErrorTypeBind)
			c.Abort()
			return
		}

		if cached, ok := cfg.Cache.Get(cacheKey); ok {
			for k, v := range cached.Headers {
				c.Header(k, v)
			}
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(cached.StatusCode, cached.Headers["Content-Type"], cached.Body)
			c.Abort()
			return
		}

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if status < 200 || status >= 300 {
			return
		}

		headers := make(map[string]string, len(replayedHeaders))
		for _, h := range replayedHeaders {
			if v := writer.Header().Get(h); v != "" {
				headers[h] = v
			}
		}
		cfg.Cache.Set(cacheKey, &cachedResponse{
			StatusCode: status,
			Headers:    headers,
			Body:       append([]byte(nil), writer.body.Bytes()...),
		})
	}
}

// generateCacheKey hashes the idempotency key with the request method, path
// and body. The body is restored for the handler.
func generateCacheKey(idempotencyKey string, req *http.Request) (string, error) {
	hasher := sha256.New()
	hasher.Write([]byte(idempotencyKey))
	hasher.Write([]byte{0})
	hasher.Write([]byte(req.Method))
	hasher.Write([]byte{0})
	hasher.Write([]byte(req.URL.Path))
	hasher.Write([]byte{0})

	if req.Body != nil {
		bodyBytes, err := io.ReadAll(io.LimitReader(req.Body, maxIdempotencyBodyBytes))
		if err != nil {
			return "", err
		}
		req.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		hasher.Write(bodyBytes)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// responseWriter tees the response body for caching.
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
