package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/coffee-builder/internal/domain/model"
	"github.com/guttosm/coffee-builder/internal/logger"
)

// RequestLogger returns a middleware that writes one structured line per
// request and, when al is non-nil, persists the same data through it.
// skipPaths are neither logged nor persisted.
func RequestLogger(al *AsyncLogger, skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]bool, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = true
	}

	return func(c *gin.Context) {
		if skip[c.Request.URL.Path] {
			c.Next()
			return
		}

		start := time.Now()

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		requestID := GetRequestID(c)
		path := c.Request.URL.Path
		method := c.Request.Method
		ip := c.ClientIP()
		userAgent := c.Request.UserAgent()
		sessionID := GetSessionID(c)

		log := logger.Logger().With().
			Str("request_id", requestID).
			Str("method", method).
			Str("path", path).
			Int("status_code", statusCode).
			Int64("duration_ms", latency.Milliseconds()).
			Str("ip", ip).
			Str("user_agent", userAgent).
			Logger()
		if sessionID != "" {
			log = log.With().Str("session_id", sessionID).Logger()
		}

		level := getLogLevel(statusCode)
		switch level {
		case "error":
			log.Error().Msg("HTTP request")
		case "warn":
			log.Warn().Msg("HTTP request")
		default:
			log.Info().Msg("HTTP request")
		}

		if al == nil {
			return
		}
		al.Log(&model.LogEntry{
			Timestamp:  start.UTC(),
			Level:      level,
			Message:    "HTTP request",
			RequestID:  requestID,
			Method:     method,
			Path:       path,
			StatusCode: statusCode,
			Duration:   latency.Milliseconds(),
			IP:         ip,
			UserAgent:  userAgent,
			Subject:    GetSubject(c),
			SessionID:  sessionID,
		})
	}
}

// getLogLevel returns the log level based on HTTP status code.
func getLogLevel(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "warn"
	default:
		return "info"
	}
}
