// Package middleware provides HTTP middleware components for the coffee builder.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the HTTP header name for request ID.
	RequestIDHeader = "X-Request-ID"
	// maxRequestIDLength caps client-supplied request ids.
	maxRequestIDLength = 128
)

// ContextKey type for context keys to avoid collisions.
type ContextKey string

const (
	// RequestIDKey is the context key for request ID.
	RequestIDKey ContextKey = "request_id"
	// SubjectKey is the context key for the authenticated token subject.
	SubjectKey ContextKey = "subject"
	// ClaimsKey is the context key for verified token claims.
	ClaimsKey ContextKey = "claims"
	// SessionIDKey is the context key handlers set for the session being served.
	SessionIDKey ContextKey = "session_id"
)

// RequestID returns a middleware that ensures each request has a unique ID.
// A client X-Request-ID is reused when present and reasonably short;
// otherwise a UUID v4 is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID retrieves the request ID from the gin context.
func GetRequestID(c *gin.Context) string {
	return c.GetString(string(RequestIDKey))
}

// GetSubject returns the authenticated subject, or "" for anonymous requests.
func GetSubject(c *gin.Context) string {
	return c.GetString(string(SubjectKey))
}

// SetSessionID records the session a handler is operating on for request and audit logs.
func SetSessionID(c *gin.Context, sessionID string) {
	c.Set(string(SessionIDKey), sessionID)
}

// GetSessionID returns the session recorded by SetSessionID.
func GetSessionID(c *gin.Context) string {
	return c.GetString(string(SessionIDKey))
}
