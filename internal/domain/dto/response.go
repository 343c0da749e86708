package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/coffee-builder/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeUnavailable indicates a required backing store is unavailable.
	ErrCodeUnavailable = "service_unavailable"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the endpoint payload
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"category: must be one of flavor, grind, size, milk"`
	// Details maps a field to its problem
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}

// WithDetails attaches per-field details to the error response.
func (e ErrorResponse) WithDetails(details map[string]string) ErrorResponse {
	e.Details = details
	return e
}

// CatalogResponse is the active price table and its version.
// @Description Active catalog with version (0 = built-in reference catalog)
type CatalogResponse struct {
	Version int `json:"version" example:"3"`
	model.Catalogs
} // @name CatalogResponse

// CatalogVersionResponse describes one published catalog version.
// @Description Published catalog version
type CatalogVersionResponse struct {
	Version   int            `json:"version" example:"3"`
	Active    bool           `json:"active" example:"true"`
	CreatedAt time.Time      `json:"created_at" example:"2026-01-28T10:00:00Z"`
	CreatedBy string         `json:"created_by,omitempty" example:"admin"`
	Catalogs  model.Catalogs `json:"catalogs"`
} // @name CatalogVersionResponse

// CatalogHistoryResponse lists published versions, newest first.
// @Description Catalog version history
type CatalogHistoryResponse struct {
	Versions []CatalogVersionResponse `json:"versions"`
	Count    int                      `json:"count" example:"1"`
} // @name CatalogHistoryResponse

// QuoteResponse is a priced selection.
// @Description Priced selection with preview and itemized summary
type QuoteResponse struct {
	model.Quote
} // @name QuoteResponse

// SessionResponse is the full view of a configurator session.
// @Description Configurator session with current selections and total
type SessionResponse struct {
	ID        string    `json:"id" example:"5f0c6a1e-3b7d-4c36-9d1f-2a4e0c9b7d11"`
	CreatedAt time.Time `json:"created_at" example:"2026-01-28T10:00:00Z"`
	model.Quote
} // @name SessionResponse

// TotalResponse carries a session's current total.
// @Description Session total in minor currency units
type TotalResponse struct {
	ID    string `json:"id" example:"5f0c6a1e-3b7d-4c36-9d1f-2a4e0c9b7d11"`
	Total int    `json:"total" example:"325"`
} // @name TotalResponse

// SnapshotResponse carries a session's preview names.
// @Description Session preview names
type SnapshotResponse struct {
	ID string `json:"id" example:"5f0c6a1e-3b7d-4c36-9d1f-2a4e0c9b7d11"`
	model.Snapshot
} // @name SnapshotResponse
