package i18n

// Error message translation keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyUnauthorized       = "error.unauthorized"
	ErrKeyAPIKeyRequired     = "error.api_key_required"
	ErrKeyInvalidAPIKey      = "error.invalid_api_key"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyTimeout            = "error.timeout"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyInsufficientScope indicates a valid token without the required scope.
	ErrKeyInsufficientScope = "error.insufficient_scope"

	// ErrKeySessionNotFound indicates an unknown, expired or evicted session.
	ErrKeySessionNotFound = "error.session_not_found"
	// ErrKeyInvalidCategory indicates a category outside the expected choice set.
	ErrKeyInvalidCategory = "error.invalid_category"
	// ErrKeyInvalidCatalog indicates a catalog failed validation.
	ErrKeyInvalidCatalog = "error.invalid_catalog"
	// ErrKeyCatalogStoreUnavailable indicates catalog persistence is disabled or unreachable.
	ErrKeyCatalogStoreUnavailable = "error.catalog_store_unavailable"
)

