package http

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/coffee-builder/internal/domain/dto"
	"github.com/guttosm/coffee-builder/internal/domain/model"
	"github.com/guttosm/coffee-builder/internal/metrics"
	"github.com/guttosm/coffee-builder/internal/middleware"
	"github.com/guttosm/coffee-builder/internal/service"
)

const defaultCatalogCacheTTL = 5 * time.Second

// activeCatalog is a cached read of the active catalog.
type activeCatalog struct {
	catalogs  model.Catalogs
	version   int
	etag      string
	expiresAt time.Time
}

// catalogCache provides thread-safe caching of the active catalog for GET /api/catalog.
// Every invalidate bumps gen, so a read that started before a publish cannot
// store the version it loaded.
type catalogCache struct {
	entry atomic.Pointer[activeCatalog]
	gen   atomic.Uint64
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
}

func newCatalogCache(ttl time.Duration) *catalogCache {
	return &catalogCache{ttl: ttl, now: time.Now}
}

// get returns the cached catalog, or nil if the cache is expired or empty.
func (c *catalogCache) get() *activeCatalog {
	if entry := c.entry.Load(); entry != nil && c.now().Before(entry.expiresAt) {
		return entry
	}
	return nil
}

// generation returns the token a loader passes to set.
func (c *catalogCache) generation() uint64 {
	return c.gen.Load()
}

// set caches the catalog unless the cache was invalidated since gen was read.
// The entry is returned either way.
func (c *catalogCache) set(gen uint64, catalogs model.Catalogs, version int) *activeCatalog {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := &activeCatalog{
		catalogs:  catalogs,
		version:   version,
		etag:      catalogETag(version),
		expiresAt: c.now().Add(c.ttl),
	}
	if c.ttl > 0 && gen == c.gen.Load() {
		c.entry.Store(entry)
	}
	return entry
}

func (c *catalogCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen.Add(1)
	c.entry.Store(nil)
}

func catalogETag(version int) string {
	return fmt.Sprintf(`"catalog-v%d"`, version)
}

// Handler provides HTTP handlers for the coffee builder API.
type Handler struct {
	catalogs     service.CatalogService
	sessions     service.SessionService
	quotes       service.QuoteService
	auditLogger  *middleware.AsyncLogger
	catalogCache *catalogCache
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithCatalogCacheTTL sets how long GET /api/catalog reuses the active catalog.
// A zero TTL disables caching.
func WithCatalogCacheTTL(ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.catalogCache = newCatalogCache(ttl)
	}
}

// WithAuditLogger sends audit entries to al.
func WithAuditLogger(al *middleware.AsyncLogger) HandlerOption {
	return func(h *Handler) {
		h.auditLogger = al
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(catalogs service.CatalogService, sessions service.SessionService, quotes service.QuoteService, opts ...HandlerOption) *Handler {
	h := &Handler{
		catalogs:     catalogs,
		sessions:     sessions,
		quotes:       quotes,
		catalogCache: newCatalogCache(defaultCatalogCacheTTL),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// loadCatalog returns the active catalog from cache or the catalog service.
func (h *Handler) loadCatalog(ctx context.Context) (*activeCatalog, error) {
	if entry := h.catalogCache.get(); entry != nil {
		return entry, nil
	}

	gen := h.catalogCache.generation()
	catalogs, version, err := h.catalogs.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	return h.catalogCache.set(gen, *catalogs, version), nil
}

// InvalidateCatalogCache drops the cached active catalog.
// Call this when a catalog version is published.
func (h *Handler) InvalidateCatalogCache() {
	h.catalogCache.invalidate()
}

// Quote handles POST /api/quote requests.
//
// @Summary      Price a selection
// @Description  Prices a complete drink selection against the active catalog without creating a session. Omitted single-choice categories keep their baseline option. Unknown ids are priced at zero and shown as "unresolved".
// @Tags         Quote
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.QuoteRequest true "Drink selection"
// @Success      200 {object} dto.SuccessResponse{data=dto.QuoteResponse} "Priced selection"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      504 {object} dto.ErrorResponse "Request timed out"
// @Security     ApiKeyAuth
// @Router       /api/quote [post]
func (h *Handler) Quote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.QuoteRequest](c)
	if err != nil {
		metrics.RecordQuote(0, 0, "validation_error")
		builder.BindError(err)
		return
	}

	quote, err := h.quotes.Quote(c.Request.Context(), req.ToState())
	if err != nil {
		middleware.AuditLogError(h.auditLogger, c, model.ActionQuote, "Quote failed", err, nil)
		builder.ServiceError(err)
		return
	}

	middleware.AuditLog(h.auditLogger, c, model.ActionQuote, "Quote computed", map[string]interface{}{
		"catalog_version": quote.CatalogVersion,
		"total":           quote.Total,
	})
	builder.SuccessOK(dto.QuoteResponse{Quote: *quote})
}
