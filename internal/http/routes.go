package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// CatalogRoutes registers the price table routes.
type CatalogRoutes struct {
	handler *Handler
}

// NewCatalogRoutes creates catalog routes served by handler.
func NewCatalogRoutes(handler *Handler) *CatalogRoutes {
	return &CatalogRoutes{handler: handler}
}

// RegisterRoutes registers GET and PUT /catalog and GET /catalog/history.
// Publishing is guarded by a bearer token when auth is enabled.
func (r *CatalogRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	rg.GET("/catalog", r.handler.GetCatalog)
	rg.GET("/catalog/history", r.handler.GetCatalogHistory)

	guards, ok := publishGuards(cfg)
	if !ok {
		return
	}
	rg.PUT("/catalog", append(guards, r.handler.PublishCatalog)...)
}

// QuoteRoutes registers the stateless pricing route.
type QuoteRoutes struct {
	handler *Handler
}

// NewQuoteRoutes creates quote routes served by handler.
func NewQuoteRoutes(handler *Handler) *QuoteRoutes {
	return &QuoteRoutes{handler: handler}
}

// RegisterRoutes registers POST /quote.
func (r *QuoteRoutes) RegisterRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	rg.POST("/quote", r.handler.Quote)
}

// SessionRoutes registers the configurator session routes.
type SessionRoutes struct {
	handler *Handler
}

// NewSessionRoutes creates session routes served by handler.
func NewSessionRoutes(handler *Handler) *SessionRoutes {
	return &SessionRoutes{handler: handler}
}

// RegisterRoutes registers the /sessions routes.
func (r *SessionRoutes) RegisterRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	sessions := rg.Group("/sessions")
	sessions.POST("", r.handler.CreateSession)
	sessions.GET("/:id", r.handler.GetSession)
	sessions.DELETE("/:id", r.handler.DeleteSession)
	sessions.PUT("/:id/single", r.handler.SelectSingle)
	sessions.POST("/:id/toggle", r.handler.ToggleMulti)
	sessions.POST("/:id/reset", r.handler.ResetSession)
	sessions.GET("/:id/total", r.handler.GetSessionTotal)
	sessions.GET("/:id/snapshot", r.handler.GetSessionSnapshot)
}
