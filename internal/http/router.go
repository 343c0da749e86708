package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/coffee-builder/internal/i18n"
	"github.com/guttosm/coffee-builder/internal/logger"
	"github.com/guttosm/coffee-builder/internal/metrics"
	"github.com/guttosm/coffee-builder/internal/middleware"
	"github.com/guttosm/coffee-builder/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// infraPaths are not request-logged or compressed twice.
var infraPaths = []string{"/healthz", "/readyz", "/metrics"}

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit         int
	RateWindow        time.Duration
	RequestTimeout    time.Duration
	APIKeys           []string
	EnableAuth        bool
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	AsyncLogger       *middleware.AsyncLogger
	TokenVerifier     service.TokenVerifier
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:      100,
		RateWindow:     time.Minute,
		RequestTimeout: middleware.DefaultTimeoutConfig().Timeout,
		EnableAuth:     false,
	}
}

// Router is the configured gin engine plus the background resources its
// middleware owns.
type Router struct {
	*gin.Engine
	stoppers []func()
}

// Close stops the rate limiter and idempotency cache goroutines.
func (r *Router) Close() {
	for _, stop := range r.stoppers {
		stop()
	}
	r.stoppers = nil
}

// NewRouter creates and configures the Gin router for the coffee builder service.
func NewRouter(handler *Handler, healthHandler *HealthHandler, cfg RouterConfig) *Router {
	router := &Router{Engine: gin.New()}

	// Configure global middleware
	router.configureGlobalMiddleware(&cfg)

	// Register infrastructure routes (health, metrics, swagger)
	registerInfrastructureRoutes(router.Engine, healthHandler, &cfg)

	// Configure API routes
	api := router.Group("/api")
	router.configureAPIMiddleware(api, &cfg)

	if handler != nil {
		for _, group := range []RouteGroup{
			NewCatalogRoutes(handler),
			NewQuoteRoutes(handler),
			NewSessionRoutes(handler),
		} {
			group.RegisterRoutes(api, &cfg)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		NewResponseBuilder(c).Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
	})

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func (r *Router) configureGlobalMiddleware(cfg *RouterConfig) {
	r.Use(middleware.CORS(cfg.CORSOrigins))

	// Core middleware stack
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression("/metrics"),
		middleware.RequestLogger(cfg.AsyncLogger, infraPaths...),
		middleware.ErrorHandler(),
	)

	// Global rate limiting
	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		r.stoppers = append(r.stoppers, limiter.Stop)
		r.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger with optional basic auth
	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the API group.
func (r *Router) configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	api.Use(middleware.TimeoutWithDuration(cfg.RequestTimeout))

	// API key authentication for every API route
	if cfg.EnableAuth && len(cfg.APIKeys) > 0 {
		api.Use(middleware.APIKeyAuth(cfg.APIKeys))
	}

	// Idempotency runs after authentication so rejected requests are never cached.
	if cfg.EnableIdempotency {
		idempotencyCfg := middleware.DefaultIdempotencyConfig()
		r.stoppers = append(r.stoppers, idempotencyCfg.Cache.Stop)
		api.Use(middleware.Idempotency(idempotencyCfg))
	}
}

// publishGuards returns the middleware protecting catalog publication.
// ok is false when auth is enabled without a token verifier; the route is
// then not registered at all.
func publishGuards(cfg *RouterConfig) (guards []gin.HandlerFunc, ok bool) {
	if !cfg.EnableAuth {
		return nil, true
	}
	if cfg.TokenVerifier == nil {
		log := logger.Logger()
		log.Warn().Msg("Auth enabled without JWT secret, catalog publishing is disabled")
		return nil, false
	}
	return []gin.HandlerFunc{
		middleware.JWTAuth(cfg.TokenVerifier),
		middleware.RequireScope(service.ScopeCatalogWrite),
	}, true
}
