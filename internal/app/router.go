// Package app provides router configuration.
package app

import (
	"github.com/guttosm/coffee-builder/config"
	"github.com/guttosm/coffee-builder/internal/http"
	"github.com/guttosm/coffee-builder/internal/middleware"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	cfg config.Config,
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	auditLogger *middleware.AsyncLogger,
) *RouterComponents {
	handler := http.NewHandler(
		services.Catalogs,
		services.Sessions,
		services.Quotes,
		http.WithAuditLogger(auditLogger),
	)

	healthHandler := http.NewHealthHandler()
	healthHandler.SetSessionCounter(services.Sessions)
	healthHandler.SetAuditLogger(auditLogger)

	// Register MongoDB and its circuit breakers for health monitoring
	if dbComponents != nil {
		healthHandler.RegisterChecker("mongodb", dbComponents.DB)
		healthHandler.RegisterCircuitBreaker("mongodb_catalogs", dbComponents.CatalogsCircuitBreaker)
		healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.KeyList(),
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		AsyncLogger:       auditLogger,
		TokenVerifier:     services.Tokens,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
