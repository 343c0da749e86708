// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	nethttp "net/http"
	"time"

	"github.com/guttosm/coffee-builder/config"
	"github.com/guttosm/coffee-builder/internal/http"
	"github.com/guttosm/coffee-builder/internal/middleware"
	"github.com/rs/zerolog/log"
)

const closeTimeout = 5 * time.Second

// App holds the wired application and the resources it must release.
type App struct {
	Router      *http.Router
	Services    *ServiceComponents
	Database    *DatabaseComponents
	AuditLogger *middleware.AsyncLogger
}

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *App {
	// Initialize logger first (needed by other components)
	InitializeLogger(cfg.Log)

	// Initialize database components (MongoDB repositories and services)
	dbComponents := InitializeDatabase(cfg.Database)

	// Initialize business services
	serviceComponents := InitializeServices(cfg, dbComponents)

	// Publish the reference catalog on an empty database
	if dbComponents != nil {
		seedCatalog(serviceComponents.Catalogs)
	}

	// Audit entries are persisted only when MongoDB is available
	var auditLogger *middleware.AsyncLogger
	if dbComponents != nil {
		auditLogger = middleware.NewAsyncLogger(dbComponents.LoggingService, middleware.DefaultAsyncLoggerConfig())
	}

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(cfg, serviceComponents, dbComponents, auditLogger)

	return &App{
		Router:      http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config),
		Services:    serviceComponents,
		Database:    dbComponents,
		AuditLogger: auditLogger,
	}
}

// Handler returns the HTTP handler serving the API.
func (a *App) Handler() nethttp.Handler {
	return a.Router
}

// Close releases background workers and the database connection. Pending
// audit entries are flushed before MongoDB is disconnected.
func (a *App) Close() {
	a.Router.Close()
	a.AuditLogger.Stop()
	a.Services.Close()

	if a.Database != nil {
		ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		if err := a.Database.DB.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to disconnect from MongoDB")
		}
	}
}
