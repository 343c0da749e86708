// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/guttosm/coffee-builder/config"
	"github.com/guttosm/coffee-builder/internal/circuitbreaker"
	"github.com/guttosm/coffee-builder/internal/repository"
	"github.com/guttosm/coffee-builder/internal/service"
	"github.com/rs/zerolog/log"
)

const seedTimeout = 5 * time.Second

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                     *repository.MongoDB
	CatalogRepo            repository.CatalogRepositoryInterface
	LoggingService         service.LoggingService
	CatalogsCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker     *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails; the service then
// runs on the reference catalog without persistence.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing with the reference catalog")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	return newDatabaseComponents(db, cfg)
}

// newDatabaseComponents wraps the repositories of db with circuit breakers.
func newDatabaseComponents(db *repository.MongoDB, cfg config.DatabaseConfig) *DatabaseComponents {
	catalogsCB := newCircuitBreaker("mongodb-catalogs", cfg)
	logsCB := newCircuitBreaker("mongodb-logs", cfg)

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)
	catalogRepo := repository.NewCatalogRepositoryWithCircuitBreaker(repository.NewCatalogRepository(db), catalogsCB)

	return &DatabaseComponents{
		DB:                     db,
		CatalogRepo:            catalogRepo,
		LoggingService:         service.NewLoggingService(logsRepo),
		CatalogsCircuitBreaker: catalogsCB,
		LogsCircuitBreaker:     logsCB,
	}
}

func newCircuitBreaker(name string, cfg config.DatabaseConfig) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		Name:             name,
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
	})
}

// seedCatalog publishes the reference catalog if no version is active yet.
func seedCatalog(catalogs service.CatalogService) {
	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	created, err := catalogs.Seed(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to seed reference catalog")
		return
	}
	if created {
		log.Info().Msg("Published reference catalog as version 1")
	}
}
