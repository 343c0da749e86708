// Package app provides service initialization.
package app

import (
	"time"

	"github.com/guttosm/coffee-builder/config"
	"github.com/guttosm/coffee-builder/internal/repository"
	"github.com/guttosm/coffee-builder/internal/service"
	"github.com/rs/zerolog/log"
)

const (
	defaultSessionCapacity = 10000
	defaultSessionTTL      = 30 * time.Minute
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Catalogs service.CatalogService
	Sessions service.SessionService
	Quotes   service.QuoteService
	// Tokens is nil when no JWT secret is configured.
	Tokens service.TokenVerifier

	sessionStore *service.ShardedCache[*service.Session]
}

// InitializeServices initializes business logic services. Without database
// components the catalog service serves the reference catalog only.
func InitializeServices(cfg config.Config, db *DatabaseComponents) *ServiceComponents {
	reference := service.DefaultCatalogs()
	reference.BasePrice = cfg.Pricing.BasePrice

	var catalogRepo repository.CatalogRepositoryInterface
	if db != nil {
		catalogRepo = db.CatalogRepo
	}
	catalogs := service.NewCatalogService(catalogRepo, reference)

	capacity, ttl := cfg.Cache.Size, cfg.Cache.TTL
	if capacity <= 0 {
		capacity = defaultSessionCapacity
	}
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	store := service.NewShardedCache[*service.Session](capacity, ttl, cfg.Cache.Shards)

	return &ServiceComponents{
		Catalogs:     catalogs,
		Sessions:     service.NewSessionService(catalogs, store),
		Quotes:       service.NewQuoteService(catalogs),
		Tokens:       initializeTokens(cfg.Auth),
		sessionStore: store,
	}
}

// initializeTokens returns a token verifier, or nil when no secret is set.
func initializeTokens(cfg config.AuthConfig) service.TokenVerifier {
	tokens, err := service.NewTokenService(service.TokenConfig{
		SecretKey: cfg.JWTSecretKey,
		Issuer:    cfg.JWTIssuer,
		TTL:       cfg.TokenTTL,
	})
	if err != nil {
		if cfg.Enabled {
			log.Warn().Err(err).Msg("JWT secret not configured, catalog publishing is disabled")
		}
		return nil
	}
	return tokens
}

// Close stops the session store cleanup goroutines.
func (s *ServiceComponents) Close() {
	s.sessionStore.Stop()
}
