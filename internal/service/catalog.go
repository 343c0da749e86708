package service

import (
	"context"
	"errors"

	"github.com/guttosm/coffee-builder/internal/domain/model"
	"github.com/guttosm/coffee-builder/internal/metrics"
	"github.com/guttosm/coffee-builder/internal/repository"
	"github.com/rs/zerolog/log"
)

// ErrRepositoryNotConfigured is returned by operations that need MongoDB when it is disabled.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// ReferenceCatalogVersion is the version reported for the built-in price table.
const ReferenceCatalogVersion = 0

// CatalogService provides the active price table and its version history.
type CatalogService interface {
	GetActive(ctx context.Context) (*model.Catalogs, int, error)
	Publish(ctx context.Context, catalogs model.Catalogs, createdBy string) (*repository.CatalogConfig, error)
	List(ctx context.Context, limit int) ([]repository.CatalogConfig, error)
	Seed(ctx context.Context) (bool, error)
}

// CatalogServiceImpl implements CatalogService. A nil repository serves the
// reference catalog only.
type CatalogServiceImpl struct {
	repo      repository.CatalogRepositoryInterface
	reference model.Catalogs
}

// NewCatalogService creates a catalog service. reference is served whenever
// no published version can be read.
func NewCatalogService(repo repository.CatalogRepositoryInterface, reference model.Catalogs) CatalogService {
	return &CatalogServiceImpl{
		repo:      repo,
		reference: reference.Clone(),
	}
}

// GetActive returns the active catalog and its version. Store failures
// degrade to the reference catalog; only a cancelled context is an error.
func (s *CatalogServiceImpl) GetActive(ctx context.Context) (*model.Catalogs, int, error) {
	if s.repo == nil {
		return s.referenceCatalog(), ReferenceCatalogVersion, nil
	}

	active, err := s.repo.GetActive(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, 0, ctxErr
		}
		log.Warn().Err(err).Msg("Failed to read active catalog, serving reference catalog")
		return s.referenceCatalog(), ReferenceCatalogVersion, nil
	}
	if active == nil {
		return s.referenceCatalog(), ReferenceCatalogVersion, nil
	}

	catalogs := active.Catalogs.Clone()
	return &catalogs, active.Version, nil
}

func (s *CatalogServiceImpl) referenceCatalog() *model.Catalogs {
	c := s.reference.Clone()
	return &c
}

// Publish validates catalogs and stores them as the new active version.
func (s *CatalogServiceImpl) Publish(ctx context.Context, catalogs model.Catalogs, createdBy string) (*repository.CatalogConfig, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := catalogs.Validate(); err != nil {
		return nil, err
	}

	config, err := s.repo.Create(ctx, catalogs, createdBy)
	if err != nil {
		return nil, err
	}

	metrics.SetCatalogVersion(config.Version)
	log.Info().
		Int("version", config.Version).
		Str("created_by", createdBy).
		Msg("Catalog published")
	return config, nil
}

// List returns published versions, newest first.
func (s *CatalogServiceImpl) List(ctx context.Context, limit int) ([]repository.CatalogConfig, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.List(ctx, limit)
}

// Seed publishes the reference catalog when no version is active yet.
// Reports whether a version was created.
func (s *CatalogServiceImpl) Seed(ctx context.Context) (bool, error) {
	if s.repo == nil {
		return false, nil
	}

	active, err := s.repo.GetActive(ctx)
	if err != nil {
		return false, err
	}
	if active != nil {
		metrics.SetCatalogVersion(active.Version)
		return false, nil
	}

	if _, err := s.Publish(ctx, s.reference, "seed"); err != nil {
		return false, err
	}
	return true, nil
}
