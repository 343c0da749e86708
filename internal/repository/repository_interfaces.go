package repository

import (
	"context"

	"github.com/guttosm/coffee-builder/internal/domain/model"
)

// CatalogRepositoryInterface defines versioned catalog storage.
type CatalogRepositoryInterface interface {
	GetActive(ctx context.Context) (*CatalogConfig, error)
	Create(ctx context.Context, catalogs model.Catalogs, createdBy string) (*CatalogConfig, error)
	List(ctx context.Context, limit int) ([]CatalogConfig, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}

var (
	_ CatalogRepositoryInterface = (*CatalogRepository)(nil)
	_ CatalogRepositoryInterface = (*CatalogRepositoryWithCircuitBreaker)(nil)
	_ LogsRepositoryInterface    = (*LogsRepository)(nil)
	_ LogsRepositoryInterface    = (*LogsRepositoryWithCircuitBreaker)(nil)
)
