// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/coffee-builder/internal/domain/model"
	"github.com/guttosm/coffee-builder/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockCatalogRepositoryInterface struct {
	mock.Mock
}

func (m *MockCatalogRepositoryInterface) GetActive(ctx context.Context) (*repository.CatalogConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CatalogConfig), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) Create(ctx context.Context, catalogs model.Catalogs, createdBy string) (*repository.CatalogConfig, error) {
	args := m.Called(ctx, catalogs, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CatalogConfig), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) List(ctx context.Context, limit int) ([]repository.CatalogConfig, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CatalogConfig), args.Error(1)
}
