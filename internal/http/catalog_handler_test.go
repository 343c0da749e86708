package http

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/guttosm/coffee-builder/internal/circuitbreaker"
	"github.com/guttosm/coffee-builder/internal/domain/dto"
	"github.com/guttosm/coffee-builder/internal/domain/model"
	"github.com/guttosm/coffee-builder/internal/mocks"
	"github.com/guttosm/coffee-builder/internal/repository"
	"github.com/guttosm/coffee-builder/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHandler_GetCatalog_Reference(t *testing.T) {
	router, _ := newTestAPI(t, nil)

	w := doRequest(router, http.MethodGet, "/api/catalog", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `"catalog-v0"`, w.Header().Get("ETag"))

	catalog := decodeData[dto.CatalogResponse](t, w)
	assert.Equal(t, 0, catalog.Version)
	assert.Equal(t, service.DefaultCatalogs(), catalog.Catalogs)
}

func TestHandler_GetCatalog_IfNoneMatch(t *testing.T) {
	router, _ := newTestAPI(t, nil)

	tests := []struct {
		name           string
		etag           string
		expectedStatus int
	}{
		{name: "matching etag", etag: `"catalog-v0"`, expectedStatus: http.StatusNotModified},
		{name: "stale etag", etag: `"catalog-v9"`, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodGet, "/api/catalog", nil, "If-None-Match", tt.etag)
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusNotModified {
				assert.Empty(t, w.Body.String())
			}
		})
	}
}

func TestHandler_GetCatalogHistory(t *testing.T) {
	createdAt := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	history := []repository.CatalogConfig{
		{Version: 2, Active: true, Catalogs: service.DefaultCatalogs(), CreatedAt: createdAt, CreatedBy: "admin"},
		{Version: 1, Catalogs: service.DefaultCatalogs(), CreatedAt: createdAt.Add(-time.Hour), CreatedBy: "seed"},
	}

	tests := []struct {
		name           string
		query          string
		setup          func(*mocks.MockCatalogRepositoryInterface)
		expectedStatus int
		expectedCount  int
	}{
		{
			name:  "default limit",
			query: "",
			setup: func(m *mocks.MockCatalogRepositoryInterface) {
				m.On("List", mock.Anything, defaultHistoryLimit).Return(history, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:  "explicit limit",
			query: "?limit=1",
			setup: func(m *mocks.MockCatalogRepositoryInterface) {
				m.On("List", mock.Anything, 1).Return(history[:1], nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{name: "limit not a number", query: "?limit=all", expectedStatus: http.StatusBadRequest},
		{name: "limit too large", query: "?limit=101", expectedStatus: http.StatusBadRequest},
		{name: "limit zero", query: "?limit=0", expectedStatus: http.StatusBadRequest},
		{
			name:  "circuit open",
			query: "",
			setup: func(m *mocks.MockCatalogRepositoryInterface) {
				m.On("List", mock.Anything, defaultHistoryLimit).Return(nil, circuitbreaker.ErrCircuitOpen)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:  "store failure",
			query: "",
			setup: func(m *mocks.MockCatalogRepositoryInterface) {
				m.On("List", mock.Anything, defaultHistoryLimit).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mocks.MockCatalogRepositoryInterface{}
			if tt.setup != nil {
				tt.setup(repo)
			}
			router, _ := newTestAPI(t, repo)

			w := doRequest(router, http.MethodGet, "/api/catalog/history"+tt.query, nil)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			repo.AssertExpectations(t)

			if tt.expectedStatus != http.StatusOK {
				return
			}
			resp := decodeData[dto.CatalogHistoryResponse](t, w)
			assert.Equal(t, tt.expectedCount, resp.Count)
			assert.Len(t, resp.Versions, tt.expectedCount)
			assert.Equal(t, 2, resp.Versions[0].Version)
			assert.Equal(t, "admin", resp.Versions[0].CreatedBy)
		})
	}
}

func TestHandler_GetCatalogHistory_WithoutDatabase(t *testing.T) {
	router, _ := newTestAPI(t, nil)

	w := doRequest(router, http.MethodGet, "/api/catalog/history", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, dto.ErrCodeUnavailable, decodeError(t, w).Error)
}

func TestHandler_PublishCatalog(t *testing.T) {
	valid := service.DefaultCatalogs()
	valid.BasePrice = 150

	duplicate := service.DefaultCatalogs()
	duplicate.Syrups = append(duplicate.Syrups, model.Addon{ID: "vanilla", Name: "Vanilla again", Price: 10})

	noSizes := service.DefaultCatalogs()
	noSizes.Sizes = nil

	tests := []struct {
		name           string
		body           interface{}
		setup          func(*mocks.MockCatalogRepositoryInterface)
		expectedStatus int
		expectedDetail string
	}{
		{
			name: "publishes a new version",
			body: valid,
			setup: func(m *mocks.MockCatalogRepositoryInterface) {
				m.On("Create", mock.Anything, valid, anonymousPublisher).
					Return(&repository.CatalogConfig{Version: 4, Active: true, Catalogs: valid, CreatedBy: anonymousPublisher}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "duplicate ids",
			body:           duplicate,
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "syrups[8].id",
		},
		{
			name:           "missing single-choice catalog",
			body:           noSizes,
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "size",
		},
		{
			name:           "malformed body",
			body:           `{"base_price": "free"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "store unavailable",
			body: valid,
			setup: func(m *mocks.MockCatalogRepositoryInterface) {
				m.On("Create", mock.Anything, valid, anonymousPublisher).Return(nil, circuitbreaker.ErrCircuitOpen)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mocks.MockCatalogRepositoryInterface{}
			if tt.setup != nil {
				tt.setup(repo)
			}
			router, _ := newTestAPI(t, repo)

			w := doRequest(router, http.MethodPut, "/api/catalog", tt.body)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			repo.AssertExpectations(t)

			if tt.expectedDetail != "" {
				assert.Contains(t, decodeError(t, w).Details, tt.expectedDetail)
			}
			if tt.expectedStatus == http.StatusCreated {
				resp := decodeData[dto.CatalogVersionResponse](t, w)
				assert.Equal(t, 4, resp.Version)
				assert.True(t, resp.Active)
				assert.Equal(t, `"catalog-v4"`, w.Header().Get("ETag"))
			}
		})
	}
}

func TestHandler_PublishCatalog_WithoutDatabase(t *testing.T) {
	router, _ := newTestAPI(t, nil)

	w := doRequest(router, http.MethodPut, "/api/catalog", service.DefaultCatalogs())
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandler_PublishCatalog_InvalidatesCache(t *testing.T) {
	published := service.DefaultCatalogs()
	published.BasePrice = 99

	repo := &mocks.MockCatalogRepositoryInterface{}
	repo.On("GetActive", mock.Anything).Return(nil, nil).Once()
	repo.On("Create", mock.Anything, published, anonymousPublisher).
		Return(&repository.CatalogConfig{Version: 1, Active: true, Catalogs: published}, nil)
	repo.On("GetActive", mock.Anything).Return(&repository.CatalogConfig{Version: 1, Active: true, Catalogs: published}, nil)

	services := newTestServices(t, repo)
	router := NewRouter(services.handler(WithCatalogCacheTTL(time.Hour)), nil, RouterConfig{})
	t.Cleanup(router.Close)

	w := doRequest(router, http.MethodGet, "/api/catalog", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, decodeData[dto.CatalogResponse](t, w).Version)

	w = doRequest(router, http.MethodPut, "/api/catalog", published)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doRequest(router, http.MethodGet, "/api/catalog", nil)
	require.Equal(t, http.StatusOK, w.Code)
	catalog := decodeData[dto.CatalogResponse](t, w)
	assert.Equal(t, 1, catalog.Version)
	assert.Equal(t, 99, catalog.BasePrice)
}
