package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/coffee-builder/internal/domain/dto"
	"github.com/guttosm/coffee-builder/internal/repository"
	"github.com/guttosm/coffee-builder/internal/service"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testServices bundles real services over an optional catalog repository.
type testServices struct {
	catalogs service.CatalogService
	sessions *service.SessionServiceImpl
	quotes   *service.QuoteServiceImpl
	store    *service.ShardedCache[*service.Session]
}

func newTestServices(t *testing.T, repo repository.CatalogRepositoryInterface) *testServices {
	t.Helper()

	catalogs := service.NewCatalogService(repo, service.DefaultCatalogs())
	store := service.NewShardedCache[*service.Session](100, time.Minute, 4)
	t.Cleanup(store.Stop)

	return &testServices{
		catalogs: catalogs,
		sessions: service.NewSessionService(catalogs, store),
		quotes:   service.NewQuoteService(catalogs),
		store:    store,
	}
}

func (s *testServices) handler(opts ...HandlerOption) *Handler {
	return NewHandler(s.catalogs, s.sessions, s.quotes, opts...)
}

// newTestAPI builds the full router over real services without rate limiting.
func newTestAPI(t *testing.T, repo repository.CatalogRepositoryInterface, mutate ...func(*RouterConfig)) (*Router, *testServices) {
	t.Helper()

	services := newTestServices(t, repo)
	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	for _, m := range mutate {
		m(&cfg)
	}

	router := NewRouter(services.handler(WithCatalogCacheTTL(0)), NewHealthHandler(), cfg)
	t.Cleanup(router.Close)
	return router, services
}

func doRequest(handler http.Handler, method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the data field of a success envelope into T.
func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		Data      T      `json:"data"`
		RequestID string `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope), w.Body.String())
	return envelope.Data
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

// createSession creates a session through the API and returns its id.
func createSession(t *testing.T, handler http.Handler) string {
	t.Helper()

	w := doRequest(handler, http.MethodPost, "/api/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeData[dto.SessionResponse](t, w).ID
}
