package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	allowed := []string{"http://localhost:5173"}

	tests := []struct {
		name           string
		origins        []string
		method         string
		origin         string
		expectedStatus int
		expectedAllow  string
	}{
		{
			name:           "preflight from allowed origin",
			origins:        allowed,
			method:         http.MethodOptions,
			origin:         "http://localhost:5173",
			expectedStatus: http.StatusNoContent,
			expectedAllow:  "http://localhost:5173",
		},
		{
			name:           "simple request from allowed origin",
			origins:        allowed,
			method:         http.MethodGet,
			origin:         "http://localhost:5173",
			expectedStatus: http.StatusOK,
			expectedAllow:  "http://localhost:5173",
		},
		{
			name:           "unknown origin is rejected",
			origins:        allowed,
			method:         http.MethodGet,
			origin:         "https://evil.example",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "request without origin passes",
			origins:        allowed,
			method:         http.MethodGet,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "empty list allows any origin",
			method:         http.MethodGet,
			origin:         "https://shop.example",
			expectedStatus: http.StatusOK,
			expectedAllow:  "*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(CORS(tt.origins))
			router.GET("/api/catalog", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(tt.method, "/api/catalog", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.method == http.MethodOptions {
				req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedAllow, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
