package middleware

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/coffee-builder/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

// mockLoggingService records persisted entries. It lives here rather than in
// internal/mocks because service tests already import that package.
type mockLoggingService struct {
	mock.Mock

	mu      sync.Mutex
	entries []*model.LogEntry
}

func (m *mockLoggingService) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	m.record(entry)
	return m.Called(ctx, entry).Error(0)
}

func (m *mockLoggingService) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	m.record(entries...)
	return m.Called(ctx, entries).Error(0)
}

func (m *mockLoggingService) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LogEntry), args.Error(1)
}

func (m *mockLoggingService) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockLoggingService) record(entries ...*model.LogEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entries...)
}

func (m *mockLoggingService) recorded() []*model.LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*model.LogEntry(nil), m.entries...)
}

func newTestRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	return router
}
