package middleware

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/guttosm/coffee-builder/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testAsyncConfig() AsyncLoggerConfig {
	return AsyncLoggerConfig{
		BufferSize:    100,
		NumWorkers:    1,
		BatchSize:     10,
		FlushInterval: time.Hour,
		WriteTimeout:  time.Second,
	}
}

func TestNewAsyncLogger(t *testing.T) {
	t.Run("nil logging service returns nil", func(t *testing.T) {
		al := NewAsyncLogger(nil, DefaultAsyncLoggerConfig())

		assert.Nil(t, al)
		assert.False(t, al.Log(&model.LogEntry{}))
		assert.Equal(t, AsyncLoggerStats{}, al.Stats())
		al.Stop()
	})

	t.Run("zero config falls back to defaults", func(t *testing.T) {
		al := NewAsyncLogger(&mockLoggingService{}, AsyncLoggerConfig{})
		require.NotNil(t, al)
		defer al.Stop()

		assert.Equal(t, DefaultAsyncLoggerConfig(), al.cfg)
	})
}

func TestAsyncLogger_BatchesEntries(t *testing.T) {
	svc := &mockLoggingService{}
	svc.On("CreateLogs", mock.Anything, mock.Anything).Return(nil)
	svc.On("CreateLog", mock.Anything, mock.Anything).Return(nil)

	al := NewAsyncLogger(svc, testAsyncConfig())
	for i := 0; i < 25; i++ {
		require.True(t, al.Log(&model.LogEntry{Message: fmt.Sprintf("entry-%d", i)}))
	}
	al.Stop()

	assert.Len(t, svc.recorded(), 25)
	stats := al.Stats()
	assert.Equal(t, int64(25), stats.Enqueued)
	assert.Equal(t, int64(25), stats.Written)
	assert.Zero(t, stats.Errors)
	svc.AssertCalled(t, "CreateLogs", mock.Anything, mock.MatchedBy(func(batch []*model.LogEntry) bool {
		return len(batch) == 10
	}))
}

func TestAsyncLogger_FlushesOnInterval(t *testing.T) {
	svc := &mockLoggingService{}
	svc.On("CreateLog", mock.Anything, mock.Anything).Return(nil)

	cfg := testAsyncConfig()
	cfg.FlushInterval = 10 * time.Millisecond
	al := NewAsyncLogger(svc, cfg)
	defer al.Stop()

	al.Log(&model.LogEntry{Message: "single"})

	assert.Eventually(t, func() bool { return al.Stats().Written == 1 }, time.Second, 5*time.Millisecond)
}

func TestAsyncLogger_CountsWriteErrors(t *testing.T) {
	svc := &mockLoggingService{}
	svc.On("CreateLogs", mock.Anything, mock.Anything).Return(errors.New("mongo down"))

	al := NewAsyncLogger(svc, testAsyncConfig())
	al.Log(&model.LogEntry{Message: "a"})
	al.Log(&model.LogEntry{Message: "b"})
	al.Stop()

	stats := al.Stats()
	assert.Equal(t, int64(2), stats.Errors)
	assert.Zero(t, stats.Written)
}

func TestAsyncLogger_DropsWhenFullOrStopped(t *testing.T) {
	block := make(chan struct{})
	svc := &mockLoggingService{}
	svc.On("CreateLog", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-block }).
		Return(nil)
	svc.On("CreateLogs", mock.Anything, mock.Anything).Return(nil)

	cfg := testAsyncConfig()
	cfg.BufferSize = 1
	cfg.BatchSize = 1
	al := NewAsyncLogger(svc, cfg)

	// First entry occupies the worker, second fills the buffer.
	require.True(t, al.Log(&model.LogEntry{Message: "in flight"}))
	assert.Eventually(t, func() bool { return len(svc.recorded()) == 1 }, time.Second, time.Millisecond)
	require.True(t, al.Log(&model.LogEntry{Message: "buffered"}))

	assert.False(t, al.Log(&model.LogEntry{Message: "dropped"}))

	close(block)
	al.Stop()
	assert.False(t, al.Log(&model.LogEntry{Message: "after stop"}))

	stats := al.Stats()
	assert.Equal(t, int64(2), stats.Dropped)
	assert.Equal(t, int64(2), stats.Written)
}

func TestAsyncLogger_StopIsIdempotent(t *testing.T) {
	al := NewAsyncLogger(&mockLoggingService{}, testAsyncConfig())

	assert.NotPanics(t, func() {
		al.Stop()
		al.Stop()
	})
}
