//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()
	require.NoError(t, db.SetLogsTTL(ctx, 30))

	repo := NewLogsRepository(db)

	t.Run("create fills id and timestamp", func(t *testing.T) {
		entry := &LogEntryDocument{
			Level:      "info",
			Message:    "quote",
			RequestID:  "req-quote",
			Method:     "POST",
			Path:       "/api/quote",
			StatusCode: 200,
			ActionType: "quote",
		}

		require.NoError(t, repo.Create(ctx, entry))
		assert.False(t, entry.ID.IsZero())
		assert.False(t, entry.Timestamp.IsZero())
	})

	t.Run("create many", func(t *testing.T) {
		entries := []*LogEntryDocument{
			{Level: "info", Message: "session created", ActionType: "session_create", SessionID: "s-1"},
			{Level: "info", Message: "option selected", ActionType: "select", SessionID: "s-1"},
			{Level: "error", Message: "publish failed", ActionType: "publish_catalog", Subject: "admin"},
		}
		require.NoError(t, repo.CreateMany(ctx, entries))
		assert.NoError(t, repo.CreateMany(ctx, nil))
	})

	tests := []struct {
		name     string
		opts     LogQueryOptions
		expected int64
	}{
		{name: "by request id", opts: LogQueryOptions{RequestID: "req-quote"}, expected: 1},
		{name: "by level", opts: LogQueryOptions{Level: "error"}, expected: 1},
		{name: "by action type", opts: LogQueryOptions{ActionType: "select"}, expected: 1},
		{name: "by session", opts: LogQueryOptions{SessionID: "s-1"}, expected: 2},
		{name: "by path pattern", opts: LogQueryOptions{Path: "QUOTE"}, expected: 1},
		{name: "everything", opts: LogQueryOptions{}, expected: 4},
	}

	for _, tt := range tests {
		t.Run("count "+tt.name, func(t *testing.T) {
			count, err := repo.Count(ctx, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, count)

			entries, err := repo.Query(ctx, tt.opts)
			require.NoError(t, err)
			assert.Len(t, entries, int(tt.expected))
		})
	}

	t.Run("time window and paging", func(t *testing.T) {
		future := time.Now().Add(time.Hour)
		entries, err := repo.Query(ctx, LogQueryOptions{StartTime: &future})
		require.NoError(t, err)
		assert.Empty(t, entries)

		entries, err = repo.Query(ctx, LogQueryOptions{Limit: 2, Skip: 1})
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})
}
