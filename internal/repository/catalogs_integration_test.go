//go:build integration

package repository

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/guttosm/coffee-builder/internal/circuitbreaker"
	"github.com/guttosm/coffee-builder/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalogs(basePrice int) model.Catalogs {
	return model.Catalogs{
		BasePrice: basePrice,
		Flavors:   []model.Option{{ID: "normal", Name: "Normal", IsBaseline: true, Free: true}, {ID: "dark", Name: "Dark", Price: 25}},
		Grinds:    []model.Option{{ID: "whole-bean", Name: "Whole Bean", IsBaseline: true}},
		Sizes:     []model.Option{{ID: "small", Name: "Small", IsBaseline: true}},
		Milks:     []model.Option{{ID: "none", Name: "None", IsBaseline: true}},
		Syrups:    []model.Addon{{ID: "vanilla", Name: "Vanilla", Price: 30}},
		Toppings:  []model.Addon{{ID: "honey", Name: "Honey", Price: 20}},
	}
}

func TestCatalogRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewCatalogRepository(db)

	t.Run("no active catalog before first publish", func(t *testing.T) {
		active, err := repo.GetActive(ctx)
		require.NoError(t, err)
		assert.Nil(t, active)

		history, err := repo.List(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("publish assigns increasing versions", func(t *testing.T) {
		first, err := repo.Create(ctx, testCatalogs(120), "seed")
		require.NoError(t, err)
		assert.Equal(t, 1, first.Version)
		assert.True(t, first.Active)

		second, err := repo.Create(ctx, testCatalogs(150), "admin")
		require.NoError(t, err)
		assert.Equal(t, 2, second.Version)

		active, err := repo.GetActive(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, 2, active.Version)
		assert.Equal(t, 150, active.Catalogs.BasePrice)
		assert.Equal(t, "admin", active.CreatedBy)
		assert.Equal(t, testCatalogs(150).Flavors, active.Catalogs.Flavors)
	})

	t.Run("list is newest first and only one version is active", func(t *testing.T) {
		history, err := repo.List(ctx, 0)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, 2, history[0].Version)
		assert.True(t, history[0].Active)
		assert.Equal(t, 1, history[1].Version)
		assert.False(t, history[1].Active)
	})

	t.Run("list honours limit", func(t *testing.T) {
		history, err := repo.List(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, history, 1)
	})
}

func TestCatalogRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	cb := circuitbreaker.New(circuitbreaker.Config{Name: "catalogs-it"})
	repo := NewCatalogRepositoryWithCircuitBreaker(NewCatalogRepository(db), cb)

	created, err := repo.Create(ctx, testCatalogs(130), "admin")
	require.NoError(t, err)

	active, err := repo.GetActive(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, created.Version, active.Version)
	assert.Equal(t, "closed", repo.GetCircuitBreaker().GetStats().State)
}

func TestCatalogRepository_ConcurrentPublish_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewCatalogRepository(db)
	const publishers = 4

	var wg sync.WaitGroup
	versions := make([]int, publishers)
	errs := make([]error, publishers)
	for i := 0; i < publishers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			created, err := repo.Create(ctx, testCatalogs(100+i), "admin")
			errs[i] = err
			if err == nil {
				versions[i] = created.Version
			}
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "publisher %d", i)
	}
	sort.Ints(versions)
	assert.Equal(t, []int{1, 2, 3, 4}, versions)

	history, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, history, publishers)

	activeCount := 0
	for _, config := range history {
		if config.Active {
			activeCount++
			assert.Equal(t, publishers, config.Version)
		}
	}
	assert.Equal(t, 1, activeCount)

	active, err := repo.GetActive(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, publishers, active.Version)
}
