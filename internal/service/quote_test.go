package service

import (
	"context"
	"testing"

	"github.com/guttosm/coffee-builder/internal/domain/model"
	"github.com/guttosm/coffee-builder/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestQuoteService_Quote(t *testing.T) {
	tests := []struct {
		name          string
		state         model.SelectionState
		expectedTotal int
		expectedSnap  model.Snapshot
	}{
		{
			name:          "empty selection prices the baseline",
			state:         model.SelectionState{},
			expectedTotal: 120,
			expectedSnap:  model.Snapshot{Flavor: "Normal", Grind: "Whole Bean", Size: "Small", Milk: "None"},
		},
		{
			name: "full example order",
			state: model.SelectionState{
				Flavor: "dark", Grind: "fine", Size: "large", Milk: "oat",
				Syrups: []string{"vanilla", "caramel"},
			},
			expectedTotal: 325,
			expectedSnap:  model.Snapshot{Flavor: "Dark", Grind: "Fine", Size: "Large", Milk: "Oat Milk"},
		},
		{
			name:          "duplicate add-ons count once",
			state:         model.SelectionState{Syrups: []string{"vanilla", "vanilla"}},
			expectedTotal: 150,
			expectedSnap:  model.Snapshot{Flavor: "Normal", Grind: "Whole Bean", Size: "Small", Milk: "None"},
		},
		{
			name:          "unknown ids price as zero",
			state:         model.SelectionState{Flavor: "mocha", Toppings: []string{"gold-leaf"}},
			expectedTotal: 120,
			expectedSnap:  model.Snapshot{Flavor: model.UnresolvedName, Grind: "Whole Bean", Size: "Small", Milk: "None"},
		},
	}

	svc := NewQuoteService(NewCatalogService(nil, DefaultCatalogs()))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := svc.Quote(context.Background(), tt.state)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedTotal, quote.Total)
			assert.Equal(t, tt.expectedTotal, quote.Breakdown.Total)
			assert.Equal(t, tt.expectedSnap, quote.Snapshot)
			assert.Equal(t, ReferenceCatalogVersion, quote.CatalogVersion)
		})
	}
}

func TestQuoteService_UsesPublishedCatalog(t *testing.T) {
	repo := new(mocks.MockCatalogRepositoryInterface)
	repo.On("GetActive", mock.Anything).Return(publishedCatalog(7, 100), nil)

	svc := NewQuoteService(NewCatalogService(repo, DefaultCatalogs()))
	quote, err := svc.Quote(context.Background(), model.SelectionState{Size: "large"})

	require.NoError(t, err)
	assert.Equal(t, 7, quote.CatalogVersion)
	assert.Equal(t, 170, quote.Total)
}

func TestQuoteService_CancelledContext(t *testing.T) {
	repo := new(mocks.MockCatalogRepositoryInterface)
	repo.On("GetActive", mock.Anything).Return(nil, context.Canceled)
	svc := NewQuoteService(NewCatalogService(repo, DefaultCatalogs()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Quote(ctx, model.SelectionState{})
	assert.ErrorIs(t, err, context.Canceled)
}
