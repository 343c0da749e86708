package service

import (
	"context"
	"time"

	"github.com/guttosm/coffee-builder/internal/domain/model"
	"github.com/guttosm/coffee-builder/internal/metrics"
)

// QuoteService prices a complete selection without keeping any state.
type QuoteService interface {
	Quote(ctx context.Context, state model.SelectionState) (*model.Quote, error)
}

// QuoteServiceImpl implements QuoteService on the active catalog.
type QuoteServiceImpl struct {
	catalogs CatalogService
	opts     []ConfiguratorOption
}

// NewQuoteService creates a new quote service.
func NewQuoteService(catalogs CatalogService, opts ...ConfiguratorOption) *QuoteServiceImpl {
	return &QuoteServiceImpl{catalogs: catalogs, opts: opts}
}

// Quote applies state over baseline defaults and prices it. Empty single-choice
// ids keep the baseline; unknown ids price as zero.
func (s *QuoteServiceImpl) Quote(ctx context.Context, state model.SelectionState) (*model.Quote, error) {
	start := time.Now()

	catalogs, version, err := s.catalogs.GetActive(ctx)
	if err != nil {
		metrics.RecordQuote(time.Since(start), 0, "error")
		return nil, err
	}

	p := NewPriceConfigurator(*catalogs, s.opts...)
	p.Apply(state)
	quote := quoteOf(p, version)

	metrics.RecordQuote(time.Since(start), quote.Total, "success")
	return &quote, nil
}
