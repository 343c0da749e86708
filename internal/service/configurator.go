package service

import (
	"errors"
	"fmt"
	"sort"

	"github.com/guttosm/coffee-builder/internal/domain/model"
)

var (
	// ErrInvalidCategory is wrapped by every category mismatch error.
	ErrInvalidCategory = errors.New("invalid category")
	// ErrNotSingleCategory is returned when SelectSingle receives a multi-choice or unknown category.
	ErrNotSingleCategory = fmt.Errorf("%w: not a single-choice category", ErrInvalidCategory)
	// ErrNotMultiCategory is returned when ToggleMulti receives a single-choice or unknown category.
	ErrNotMultiCategory = fmt.Errorf("%w: not a multi-choice category", ErrInvalidCategory)
)

// DefaultBasePrice is the price of the plain beverage before any option.
const DefaultBasePrice = 120

// Configurator defines the selection-and-pricing operations.
type Configurator interface {
	SelectSingle(category model.Category, id string) error
	ToggleMulti(category model.Category, id string) error
	ComputeTotal() int
	Snapshot() model.Snapshot
	Breakdown() model.Breakdown
	State() model.SelectionState
}

// ConfiguratorOption configures a PriceConfigurator.
type ConfiguratorOption func(*PriceConfigurator)

// WithBasePrice overrides the base price carried by the catalogs.
func WithBasePrice(price int) ConfiguratorOption {
	return func(p *PriceConfigurator) {
		if price >= 0 {
			p.basePrice = price
		}
	}
}

type optionIndex map[string]model.Option

type addonIndex map[string]model.Addon

// PriceConfigurator holds a selection state over six immutable catalogs and
// prices it. It is not safe for concurrent use.
type PriceConfigurator struct {
	catalogs  model.Catalogs
	basePrice int

	options map[model.Category]optionIndex
	addons  map[model.Category]addonIndex

	single   map[model.Category]string
	multi    map[model.Category]map[string]struct{}
	baseline map[model.Category]string
}

// NewPriceConfigurator builds the id lookups once and starts with baseline selections.
func NewPriceConfigurator(catalogs model.Catalogs, opts ...ConfiguratorOption) *PriceConfigurator {
	p := &PriceConfigurator{
		catalogs:  catalogs.Clone(),
		basePrice: catalogs.BasePrice,
		options:   make(map[model.Category]optionIndex, len(model.SingleCategories)),
		addons:    make(map[model.Category]addonIndex, len(model.MultiCategories)),
		single:    make(map[model.Category]string, len(model.SingleCategories)),
		multi:     make(map[model.Category]map[string]struct{}, len(model.MultiCategories)),
		baseline:  make(map[model.Category]string, len(model.SingleCategories)),
	}

	for _, opt := range opts {
		opt(p)
	}

	for _, category := range model.SingleCategories {
		entries := p.catalogs.Options(category)
		idx := make(optionIndex, len(entries))
		for _, o := range entries {
			// first occurrence wins
			if _, dup := idx[o.ID]; !dup {
				idx[o.ID] = o
			}
		}
		p.options[category] = idx
		p.baseline[category] = baselineID(entries)
	}

	for _, category := range model.MultiCategories {
		entries := p.catalogs.Addons(category)
		idx := make(addonIndex, len(entries))
		for _, a := range entries {
			if _, dup := idx[a.ID]; !dup {
				idx[a.ID] = a
			}
		}
		p.addons[category] = idx
	}

	p.Reset()
	return p
}

// baselineID returns the first option flagged as baseline, or "" when none is.
func baselineID(entries []model.Option) string {
	for _, o := range entries {
		if o.IsBaseline {
			return o.ID
		}
	}
	return ""
}

// Reset restores baseline selections and empties every add-on set.
func (p *PriceConfigurator) Reset() {
	for _, category := range model.SingleCategories {
		p.single[category] = p.baseline[category]
	}
	for _, category := range model.MultiCategories {
		p.multi[category] = make(map[string]struct{})
	}
}

// SelectSingle replaces the chosen id for a single-choice category.
// Unknown ids are accepted and price as zero.
func (p *PriceConfigurator) SelectSingle(category model.Category, id string) error {
	if !category.IsSingle() {
		return ErrNotSingleCategory
	}
	p.single[category] = id
	return nil
}

// ToggleMulti adds id to the category's set, or removes it when already present.
func (p *PriceConfigurator) ToggleMulti(category model.Category, id string) error {
	if !category.IsMulti() {
		return ErrNotMultiCategory
	}
	set := p.multi[category]
	if _, ok := set[id]; ok {
		delete(set, id)
	} else {
		set[id] = struct{}{}
	}
	return nil
}

// Apply sets every non-empty single-choice id from state and replaces each
// add-on set with the ids listed in state.
func (p *PriceConfigurator) Apply(state model.SelectionState) {
	for _, category := range model.SingleCategories {
		if id := state.Single(category); id != "" {
			p.single[category] = id
		}
	}
	for _, category := range model.MultiCategories {
		set := make(map[string]struct{})
		for _, id := range state.Multi(category) {
			set[id] = struct{}{}
		}
		p.multi[category] = set
	}
}

// ComputeTotal returns the base price plus every selection's price.
func (p *PriceConfigurator) ComputeTotal() int {
	total := p.basePrice
	for _, category := range model.SingleCategories {
		total += p.options[category][p.single[category]].Price
	}
	for _, category := range model.MultiCategories {
		idx := p.addons[category]
		for id := range p.multi[category] {
			total += idx[id].Price
		}
	}
	return total
}

// Snapshot resolves the single-choice selections to their display names.
func (p *PriceConfigurator) Snapshot() model.Snapshot {
	return model.Snapshot{
		Flavor: p.optionName(model.CategoryFlavor),
		Grind:  p.optionName(model.CategoryGrind),
		Size:   p.optionName(model.CategorySize),
		Milk:   p.optionName(model.CategoryMilk),
	}
}

func (p *PriceConfigurator) optionName(category model.Category) string {
	if o, ok := p.options[category][p.single[category]]; ok {
		return o.Name
	}
	return model.UnresolvedName
}

// Breakdown itemizes all six categories. Single-choice lines come first in
// category order, then add-ons sorted by id.
func (p *PriceConfigurator) Breakdown() model.Breakdown {
	b := model.Breakdown{BasePrice: p.basePrice}

	for _, category := range model.SingleCategories {
		id := p.single[category]
		item := model.LineItem{Category: category, ID: id, Name: model.UnresolvedName}
		if o, ok := p.options[category][id]; ok {
			item.Name = o.Name
			item.Price = o.Price
		}
		b.Items = append(b.Items, item)
	}

	for _, category := range model.MultiCategories {
		idx := p.addons[category]
		for _, id := range sortedIDs(p.multi[category]) {
			item := model.LineItem{Category: category, ID: id, Name: model.UnresolvedName}
			if a, ok := idx[id]; ok {
				item.Name = a.Name
				item.Price = a.Price
			}
			b.Items = append(b.Items, item)
		}
	}

	b.Total = b.Sum()
	return b
}

// State returns a copy of the current selections with add-on ids sorted.
func (p *PriceConfigurator) State() model.SelectionState {
	return model.SelectionState{
		Flavor:   p.single[model.CategoryFlavor],
		Grind:    p.single[model.CategoryGrind],
		Size:     p.single[model.CategorySize],
		Milk:     p.single[model.CategoryMilk],
		Syrups:   sortedIDs(p.multi[model.CategorySyrups]),
		Toppings: sortedIDs(p.multi[model.CategoryToppings]),
	}
}

// Catalogs returns a copy of the catalogs the configurator prices against.
func (p *PriceConfigurator) Catalogs() model.Catalogs {
	c := p.catalogs.Clone()
	c.BasePrice = p.basePrice
	return c
}

func sortedIDs(set map[string]struct{}) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
