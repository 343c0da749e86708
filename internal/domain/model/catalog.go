// Package model defines the core domain entities for the coffee builder.
package model

import (
	"fmt"
	"strings"
)

// Category identifies a selection group of the configurator.
type Category string

const (
	// CategoryFlavor is the single-choice coffee flavor group.
	CategoryFlavor Category = "flavor"
	// CategoryGrind is the single-choice grind type group.
	CategoryGrind Category = "grind"
	// CategorySize is the single-choice cup size group.
	CategorySize Category = "size"
	// CategoryMilk is the single-choice milk alternative group.
	CategoryMilk Category = "milk"
	// CategorySyrups is the multi-choice flavored syrup group.
	CategorySyrups Category = "syrups"
	// CategoryToppings is the multi-choice topping group.
	CategoryToppings Category = "toppings"
)

// SingleCategories lists the single-choice categories in display order.
var SingleCategories = []Category{CategoryFlavor, CategoryGrind, CategorySize, CategoryMilk}

// MultiCategories lists the multi-choice categories in display order.
var MultiCategories = []Category{CategorySyrups, CategoryToppings}

// IsSingle reports whether c is a single-choice category.
func (c Category) IsSingle() bool {
	switch c {
	case CategoryFlavor, CategoryGrind, CategorySize, CategoryMilk:
		return true
	}
	return false
}

// IsMulti reports whether c is a multi-choice category.
func (c Category) IsMulti() bool {
	return c == CategorySyrups || c == CategoryToppings
}

// Option is a member of a single-choice catalog.
//
// @Description Single-choice option (flavor, grind, size or milk)
type Option struct {
	// ID is unique within its catalog
	ID string `json:"id" bson:"id" example:"dark"`
	// Name is the display name
	Name string `json:"name" bson:"name" example:"Dark"`
	// Description is display text only
	Description string `json:"description,omitempty" bson:"description,omitempty" example:"Rich, bold dark roast with intense flavor"`
	// Price is the surcharge in minor currency units
	Price int `json:"price" bson:"price" example:"25"`
	// IsBaseline marks the zero-cost default selection
	IsBaseline bool `json:"is_baseline,omitempty" bson:"is_baseline,omitempty"`
	// Free renders a "Free" badge instead of a price. It has no pricing meaning.
	Free bool `json:"free,omitempty" bson:"free,omitempty"`
} // @name Option

// Addon is a member of a multi-choice catalog.
//
// @Description Multi-choice add-on (syrup or topping)
type Addon struct {
	ID    string `json:"id" bson:"id" example:"vanilla"`
	Name  string `json:"name" bson:"name" example:"Vanilla"`
	Price int    `json:"price" bson:"price" example:"30"`
} // @name Addon

// Catalogs bundles the six reference catalogs and the base beverage price.
//
// @Description Complete price table used by the configurator
type Catalogs struct {
	BasePrice int      `json:"base_price" bson:"base_price" example:"120"`
	Flavors   []Option `json:"flavors" bson:"flavors"`
	Grinds    []Option `json:"grinds" bson:"grinds"`
	Sizes     []Option `json:"sizes" bson:"sizes"`
	Milks     []Option `json:"milks" bson:"milks"`
	Syrups    []Addon  `json:"syrups" bson:"syrups"`
	Toppings  []Addon  `json:"toppings" bson:"toppings"`
} // @name Catalogs

// Options returns the single-choice catalog for c, or nil.
func (c *Catalogs) Options(category Category) []Option {
	switch category {
	case CategoryFlavor:
		return c.Flavors
	case CategoryGrind:
		return c.Grinds
	case CategorySize:
		return c.Sizes
	case CategoryMilk:
		return c.Milks
	}
	return nil
}

// Addons returns the multi-choice catalog for c, or nil.
func (c *Catalogs) Addons(category Category) []Addon {
	switch category {
	case CategorySyrups:
		return c.Syrups
	case CategoryToppings:
		return c.Toppings
	}
	return nil
}

// Clone returns a deep copy so callers cannot mutate a configurator's catalogs.
func (c Catalogs) Clone() Catalogs {
	return Catalogs{
		BasePrice: c.BasePrice,
		Flavors:   append([]Option(nil), c.Flavors...),
		Grinds:    append([]Option(nil), c.Grinds...),
		Sizes:     append([]Option(nil), c.Sizes...),
		Milks:     append([]Option(nil), c.Milks...),
		Syrups:    append([]Addon(nil), c.Syrups...),
		Toppings:  append([]Addon(nil), c.Toppings...),
	}
}

// CatalogValidationError lists every problem found in a catalog set.
type CatalogValidationError struct {
	Problems []string
}

// Error returns the joined list of problems.
func (e *CatalogValidationError) Error() string {
	return "invalid catalog: " + strings.Join(e.Problems, "; ")
}

// Validate checks that ids and names are present, ids are unique per catalog
// and that no price is negative. Baseline uniqueness is not enforced.
func (c *Catalogs) Validate() error {
	var problems []string
	if c.BasePrice < 0 {
		problems = append(problems, "base_price: must not be negative")
	}

	for _, category := range SingleCategories {
		seen := make(map[string]bool)
		for i, opt := range c.Options(category) {
			problems = append(problems, entryProblems(category, i, opt.ID, opt.Name, opt.Price, seen)...)
		}
	}
	for _, category := range MultiCategories {
		seen := make(map[string]bool)
		for i, addon := range c.Addons(category) {
			problems = append(problems, entryProblems(category, i, addon.ID, addon.Name, addon.Price, seen)...)
		}
	}

	if len(problems) > 0 {
		return &CatalogValidationError{Problems: problems}
	}
	return nil
}

func entryProblems(category Category, idx int, id, name string, price int, seen map[string]bool) []string {
	var problems []string
	prefix := fmt.Sprintf("%s[%d]", category, idx)
	if id == "" {
		problems = append(problems, prefix+".id: is required")
	} else if seen[id] {
		problems = append(problems, fmt.Sprintf("%s.id: duplicate id %q", prefix, id))
	}
	seen[id] = true
	if name == "" {
		problems = append(problems, prefix+".name: is required")
	}
	if price < 0 {
		problems = append(problems, prefix+".price: must not be negative")
	}
	return problems
}
