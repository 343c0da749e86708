package model

// UnresolvedName is returned in place of a display name when an id is not in its catalog.
const UnresolvedName = "unresolved"

// SelectionState is the user's current choice in every category.
//
// @Description Current selections; single-choice ids plus add-on id sets
type SelectionState struct {
	Flavor   string   `json:"flavor" example:"dark"`
	Grind    string   `json:"grind" example:"fine"`
	Size     string   `json:"size" example:"large"`
	Milk     string   `json:"milk" example:"oat"`
	Syrups   []string `json:"syrups" example:"vanilla,caramel"`
	Toppings []string `json:"toppings"`
} // @name SelectionState

// Single returns the selected id for a single-choice category.
func (s SelectionState) Single(category Category) string {
	switch category {
	case CategoryFlavor:
		return s.Flavor
	case CategoryGrind:
		return s.Grind
	case CategorySize:
		return s.Size
	case CategoryMilk:
		return s.Milk
	}
	return ""
}

// Multi returns the selected ids for a multi-choice category.
func (s SelectionState) Multi(category Category) []string {
	switch category {
	case CategorySyrups:
		return s.Syrups
	case CategoryToppings:
		return s.Toppings
	}
	return nil
}

// Snapshot holds the resolved display names of the single-choice selections.
//
// @Description Names of the current single-choice selections for preview
type Snapshot struct {
	Flavor string `json:"flavor" example:"Dark"`
	Grind  string `json:"grind" example:"Fine"`
	Size   string `json:"size" example:"Large"`
	Milk   string `json:"milk" example:"Oat Milk"`
} // @name Snapshot

// LineItem is a single priced contribution to the total.
//
// @Description One line of the order summary
type LineItem struct {
	Category Category `json:"category" example:"size"`
	ID       string   `json:"id,omitempty" example:"large"`
	Name     string   `json:"name" example:"Large"`
	Price    int      `json:"price" example:"70"`
} // @name LineItem

// Breakdown itemizes the base price and every selection's contribution.
//
// @Description Itemized order summary with total
type Breakdown struct {
	BasePrice int        `json:"base_price" example:"120"`
	Items     []LineItem `json:"items"`
	Total     int        `json:"total" example:"325"`
} // @name Breakdown

// Sum adds the base price and every line item.
func (b Breakdown) Sum() int {
	total := b.BasePrice
	for _, item := range b.Items {
		total += item.Price
	}
	return total
}

// Quote is a fully priced selection against one catalog version.
//
// @Description Priced selection with preview and itemized summary
type Quote struct {
	CatalogVersion int            `json:"catalog_version" example:"0"`
	State          SelectionState `json:"state"`
	Snapshot       Snapshot       `json:"snapshot"`
	Breakdown      Breakdown      `json:"breakdown"`
	Total          int            `json:"total" example:"325"`
} // @name Quote
