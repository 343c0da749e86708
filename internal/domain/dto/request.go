// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model and carry the
// validation applied to API input.
package dto

import (
	"fmt"
	"strings"

	"github.com/guttosm/coffee-builder/internal/domain/model"
)

// maxAddons bounds the add-on lists accepted in one request.
const maxAddons = 32

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrInvalidSingleCategory is returned when a selection names a non single-choice category.
	ErrInvalidSingleCategory = &ValidationError{
		Field:   "category",
		Message: "must be one of flavor, grind, size, milk",
	}
	// ErrInvalidMultiCategory is returned when a toggle names a non multi-choice category.
	ErrInvalidMultiCategory = &ValidationError{
		Field:   "category",
		Message: "must be one of syrups, toppings",
	}
	// ErrBlankID is returned when a select or toggle id is empty or whitespace.
	ErrBlankID = &ValidationError{
		Field:   "id",
		Message: "must not be blank",
	}
)

// QuoteRequest represents the JSON request body for the quote endpoint.
// Omitted single-choice fields keep the baseline option.
//
// @Description Selections to price in one call
// @Example {"flavor": "dark", "grind": "fine", "size": "large", "milk": "oat", "syrups": ["vanilla"], "toppings": ["whipped-cream"]}
type QuoteRequest struct {
	Flavor   string   `json:"flavor,omitempty" example:"dark"`
	Grind    string   `json:"grind,omitempty" example:"fine"`
	Size     string   `json:"size,omitempty" example:"large"`
	Milk     string   `json:"milk,omitempty" example:"oat"`
	Syrups   []string `json:"syrups,omitempty" example:"vanilla"`
	Toppings []string `json:"toppings,omitempty" example:"whipped-cream"`
} // @name QuoteRequest

// Validate rejects oversized or blank add-on lists. Unknown ids are not an error.
func (r *QuoteRequest) Validate() error {
	if err := validateAddonIDs("syrups", r.Syrups); err != nil {
		return err
	}
	return validateAddonIDs("toppings", r.Toppings)
}

func validateAddonIDs(field string, ids []string) error {
	if len(ids) > maxAddons {
		return &ValidationError{Field: field, Message: fmt.Sprintf("at most %d entries allowed", maxAddons)}
	}
	for i, id := range ids {
		if isBlank(id) {
			return &ValidationError{Field: fmt.Sprintf("%s[%d]", field, i), Message: "must not be empty"}
		}
	}
	return nil
}

func isBlank(id string) bool {
	return strings.TrimSpace(id) == ""
}

// ToState converts the request into a selection state.
func (r *QuoteRequest) ToState() model.SelectionState {
	return model.SelectionState{
		Flavor:   r.Flavor,
		Grind:    r.Grind,
		Size:     r.Size,
		Milk:     r.Milk,
		Syrups:   r.Syrups,
		Toppings: r.Toppings,
	}
}

// SelectRequest chooses an option of a single-choice category.
//
// @Description Choose one option for flavor, grind, size or milk
// @Example {"category": "size", "id": "large"}
type SelectRequest struct {
	Category string `json:"category" binding:"required" example:"size" enums:"flavor,grind,size,milk"`
	ID       string `json:"id" binding:"required" example:"large"`
} // @name SelectRequest

// Validate checks the category is single-choice.
func (r *SelectRequest) Validate() error {
	if !model.Category(r.Category).IsSingle() {
		return ErrInvalidSingleCategory
	}
	if isBlank(r.ID) {
		return ErrBlankID
	}
	return nil
}

// ToggleRequest flips an add-on of a multi-choice category.
//
// @Description Add or remove one syrup or topping
// @Example {"category": "syrups", "id": "vanilla"}
type ToggleRequest struct {
	Category string `json:"category" binding:"required" example:"syrups" enums:"syrups,toppings"`
	ID       string `json:"id" binding:"required" example:"vanilla"`
} // @name ToggleRequest

// Validate checks the category is multi-choice.
func (r *ToggleRequest) Validate() error {
	if !model.Category(r.Category).IsMulti() {
		return ErrInvalidMultiCategory
	}
	if isBlank(r.ID) {
		return ErrBlankID
	}
	return nil
}

// PublishCatalogRequest is the JSON body for publishing a new catalog version.
//
// @Description Complete price table to publish as the new active version
type PublishCatalogRequest struct {
	model.Catalogs
} // @name PublishCatalogRequest

// Validate requires every single-choice catalog to be non-empty on top of the
// catalog's own consistency checks.
func (r *PublishCatalogRequest) Validate() error {
	for _, category := range model.SingleCategories {
		if len(r.Options(category)) == 0 {
			return &ValidationError{Field: string(category), Message: "at least one option is required"}
		}
	}
	return r.Catalogs.Validate()
}
