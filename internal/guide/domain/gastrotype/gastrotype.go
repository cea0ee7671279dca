// Package gastrotype contains the RestaurantType aggregate.
package gastrotype

import (
	"errors"
	"fmt"
	"strings"

	"github.com/felixgeelhaar/resto/internal/shared/domain"
)

// ErrEmptyLabel is returned when a type is created without a label.
var ErrEmptyLabel = fmt.Errorf("%w: restaurant type label cannot be empty", domain.ErrValidation)

// ErrNotFound is returned when a restaurant type does not exist.
var ErrNotFound = errors.New("restaurant type not found")

// RestaurantType classifies restaurants by kind of cuisine. The label is
// unique; the storage layer enforces it through its constraint and reports a
// violation as a storage failure.
type RestaurantType struct {
	domain.BaseAggregateRoot
	label       string
	description string
}

// NewRestaurantType creates a transient restaurant type.
func NewRestaurantType(label, description string) (*RestaurantType, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, ErrEmptyLabel
	}

	return &RestaurantType{
		BaseAggregateRoot: domain.NewBaseAggregateRoot(),
		label:             label,
		description:       strings.TrimSpace(description),
	}, nil
}

// Rehydrate recreates a restaurant type from persisted state.
func Rehydrate(id int64, label, description string) *RestaurantType {
	return &RestaurantType{
		BaseAggregateRoot: domain.RehydrateBaseAggregateRoot(id, 0),
		label:             label,
		description:       description,
	}
}

// Label returns the unique type label.
func (t *RestaurantType) Label() string { return t.label }

// Description returns the type description.
func (t *RestaurantType) Description() string { return t.description }

// Repository persists restaurant types. FindAll orders by label.
type Repository interface {
	domain.Repository[*RestaurantType]
}
