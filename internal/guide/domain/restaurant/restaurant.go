// Package restaurant contains the Restaurant aggregate and its evaluations.
package restaurant

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/resto/internal/shared/domain"

	"github.com/felixgeelhaar/resto/internal/guide/domain/city"
	"github.com/felixgeelhaar/resto/internal/guide/domain/gastrotype"
)

// Validation errors for the restaurant aggregate.
var (
	ErrEmptyName   = fmt.Errorf("%w: restaurant name cannot be empty", domain.ErrValidation)
	ErrMissingCity = fmt.Errorf("%w: restaurant city is required", domain.ErrValidation)
	ErrMissingType = fmt.Errorf("%w: restaurant type is required", domain.ErrValidation)
)

// Restaurant is the aggregate root of the directory. It exclusively owns its
// evaluations: deleting the restaurant deletes them, and detaching an
// evaluation from the collections deletes it from storage on the next update.
type Restaurant struct {
	domain.BaseAggregateRoot
	name        string
	description string
	website     string
	street      string
	city        *city.City
	rtype       *gastrotype.RestaurantType
	basics      []*BasicEvaluation
	completes   []*CompleteEvaluation
}

// NewRestaurant creates a transient restaurant at version zero.
func NewRestaurant(name, description, website, street string, c *city.City, t *gastrotype.RestaurantType) (*Restaurant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if c == nil {
		return nil, ErrMissingCity
	}
	if t == nil {
		return nil, ErrMissingType
	}

	return &Restaurant{
		BaseAggregateRoot: domain.NewBaseAggregateRoot(),
		name:              name,
		description:       strings.TrimSpace(description),
		website:           strings.TrimSpace(website),
		street:            strings.TrimSpace(street),
		city:              c,
		rtype:             t,
	}, nil
}

// Rehydrate recreates a restaurant from persisted state. Evaluations are
// attached separately by the storage layer.
func Rehydrate(id, version int64, name, description, website, street string, c *city.City, t *gastrotype.RestaurantType) *Restaurant {
	return &Restaurant{
		BaseAggregateRoot: domain.RehydrateBaseAggregateRoot(id, version),
		name:              name,
		description:       description,
		website:           website,
		street:            street,
		city:              c,
		rtype:             t,
	}
}

func (r *Restaurant) Name() string                       { return r.name }
func (r *Restaurant) Description() string                { return r.description }
func (r *Restaurant) Website() string                    { return r.website }
func (r *Restaurant) Street() string                     { return r.street }
func (r *Restaurant) City() *city.City                   { return r.city }
func (r *Restaurant) Type() *gastrotype.RestaurantType   { return r.rtype }
func (r *Restaurant) BasicEvaluations() []*BasicEvaluation {
	return r.basics
}
func (r *Restaurant) CompleteEvaluations() []*CompleteEvaluation {
	return r.completes
}

// UpdateDetails changes name, description, website and optionally the type.
// Passing a nil type keeps the current classification.
func (r *Restaurant) UpdateDetails(name, description, website string, t *gastrotype.RestaurantType) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	r.name = name
	r.description = strings.TrimSpace(description)
	r.website = strings.TrimSpace(website)
	if t != nil {
		r.rtype = t
	}

	r.AddDomainEvent(NewDetailsUpdated(r))
	return nil
}

// Relocate moves the restaurant to a new street and city.
func (r *Restaurant) Relocate(street string, c *city.City) error {
	if c == nil {
		return ErrMissingCity
	}

	r.street = strings.TrimSpace(street)
	r.city = c

	r.AddDomainEvent(NewRelocated(r))
	return nil
}

// AddBasicEvaluation attaches a like or dislike to the restaurant.
func (r *Restaurant) AddBasicEvaluation(e *BasicEvaluation) {
	e.restaurantID = r.ID()
	r.basics = append(r.basics, e)
	r.AddDomainEvent(NewBasicEvaluationAdded(r, e))
}

// AddCompleteEvaluation attaches a commentary. The evaluation must carry at
// least one grade; an empty submission is rejected before anything changes.
func (r *Restaurant) AddCompleteEvaluation(e *CompleteEvaluation) error {
	if len(e.grades) == 0 {
		return ErrNoGrades
	}

	e.restaurantID = r.ID()
	r.completes = append(r.completes, e)
	r.AddDomainEvent(NewCompleteEvaluationAdded(r, e))
	return nil
}

// Evaluations returns the live union view over both evaluation collections.
func (r *Restaurant) Evaluations() *EvaluationSet {
	return &EvaluationSet{basics: &r.basics, completes: &r.completes}
}

// SetEvaluations replaces both collections with the given evaluations,
// partitioned by variant.
func (r *Restaurant) SetEvaluations(evaluations []Evaluation) {
	r.Evaluations().Replace(evaluations)
}
