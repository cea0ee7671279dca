// Package criterion contains the EvaluationCriterion aggregate.
package criterion

import (
	"errors"
	"fmt"
	"strings"

	"github.com/felixgeelhaar/resto/internal/shared/domain"
)

// ErrEmptyName is returned when a criterion is created without a name.
var ErrEmptyName = fmt.Errorf("%w: criterion name cannot be empty", domain.ErrValidation)

// ErrNotFound is returned when a criterion does not exist.
var ErrNotFound = errors.New("evaluation criterion not found")

// Criterion is a rated aspect of a restaurant visit, such as service or
// cuisine. Grades reference criteria but never own them.
type Criterion struct {
	domain.BaseAggregateRoot
	name        string
	description string
}

// NewCriterion creates a transient criterion.
func NewCriterion(name, description string) (*Criterion, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Criterion{
		BaseAggregateRoot: domain.NewBaseAggregateRoot(),
		name:              name,
		description:       strings.TrimSpace(description),
	}, nil
}

// Rehydrate recreates a criterion from persisted state.
func Rehydrate(id int64, name, description string) *Criterion {
	return &Criterion{
		BaseAggregateRoot: domain.RehydrateBaseAggregateRoot(id, 0),
		name:              name,
		description:       description,
	}
}

// Name returns the unique criterion name.
func (c *Criterion) Name() string { return c.name }

// Description returns the criterion description.
func (c *Criterion) Description() string { return c.description }

// Repository persists criteria. FindAll orders by name.
type Repository interface {
	domain.Repository[*Criterion]
}
