// Package city contains the City aggregate.
package city

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/resto/internal/shared/domain"
)

// ErrEmptyZipCode is returned when a city is created without a postal code.
var ErrEmptyZipCode = fmt.Errorf("%w: city zip code cannot be empty", domain.ErrValidation)

// ErrEmptyName is returned when a city is created without a name.
var ErrEmptyName = fmt.Errorf("%w: city name cannot be empty", domain.ErrValidation)

// City is a place restaurants are located in. Cities do not own their
// restaurants; deleting a city never cascades to them. Uniqueness of
// zip code and name is a caller concern, not enforced here.
type City struct {
	domain.BaseAggregateRoot
	zipCode string
	name    string
}

// NewCity creates a transient city.
func NewCity(zipCode, name string) (*City, error) {
	zipCode = strings.TrimSpace(zipCode)
	name = strings.TrimSpace(name)

	if zipCode == "" {
		return nil, ErrEmptyZipCode
	}
	if name == "" {
		return nil, ErrEmptyName
	}

	return &City{
		BaseAggregateRoot: domain.NewBaseAggregateRoot(),
		zipCode:           zipCode,
		name:              name,
	}, nil
}

// Rehydrate recreates a city from persisted state.
func Rehydrate(id int64, zipCode, name string) *City {
	return &City{
		BaseAggregateRoot: domain.RehydrateBaseAggregateRoot(id, 0),
		zipCode:           zipCode,
		name:              name,
	}
}

// ZipCode returns the postal code.
func (c *City) ZipCode() string { return c.zipCode }

// Name returns the city name.
func (c *City) Name() string { return c.name }
