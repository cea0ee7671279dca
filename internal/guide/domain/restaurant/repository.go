package restaurant

import (
	"context"
	"errors"

	"github.com/felixgeelhaar/resto/internal/shared/domain"
)

// ErrNotFound is returned when a restaurant does not exist.
var ErrNotFound = errors.New("restaurant not found")

// ErrConcurrentModification is returned when a mutation observes a version
// other than the one it expected, either at the pre-write check or when the
// conditional write affects zero rows. The caller should reload and retry.
var ErrConcurrentModification = errors.New("restaurant was modified concurrently")

// Repository persists restaurants with their full aggregate: city, type and
// both evaluation collections are always loaded.
//
// Update and Delete are conditional on the aggregate's version. A write that
// loses the race returns ErrConcurrentModification and leaves the stored row
// untouched; a winning write advances the version by exactly one.
type Repository interface {
	domain.Repository[*Restaurant]

	// FindByName returns restaurants whose name matches exactly, ordered by id.
	FindByName(ctx context.Context, name string) ([]*Restaurant, error)

	// FindByCityName returns restaurants whose city name contains the
	// fragment, case-insensitively, ordered by name.
	FindByCityName(ctx context.Context, fragment string) ([]*Restaurant, error)

	// FindByType returns restaurants classified by the type, ordered by name.
	FindByType(ctx context.Context, typeID int64) ([]*Restaurant, error)
}
