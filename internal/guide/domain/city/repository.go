package city

import (
	"errors"

	"github.com/felixgeelhaar/resto/internal/shared/domain"
)

// ErrNotFound is returned when a city does not exist.
var ErrNotFound = errors.New("city not found")

// Repository persists cities. FindAll orders by name.
type Repository interface {
	domain.Repository[*City]
}
