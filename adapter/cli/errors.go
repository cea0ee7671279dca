package cli

import (
	"errors"
	"fmt"

	"github.com/felixgeelhaar/resto/internal/guide/domain/city"
	"github.com/felixgeelhaar/resto/internal/guide/domain/criterion"
	"github.com/felixgeelhaar/resto/internal/guide/domain/gastrotype"
	"github.com/felixgeelhaar/resto/internal/guide/domain/restaurant"
	"github.com/felixgeelhaar/resto/internal/shared/domain"
)

// FormatError translates domain errors into messages a CLI user can act on.
func FormatError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, restaurant.ErrConcurrentModification):
		return errors.New("the restaurant was changed by someone else in the meantime; reload it and try again")
	case errors.Is(err, restaurant.ErrNotFound):
		return errors.New("restaurant not found")
	case errors.Is(err, city.ErrNotFound):
		return errors.New("city not found")
	case errors.Is(err, gastrotype.ErrNotFound):
		return errors.New("restaurant type not found")
	case errors.Is(err, criterion.ErrNotFound):
		return errors.New("evaluation criterion not found")
	case errors.Is(err, domain.ErrValidation):
		return fmt.Errorf("invalid input: %w", err)
	default:
		return err
	}
}
