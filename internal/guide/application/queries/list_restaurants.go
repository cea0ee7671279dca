package queries

import (
	"context"

	"github.com/felixgeelhaar/resto/internal/guide/domain/restaurant"
)

// ListRestaurantsQuery filters the directory. At most one filter applies, in
// the order name, city fragment, type; with none set all restaurants are
// returned.
type ListRestaurantsQuery struct {
	Name         string
	CityFragment string
	TypeID       *int64
}

// ListRestaurantsHandler handles directory listings.
type ListRestaurantsHandler struct {
	restaurantRepo restaurant.Repository
}

// NewListRestaurantsHandler creates a new ListRestaurantsHandler.
func NewListRestaurantsHandler(restaurantRepo restaurant.Repository) *ListRestaurantsHandler {
	return &ListRestaurantsHandler{restaurantRepo: restaurantRepo}
}

// Execute returns fully resolved restaurants matching the query.
func (h *ListRestaurantsHandler) Execute(ctx context.Context, query ListRestaurantsQuery) ([]RestaurantDTO, error) {
	var (
		restaurants []*restaurant.Restaurant
		err         error
	)

	switch {
	case query.Name != "":
		restaurants, err = h.restaurantRepo.FindByName(ctx, query.Name)
	case query.CityFragment != "":
		restaurants, err = h.restaurantRepo.FindByCityName(ctx, query.CityFragment)
	case query.TypeID != nil:
		restaurants, err = h.restaurantRepo.FindByType(ctx, *query.TypeID)
	default:
		restaurants, err = h.restaurantRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	return toRestaurantDTOs(restaurants), nil
}
