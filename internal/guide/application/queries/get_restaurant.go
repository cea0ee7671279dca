package queries

import (
	"context"

	"github.com/felixgeelhaar/resto/internal/guide/domain/restaurant"
)

// GetRestaurantQuery fetches one restaurant with its evaluations.
type GetRestaurantQuery struct {
	RestaurantID int64
}

// GetRestaurantHandler handles single restaurant lookups.
type GetRestaurantHandler struct {
	restaurantRepo restaurant.Repository
}

// NewGetRestaurantHandler creates a new GetRestaurantHandler.
func NewGetRestaurantHandler(restaurantRepo restaurant.Repository) *GetRestaurantHandler {
	return &GetRestaurantHandler{restaurantRepo: restaurantRepo}
}

// Execute returns the fully resolved restaurant or restaurant.ErrNotFound.
func (h *GetRestaurantHandler) Execute(ctx context.Context, query GetRestaurantQuery) (RestaurantDTO, error) {
	r, err := h.restaurantRepo.FindByID(ctx, query.RestaurantID)
	if err != nil {
		return RestaurantDTO{}, err
	}
	return toRestaurantDTO(r), nil
}
