package commands

import (
	"context"

	"github.com/felixgeelhaar/resto/internal/shared/application"
	"github.com/felixgeelhaar/resto/internal/shared/infrastructure/outbox"

	"github.com/felixgeelhaar/resto/internal/guide/domain/city"
	"github.com/felixgeelhaar/resto/internal/guide/domain/restaurant"
)

// UpdateRestaurantAddressCommand moves a restaurant to a new street and city.
type UpdateRestaurantAddressCommand struct {
	RestaurantID    int64
	ExpectedVersion int64
	Street          string
	CityID          int64
}

// UpdateRestaurantAddressHandler handles relocations with the optimistic
// concurrency protocol.
type UpdateRestaurantAddressHandler struct {
	restaurantRepo restaurant.Repository
	cityRepo       city.Repository
	outboxRepo     outbox.Repository
	uow            application.UnitOfWork
}

// NewUpdateRestaurantAddressHandler creates a new UpdateRestaurantAddressHandler.
func NewUpdateRestaurantAddressHandler(
	restaurantRepo restaurant.Repository,
	cityRepo city.Repository,
	outboxRepo outbox.Repository,
	uow application.UnitOfWork,
) *UpdateRestaurantAddressHandler {
	return &UpdateRestaurantAddressHandler{
		restaurantRepo: restaurantRepo,
		cityRepo:       cityRepo,
		outboxRepo:     outboxRepo,
		uow:            uow,
	}
}

// Execute re-loads the restaurant, checks the expected version before any
// mutation, resolves the target city and applies the relocation.
func (h *UpdateRestaurantAddressHandler) Execute(ctx context.Context, cmd UpdateRestaurantAddressCommand) (*restaurant.Restaurant, error) {
	var updated *restaurant.Restaurant

	err := application.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		r, err := h.restaurantRepo.FindByID(txCtx, cmd.RestaurantID)
		if err != nil {
			return err
		}

		if r.Version() != cmd.ExpectedVersion {
			return restaurant.ErrConcurrentModification
		}

		c, err := h.cityRepo.FindByID(txCtx, cmd.CityID)
		if err != nil {
			return err
		}

		if err := r.Relocate(cmd.Street, c); err != nil {
			return err
		}

		updated, err = h.restaurantRepo.Update(txCtx, r)
		if err != nil {
			return err
		}
		return stageEvents(txCtx, h.outboxRepo, updated)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
