package commands

import (
	"context"

	"github.com/felixgeelhaar/resto/internal/shared/application"
	"github.com/felixgeelhaar/resto/internal/shared/infrastructure/outbox"

	"github.com/felixgeelhaar/resto/internal/guide/domain/gastrotype"
	"github.com/felixgeelhaar/resto/internal/guide/domain/restaurant"
)

// UpdateRestaurantDetailsCommand changes a restaurant's name, description,
// website and optionally its type. ExpectedVersion is the version the caller
// observed on its last read.
type UpdateRestaurantDetailsCommand struct {
	RestaurantID    int64
	ExpectedVersion int64
	Name            string
	Description     string
	Website         string
	TypeID          *int64
}

// UpdateRestaurantDetailsHandler handles detail updates with the optimistic
// concurrency protocol.
type UpdateRestaurantDetailsHandler struct {
	restaurantRepo restaurant.Repository
	typeRepo       gastrotype.Repository
	outboxRepo     outbox.Repository
	uow            application.UnitOfWork
}

// NewUpdateRestaurantDetailsHandler creates a new UpdateRestaurantDetailsHandler.
func NewUpdateRestaurantDetailsHandler(
	restaurantRepo restaurant.Repository,
	typeRepo gastrotype.Repository,
	outboxRepo outbox.Repository,
	uow application.UnitOfWork,
) *UpdateRestaurantDetailsHandler {
	return &UpdateRestaurantDetailsHandler{
		restaurantRepo: restaurantRepo,
		typeRepo:       typeRepo,
		outboxRepo:     outboxRepo,
		uow:            uow,
	}
}

// Execute re-loads the restaurant inside the transaction, aborts with
// restaurant.ErrConcurrentModification before any mutation when the stored
// version differs from the expected one, then applies the update. The
// conditional write repeats the check authoritatively at commit time.
func (h *UpdateRestaurantDetailsHandler) Execute(ctx context.Context, cmd UpdateRestaurantDetailsCommand) (*restaurant.Restaurant, error) {
	var updated *restaurant.Restaurant

	err := application.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		r, err := h.restaurantRepo.FindByID(txCtx, cmd.RestaurantID)
		if err != nil {
			return err
		}

		if r.Version() != cmd.ExpectedVersion {
			return restaurant.ErrConcurrentModification
		}

		var newType *gastrotype.RestaurantType
		if cmd.TypeID != nil {
			newType, err = h.typeRepo.FindByID(txCtx, *cmd.TypeID)
			if err != nil {
				return err
			}
		}

		if err := r.UpdateDetails(cmd.Name, cmd.Description, cmd.Website, newType); err != nil {
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
