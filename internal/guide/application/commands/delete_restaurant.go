package commands

import (
	"context"
	"errors"

	"github.com/felixgeelhaar/resto/internal/shared/application"
	"github.com/felixgeelhaar/resto/internal/shared/infrastructure/outbox"

	"github.com/felixgeelhaar/resto/internal/guide/domain/restaurant"
)

// DeleteRestaurantCommand removes a restaurant and, through the cascade, all
// of its evaluations and their grades.
type DeleteRestaurantCommand struct {
	RestaurantID    int64
	ExpectedVersion int64
}

// DeleteRestaurantHandler handles restaurant deletion with the optimistic
// concurrency protocol.
type DeleteRestaurantHandler struct {
	restaurantRepo restaurant.Repository
	outboxRepo     outbox.Repository
	uow            application.UnitOfWork
}

// NewDeleteRestaurantHandler creates a new DeleteRestaurantHandler.
func NewDeleteRestaurantHandler(
	restaurantRepo restaurant.Repository,
	outboxRepo outbox.Repository,
	uow application.UnitOfWork,
) *DeleteRestaurantHandler {
	return &DeleteRestaurantHandler{
		restaurantRepo: restaurantRepo,
		outboxRepo:     outboxRepo,
		uow:            uow,
	}
}

// Execute deletes the restaurant. A restaurant that no longer exists is a
// silent no-op (idempotent delete); a version mismatch on an existing row is
// a concurrency conflict.
func (h *DeleteRestaurantHandler) Execute(ctx context.Context, cmd DeleteRestaurantCommand) error {
	return application.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		r, err := h.restaurantRepo.FindByID(txCtx, cmd.RestaurantID)
		if err != nil {
			if errors.Is(err, restaurant.ErrNotFound) {
				return nil
			}
			return err
		}

		if r.Version() != cmd.ExpectedVersion {
			return restaurant.ErrConcurrentModification
		}

		if _, err := h.restaurantRepo.Delete(txCtx, r); err != nil {
			return err
		}

		r.AddDomainEvent(restaurant.NewDeleted(r))
		return stageEvents(txCtx, h.outboxRepo, r)
	})
}
