package commands

import (
	"context"
	"time"

	"github.com/felixgeelhaar/resto/internal/shared/application"
	"github.com/felixgeelhaar/resto/internal/shared/infrastructure/outbox"

	"github.com/felixgeelhaar/resto/internal/guide/domain/restaurant"
)

// AddBasicEvaluationCommand records a like or dislike for a restaurant.
type AddBasicEvaluationCommand struct {
	RestaurantID int64
	Liked        bool
	VisitDate    time.Time
	IPAddress    string
}

// AddBasicEvaluationHandler handles basic evaluation submission.
type AddBasicEvaluationHandler struct {
	restaurantRepo restaurant.Repository
	outboxRepo     outbox.Repository
	uow            application.UnitOfWork
}

// NewAddBasicEvaluationHandler creates a new AddBasicEvaluationHandler.
func NewAddBasicEvaluationHandler(
	restaurantRepo restaurant.Repository,
	outboxRepo outbox.Repository,
	uow application.UnitOfWork,
) *AddBasicEvaluationHandler {
	return &AddBasicEvaluationHandler{
		restaurantRepo: restaurantRepo,
		outboxRepo:     outboxRepo,
		uow:            uow,
	}
}

// Execute validates the evaluation, attaches it to the freshly loaded
// restaurant and persists it in one transaction.
func (h *AddBasicEvaluationHandler) Execute(ctx context.Context, cmd AddBasicEvaluationCommand) (*restaurant.Restaurant, error) {
	e, err := restaurant.NewBasicEvaluation(cmd.VisitDate, cmd.Liked, cmd.IPAddress)
	if err != nil {
		return nil, err
	}

	var updated *restaurant.Restaurant
	err = application.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		r, err := h.restaurantRepo.FindByID(txCtx, cmd.RestaurantID)
		if err != nil {
			return err
		}

		r.AddBasicEvaluation(e)

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
