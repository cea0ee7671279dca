package commands

import (
	"context"

	"github.com/felixgeelhaar/resto/internal/shared/application"
	"github.com/felixgeelhaar/resto/internal/shared/infrastructure/outbox"

	"github.com/felixgeelhaar/resto/internal/guide/domain/city"
	"github.com/felixgeelhaar/resto/internal/guide/domain/gastrotype"
	"github.com/felixgeelhaar/resto/internal/guide/domain/restaurant"
)

// CreateRestaurantCommand creates a new restaurant.
type CreateRestaurantCommand struct {
	Name        string
	Description string
	Website     string
	Street      string
	CityID      int64
	TypeID      int64
}

// CreateRestaurantHandler handles restaurant creation.
type CreateRestaurantHandler struct {
	restaurantRepo restaurant.Repository
	cityRepo       city.Repository
	typeRepo       gastrotype.Repository
	outboxRepo     outbox.Repository
	uow            application.UnitOfWork
}

// NewCreateRestaurantHandler creates a new CreateRestaurantHandler.
func NewCreateRestaurantHandler(
	restaurantRepo restaurant.Repository,
	cityRepo city.Repository,
	typeRepo gastrotype.Repository,
	outboxRepo outbox.Repository,
	uow application.UnitOfWork,
) *CreateRestaurantHandler {
	return &CreateRestaurantHandler{
		restaurantRepo: restaurantRepo,
		cityRepo:       cityRepo,
		typeRepo:       typeRepo,
		outboxRepo:     outboxRepo,
		uow:            uow,
	}
}

// Execute resolves the required associations, creates the restaurant and
// returns the persisted instance at its initial version.
func (h *CreateRestaurantHandler) Execute(ctx context.Context, cmd CreateRestaurantCommand) (*restaurant.Restaurant, error) {
	var created *restaurant.Restaurant

	err := application.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		c, err := h.cityRepo.FindByID(txCtx, cmd.CityID)
		if err != nil {
			return err
		}
		t, err := h.typeRepo.FindByID(txCtx, cmd.TypeID)
		if err != nil {
			return err
		}

		r, err := restaurant.NewRestaurant(cmd.Name, cmd.Description, cmd.Website, cmd.Street, c, t)
		if err != nil {
			return err
		}

		created, err = h.restaurantRepo.Create(txCtx, r)
		if err != nil {
			return err
		}

		created.AddDomainEvent(restaurant.NewCreated(created))
		return stageEvents(txCtx, h.outboxRepo, created)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
