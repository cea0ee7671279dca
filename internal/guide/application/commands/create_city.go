package commands

import (
	"context"

	"github.com/felixgeelhaar/resto/internal/shared/application"
	"github.com/felixgeelhaar/resto/internal/shared/infrastructure/outbox"

	"github.com/felixgeelhaar/resto/internal/guide/domain/city"
)

// CreateCityCommand creates a new city.
type CreateCityCommand struct {
	ZipCode string
	Name    string
}

// CreateCityHandler handles city creation.
type CreateCityHandler struct {
	cityRepo   city.Repository
	outboxRepo outbox.Repository
	uow        application.UnitOfWork
}

// NewCreateCityHandler creates a new CreateCityHandler.
func NewCreateCityHandler(cityRepo city.Repository, outboxRepo outbox.Repository, uow application.UnitOfWork) *CreateCityHandler {
	return &CreateCityHandler{cityRepo: cityRepo, outboxRepo: outboxRepo, uow: uow}
}

// Execute creates the city and returns the persisted instance.
func (h *CreateCityHandler) Execute(ctx context.Context, cmd CreateCityCommand) (*city.City, error) {
	c, err := city.NewCity(cmd.ZipCode, cmd.Name)
	if err != nil {
		return nil, err
	}

	err = application.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		created, err := h.cityRepo.Create(txCtx, c)
		if err != nil {
			return err
		}

		created.AddDomainEvent(city.NewCreated(created))
		return stageEvents(txCtx, h.outboxRepo, created)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}
