package city

import "github.com/felixgeelhaar/resto/internal/shared/domain"

// AggregateType identifies city events in the outbox.
const AggregateType = "city"

// Created is raised after a city has been persisted and assigned its id.
type Created struct {
	domain.BaseEvent
	ZipCode string `json:"zip_code"`
	Name    string `json:"name"`
}

// NewCreated creates a Created event.
func NewCreated(c *City) *Created {
	return &Created{
		BaseEvent: domain.NewBaseEvent(c.ID(), AggregateType, "guide.city.created"),
		ZipCode:   c.ZipCode(),
		Name:      c.Name(),
	}
}
