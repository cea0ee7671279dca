package application

import (
	"github.com/felixgeelhaar/resto/internal/shared/domain"
	"github.com/google/uuid"
)

// NewEventMetadata creates metadata with a fresh correlation id.
func NewEventMetadata() domain.EventMetadata {
	correlationID := uuid.New()
	return domain.EventMetadata{
		CorrelationID: correlationID,
		CausationID:   correlationID,
	}
}

// ApplyEventMetadata stamps metadata onto every event that supports it.
// Events derived from BaseEvent expose SetMetadata through a pointer receiver,
// so the slice elements must carry addressable base events.
func ApplyEventMetadata(events []domain.DomainEvent, metadata domain.EventMetadata) {
	for _, event := range events {
		if setter, ok := event.(interface{ SetMetadata(domain.EventMetadata) }); ok {
			setter.SetMetadata(metadata)
		}
	}
}
