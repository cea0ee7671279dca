// Package commands contains the transactional write operations of the guide.
//
// Every mutating handler follows the same protocol: open one unit of work,
// re-load the aggregate fresh from storage, check the caller-supplied expected
// version before touching anything, validate, mutate, and let the storage
// layer's conditional write give the authoritative concurrency guarantee.
// Domain events are staged to the outbox inside the same transaction.
package commands

import (
	"context"

	"github.com/felixgeelhaar/resto/internal/shared/application"
	"github.com/felixgeelhaar/resto/internal/shared/domain"
	"github.com/felixgeelhaar/resto/internal/shared/infrastructure/outbox"
)

// stageEvents converts the aggregate's uncommitted events into outbox
// messages and stores them through the context transaction, then clears them.
func stageEvents(ctx context.Context, repo outbox.Repository, aggregate domain.AggregateRoot) error {
	events := aggregate.DomainEvents()
	if len(events) == 0 {
		return nil
	}

	metadata := application.NewEventMetadata()
	application.ApplyEventMetadata(events, metadata)

	messages := make([]*outbox.Message, 0, len(events))
	for _, event := range events {
		msg, err := outbox.NewMessage(event)
		if err != nil {
			return err
		}
		messages = append(messages, msg)
	}

	if err := repo.SaveBatch(ctx, messages); err != nil {
		return err
	}

	aggregate.ClearDomainEvents()
	return nil
}
