package domain

import "context"

// Repository defines the uniform operation set shared by all aggregate
// repositories. Per-aggregate interfaces embed it and add their own finders.
//
// Every method runs against the transaction carried by the context when one is
// present, and directly against the connection otherwise, so a single call is
// its own atomic unit while a service can compose several calls into one
// transaction through a unit of work.
type Repository[T AggregateRoot] interface {
	// FindByID returns the aggregate or the aggregate's not-found error.
	FindByID(ctx context.Context, id int64) (T, error)

	// FindAll returns all aggregates in the ordering defined per entity type.
	FindAll(ctx context.Context) ([]T, error)

	// Create persists a transient aggregate, assigns its identifier and
	// returns the persisted instance.
	Create(ctx context.Context, aggregate T) (T, error)

	// Update reconciles the aggregate's in-memory state with storage and
	// returns the canonical post-update instance. The argument must not be
	// reused for further mutation without a fresh load.
	Update(ctx context.Context, aggregate T) (T, error)

	// Delete removes the aggregate's row and reports whether one was removed.
	Delete(ctx context.Context, aggregate T) (bool, error)

	// DeleteByID removes the row by key and reports whether one was removed.
	DeleteByID(ctx context.Context, id int64) (bool, error)
}
