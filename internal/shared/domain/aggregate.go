package domain

// AggregateRoot is a domain entity that is the root of an aggregate.
type AggregateRoot interface {
	Entity
	DomainEvents() []DomainEvent
	ClearDomainEvents()
	AddDomainEvent(event DomainEvent)
	Version() int64
}

// BaseAggregateRoot provides common aggregate functionality.
//
// The version counter is the optimistic concurrency token: storage advances it
// by exactly one on every successfully committed mutation, and a conditional
// write that observes a different stored version reports a conflict instead of
// updating anything.
type BaseAggregateRoot struct {
	BaseEntity
	domainEvents []DomainEvent
	version      int64
}

// NewBaseAggregateRoot creates a new transient aggregate root at version zero.
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity:   NewBaseEntity(),
		domainEvents: make([]DomainEvent, 0),
	}
}

// RehydrateBaseAggregateRoot recreates an aggregate from persisted state.
func RehydrateBaseAggregateRoot(id, version int64) BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity:   RehydrateBaseEntity(id),
		domainEvents: make([]DomainEvent, 0),
		version:      version,
	}
}

// DomainEvents returns all uncommitted domain events.
func (a *BaseAggregateRoot) DomainEvents() []DomainEvent {
	return a.domainEvents
}

// ClearDomainEvents removes all uncommitted domain events.
func (a *BaseAggregateRoot) ClearDomainEvents() {
	a.domainEvents = make([]DomainEvent, 0)
}

// AddDomainEvent adds a domain event to the aggregate.
func (a *BaseAggregateRoot) AddDomainEvent(event DomainEvent) {
	a.domainEvents = append(a.domainEvents, event)
}

// Version returns the aggregate version for optimistic concurrency.
func (a *BaseAggregateRoot) Version() int64 {
	return a.version
}

// SetVersion sets the aggregate version (used when rehydrating from storage
// or after a conditional write returned the advanced value).
func (a *BaseAggregateRoot) SetVersion(version int64) {
	a.version = version
}
