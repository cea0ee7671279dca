package domain

// Entity represents a domain entity with identity.
type Entity interface {
	ID() int64
	IsTransient() bool
	Equals(other Entity) bool
}

// BaseEntity provides common entity functionality.
//
// Identity is assigned by the storage layer at creation time: a freshly
// constructed entity carries the zero id and is considered transient until a
// repository persists it.
type BaseEntity struct {
	id int64
}

// NewBaseEntity creates a transient entity with no identifier.
func NewBaseEntity() BaseEntity {
	return BaseEntity{}
}

// RehydrateBaseEntity recreates an entity from persisted state.
func RehydrateBaseEntity(id int64) BaseEntity {
	return BaseEntity{id: id}
}

func (e BaseEntity) ID() int64 { return e.id }

// IsTransient reports whether the entity has been persisted yet.
func (e BaseEntity) IsTransient() bool { return e.id == 0 }

// AssignID sets the identifier generated by storage.
// Repositories call this exactly once, when the insert returns the new key.
func (e *BaseEntity) AssignID(id int64) {
	e.id = id
}

// Equals checks if two entities have the same persisted identity.
// Transient entities never compare equal through this method.
func (e BaseEntity) Equals(other Entity) bool {
	if other == nil || e.id == 0 {
		return false
	}
	return e.id == other.ID()
}
