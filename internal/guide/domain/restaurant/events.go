package restaurant

import (
	"time"

	"github.com/felixgeelhaar/resto/internal/shared/domain"
)

// AggregateType identifies restaurant events in the outbox.
const AggregateType = "restaurant"

// Created is raised after a restaurant has been persisted and assigned its id.
type Created struct {
	domain.BaseEvent
	Name   string `json:"name"`
	CityID int64  `json:"city_id"`
	TypeID int64  `json:"type_id"`
}

// NewCreated creates a Created event.
func NewCreated(r *Restaurant) *Created {
	return &Created{
		BaseEvent: domain.NewBaseEvent(r.ID(), AggregateType, "guide.restaurant.created"),
		Name:      r.Name(),
		CityID:    r.City().ID(),
		TypeID:    r.Type().ID(),
	}
}

// DetailsUpdated is raised when name, description, website or type change.
type DetailsUpdated struct {
	domain.BaseEvent
	Name    string `json:"name"`
	Website string `json:"website"`
	TypeID  int64  `json:"type_id"`
}

// NewDetailsUpdated creates a DetailsUpdated event.
func NewDetailsUpdated(r *Restaurant) *DetailsUpdated {
	return &DetailsUpdated{
		BaseEvent: domain.NewBaseEvent(r.ID(), AggregateType, "guide.restaurant.updated"),
		Name:      r.Name(),
		Website:   r.Website(),
		TypeID:    r.Type().ID(),
	}
}

// Relocated is raised when the street or city change.
type Relocated struct {
	domain.BaseEvent
	Street string `json:"street"`
	CityID int64  `json:"city_id"`
}

// NewRelocated creates a Relocated event.
func NewRelocated(r *Restaurant) *Relocated {
	return &Relocated{
		BaseEvent: domain.NewBaseEvent(r.ID(), AggregateType, "guide.restaurant.relocated"),
		Street:    r.Street(),
		CityID:    r.City().ID(),
	}
}

// Deleted is raised after a restaurant and its evaluations have been removed.
type Deleted struct {
	domain.BaseEvent
	Name string `json:"name"`
}

// NewDeleted creates a Deleted event.
func NewDeleted(r *Restaurant) *Deleted {
	return &Deleted{
		BaseEvent: domain.NewBaseEvent(r.ID(), AggregateType, "guide.restaurant.deleted"),
		Name:      r.Name(),
	}
}

// BasicEvaluationAdded is raised when a visitor leaves a like or dislike.
type BasicEvaluationAdded struct {
	domain.BaseEvent
	Liked     bool      `json:"liked"`
	VisitDate time.Time `json:"visit_date"`
}

// NewBasicEvaluationAdded creates a BasicEvaluationAdded event.
func NewBasicEvaluationAdded(r *Restaurant, e *BasicEvaluation) *BasicEvaluationAdded {
	return &BasicEvaluationAdded{
		BaseEvent: domain.NewBaseEvent(r.ID(), AggregateType, "guide.restaurant.evaluation.basic_added"),
		Liked:     e.Liked(),
		VisitDate: e.VisitDate(),
	}
}

// CompleteEvaluationAdded is raised when a visitor leaves a commentary.
type CompleteEvaluationAdded struct {
	domain.BaseEvent
	Username   string    `json:"username"`
	VisitDate  time.Time `json:"visit_date"`
	GradeCount int       `json:"grade_count"`
}

// NewCompleteEvaluationAdded creates a CompleteEvaluationAdded event.
func NewCompleteEvaluationAdded(r *Restaurant, e *CompleteEvaluation) *CompleteEvaluationAdded {
	return &CompleteEvaluationAdded{
		BaseEvent:  domain.NewBaseEvent(r.ID(), AggregateType, "guide.restaurant.evaluation.complete_added"),
		Username:   e.Username(),
		VisitDate:  e.VisitDate(),
		GradeCount: len(e.Grades()),
	}
}
