package restaurant

import (
	"fmt"
	"strings"
	"time"

	"github.com/felixgeelhaar/resto/internal/shared/domain"

	"github.com/felixgeelhaar/resto/internal/guide/domain/criterion"
)

// Validation errors for evaluations and grades.
var (
	ErrZeroVisitDate    = fmt.Errorf("%w: visit date is required", domain.ErrValidation)
	ErrEmptyIPAddress   = fmt.Errorf("%w: ip address is required", domain.ErrValidation)
	ErrEmptyComment     = fmt.Errorf("%w: comment is required", domain.ErrValidation)
	ErrEmptyUsername    = fmt.Errorf("%w: username is required", domain.ErrValidation)
	ErrNoGrades         = fmt.Errorf("%w: a complete evaluation needs at least one grade", domain.ErrValidation)
	ErrGradeOutOfRange  = fmt.Errorf("%w: grade value must be between 1 and 5", domain.ErrValidation)
	ErrMissingCriterion = fmt.Errorf("%w: grade criterion is required", domain.ErrValidation)
)

// Evaluation is the closed union of the two evaluation variants. The two
// variants persist to separate tables; no value outside this package can
// satisfy the interface, so routing by concrete type is exhaustive.
type Evaluation interface {
	domain.Entity
	VisitDate() time.Time
	RestaurantID() int64
	isEvaluation()
}

// BasicEvaluation is an anonymous like or dislike left by a visitor.
type BasicEvaluation struct {
	domain.BaseEntity
	restaurantID int64
	visitDate    time.Time
	liked        bool
	ipAddress    string
}

// NewBasicEvaluation creates a transient basic evaluation. It is attached to
// its restaurant through Restaurant.AddBasicEvaluation.
func NewBasicEvaluation(visitDate time.Time, liked bool, ipAddress string) (*BasicEvaluation, error) {
	if visitDate.IsZero() {
		return nil, ErrZeroVisitDate
	}
	ipAddress = strings.TrimSpace(ipAddress)
	if ipAddress == "" {
		return nil, ErrEmptyIPAddress
	}

	return &BasicEvaluation{
		BaseEntity: domain.NewBaseEntity(),
		visitDate:  visitDate,
		liked:      liked,
		ipAddress:  ipAddress,
	}, nil
}

// RehydrateBasicEvaluation recreates a basic evaluation from persisted state.
func RehydrateBasicEvaluation(id, restaurantID int64, visitDate time.Time, liked bool, ipAddress string) *BasicEvaluation {
	return &BasicEvaluation{
		BaseEntity:   domain.RehydrateBaseEntity(id),
		restaurantID: restaurantID,
		visitDate:    visitDate,
		liked:        liked,
		ipAddress:    ipAddress,
	}
}

func (e *BasicEvaluation) VisitDate() time.Time { return e.visitDate }
func (e *BasicEvaluation) RestaurantID() int64  { return e.restaurantID }
func (e *BasicEvaluation) Liked() bool          { return e.liked }
func (e *BasicEvaluation) IPAddress() string    { return e.ipAddress }

func (e *BasicEvaluation) isEvaluation() {}

// CompleteEvaluation is a signed commentary with one grade per rated
// criterion. It exclusively owns its grades: removing the evaluation removes
// them, and a grade never outlives its evaluation.
type CompleteEvaluation struct {
	domain.BaseEntity
	restaurantID int64
	visitDate    time.Time
	comment      string
	username     string
	grades       []*Grade
}

// NewCompleteEvaluation creates a transient complete evaluation without
// grades. Grades are attached through AddGrade and validated there.
func NewCompleteEvaluation(visitDate time.Time, comment, username string) (*CompleteEvaluation, error) {
	if visitDate.IsZero() {
		return nil, ErrZeroVisitDate
	}
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, ErrEmptyComment
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrEmptyUsername
	}

	return &CompleteEvaluation{
		BaseEntity: domain.NewBaseEntity(),
		visitDate:  visitDate,
		comment:    comment,
		username:   username,
	}, nil
}

// RehydrateCompleteEvaluation recreates a complete evaluation from persisted state.
func RehydrateCompleteEvaluation(id, restaurantID int64, visitDate time.Time, comment, username string) *CompleteEvaluation {
	return &CompleteEvaluation{
		BaseEntity:   domain.RehydrateBaseEntity(id),
		restaurantID: restaurantID,
		visitDate:    visitDate,
		comment:      comment,
		username:     username,
	}
}

func (e *CompleteEvaluation) VisitDate() time.Time { return e.visitDate }
func (e *CompleteEvaluation) RestaurantID() int64  { return e.restaurantID }
func (e *CompleteEvaluation) Comment() string      { return e.comment }
func (e *CompleteEvaluation) Username() string     { return e.username }

// Grades returns the owned grades. Callers must not mutate the slice.
func (e *CompleteEvaluation) Grades() []*Grade { return e.grades }

// AddGrade attaches a grade and keeps the bidirectional pair consistent.
func (e *CompleteEvaluation) AddGrade(g *Grade) {
	g.evaluation = e
	e.grades = append(e.grades, g)
}

// RemoveGrade detaches a grade and reports whether it was present.
func (e *CompleteEvaluation) RemoveGrade(g *Grade) bool {
	for i, existing := range e.grades {
		if existing == g {
			e.grades = append(e.grades[:i], e.grades[i+1:]...)
			g.evaluation = nil
			return true
		}
	}
	return false
}

func (e *CompleteEvaluation) isEvaluation() {}

// Grade scores one criterion within a complete evaluation. Grades are
// immutable after creation.
type Grade struct {
	domain.BaseEntity
	value      int
	criterion  *criterion.Criterion
	evaluation *CompleteEvaluation
}

// NewGrade creates a transient grade with a value between 1 and 5.
func NewGrade(value int, crit *criterion.Criterion) (*Grade, error) {
	if value < 1 || value > 5 {
		return nil, ErrGradeOutOfRange
	}
	if crit == nil {
		return nil, ErrMissingCriterion
	}

	return &Grade{
		BaseEntity: domain.NewBaseEntity(),
		value:      value,
		criterion:  crit,
	}, nil
}

// RehydrateGrade recreates a grade from persisted state.
func RehydrateGrade(id int64, value int, crit *criterion.Criterion) *Grade {
	return &Grade{
		BaseEntity: domain.RehydrateBaseEntity(id),
		value:      value,
		criterion:  crit,
	}
}

func (g *Grade) Value() int                      { return g.value }
func (g *Grade) Criterion() *criterion.Criterion { return g.criterion }

// Evaluation returns the owning complete evaluation, nil when detached.
func (g *Grade) Evaluation() *CompleteEvaluation { return g.evaluation }
