package commands

import (
	"context"
	"time"

	"github.com/felixgeelhaar/resto/internal/shared/application"
	"github.com/felixgeelhaar/resto/internal/shared/infrastructure/outbox"

	"github.com/felixgeelhaar/resto/internal/guide/domain/criterion"
	"github.com/felixgeelhaar/resto/internal/guide/domain/restaurant"
)

// GradeInput scores one criterion in a complete evaluation submission.
type GradeInput struct {
	CriterionID int64
	Value       int
}

// AddCompleteEvaluationCommand records a commentary with per-criterion grades.
type AddCompleteEvaluationCommand struct {
	RestaurantID int64
	VisitDate    time.Time
	Comment      string
	Username     string
	Grades       []GradeInput
}

// AddCompleteEvaluationHandler handles complete evaluation submission.
type AddCompleteEvaluationHandler struct {
	restaurantRepo restaurant.Repository
	criterionRepo  criterion.Repository
	outboxRepo     outbox.Repository
	uow            application.UnitOfWork
}

// NewAddCompleteEvaluationHandler creates a new AddCompleteEvaluationHandler.
func NewAddCompleteEvaluationHandler(
	restaurantRepo restaurant.Repository,
	criterionRepo criterion.Repository,
	outboxRepo outbox.Repository,
	uow application.UnitOfWork,
) *AddCompleteEvaluationHandler {
	return &AddCompleteEvaluationHandler{
		restaurantRepo: restaurantRepo,
		criterionRepo:  criterionRepo,
		outboxRepo:     outboxRepo,
		uow:            uow,
	}
}

// Execute validates the full submission before any write: the comment and
// username, the non-empty grade list, every grade value and every referenced
// criterion. A submission that fails any check creates no row at all.
func (h *AddCompleteEvaluationHandler) Execute(ctx context.Context, cmd AddCompleteEvaluationCommand) (*restaurant.Restaurant, error) {
	e, err := restaurant.NewCompleteEvaluation(cmd.VisitDate, cmd.Comment, cmd.Username)
	if err != nil {
		return nil, err
	}
	if len(cmd.Grades) == 0 {
		return nil, restaurant.ErrNoGrades
	}

	var updated *restaurant.Restaurant
	err = application.WithUnitOfWork(ctx, h.uow, func(txCtx context.Context) error {
		r, err := h.restaurantRepo.FindByID(txCtx, cmd.RestaurantID)
		if err != nil {
			return err
		}

		for _, input := range cmd.Grades {
			crit, err := h.criterionRepo.FindByID(txCtx, input.CriterionID)
			if err != nil {
				return err
			}
			g, err := restaurant.NewGrade(input.Value, crit)
			if err != nil {
				return err
			}
			e.AddGrade(g)
		}

		if err := r.AddCompleteEvaluation(e); err != nil {
			return err
		}

		updated, err = h.restaurantRepo.Update(txCtx, r)
		if err != nil {
			return err
		}
		return stageEvents(txCtx, h.outboxRepo, updated)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
