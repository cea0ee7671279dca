package persistence

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/resto/internal/shared/infrastructure/database"

	"github.com/felixgeelhaar/resto/internal/guide/domain/criterion"
)

// CriterionRepository persists evaluation criteria.
type CriterionRepository struct {
	conn database.Connection
}

// NewCriterionRepository creates a new criterion repository.
func NewCriterionRepository(conn database.Connection) *CriterionRepository {
	return &CriterionRepository{conn: conn}
}

func (r *CriterionRepository) executor(ctx context.Context) database.Executor {
	return database.ExecutorFromContext(ctx, r.conn)
}

// FindByID returns the criterion or criterion.ErrNotFound.
func (r *CriterionRepository) FindByID(ctx context.Context, id int64) (*criterion.Criterion, error) {
	var name, description string
	err := r.executor(ctx).QueryRow(ctx,
		`SELECT name, description FROM evaluation_criteria WHERE id = $1`, id).Scan(&name, &description)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, criterion.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load criterion: %w", err)
	}
	return criterion.Rehydrate(id, name, description), nil
}

// FindAll returns all criteria ordered by name.
func (r *CriterionRepository) FindAll(ctx context.Context) ([]*criterion.Criterion, error) {
	rows, err := r.executor(ctx).Query(ctx,
		`SELECT id, name, description FROM evaluation_criteria ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query criteria: %w", err)
	}
	defer rows.Close()

	var criteria []*criterion.Criterion
	for rows.Next() {
		var (
			id                int64
			name, description string
		)
		if err := rows.Scan(&id, &name, &description); err != nil {
			return nil, fmt.Errorf("failed to scan criterion: %w", err)
		}
		criteria = append(criteria, criterion.Rehydrate(id, name, description))
	}
	return criteria, rows.Err()
}

// Create persists a transient criterion and assigns its identifier.
func (r *CriterionRepository) Create(ctx context.Context, c *criterion.Criterion) (*criterion.Criterion, error) {
	var id int64
	err := r.executor(ctx).QueryRow(ctx,
		`INSERT INTO evaluation_criteria (name, description) VALUES ($1, $2) RETURNING id`,
		c.Name(), c.Description()).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create criterion: %w", err)
	}
	c.AssignID(id)
	return c, nil
}

// Update reconciles the criterion's state with storage.
func (r *CriterionRepository) Update(ctx context.Context, c *criterion.Criterion) (*criterion.Criterion, error) {
	result, err := r.executor(ctx).Exec(ctx,
		`UPDATE evaluation_criteria SET name = $1, description = $2 WHERE id = $3`,
		c.Name(), c.Description(), c.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to update criterion: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, criterion.ErrNotFound
	}
	return c, nil
}

// Delete removes the criterion's row and reports whether one was removed.
func (r *CriterionRepository) Delete(ctx context.Context, c *criterion.Criterion) (bool, error) {
	return r.DeleteByID(ctx, c.ID())
}

// DeleteByID removes the row by key and reports whether one was removed.
func (r *CriterionRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	result, err := r.executor(ctx).Exec(ctx, `DELETE FROM evaluation_criteria WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete criterion: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
