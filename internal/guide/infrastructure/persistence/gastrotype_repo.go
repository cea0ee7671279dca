package persistence

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/resto/internal/shared/infrastructure/database"

	"github.com/felixgeelhaar/resto/internal/guide/domain/gastrotype"
)

// RestaurantTypeRepository persists restaurant types.
type RestaurantTypeRepository struct {
	conn database.Connection
}

// NewRestaurantTypeRepository creates a new restaurant type repository.
func NewRestaurantTypeRepository(conn database.Connection) *RestaurantTypeRepository {
	return &RestaurantTypeRepository{conn: conn}
}

func (r *RestaurantTypeRepository) executor(ctx context.Context) database.Executor {
	return database.ExecutorFromContext(ctx, r.conn)
}

// FindByID returns the type or gastrotype.ErrNotFound.
func (r *RestaurantTypeRepository) FindByID(ctx context.Context, id int64) (*gastrotype.RestaurantType, error) {
	var label, description string
	err := r.executor(ctx).QueryRow(ctx,
		`SELECT label, description FROM restaurant_types WHERE id = $1`, id).Scan(&label, &description)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, gastrotype.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load restaurant type: %w", err)
	}
	return gastrotype.Rehydrate(id, label, description), nil
}

// FindAll returns all types ordered by label.
func (r *RestaurantTypeRepository) FindAll(ctx context.Context) ([]*gastrotype.RestaurantType, error) {
	rows, err := r.executor(ctx).Query(ctx,
		`SELECT id, label, description FROM restaurant_types ORDER BY label, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query restaurant types: %w", err)
	}
	defer rows.Close()

	var types []*gastrotype.RestaurantType
	for rows.Next() {
		var (
			id                 int64
			label, description string
		)
		if err := rows.Scan(&id, &label, &description); err != nil {
			return nil, fmt.Errorf("failed to scan restaurant type: %w", err)
		}
		types = append(types, gastrotype.Rehydrate(id, label, description))
	}
	return types, rows.Err()
}

// Create persists a transient type and assigns its identifier.
func (r *RestaurantTypeRepository) Create(ctx context.Context, t *gastrotype.RestaurantType) (*gastrotype.RestaurantType, error) {
	var id int64
	err := r.executor(ctx).QueryRow(ctx,
		`INSERT INTO restaurant_types (label, description) VALUES ($1, $2) RETURNING id`,
		t.Label(), t.Description()).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create restaurant type: %w", err)
	}
	t.AssignID(id)
	return t, nil
}

// Update reconciles the type's state with storage.
func (r *RestaurantTypeRepository) Update(ctx context.Context, t *gastrotype.RestaurantType) (*gastrotype.RestaurantType, error) {
	result, err := r.executor(ctx).Exec(ctx,
		`UPDATE restaurant_types SET label = $1, description = $2 WHERE id = $3`,
		t.Label(), t.Description(), t.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to update restaurant type: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, gastrotype.ErrNotFound
	}
	return t, nil
}

// Delete removes the type's row and reports whether one was removed.
func (r *RestaurantTypeRepository) Delete(ctx context.Context, t *gastrotype.RestaurantType) (bool, error) {
	return r.DeleteByID(ctx, t.ID())
}

// DeleteByID removes the row by key and reports whether one was removed.
func (r *RestaurantTypeRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	result, err := r.executor(ctx).Exec(ctx, `DELETE FROM restaurant_types WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete restaurant type: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
