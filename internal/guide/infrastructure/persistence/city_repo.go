package persistence

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/resto/internal/shared/infrastructure/database"

	"github.com/felixgeelhaar/resto/internal/guide/domain/city"
)

// CityRepository persists cities.
type CityRepository struct {
	conn database.Connection
}

// NewCityRepository creates a new city repository.
func NewCityRepository(conn database.Connection) *CityRepository {
	return &CityRepository{conn: conn}
}

func (r *CityRepository) executor(ctx context.Context) database.Executor {
	return database.ExecutorFromContext(ctx, r.conn)
}

// FindByID returns the city or city.ErrNotFound.
func (r *CityRepository) FindByID(ctx context.Context, id int64) (*city.City, error) {
	var (
		zipCode, name string
	)
	err := r.executor(ctx).QueryRow(ctx,
		`SELECT zip_code, name FROM cities WHERE id = $1`, id).Scan(&zipCode, &name)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, city.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load city: %w", err)
	}
	return city.Rehydrate(id, zipCode, name), nil
}

// FindAll returns all cities ordered by name.
func (r *CityRepository) FindAll(ctx context.Context) ([]*city.City, error) {
	rows, err := r.executor(ctx).Query(ctx,
		`SELECT id, zip_code, name FROM cities ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query cities: %w", err)
	}
	defer rows.Close()

	var cities []*city.City
	for rows.Next() {
		var (
			id            int64
			zipCode, name string
		)
		if err := rows.Scan(&id, &zipCode, &name); err != nil {
			return nil, fmt.Errorf("failed to scan city: %w", err)
		}
		cities = append(cities, city.Rehydrate(id, zipCode, name))
	}
	return cities, rows.Err()
}

// Create persists a transient city and assigns its identifier. Concurrent
// creates of the same zip and name both succeed with distinct identifiers;
// deduplication is the caller's concern.
func (r *CityRepository) Create(ctx context.Context, c *city.City) (*city.City, error) {
	var id int64
	err := r.executor(ctx).QueryRow(ctx,
		`INSERT INTO cities (zip_code, name) VALUES ($1, $2) RETURNING id`,
		c.ZipCode(), c.Name()).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create city: %w", err)
	}
	c.AssignID(id)
	return c, nil
}

// Update reconciles the city's state with storage.
func (r *CityRepository) Update(ctx context.Context, c *city.City) (*city.City, error) {
	result, err := r.executor(ctx).Exec(ctx,
		`UPDATE cities SET zip_code = $1, name = $2 WHERE id = $3`,
		c.ZipCode(), c.Name(), c.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to update city: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, city.ErrNotFound
	}
	return c, nil
}

// Delete removes the city's row and reports whether one was removed.
func (r *CityRepository) Delete(ctx context.Context, c *city.City) (bool, error) {
	return r.DeleteByID(ctx, c.ID())
}

// DeleteByID removes the row by key and reports whether one was removed.
func (r *CityRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	result, err := r.executor(ctx).Exec(ctx, `DELETE FROM cities WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete city: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
