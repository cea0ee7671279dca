// Package persistence implements the guide repositories over the shared
// database abstraction. The same SQL runs on PostgreSQL and SQLite: both
// accept $n placeholders and RETURNING clauses, booleans are stored as
// INTEGER 0/1 and dates as ISO text, so there is a single scan path.
package persistence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/felixgeelhaar/resto/internal/shared/infrastructure/database"

	"github.com/felixgeelhaar/resto/internal/guide/domain/city"
	"github.com/felixgeelhaar/resto/internal/guide/domain/criterion"
	"github.com/felixgeelhaar/resto/internal/guide/domain/gastrotype"
	"github.com/felixgeelhaar/resto/internal/guide/domain/restaurant"
)

// dateFormat is the storage format for visit dates.
const dateFormat = time.DateOnly

// RestaurantRepository persists the restaurant aggregate. Every load returns
// the full graph: city, type, both evaluation collections and their grades.
type RestaurantRepository struct {
	conn database.Connection
}

// NewRestaurantRepository creates a new restaurant repository.
func NewRestaurantRepository(conn database.Connection) *RestaurantRepository {
	return &RestaurantRepository{conn: conn}
}

func (r *RestaurantRepository) executor(ctx context.Context) database.Executor {
	return database.ExecutorFromContext(ctx, r.conn)
}

const restaurantColumns = `
	r.id, r.version, r.name, r.description, r.website, r.street,
	c.id, c.zip_code, c.name,
	t.id, t.label, t.description`

const restaurantJoin = `
	FROM restaurants r
	JOIN cities c ON c.id = r.city_id
	JOIN restaurant_types t ON t.id = r.type_id`

// FindByID returns the fully loaded aggregate or restaurant.ErrNotFound.
func (r *RestaurantRepository) FindByID(ctx context.Context, id int64) (*restaurant.Restaurant, error) {
	exec := r.executor(ctx)

	row := exec.QueryRow(ctx, `SELECT`+restaurantColumns+restaurantJoin+` WHERE r.id = $1`, id)
	rest, err := scanRestaurant(row)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, restaurant.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load restaurant: %w", err)
	}

	if err := r.loadEvaluations(ctx, exec, rest); err != nil {
		return nil, err
	}
	return rest, nil
}

// FindAll returns all restaurants ordered by name.
func (r *RestaurantRepository) FindAll(ctx context.Context) ([]*restaurant.Restaurant, error) {
	return r.findMany(ctx, `SELECT`+restaurantColumns+restaurantJoin+` ORDER BY r.name, r.id`)
}

// FindByName returns restaurants whose name matches exactly, ordered by id.
func (r *RestaurantRepository) FindByName(ctx context.Context, name string) ([]*restaurant.Restaurant, error) {
	return r.findMany(ctx, `SELECT`+restaurantColumns+restaurantJoin+` WHERE r.name = $1 ORDER BY r.id`, name)
}

// FindByCityName returns restaurants whose city name contains the fragment,
// case-insensitively, ordered by name.
func (r *RestaurantRepository) FindByCityName(ctx context.Context, fragment string) ([]*restaurant.Restaurant, error) {
	pattern := "%" + strings.ToLower(fragment) + "%"
	return r.findMany(ctx, `SELECT`+restaurantColumns+restaurantJoin+` WHERE LOWER(c.name) LIKE $1 ORDER BY r.name, r.id`, pattern)
}

// FindByType returns restaurants classified by the type, ordered by name.
func (r *RestaurantRepository) FindByType(ctx context.Context, typeID int64) ([]*restaurant.Restaurant, error) {
	return r.findMany(ctx, `SELECT`+restaurantColumns+restaurantJoin+` WHERE r.type_id = $1 ORDER BY r.name, r.id`, typeID)
}

func (r *RestaurantRepository) findMany(ctx context.Context, query string, args ...any) ([]*restaurant.Restaurant, error) {
	exec := r.executor(ctx)

	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query restaurants: %w", err)
	}

	restaurants, err := collectRestaurants(rows)
	if err != nil {
		return nil, err
	}

	for _, rest := range restaurants {
		if err := r.loadEvaluations(ctx, exec, rest); err != nil {
			return nil, err
		}
	}
	return restaurants, nil
}

func collectRestaurants(rows database.Rows) ([]*restaurant.Restaurant, error) {
	defer rows.Close()

	var restaurants []*restaurant.Restaurant
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan restaurant: %w", err)
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func scanRestaurant(row database.Row) (*restaurant.Restaurant, error) {
	var (
		id, version            int64
		name, desc, web, street string
		cityID                 int64
		zipCode, cityName      string
		typeID                 int64
		label, typeDesc        string
	)
	if err := row.Scan(&id, &version, &name, &desc, &web, &street,
		&cityID, &zipCode, &cityName,
		&typeID, &label, &typeDesc); err != nil {
		return nil, err
	}

	return restaurant.Rehydrate(id, version, name, desc, web, street,
		city.Rehydrate(cityID, zipCode, cityName),
		gastrotype.Rehydrate(typeID, label, typeDesc)), nil
}

func (r *RestaurantRepository) loadEvaluations(ctx context.Context, exec database.Executor, rest *restaurant.Restaurant) error {
	evaluations := make([]restaurant.Evaluation, 0)

	rows, err := exec.Query(ctx,
		`SELECT id, visit_date, liked, ip_address FROM likes WHERE restaurant_id = $1 ORDER BY id`,
		rest.ID())
	if err != nil {
		return fmt.Errorf("failed to load basic evaluations: %w", err)
	}
	basics, err := collectBasics(rows, rest.ID())
	if err != nil {
		return err
	}
	for _, b := range basics {
		evaluations = append(evaluations, b)
	}

	completes, err := r.loadCompleteEvaluations(ctx, exec, rest.ID())
	if err != nil {
		return err
	}
	for _, c := range completes {
		evaluations = append(evaluations, c)
	}

	rest.SetEvaluations(evaluations)
	return nil
}

func collectBasics(rows database.Rows, restaurantID int64) ([]*restaurant.BasicEvaluation, error) {
	defer rows.Close()

	var basics []*restaurant.BasicEvaluation
	for rows.Next() {
		var (
			id        int64
			visitDate string
			liked     int
			ipAddress string
		)
		if err := rows.Scan(&id, &visitDate, &liked, &ipAddress); err != nil {
			return nil, fmt.Errorf("failed to scan basic evaluation: %w", err)
		}
		date, err := time.Parse(dateFormat, visitDate)
		if err != nil {
			return nil, fmt.Errorf("invalid visit date %q: %w", visitDate, err)
		}
		basics = append(basics, restaurant.RehydrateBasicEvaluation(id, restaurantID, date, liked != 0, ipAddress))
	}
	return basics, rows.Err()
}

func (r *RestaurantRepository) loadCompleteEvaluations(ctx context.Context, exec database.Executor, restaurantID int64) ([]*restaurant.CompleteEvaluation, error) {
	rows, err := exec.Query(ctx,
		`SELECT id, visit_date, content, username FROM comments WHERE restaurant_id = $1 ORDER BY id`,
		restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load complete evaluations: %w", err)
	}

	completes, byID, err := collectCompletes(rows, restaurantID)
	if err != nil {
		return nil, err
	}
	if len(completes) == 0 {
		return completes, nil
	}

	gradeRows, err := exec.Query(ctx, `
		SELECT g.id, g.comment_id, g.value, cr.id, cr.name, cr.description
		FROM grades g
		JOIN evaluation_criteria cr ON cr.id = g.criterion_id
		WHERE g.comment_id IN (SELECT id FROM comments WHERE restaurant_id = $1)
		ORDER BY g.id`,
		restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load grades: %w", err)
	}
	defer gradeRows.Close()

	for gradeRows.Next() {
		var (
			gradeID, commentID, critID int64
			value                      int
			critName, critDesc         string
		)
		if err := gradeRows.Scan(&gradeID, &commentID, &value, &critID, &critName, &critDesc); err != nil {
			return nil, fmt.Errorf("failed to scan grade: %w", err)
		}
		if owner, ok := byID[commentID]; ok {
			owner.AddGrade(restaurant.RehydrateGrade(gradeID, value, criterion.Rehydrate(critID, critName, critDesc)))
		}
	}
	return completes, gradeRows.Err()
}

func collectCompletes(rows database.Rows, restaurantID int64) ([]*restaurant.CompleteEvaluation, map[int64]*restaurant.CompleteEvaluation, error) {
	defer rows.Close()

	var completes []*restaurant.CompleteEvaluation
	byID := make(map[int64]*restaurant.CompleteEvaluation)
	for rows.Next() {
		var (
			id                 int64
			visitDate          string
			content, username  string
		)
		if err := rows.Scan(&id, &visitDate, &content, &username); err != nil {
			return nil, nil, fmt.Errorf("failed to scan complete evaluation: %w", err)
		}
		date, err := time.Parse(dateFormat, visitDate)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid visit date %q: %w", visitDate, err)
		}
		e := restaurant.RehydrateCompleteEvaluation(id, restaurantID, date, content, username)
		completes = append(completes, e)
		byID[id] = e
	}
	return completes, byID, rows.Err()
}

// Create persists a transient restaurant and any evaluations already attached
// to it, assigns identifiers and returns the persisted instance at version
// zero.
func (r *RestaurantRepository) Create(ctx context.Context, rest *restaurant.Restaurant) (*restaurant.Restaurant, error) {
	exec := r.executor(ctx)

	var id, version int64
	err := exec.QueryRow(ctx, `
		INSERT INTO restaurants (version, name, description, website, street, city_id, type_id)
		VALUES (0, $1, $2, $3, $4, $5, $6)
		RETURNING id, version`,
		rest.Name(), rest.Description(), rest.Website(), rest.Street(),
		rest.City().ID(), rest.Type().ID()).Scan(&id, &version)
	if err != nil {
		return nil, fmt.Errorf("failed to create restaurant: %w", err)
	}

	rest.AssignID(id)
	rest.SetVersion(version)

	for _, b := range rest.BasicEvaluations() {
		if err := r.insertBasicEvaluation(ctx, exec, id, b); err != nil {
			return nil, err
		}
	}
	for _, c := range rest.CompleteEvaluations() {
		if err := r.insertCompleteEvaluation(ctx, exec, id, c); err != nil {
			return nil, err
		}
	}
	return rest, nil
}

// Update performs the conditional write: the row is updated only when the
// stored version still equals the aggregate's version, and the version
// advances by exactly one in the same statement. Zero affected rows means
// another writer won the race. The evaluation collections are reconciled
// afterwards: transient evaluations are inserted, detached ones removed.
func (r *RestaurantRepository) Update(ctx context.Context, rest *restaurant.Restaurant) (*restaurant.Restaurant, error) {
	exec := r.executor(ctx)

	var newVersion int64
	err := exec.QueryRow(ctx, `
		UPDATE restaurants
		SET version = version + 1, name = $1, description = $2, website = $3, street = $4, city_id = $5, type_id = $6
		WHERE id = $7 AND version = $8
		RETURNING version`,
		rest.Name(), rest.Description(), rest.Website(), rest.Street(),
		rest.City().ID(), rest.Type().ID(),
		rest.ID(), rest.Version()).Scan(&newVersion)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, r.classifyConflict(ctx, exec, rest.ID())
		}
		return nil, fmt.Errorf("failed to update restaurant: %w", err)
	}
	rest.SetVersion(newVersion)

	if err := r.reconcileEvaluations(ctx, exec, rest); err != nil {
		return nil, err
	}
	return rest, nil
}

// classifyConflict tells a vanished row apart from a lost version race.
func (r *RestaurantRepository) classifyConflict(ctx context.Context, exec database.Executor, id int64) error {
	var storedVersion int64
	err := exec.QueryRow(ctx, `SELECT version FROM restaurants WHERE id = $1`, id).Scan(&storedVersion)
	if err != nil {
		if database.IsNoRows(err) {
			return restaurant.ErrNotFound
		}
		return fmt.Errorf("failed to check restaurant version: %w", err)
	}
	return restaurant.ErrConcurrentModification
}

func (r *RestaurantRepository) reconcileEvaluations(ctx context.Context, exec database.Executor, rest *restaurant.Restaurant) error {
	keptLikes := make([]int64, 0)
	for _, b := range rest.BasicEvaluations() {
		if b.IsTransient() {
			if err := r.insertBasicEvaluation(ctx, exec, rest.ID(), b); err != nil {
				return err
			}
		}
		keptLikes = append(keptLikes, b.ID())
	}
	if err := deleteDetached(ctx, exec, "likes", rest.ID(), keptLikes); err != nil {
		return err
	}

	keptComments := make([]int64, 0)
	for _, c := range rest.CompleteEvaluations() {
		if c.IsTransient() {
			if err := r.insertCompleteEvaluation(ctx, exec, rest.ID(), c); err != nil {
				return err
			}
		}
		keptComments = append(keptComments, c.ID())
	}
	// grades of detached comments go with them through the cascade
	return deleteDetached(ctx, exec, "comments", rest.ID(), keptComments)
}

// deleteDetached removes child rows whose ids are no longer present in the
// aggregate's collection (orphan removal).
func deleteDetached(ctx context.Context, exec database.Executor, table string, restaurantID int64, kept []int64) error {
	if len(kept) == 0 {
		_, err := exec.Exec(ctx, `DELETE FROM `+table+` WHERE restaurant_id = $1`, restaurantID)
		if err != nil {
			return fmt.Errorf("failed to delete detached rows from %s: %w", table, err)
		}
		return nil
	}

	placeholders := make([]string, len(kept))
	args := make([]any, 0, len(kept)+1)
	args = append(args, restaurantID)
	for i, id := range kept {
		placeholders[i] = fmt.Sprintf("$%d", i+2)
		args = append(args, id)
	}

	_, err := exec.Exec(ctx,
		`DELETE FROM `+table+` WHERE restaurant_id = $1 AND id NOT IN (`+strings.Join(placeholders, ", ")+`)`,
		args...)
	if err != nil {
		return fmt.Errorf("failed to delete detached rows from %s: %w", table, err)
	}
	return nil
}

func (r *RestaurantRepository) insertBasicEvaluation(ctx context.Context, exec database.Executor, restaurantID int64, e *restaurant.BasicEvaluation) error {
	var id int64
	err := exec.QueryRow(ctx, `
		INSERT INTO likes (restaurant_id, visit_date, liked, ip_address)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		restaurantID, e.VisitDate().Format(dateFormat), boolToInt(e.Liked()), e.IPAddress()).Scan(&id)
	if err != nil {
		return fmt.Errorf("failed to insert basic evaluation: %w", err)
	}
	e.AssignID(id)
	return nil
}

func (r *RestaurantRepository) insertCompleteEvaluation(ctx context.Context, exec database.Executor, restaurantID int64, e *restaurant.CompleteEvaluation) error {
	var id int64
	err := exec.QueryRow(ctx, `
		INSERT INTO comments (restaurant_id, visit_date, content, username)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		restaurantID, e.VisitDate().Format(dateFormat), e.Comment(), e.Username()).Scan(&id)
	if err != nil {
		return fmt.Errorf("failed to insert complete evaluation: %w", err)
	}
	e.AssignID(id)

	for _, g := range e.Grades() {
		var gradeID int64
		err := exec.QueryRow(ctx, `
			INSERT INTO grades (comment_id, criterion_id, value)
			VALUES ($1, $2, $3)
			RETURNING id`,
			id, g.Criterion().ID(), g.Value()).Scan(&gradeID)
		if err != nil {
			return fmt.Errorf("failed to insert grade: %w", err)
		}
		g.AssignID(gradeID)
	}
	return nil
}

// Delete removes the restaurant conditionally on its version. A missing row
// reports false without error (idempotent delete); a version mismatch on an
// existing row reports the concurrency conflict. Evaluations and grades go
// through the foreign key cascade.
func (r *RestaurantRepository) Delete(ctx context.Context, rest *restaurant.Restaurant) (bool, error) {
	exec := r.executor(ctx)

	result, err := exec.Exec(ctx,
		`DELETE FROM restaurants WHERE id = $1 AND version = $2`,
		rest.ID(), rest.Version())
	if err != nil {
		return false, fmt.Errorf("failed to delete restaurant: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected > 0 {
		return true, nil
	}

	switch err := r.classifyConflict(ctx, exec, rest.ID()); err {
	case restaurant.ErrNotFound:
		return false, nil
	default:
		return false, err
	}
}

// DeleteByID removes the row unconditionally and reports whether one existed.
func (r *RestaurantRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	result, err := r.executor(ctx).Exec(ctx, `DELETE FROM restaurants WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete restaurant: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
