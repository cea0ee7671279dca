package commands

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/felixgeelhaar/resto/internal/shared/infrastructure/outbox"

	"github.com/felixgeelhaar/resto/internal/guide/domain/city"
	"github.com/felixgeelhaar/resto/internal/guide/domain/criterion"
	"github.com/felixgeelhaar/resto/internal/guide/domain/gastrotype"
	"github.com/felixgeelhaar/resto/internal/guide/domain/restaurant"
)

// mockRestaurantRepo is a mock implementation of restaurant.Repository.
type mockRestaurantRepo struct {
	mock.Mock
}

func (m *mockRestaurantRepo) FindByID(ctx context.Context, id int64) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Restaurant), args.Error(1)
}

func (m *mockRestaurantRepo) FindAll(ctx context.Context) ([]*restaurant.Restaurant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*restaurant.Restaurant), args.Error(1)
}

func (m *mockRestaurantRepo) FindByName(ctx context.Context, name string) ([]*restaurant.Restaurant, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*restaurant.Restaurant), args.Error(1)
}

func (m *mockRestaurantRepo) FindByCityName(ctx context.Context, fragment string) ([]*restaurant.Restaurant, error) {
	args := m.Called(ctx, fragment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*restaurant.Restaurant), args.Error(1)
}

func (m *mockRestaurantRepo) FindByType(ctx context.Context, typeID int64) ([]*restaurant.Restaurant, error) {
	args := m.Called(ctx, typeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*restaurant.Restaurant), args.Error(1)
}

func (m *mockRestaurantRepo) Create(ctx context.Context, r *restaurant.Restaurant) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Restaurant), args.Error(1)
}

func (m *mockRestaurantRepo) Update(ctx context.Context, r *restaurant.Restaurant) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*restaurant.Restaurant), args.Error(1)
}

func (m *mockRestaurantRepo) Delete(ctx context.Context, r *restaurant.Restaurant) (bool, error) {
	args := m.Called(ctx, r)
	return args.Bool(0), args.Error(1)
}

func (m *mockRestaurantRepo) DeleteByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// mockCityRepo is a mock implementation of city.Repository.
type mockCityRepo struct {
	mock.Mock
}

func (m *mockCityRepo) FindByID(ctx context.Context, id int64) (*city.City, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*city.City), args.Error(1)
}

func (m *mockCityRepo) FindAll(ctx context.Context) ([]*city.City, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*city.City), args.Error(1)
}

func (m *mockCityRepo) Create(ctx context.Context, c *city.City) (*city.City, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*city.City), args.Error(1)
}

func (m *mockCityRepo) Update(ctx context.Context, c *city.City) (*city.City, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*city.City), args.Error(1)
}

func (m *mockCityRepo) Delete(ctx context.Context, c *city.City) (bool, error) {
	args := m.Called(ctx, c)
	return args.Bool(0), args.Error(1)
}

func (m *mockCityRepo) DeleteByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// mockTypeRepo is a mock implementation of gastrotype.Repository.
type mockTypeRepo struct {
	mock.Mock
}

func (m *mockTypeRepo) FindByID(ctx context.Context, id int64) (*gastrotype.RestaurantType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gastrotype.RestaurantType), args.Error(1)
}

func (m *mockTypeRepo) FindAll(ctx context.Context) ([]*gastrotype.RestaurantType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*gastrotype.RestaurantType), args.Error(1)
}

func (m *mockTypeRepo) Create(ctx context.Context, t *gastrotype.RestaurantType) (*gastrotype.RestaurantType, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gastrotype.RestaurantType), args.Error(1)
}

func (m *mockTypeRepo) Update(ctx context.Context, t *gastrotype.RestaurantType) (*gastrotype.RestaurantType, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gastrotype.RestaurantType), args.Error(1)
}

func (m *mockTypeRepo) Delete(ctx context.Context, t *gastrotype.RestaurantType) (bool, error) {
	args := m.Called(ctx, t)
	return args.Bool(0), args.Error(1)
}

func (m *mockTypeRepo) DeleteByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// mockCriterionRepo is a mock implementation of criterion.Repository.
type mockCriterionRepo struct {
	mock.Mock
}

func (m *mockCriterionRepo) FindByID(ctx context.Context, id int64) (*criterion.Criterion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*criterion.Criterion), args.Error(1)
}

func (m *mockCriterionRepo) FindAll(ctx context.Context) ([]*criterion.Criterion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*criterion.Criterion), args.Error(1)
}

func (m *mockCriterionRepo) Create(ctx context.Context, c *criterion.Criterion) (*criterion.Criterion, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*criterion.Criterion), args.Error(1)
}

func (m *mockCriterionRepo) Update(ctx context.Context, c *criterion.Criterion) (*criterion.Criterion, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*criterion.Criterion), args.Error(1)
}

func (m *mockCriterionRepo) Delete(ctx context.Context, c *criterion.Criterion) (bool, error) {
	args := m.Called(ctx, c)
	return args.Bool(0), args.Error(1)
}

func (m *mockCriterionRepo) DeleteByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// mockOutboxRepo is a mock implementation of outbox.Repository.
type mockOutboxRepo struct {
	mock.Mock
}

func (m *mockOutboxRepo) Save(ctx context.Context, msg *outbox.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *mockOutboxRepo) SaveBatch(ctx context.Context, msgs []*outbox.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *mockOutboxRepo) GetUnpublished(ctx context.Context, limit int) ([]*outbox.Message, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*outbox.Message), args.Error(1)
}

func (m *mockOutboxRepo) MarkPublished(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockOutboxRepo) MarkFailed(ctx context.Context, id int64, errMsg string, nextRetryAt time.Time) error {
	args := m.Called(ctx, id, errMsg, nextRetryAt)
	return args.Error(0)
}

func (m *mockOutboxRepo) MarkDead(ctx context.Context, id int64, reason string) error {
	args := m.Called(ctx, id, reason)
	return args.Error(0)
}

func (m *mockOutboxRepo) DeleteOld(ctx context.Context, olderThan time.Duration) (int64, error) {
	args := m.Called(ctx, olderThan)
	return args.Get(0).(int64), args.Error(1)
}

// mockUnitOfWork is a mock implementation of application.UnitOfWork.
type mockUnitOfWork struct {
	mock.Mock
}

func (m *mockUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(context.Context), args.Error(1)
}

func (m *mockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func testCity() *city.City {
	return city.Rehydrate(1, "1950", "Sion")
}

func testType() *gastrotype.RestaurantType {
	return gastrotype.Rehydrate(2, "Gastronomique", "Haute cuisine")
}

func testCriterion() *criterion.Criterion {
	return criterion.Rehydrate(3, "Service", "Quality of the service")
}

func testRestaurant(id, version int64) *restaurant.Restaurant {
	return restaurant.Rehydrate(id, version, "Les Trois Couronnes", "Fine dining", "http://3couronnes.ch", "Rue du Bourg 8", testCity(), testType())
}
