package queries

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/felixgeelhaar/resto/internal/guide/domain/city"
	"github.com/felixgeelhaar/resto/internal/guide/domain/criterion"
	"github.com/felixgeelhaar/resto/internal/guide/domain/gastrotype"
	"github.com/felixgeelhaar/resto/internal/guide/domain/restaurant"
)

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

func testRestaurant() *restaurant.Restaurant {
	c := city.Rehydrate(1, "1950", "Sion")
	t := gastrotype.Rehydrate(2, "Gastronomique", "Haute cuisine")
	return restaurant.Rehydrate(10, 3, "Les Trois Couronnes", "Fine dining", "http://3couronnes.ch", "Rue du Bourg 8", c, t)
}

func testRestaurantWithEvaluations() *restaurant.Restaurant {
	r := testRestaurant()
	visit := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	like := restaurant.RehydrateBasicEvaluation(100, r.ID(), visit, true, "192.168.1.10")
	dislike := restaurant.RehydrateBasicEvaluation(101, r.ID(), visit, false, "192.168.1.11")

	comment := restaurant.RehydrateCompleteEvaluation(200, r.ID(), visit, "Excellent meal.", "gourmet42")
	service := criterion.Rehydrate(3, "Service", "Quality of the service")
	comment.AddGrade(restaurant.RehydrateGrade(300, 5, service))

	r.SetEvaluations([]restaurant.Evaluation{like, dislike, comment})
	return r
}
