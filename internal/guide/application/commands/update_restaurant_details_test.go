package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/resto/internal/guide/domain/gastrotype"
	"github.com/felixgeelhaar/resto/internal/guide/domain/restaurant"
)

func TestUpdateRestaurantDetailsHandler_Execute(t *testing.T) {
	typeID := int64(7)

	tests := []struct {
		name       string
		cmd        UpdateRestaurantDetailsCommand
		setupMocks func(*mockRestaurantRepo, *mockTypeRepo, *mockOutboxRepo, *mockUnitOfWork)
		wantErr    error
		assertRepo func(*testing.T, *mockRestaurantRepo)
	}{
		{
			name: "updates details when version matches",
			cmd: UpdateRestaurantDetailsCommand{
				RestaurantID:    10,
				ExpectedVersion: 3,
				Name:            "Le Dauphin",
				Description:     "Seafood",
				Website:         "http://dauphin.ch",
			},
			setupMocks: func(repo *mockRestaurantRepo, types *mockTypeRepo, ob *mockOutboxRepo, uow *mockUnitOfWork) {
				existing := testRestaurant(10, 3)
				uow.On("Begin", mock.Anything).Return(context.Background(), nil)
				uow.On("Commit", mock.Anything).Return(nil)
				repo.On("FindByID", mock.Anything, int64(10)).Return(existing, nil)
				repo.On("Update", mock.Anything, existing).Return(existing, nil)
				ob.On("SaveBatch", mock.Anything, mock.AnythingOfType("[]*outbox.Message")).Return(nil)
			},
		},
		{
			name: "replaces type when a type id is given",
			cmd: UpdateRestaurantDetailsCommand{
				RestaurantID:    10,
				ExpectedVersion: 0,
				Name:            "Le Dauphin",
				TypeID:          &typeID,
			},
			setupMocks: func(repo *mockRestaurantRepo, types *mockTypeRepo, ob *mockOutboxRepo, uow *mockUnitOfWork) {
				existing := testRestaurant(10, 0)
				uow.On("Begin", mock.Anything).Return(context.Background(), nil)
				uow.On("Commit", mock.Anything).Return(nil)
				repo.On("FindByID", mock.Anything, int64(10)).Return(existing, nil)
				types.On("FindByID", mock.Anything, int64(7)).Return(gastrotype.Rehydrate(7, "Pizzeria", ""), nil)
				repo.On("Update", mock.Anything, mock.MatchedBy(func(r *restaurant.Restaurant) bool {
					return r.Type().ID() == 7
				})).Return(existing, nil)
				ob.On("SaveBatch", mock.Anything, mock.AnythingOfType("[]*outbox.Message")).Return(nil)
			},
		},
		{
			name: "stale expected version aborts before any mutation",
			cmd: UpdateRestaurantDetailsCommand{
				RestaurantID:    10,
				ExpectedVersion: 2,
				Name:            "Le Dauphin",
			},
			setupMocks: func(repo *mockRestaurantRepo, types *mockTypeRepo, ob *mockOutboxRepo, uow *mockUnitOfWork) {
				uow.On("Begin", mock.Anything).Return(context.Background(), nil)
				uow.On("Rollback", mock.Anything).Return(nil)
				repo.On("FindByID", mock.Anything, int64(10)).Return(testRestaurant(10, 5), nil)
			},
			wantErr: restaurant.ErrConcurrentModification,
			assertRepo: func(t *testing.T, repo *mockRestaurantRepo) {
				repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			},
		},
		{
			name: "unknown restaurant",
			cmd: UpdateRestaurantDetailsCommand{
				RestaurantID:    99,
				ExpectedVersion: 0,
				Name:            "Le Dauphin",
			},
			setupMocks: func(repo *mockRestaurantRepo, types *mockTypeRepo, ob *mockOutboxRepo, uow *mockUnitOfWork) {
				uow.On("Begin", mock.Anything).Return(context.Background(), nil)
				uow.On("Rollback", mock.Anything).Return(nil)
				repo.On("FindByID", mock.Anything, int64(99)).Return(nil, restaurant.ErrNotFound)
			},
			wantErr: restaurant.ErrNotFound,
		},
		{
			name: "unknown type id",
			cmd: UpdateRestaurantDetailsCommand{
				RestaurantID:    10,
				ExpectedVersion: 0,
				Name:            "Le Dauphin",
				TypeID:          &typeID,
			},
			setupMocks: func(repo *mockRestaurantRepo, types *mockTypeRepo, ob *mockOutboxRepo, uow *mockUnitOfWork) {
				uow.On("Begin", mock.Anything).Return(context.Background(), nil)
				uow.On("Rollback", mock.Anything).Return(nil)
				repo.On("FindByID", mock.Anything, int64(10)).Return(testRestaurant(10, 0), nil)
				types.On("FindByID", mock.Anything, int64(7)).Return(nil, gastrotype.ErrNotFound)
			},
			wantErr: gastrotype.ErrNotFound,
			assertRepo: func(t *testing.T, repo *mockRestaurantRepo) {
				repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			},
		},
		{
			name: "empty name is rejected",
			cmd: UpdateRestaurantDetailsCommand{
				RestaurantID:    10,
				ExpectedVersion: 0,
				Name:            "   ",
			},
			setupMocks: func(repo *mockRestaurantRepo, types *mockTypeRepo, ob *mockOutboxRepo, uow *mockUnitOfWork) {
				uow.On("Begin", mock.Anything).Return(context.Background(), nil)
				uow.On("Rollback", mock.Anything).Return(nil)
				repo.On("FindByID", mock.Anything, int64(10)).Return(testRestaurant(10, 0), nil)
			},
			wantErr: restaurant.ErrEmptyName,
			assertRepo: func(t *testing.T, repo *mockRestaurantRepo) {
				repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockRestaurantRepo)
			types := new(mockTypeRepo)
			ob := new(mockOutboxRepo)
			uow := new(mockUnitOfWork)
			tt.setupMocks(repo, types, ob, uow)

			handler := NewUpdateRestaurantDetailsHandler(repo, types, ob, uow)
			updated, err := handler.Execute(context.Background(), tt.cmd)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, updated)
			} else {
				require.NoError(t, err)
				require.NotNil(t, updated)
			}
			if tt.assertRepo != nil {
				tt.assertRepo(t, repo)
			}
			repo.AssertExpectations(t)
			types.AssertExpectations(t)
			ob.AssertExpectations(t)
			uow.AssertExpectations(t)
		})
	}
}
