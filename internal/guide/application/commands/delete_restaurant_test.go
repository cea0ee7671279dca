package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/resto/internal/guide/domain/restaurant"
)

func TestDeleteRestaurantHandler_Execute(t *testing.T) {
	tests := []struct {
		name       string
		cmd        DeleteRestaurantCommand
		setupMocks func(*mockRestaurantRepo, *mockOutboxRepo, *mockUnitOfWork)
		wantErr    error
		assertRepo func(*testing.T, *mockRestaurantRepo)
	}{
		{
			name: "deletes when version matches",
			cmd:  DeleteRestaurantCommand{RestaurantID: 10, ExpectedVersion: 2},
			setupMocks: func(repo *mockRestaurantRepo, ob *mockOutboxRepo, uow *mockUnitOfWork) {
				existing := testRestaurant(10, 2)
				uow.On("Begin", mock.Anything).Return(context.Background(), nil)
				uow.On("Commit", mock.Anything).Return(nil)
				repo.On("FindByID", mock.Anything, int64(10)).Return(existing, nil)
				repo.On("Delete", mock.Anything, existing).Return(true, nil)
				ob.On("SaveBatch", mock.Anything, mock.AnythingOfType("[]*outbox.Message")).Return(nil)
			},
		},
		{
			name: "missing restaurant is a silent no-op",
			cmd:  DeleteRestaurantCommand{RestaurantID: 99, ExpectedVersion: 0},
			setupMocks: func(repo *mockRestaurantRepo, ob *mockOutboxRepo, uow *mockUnitOfWork) {
				uow.On("Begin", mock.Anything).Return(context.Background(), nil)
				uow.On("Commit", mock.Anything).Return(nil)
				repo.On("FindByID", mock.Anything, int64(99)).Return(nil, restaurant.ErrNotFound)
			},
			assertRepo: func(t *testing.T, repo *mockRestaurantRepo) {
				repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			},
		},
		{
			name: "stale expected version on an existing row is a conflict",
			cmd:  DeleteRestaurantCommand{RestaurantID: 10, ExpectedVersion: 1},
			setupMocks: func(repo *mockRestaurantRepo, ob *mockOutboxRepo, uow *mockUnitOfWork) {
				uow.On("Begin", mock.Anything).Return(context.Background(), nil)
				uow.On("Rollback", mock.Anything).Return(nil)
				repo.On("FindByID", mock.Anything, int64(10)).Return(testRestaurant(10, 3), nil)
			},
			wantErr: restaurant.ErrConcurrentModification,
			assertRepo: func(t *testing.T, repo *mockRestaurantRepo) {
				repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			},
		},
		{
			name: "concurrent delete detected by the conditional write",
			cmd:  DeleteRestaurantCommand{RestaurantID: 10, ExpectedVersion: 2},
			setupMocks: func(repo *mockRestaurantRepo, ob *mockOutboxRepo, uow *mockUnitOfWork) {
				existing := testRestaurant(10, 2)
				uow.On("Begin", mock.Anything).Return(context.Background(), nil)
				uow.On("Rollback", mock.Anything).Return(nil)
				repo.On("FindByID", mock.Anything, int64(10)).Return(existing, nil)
				repo.On("Delete", mock.Anything, existing).Return(false, restaurant.ErrConcurrentModification)
			},
			wantErr: restaurant.ErrConcurrentModification,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockRestaurantRepo)
			ob := new(mockOutboxRepo)
			uow := new(mockUnitOfWork)
			tt.setupMocks(repo, ob, uow)

			handler := NewDeleteRestaurantHandler(repo, ob, uow)
			err := handler.Execute(context.Background(), tt.cmd)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			if tt.assertRepo != nil {
				tt.assertRepo(t, repo)
			}
			repo.AssertExpectations(t)
			ob.AssertExpectations(t)
			uow.AssertExpectations(t)
		})
	}
}
