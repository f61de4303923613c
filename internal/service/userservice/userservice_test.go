package userservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/solrps/arena/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	return New(userRepo, 1000), userRepo
}

func TestRegister(t *testing.T) {
	t.Run("New user gets the seed balance", func(t *testing.T) {
		service, userRepo := NewMock(t)
		userRepo.EXPECT().FindByID(gomock.Any(), "alice").Return(nil, nil)
		userRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, user *domain.User) error {
				assert.Equal(t, int64(1000), user.Balance)
				assert.Equal(t, "Alice", user.DisplayName)
				return nil
			})

		user, err := service.Register(context.Background(), "alice", "Alice")
		require.NoError(t, err)
		assert.Equal(t, int64(1000), user.Balance)
	})

	t.Run("Duplicate registration rejected", func(t *testing.T) {
		service, userRepo := NewMock(t)
		userRepo.EXPECT().FindByID(gomock.Any(), "alice").Return(&domain.User{ID: "alice"}, nil)

		_, err := service.Register(context.Background(), "alice", "Alice")
		assert.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("Empty id rejected", func(t *testing.T) {
		service, _ := NewMock(t)
		_, err := service.Register(context.Background(), "", "Alice")
		assert.ErrorIs(t, err, ErrInvalidID)
	})
}

func TestGet(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		service, userRepo := NewMock(t)
		userRepo.EXPECT().FindByID(gomock.Any(), "alice").Return(&domain.User{ID: "alice", Balance: 700}, nil)

		user, err := service.Get(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, int64(700), user.Balance)
	})

	t.Run("Missing", func(t *testing.T) {
		service, userRepo := NewMock(t)
		userRepo.EXPECT().FindByID(gomock.Any(), "alice").Return(nil, nil)

		_, err := service.Get(context.Background(), "alice")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
