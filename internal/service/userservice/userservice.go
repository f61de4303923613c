package userservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/solrps/arena/internal/domain"
)

type UserRepo interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) error
}

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already registered")
	ErrInvalidID    = errors.New("user id must not be empty")
)

type Service struct {
	userRepo    UserRepo
	seedBalance int64
}

func New(userRepo UserRepo, seedBalance int64) *Service {
	return &Service{userRepo: userRepo, seedBalance: seedBalance}
}

// Register creates a user with the configured starting balance. The id is
// caller-supplied; there is no credential layer in front of it.
func (s *Service) Register(ctx context.Context, id, displayName string) (*domain.User, error) {
	if id == "" {
		return nil, ErrInvalidID
	}
	existing, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	user := &domain.User{
		ID:          id,
		DisplayName: displayName,
		Balance:     s.seedBalance,
		CreatedAt:   time.Now(),
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	zap.L().Info("user registered", zap.String("user_id", id))
	return user, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
