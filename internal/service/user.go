package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/travelothai/travelothai-api/internal/domain"
	"github.com/travelothai/travelothai-api/internal/repository"
)

var (
	ErrUserNotFound       = repository.ErrUserNotFound
	ErrUserUsernameExists = repository.ErrUserUsernameExists
	ErrUserEmailExists    = repository.ErrUserEmailExists
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByLogin(ctx context.Context, login string) (domain.User, error)
	UpdateLastLogin(ctx context.Context, id uint, at time.Time) error
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}
