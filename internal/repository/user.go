package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/travelothai/travelothai-api/internal/domain"
	"github.com/travelothai/travelothai-api/internal/repository/dao"
)

var (
	ErrUserNotFound       = dao.ErrUserNotFound
	ErrUserUsernameExists = dao.ErrUserUsernameExists
	ErrUserEmailExists    = dao.ErrUserEmailExists
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindByID(ctx context.Context, id uint) (dao.User, error)
	FindByLogin(ctx context.Context, login string) (dao.User, error)
	UpdateLastLogin(ctx context.Context, id uint, at time.Time) error
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := r.dao.Insert(ctx, dao.User{
		Username: user.Username,
		Email:    user.Email,
		Password: user.Password,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindByLogin(ctx context.Context, login string) (domain.User, error) {
	found, err := r.dao.FindByLogin(ctx, login)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByLogin -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	if err := r.dao.UpdateLastLogin(ctx, id, at); err != nil {
		return fmt.Errorf("r.dao.UpdateLastLogin -> %w", err)
	}

	return nil
}

func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	return domain.User{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		Password:      u.Password,
		LastLoginDate: u.LastLoginDate,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}
