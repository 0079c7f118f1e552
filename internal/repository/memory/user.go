package memory

import (
	"context"
	"sync"
	"time"

	"github.com/travelothai/travelothai-api/internal/domain"
	"github.com/travelothai/travelothai-api/internal/repository"
)

type UserRepository struct {
	mu sync.Mutex

	users  map[uint]domain.User
	nextID uint
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[uint]domain.User),
		nextID: 1,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username {
			return domain.User{}, repository.ErrUserUsernameExists
		}
		if existing.Email == user.Email {
			return domain.User{}, repository.ErrUserEmailExists
		}
	}

	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = user

	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func (r *UserRepository) FindByLogin(ctx context.Context, login string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Username == login || user.Email == login {
			return user, nil
		}
	}

	return domain.User{}, repository.ErrUserNotFound
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}

	user.LastLoginDate = &at
	user.UpdatedAt = time.Now()
	r.users[user.ID] = user

	return nil
}
