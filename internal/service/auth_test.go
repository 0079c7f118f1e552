package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelothai/travelothai-api/internal/domain"
	"github.com/travelothai/travelothai-api/internal/repository/memory"
	"github.com/travelothai/travelothai-api/internal/service"
)

func TestSignupAndLogin(t *testing.T) {
	svc := service.NewAuthService(memory.NewUserRepository())
	ctx := context.Background()

	created, err := svc.Signup(ctx, domain.User{
		Username: "somsak",
		Email:    "somsak@example.com",
		Password: "secret-pass1",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "secret-pass1", created.Password, "password must be stored hashed")

	byUsername, err := svc.Login(ctx, "somsak", "secret-pass1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byUsername.ID)

	byEmail, err := svc.Login(ctx, "somsak@example.com", "secret-pass1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	_, err = svc.Login(ctx, "somsak", "wrong-pass1")
	assert.ErrorIs(t, err, service.ErrWrongPassword)

	_, err = svc.Login(ctx, "nobody", "secret-pass1")
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestSignupRejectsDuplicates(t *testing.T) {
	svc := service.NewAuthService(memory.NewUserRepository())
	ctx := context.Background()

	_, err := svc.Signup(ctx, domain.User{
		Username: "somsak",
		Email:    "somsak@example.com",
		Password: "secret-pass1",
	})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, domain.User{
		Username: "somsak",
		Email:    "other@example.com",
		Password: "secret-pass1",
	})
	assert.ErrorIs(t, err, service.ErrUserUsernameExists)

	_, err = svc.Signup(ctx, domain.User{
		Username: "somchai",
		Email:    "somsak@example.com",
		Password: "secret-pass1",
	})
	assert.ErrorIs(t, err, service.ErrUserEmailExists)
}
