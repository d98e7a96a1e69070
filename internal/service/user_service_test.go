package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menro-ph/waste-api/internal/models"
	"github.com/menro-ph/waste-api/internal/store"
	appErrors "github.com/menro-ph/waste-api/pkg/errors"
)

type fakeUserRepo struct {
	users   []models.User
	created *models.User
	err     error
}

func (f *fakeUserRepo) Get(_ context.Context, id int64) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].Username == username {
			return &f.users[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if f.err != nil {
		return f.err
	}
	user.ID = int64(len(f.users) + 1)
	f.created = user
	return nil
}

func TestUserServiceCreateDefaults(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo, nil, nil)

	user, err := svc.Create(context.Background(), CreateUserRequest{
		Username: "resident1",
		Password: "password123",
		Name:     "Pedro Penduko",
		Email:    "pedro@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleResident, user.Role)
	assert.Equal(t, `["email"]`, user.NotificationPreferences)
	assert.Nil(t, user.Barangay)
}

func TestUserServiceCreateValidation(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{}, nil, nil)

	_, err := svc.Create(context.Background(), CreateUserRequest{Username: "nopass"})
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestUserServiceGetByUsername(t *testing.T) {
	repo := &fakeUserRepo{users: []models.User{{ID: 1, Username: "admin", Role: models.RoleAdmin}}}
	svc := NewUserService(repo, nil, nil)

	user, err := svc.GetByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)

	_, err = svc.GetByUsername(context.Background(), "ghost")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
