package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menro-ph/waste-api/internal/models"
	appErrors "github.com/menro-ph/waste-api/pkg/errors"
)

type fakeNotificationRepo struct {
	notifications []models.Notification
	created       *models.Notification
	err           error
}

func (f *fakeNotificationRepo) List(context.Context) ([]models.Notification, error) {
	return f.notifications, f.err
}

func (f *fakeNotificationRepo) Create(_ context.Context, notification *models.Notification) error {
	if f.err != nil {
		return f.err
	}
	notification.ID = int64(len(f.notifications) + 1)
	f.created = notification
	return nil
}

func TestNotificationServiceCreate(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, nil, nil)

	notification, err := svc.Create(context.Background(), CreateNotificationRequest{
		Subject:        "Collection delay",
		Message:        "Zone 2 pickup moved to tomorrow",
		Type:           "advisory",
		RecipientGroup: "zone-2",
		Channels:       `["email","sms"]`,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), notification.ID)
	assert.Equal(t, `["email","sms"]`, notification.Channels)
}

func TestNotificationServiceCreateValidation(t *testing.T) {
	svc := NewNotificationService(&fakeNotificationRepo{}, nil, nil)

	_, err := svc.Create(context.Background(), CreateNotificationRequest{Subject: "no message"})
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestNotificationServiceList(t *testing.T) {
	repo := &fakeNotificationRepo{notifications: []models.Notification{{ID: 1}, {ID: 2}}}
	svc := NewNotificationService(repo, nil, nil)

	notifications, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, notifications, 2)
}
