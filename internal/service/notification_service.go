package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/menro-ph/waste-api/internal/models"
	appErrors "github.com/menro-ph/waste-api/pkg/errors"
)

// NotificationStore is the persistence contract for notifications.
type NotificationStore interface {
	List(ctx context.Context) ([]models.Notification, error)
	Create(ctx context.Context, notification *models.Notification) error
}

// NotificationService records notification intents. It performs no delivery;
// recording is the whole operation.
type NotificationService struct {
	repo      NotificationStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewNotificationService constructs the service.
func NewNotificationService(repo NotificationStore, validate *validator.Validate, logger *zap.Logger) *NotificationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{repo: repo, validator: validate, logger: logger}
}

// CreateNotificationRequest describes the create payload. Channels arrives
// as a JSON array and is stored serialized as sent.
type CreateNotificationRequest struct {
	Subject        string `json:"subject" validate:"required"`
	Message        string `json:"message" validate:"required"`
	Type           string `json:"type" validate:"required"`
	RecipientGroup string `json:"recipientGroup" validate:"required"`
	Channels       string `json:"channels" validate:"required"`
}

// List returns every recorded notification in insertion order.
func (s *NotificationService) List(ctx context.Context) ([]models.Notification, error) {
	notifications, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list notifications")
	}
	return notifications, nil
}

// Create records a notification intent and stamps sentAt.
func (s *NotificationService) Create(ctx context.Context, req CreateNotificationRequest) (*models.Notification, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid notification data")
	}
	notification := &models.Notification{
		Subject:        req.Subject,
		Message:        req.Message,
		Type:           req.Type,
		RecipientGroup: req.RecipientGroup,
		Channels:       req.Channels,
	}
	if err := s.repo.Create(ctx, notification); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create notification")
	}
	s.logger.Info("notification recorded",
		zap.Int64("id", notification.ID),
		zap.String("recipient_group", notification.RecipientGroup))
	return notification, nil
}
