package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/menro-ph/waste-api/internal/models"
	"github.com/menro-ph/waste-api/internal/store"
	appErrors "github.com/menro-ph/waste-api/pkg/errors"
)

// UserStore is the persistence contract for login profiles.
type UserStore interface {
	Get(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// UserService manages login profiles. No HTTP routes expose it today; the
// client keeps its own session state. It backs seeding and future auth work.
type UserService struct {
	repo      UserStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUserService constructs the service.
func NewUserService(repo UserStore, validate *validator.Validate, logger *zap.Logger) *UserService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{repo: repo, validator: validate, logger: logger}
}

// CreateUserRequest describes the create payload. Passwords are stored as
// given; hashing is out of scope for this backend.
type CreateUserRequest struct {
	Username                string  `json:"username" validate:"required"`
	Password                string  `json:"password" validate:"required"`
	Role                    string  `json:"role"`
	Name                    string  `json:"name" validate:"required"`
	Email                   string  `json:"email" validate:"required"`
	Barangay                *string `json:"barangay"`
	NotificationPreferences string  `json:"notificationPreferences"`
}

// Get returns a user by id.
func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load user")
	}
	return user, nil
}

// GetByUsername returns a user by exact username.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load user")
	}
	return user, nil
}

// Create materializes a user, defaulting role to resident and notification
// preferences to the email channel.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid user data")
	}
	user := &models.User{
		Username:                req.Username,
		Password:                req.Password,
		Role:                    models.UserRole(req.Role),
		Name:                    req.Name,
		Email:                   req.Email,
		Barangay:                req.Barangay,
		NotificationPreferences: req.NotificationPreferences,
	}
	if user.Role == "" {
		user.Role = models.RoleResident
	}
	if user.NotificationPreferences == "" {
		user.NotificationPreferences = `["email"]`
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create user")
	}
	s.logger.Info("user created", zap.Int64("id", user.ID), zap.String("username", user.Username))
	return user, nil
}
