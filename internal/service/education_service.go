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

// EducationStore is the persistence contract for educational content.
type EducationStore interface {
	List(ctx context.Context) ([]models.EducationalContent, error)
	Get(ctx context.Context, id int64) (*models.EducationalContent, error)
	Create(ctx context.Context, content *models.EducationalContent) error
	Update(ctx context.Context, id int64, patch models.EducationalContentPatch) (*models.EducationalContent, error)
}

// EducationService handles public awareness content.
type EducationService struct {
	repo      EducationStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEducationService constructs the service.
func NewEducationService(repo EducationStore, validate *validator.Validate, logger *zap.Logger) *EducationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EducationService{repo: repo, validator: validate, logger: logger}
}

// CreateEducationalContentRequest describes the create payload. Views may be
// pre-set by the client; an omitted value starts the counter at zero.
type CreateEducationalContentRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Type        string  `json:"type" validate:"required"`
	Content     string  `json:"content" validate:"required"`
	ImageURL    *string `json:"imageUrl"`
	Views       *int    `json:"views"`
}

// List returns every content item in insertion order.
func (s *EducationService) List(ctx context.Context) ([]models.EducationalContent, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list educational content")
	}
	return items, nil
}

// Get returns a content item by id.
func (s *EducationService) Get(ctx context.Context, id int64) (*models.EducationalContent, error) {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "content not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load educational content")
	}
	return item, nil
}

// Create materializes a content item with both timestamps stamped.
func (s *EducationService) Create(ctx context.Context, req CreateEducationalContentRequest) (*models.EducationalContent, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid content data")
	}
	item := &models.EducationalContent{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
	}
	if req.Views != nil {
		item.Views = *req.Views
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create educational content")
	}
	s.logger.Info("educational content created", zap.Int64("id", item.ID), zap.String("type", item.Type))
	return item, nil
}

// Update merges the patch onto the stored record. UpdatedAt is refreshed on
// every successful call, even when the patch is empty.
func (s *EducationService) Update(ctx context.Context, id int64, patch models.EducationalContentPatch) (*models.EducationalContent, error) {
	item, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "content not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update educational content")
	}
	return item, nil
}
