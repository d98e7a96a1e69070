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

// ResidentStore is the persistence contract for residents. Both the memory
// store and the Postgres repository satisfy it.
type ResidentStore interface {
	List(ctx context.Context) ([]models.Resident, error)
	Get(ctx context.Context, id int64) (*models.Resident, error)
	Create(ctx context.Context, resident *models.Resident) error
	Update(ctx context.Context, id int64, patch models.ResidentPatch) (*models.Resident, error)
}

// ResidentService handles resident registrations.
type ResidentService struct {
	repo      ResidentStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewResidentService constructs the service.
func NewResidentService(repo ResidentStore, validate *validator.Validate, logger *zap.Logger) *ResidentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResidentService{repo: repo, validator: validate, logger: logger}
}

// CreateResidentRequest describes the create payload. Validation is
// structural only: status may hold any string.
type CreateResidentRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Location string `json:"location" validate:"required"`
	Status   string `json:"status"`
}

// List returns every resident in insertion order.
func (s *ResidentService) List(ctx context.Context) ([]models.Resident, error) {
	residents, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list residents")
	}
	return residents, nil
}

// Get returns a resident by id.
func (s *ResidentService) Get(ctx context.Context, id int64) (*models.Resident, error) {
	resident, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "resident not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load resident")
	}
	return resident, nil
}

// Create materializes a resident, substituting the active default for an
// omitted status. The store stamps id and registration date.
func (s *ResidentService) Create(ctx context.Context, req CreateResidentRequest) (*models.Resident, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid resident data")
	}
	resident := &models.Resident{
		Name:     req.Name,
		Email:    req.Email,
		Location: req.Location,
		Status:   req.Status,
	}
	if resident.Status == "" {
		resident.Status = string(models.ResidentStatusActive)
	}
	if err := s.repo.Create(ctx, resident); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create resident")
	}
	s.logger.Info("resident created", zap.Int64("id", resident.ID))
	return resident, nil
}

// Update merges the patch onto the stored record; absent fields stay put.
func (s *ResidentService) Update(ctx context.Context, id int64, patch models.ResidentPatch) (*models.Resident, error) {
	resident, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "resident not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update resident")
	}
	return resident, nil
}
