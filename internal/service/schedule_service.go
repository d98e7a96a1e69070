package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/menro-ph/waste-api/internal/models"
	"github.com/menro-ph/waste-api/internal/store"
	appErrors "github.com/menro-ph/waste-api/pkg/errors"
)

// ScheduleStore is the persistence contract for collection schedules.
type ScheduleStore interface {
	List(ctx context.Context) ([]models.CollectionSchedule, error)
	Get(ctx context.Context, id int64) (*models.CollectionSchedule, error)
	Create(ctx context.Context, schedule *models.CollectionSchedule) error
	Update(ctx context.Context, id int64, patch models.CollectionSchedulePatch) (*models.CollectionSchedule, error)
}

// ScheduleService handles collection schedules.
type ScheduleService struct {
	repo      ScheduleStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewScheduleService constructs the service.
func NewScheduleService(repo ScheduleStore, validate *validator.Validate, logger *zap.Logger) *ScheduleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{repo: repo, validator: validate, logger: logger}
}

// CreateScheduleRequest describes the create payload. No uniqueness applies
// across zone and date: duplicate schedules are accepted.
type CreateScheduleRequest struct {
	Zone          string    `json:"zone" validate:"required"`
	Barangay      string    `json:"barangay" validate:"required"`
	ScheduledDate time.Time `json:"scheduledDate" validate:"required"`
	ScheduledTime string    `json:"scheduledTime" validate:"required"`
	Status        string    `json:"status"`
	TruckID       *string   `json:"truckId"`
}

// List returns every schedule in insertion order.
func (s *ScheduleService) List(ctx context.Context) ([]models.CollectionSchedule, error) {
	schedules, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list collection schedules")
	}
	return schedules, nil
}

// Get returns a schedule by id.
func (s *ScheduleService) Get(ctx context.Context, id int64) (*models.CollectionSchedule, error) {
	schedule, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "schedule not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load collection schedule")
	}
	return schedule, nil
}

// Create materializes a schedule, defaulting status to scheduled and truckId
// to null when omitted.
func (s *ScheduleService) Create(ctx context.Context, req CreateScheduleRequest) (*models.CollectionSchedule, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule data")
	}
	schedule := &models.CollectionSchedule{
		Zone:          req.Zone,
		Barangay:      req.Barangay,
		ScheduledDate: req.ScheduledDate,
		ScheduledTime: req.ScheduledTime,
		Status:        req.Status,
		TruckID:       req.TruckID,
	}
	if schedule.Status == "" {
		schedule.Status = models.ScheduleStatusScheduled
	}
	if err := s.repo.Create(ctx, schedule); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create collection schedule")
	}
	s.logger.Info("collection schedule created", zap.Int64("id", schedule.ID), zap.String("zone", schedule.Zone))
	return schedule, nil
}

// Update merges the patch onto the stored record.
func (s *ScheduleService) Update(ctx context.Context, id int64, patch models.CollectionSchedulePatch) (*models.CollectionSchedule, error) {
	schedule, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "schedule not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update collection schedule")
	}
	return schedule, nil
}
