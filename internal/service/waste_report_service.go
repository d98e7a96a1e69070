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

// WasteReportStore is the persistence contract for waste reports.
type WasteReportStore interface {
	List(ctx context.Context) ([]models.WasteReport, error)
	Get(ctx context.Context, id int64) (*models.WasteReport, error)
	Create(ctx context.Context, report *models.WasteReport) error
	Update(ctx context.Context, id int64, patch models.WasteReportPatch) (*models.WasteReport, error)
}

// WasteReportService handles resident-filed waste reports.
type WasteReportService struct {
	repo      WasteReportStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewWasteReportService constructs the service.
func NewWasteReportService(repo WasteReportStore, validate *validator.Validate, logger *zap.Logger) *WasteReportService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WasteReportService{repo: repo, validator: validate, logger: logger}
}

// CreateWasteReportRequest describes the create payload. ReportedBy is a
// soft reference: it is stored as given without checking the resident
// exists. ImageURL may be any path string; the file is never verified.
type CreateWasteReportRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Type        string  `json:"type" validate:"required"`
	Location    string  `json:"location" validate:"required"`
	Coordinates *string `json:"coordinates"`
	ImageURL    *string `json:"imageUrl"`
	Status      string  `json:"status"`
	ReportedBy  *int64  `json:"reportedBy"`
}

// List returns every waste report in insertion order.
func (s *WasteReportService) List(ctx context.Context) ([]models.WasteReport, error) {
	reports, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list waste reports")
	}
	return reports, nil
}

// Get returns a waste report by id.
func (s *WasteReportService) Get(ctx context.Context, id int64) (*models.WasteReport, error) {
	report, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "report not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load waste report")
	}
	return report, nil
}

// Create materializes a waste report: id and createdAt are server-owned,
// omitted optionals become null and an omitted status defaults to pending.
func (s *WasteReportService) Create(ctx context.Context, req CreateWasteReportRequest) (*models.WasteReport, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid report data")
	}
	report := &models.WasteReport{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Location:    req.Location,
		Coordinates: req.Coordinates,
		ImageURL:    req.ImageURL,
		Status:      req.Status,
		ReportedBy:  req.ReportedBy,
	}
	if report.Status == "" {
		report.Status = models.ReportStatusPending
	}
	if err := s.repo.Create(ctx, report); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create waste report")
	}
	s.logger.Info("waste report created", zap.Int64("id", report.ID), zap.String("type", report.Type))
	return report, nil
}

// Update merges the patch onto the stored record. Status transitions are not
// enforced; any value is written as sent.
func (s *WasteReportService) Update(ctx context.Context, id int64, patch models.WasteReportPatch) (*models.WasteReport, error) {
	report, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "report not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update waste report")
	}
	return report, nil
}
