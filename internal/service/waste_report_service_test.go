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

type fakeWasteReportRepo struct {
	reports []models.WasteReport
	created *models.WasteReport
	updated *models.WasteReport
	err     error
}

func (f *fakeWasteReportRepo) List(context.Context) ([]models.WasteReport, error) {
	return f.reports, f.err
}

func (f *fakeWasteReportRepo) Get(_ context.Context, id int64) (*models.WasteReport, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.reports {
		if f.reports[i].ID == id {
			return &f.reports[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeWasteReportRepo) Create(_ context.Context, report *models.WasteReport) error {
	if f.err != nil {
		return f.err
	}
	report.ID = int64(len(f.reports) + 1)
	f.created = report
	return nil
}

func (f *fakeWasteReportRepo) Update(_ context.Context, id int64, patch models.WasteReportPatch) (*models.WasteReport, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.updated == nil {
		return nil, store.ErrNotFound
	}
	if patch.Status != nil {
		f.updated.Status = *patch.Status
	}
	return f.updated, nil
}

func TestWasteReportServiceCreateDefaults(t *testing.T) {
	repo := &fakeWasteReportRepo{}
	svc := NewWasteReportService(repo, nil, nil)

	report, err := svc.Create(context.Background(), CreateWasteReportRequest{
		Title:       "Garbage not collected",
		Description: "Bins overflowing for three days",
		Type:        models.ReportTypeUncollected,
		Location:    "Zone 3, Barangay San Jose",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusPending, report.Status)
	assert.Nil(t, report.Coordinates)
	assert.Nil(t, report.ImageURL)
	assert.Nil(t, report.ReportedBy)
}

func TestWasteReportServiceCreateKeepsSoftReference(t *testing.T) {
	repo := &fakeWasteReportRepo{}
	svc := NewWasteReportService(repo, nil, nil)

	// Nothing checks the resident exists; a dangling id is stored as sent.
	reportedBy := int64(9999)
	report, err := svc.Create(context.Background(), CreateWasteReportRequest{
		Title:       "Illegal dumping",
		Description: "Construction debris by the river",
		Type:        models.ReportTypeIllegalDumping,
		Location:    "Riverside",
		ReportedBy:  &reportedBy,
	})
	require.NoError(t, err)
	require.NotNil(t, report.ReportedBy)
	assert.Equal(t, int64(9999), *report.ReportedBy)
}

func TestWasteReportServiceCreateValidation(t *testing.T) {
	svc := NewWasteReportService(&fakeWasteReportRepo{}, nil, nil)

	_, err := svc.Create(context.Background(), CreateWasteReportRequest{Title: "missing fields"})
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestWasteReportServiceUpdateStatusUnrestricted(t *testing.T) {
	repo := &fakeWasteReportRepo{updated: &models.WasteReport{ID: 1, Status: models.ReportStatusResolved}}
	svc := NewWasteReportService(repo, nil, nil)

	// resolved back to pending is accepted; there is no transition graph.
	status := models.ReportStatusPending
	report, err := svc.Update(context.Background(), 1, models.WasteReportPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusPending, report.Status)
}

func TestWasteReportServiceGetNotFound(t *testing.T) {
	svc := NewWasteReportService(&fakeWasteReportRepo{}, nil, nil)

	_, err := svc.Get(context.Background(), 7)
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}
