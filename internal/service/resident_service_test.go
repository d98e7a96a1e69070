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

type fakeResidentRepo struct {
	residents []models.Resident
	created   *models.Resident
	updated   *models.Resident
	err       error
}

func (f *fakeResidentRepo) List(context.Context) ([]models.Resident, error) {
	return f.residents, f.err
}

func (f *fakeResidentRepo) Get(_ context.Context, id int64) (*models.Resident, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.residents {
		if f.residents[i].ID == id {
			return &f.residents[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeResidentRepo) Create(_ context.Context, resident *models.Resident) error {
	if f.err != nil {
		return f.err
	}
	resident.ID = int64(len(f.residents) + 1)
	f.created = resident
	return nil
}

func (f *fakeResidentRepo) Update(_ context.Context, id int64, patch models.ResidentPatch) (*models.Resident, error) {
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

func TestResidentServiceCreateDefaultsStatus(t *testing.T) {
	repo := &fakeResidentRepo{}
	svc := NewResidentService(repo, nil, nil)

	resident, err := svc.Create(context.Background(), CreateResidentRequest{
		Name:     "Maria Santos",
		Email:    "maria@example.com",
		Location: "Zone 1, Barangay Poblacion",
	})
	require.NoError(t, err)
	assert.Equal(t, "active", resident.Status)
	assert.Equal(t, int64(1), resident.ID)
}

func TestResidentServiceCreateKeepsExplicitStatus(t *testing.T) {
	repo := &fakeResidentRepo{}
	svc := NewResidentService(repo, nil, nil)

	resident, err := svc.Create(context.Background(), CreateResidentRequest{
		Name:     "Juan Dela Cruz",
		Email:    "juan@example.com",
		Location: "Zone 2",
		Status:   "pending",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", resident.Status)
}

func TestResidentServiceCreateValidation(t *testing.T) {
	svc := NewResidentService(&fakeResidentRepo{}, nil, nil)

	_, err := svc.Create(context.Background(), CreateResidentRequest{Name: "No Email"})
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestResidentServiceGetNotFound(t *testing.T) {
	svc := NewResidentService(&fakeResidentRepo{}, nil, nil)

	_, err := svc.Get(context.Background(), 42)
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestResidentServiceUpdateNotFound(t *testing.T) {
	svc := NewResidentService(&fakeResidentRepo{}, nil, nil)

	status := "inactive"
	_, err := svc.Update(context.Background(), 42, models.ResidentPatch{Status: &status})
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestResidentServiceUpdateMergesStatus(t *testing.T) {
	repo := &fakeResidentRepo{updated: &models.Resident{ID: 1, Name: "Maria Santos", Status: "active"}}
	svc := NewResidentService(repo, nil, nil)

	status := "inactive"
	resident, err := svc.Update(context.Background(), 1, models.ResidentPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "inactive", resident.Status)
	assert.Equal(t, "Maria Santos", resident.Name)
}
