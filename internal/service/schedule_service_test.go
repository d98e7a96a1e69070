package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menro-ph/waste-api/internal/models"
	"github.com/menro-ph/waste-api/internal/store"
	appErrors "github.com/menro-ph/waste-api/pkg/errors"
)

type fakeScheduleRepo struct {
	schedules []models.CollectionSchedule
	created   []*models.CollectionSchedule
	updated   *models.CollectionSchedule
	err       error
}

func (f *fakeScheduleRepo) List(context.Context) ([]models.CollectionSchedule, error) {
	return f.schedules, f.err
}

func (f *fakeScheduleRepo) Get(_ context.Context, id int64) (*models.CollectionSchedule, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.schedules {
		if f.schedules[i].ID == id {
			return &f.schedules[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeScheduleRepo) Create(_ context.Context, schedule *models.CollectionSchedule) error {
	if f.err != nil {
		return f.err
	}
	schedule.ID = int64(len(f.created) + 1)
	f.created = append(f.created, schedule)
	return nil
}

func (f *fakeScheduleRepo) Update(_ context.Context, id int64, patch models.CollectionSchedulePatch) (*models.CollectionSchedule, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.updated == nil {
		return nil, store.ErrNotFound
	}
	if patch.TruckID != nil {
		f.updated.TruckID = patch.TruckID
	}
	return f.updated, nil
}

func TestScheduleServiceCreateDefaults(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewScheduleService(repo, nil, nil)

	schedule, err := svc.Create(context.Background(), CreateScheduleRequest{
		Zone:          "Zone 1",
		Barangay:      "Poblacion",
		ScheduledDate: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		ScheduledTime: "06:00 AM",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ScheduleStatusScheduled, schedule.Status)
	assert.Nil(t, schedule.TruckID)
}

func TestScheduleServiceCreateAllowsDuplicates(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewScheduleService(repo, nil, nil)

	req := CreateScheduleRequest{
		Zone:          "Zone 1",
		Barangay:      "Poblacion",
		ScheduledDate: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		ScheduledTime: "06:00 AM",
	}
	first, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, repo.created, 2)
}

func TestScheduleServiceCreateValidation(t *testing.T) {
	svc := NewScheduleService(&fakeScheduleRepo{}, nil, nil)

	_, err := svc.Create(context.Background(), CreateScheduleRequest{Zone: "Zone 1"})
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestScheduleServiceUpdateAssignsTruck(t *testing.T) {
	repo := &fakeScheduleRepo{updated: &models.CollectionSchedule{ID: 1, Zone: "Zone 1"}}
	svc := NewScheduleService(repo, nil, nil)

	truck := "WM-004"
	schedule, err := svc.Update(context.Background(), 1, models.CollectionSchedulePatch{TruckID: &truck})
	require.NoError(t, err)
	require.NotNil(t, schedule.TruckID)
	assert.Equal(t, "WM-004", *schedule.TruckID)
}

func TestScheduleServiceUpdateNotFound(t *testing.T) {
	svc := NewScheduleService(&fakeScheduleRepo{}, nil, nil)

	_, err := svc.Update(context.Background(), 5, models.CollectionSchedulePatch{})
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}
