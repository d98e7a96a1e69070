package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menro-ph/waste-api/internal/models"
	"github.com/menro-ph/waste-api/pkg/config"
)

type fakeRouteLister struct {
	routes []models.Route
	err    error
}

func (f *fakeRouteLister) List(context.Context) ([]models.Route, error) {
	return f.routes, f.err
}

type fakeScheduleLister struct {
	schedules []models.CollectionSchedule
	err       error
}

func (f *fakeScheduleLister) List(context.Context) ([]models.CollectionSchedule, error) {
	return f.schedules, f.err
}

type fakeReportLister struct {
	reports []models.WasteReport
	err     error
}

func (f *fakeReportLister) List(context.Context) ([]models.WasteReport, error) {
	return f.reports, f.err
}

type fakeResidentLister struct {
	residents []models.Resident
	err       error
}

func (f *fakeResidentLister) List(context.Context) ([]models.Resident, error) {
	return f.residents, f.err
}

var dashboardTestConfig = config.DashboardConfig{ActiveTrucksFallback: 12, CollectionsTodayFallback: 89}

func newDashboardForTest(routes *fakeRouteLister, schedules *fakeScheduleLister, reports *fakeReportLister, residents *fakeResidentLister, now time.Time) *DashboardService {
	svc := NewDashboardService(routes, schedules, reports, residents, dashboardTestConfig, nil)
	svc.now = func() time.Time { return now }
	return svc
}

func TestDashboardStatsTrueCounts(t *testing.T) {
	now := time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC)
	routes := &fakeRouteLister{routes: []models.Route{
		{ID: 1, Status: models.RouteStatusActive},
		{ID: 2, Status: models.RouteStatusActive},
		{ID: 3, Status: models.RouteStatusScheduled},
	}}
	schedules := &fakeScheduleLister{schedules: []models.CollectionSchedule{
		{ID: 4, ScheduledDate: time.Date(2025, 6, 2, 6, 0, 0, 0, time.UTC)},
		{ID: 5, ScheduledDate: time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC)},
		{ID: 6, ScheduledDate: time.Date(2025, 6, 3, 6, 0, 0, 0, time.UTC)},
	}}
	reports := &fakeReportLister{reports: []models.WasteReport{
		{ID: 7, Status: models.ReportStatusPending},
		{ID: 8, Status: models.ReportStatusResolved},
		{ID: 9, Status: models.ReportStatusPending},
	}}
	residents := &fakeResidentLister{residents: []models.Resident{{ID: 10}, {ID: 11}}}

	svc := newDashboardForTest(routes, schedules, reports, residents, now)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.ActiveTrucks)
	assert.Equal(t, 2, stats.CollectionsToday)
	assert.Equal(t, 2, stats.PendingReports)
	assert.Equal(t, 2, stats.RegisteredUsers)
}

func TestDashboardStatsZeroFallbacks(t *testing.T) {
	now := time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC)
	routes := &fakeRouteLister{routes: []models.Route{{ID: 1, Status: models.RouteStatusScheduled}}}
	schedules := &fakeScheduleLister{schedules: []models.CollectionSchedule{
		{ID: 2, ScheduledDate: time.Date(2025, 6, 9, 6, 0, 0, 0, time.UTC)},
	}}
	reports := &fakeReportLister{}
	residents := &fakeResidentLister{}

	svc := newDashboardForTest(routes, schedules, reports, residents, now)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, stats.ActiveTrucks)
	assert.Equal(t, 89, stats.CollectionsToday)
	assert.Equal(t, 0, stats.PendingReports)
	assert.Equal(t, 0, stats.RegisteredUsers)
}

func TestDashboardStatsCalendarDayIgnoresTime(t *testing.T) {
	// Schedule is later the same day; the comparison is on the date alone.
	now := time.Date(2025, 6, 2, 23, 59, 0, 0, time.UTC)
	schedules := &fakeScheduleLister{schedules: []models.CollectionSchedule{
		{ID: 1, ScheduledDate: time.Date(2025, 6, 2, 0, 1, 0, 0, time.UTC)},
	}}

	svc := newDashboardForTest(&fakeRouteLister{}, schedules, &fakeReportLister{}, &fakeResidentLister{}, now)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.CollectionsToday)
}

func TestDashboardStatsIdempotent(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	routes := &fakeRouteLister{routes: []models.Route{{ID: 1, Status: models.RouteStatusActive}}}

	svc := newDashboardForTest(routes, &fakeScheduleLister{}, &fakeReportLister{}, &fakeResidentLister{}, now)

	first, err := svc.Stats(context.Background())
	require.NoError(t, err)
	second, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDashboardStatsPropagatesListError(t *testing.T) {
	routes := &fakeRouteLister{err: errors.New("boom")}

	svc := newDashboardForTest(routes, &fakeScheduleLister{}, &fakeReportLister{}, &fakeResidentLister{}, time.Now())

	_, err := svc.Stats(context.Background())
	assert.Error(t, err)
}
