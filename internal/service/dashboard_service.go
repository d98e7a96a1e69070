package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/menro-ph/waste-api/internal/models"
	"github.com/menro-ph/waste-api/pkg/config"
	appErrors "github.com/menro-ph/waste-api/pkg/errors"
)

type routeLister interface {
	List(ctx context.Context) ([]models.Route, error)
}

type scheduleLister interface {
	List(ctx context.Context) ([]models.CollectionSchedule, error)
}

type reportLister interface {
	List(ctx context.Context) ([]models.WasteReport, error)
}

type residentLister interface {
	List(ctx context.Context) ([]models.Resident, error)
}

// DashboardService aggregates live entity data into the admin dashboard
// projection. Every call recomputes from current state; nothing is cached.
type DashboardService struct {
	routes    routeLister
	schedules scheduleLister
	reports   reportLister
	residents residentLister
	cfg       config.DashboardConfig
	logger    *zap.Logger
	now       func() time.Time
}

// NewDashboardService constructs the service.
func NewDashboardService(
	routes routeLister,
	schedules scheduleLister,
	reports reportLister,
	residents residentLister,
	cfg config.DashboardConfig,
	logger *zap.Logger,
) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		routes:    routes,
		schedules: schedules,
		reports:   reports,
		residents: residents,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// Stats computes the four dashboard counters.
//
// activeTrucks counts routes with status active and collectionsToday counts
// schedules dated today; when either true count is zero the configured
// fallback is substituted, so a zero fallback is the only way to ever see 0.
// pendingReports and registeredUsers always report true counts.
func (s *DashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	routes, err := s.routes.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load routes for dashboard")
	}
	schedules, err := s.schedules.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load schedules for dashboard")
	}
	reports, err := s.reports.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load reports for dashboard")
	}
	residents, err := s.residents.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load residents for dashboard")
	}

	stats := &models.DashboardStats{RegisteredUsers: len(residents)}

	for _, route := range routes {
		if route.Status == models.RouteStatusActive {
			stats.ActiveTrucks++
		}
	}
	if stats.ActiveTrucks == 0 {
		stats.ActiveTrucks = s.cfg.ActiveTrucksFallback
	}

	today := s.now()
	for _, schedule := range schedules {
		if sameCalendarDay(schedule.ScheduledDate, today) {
			stats.CollectionsToday++
		}
	}
	if stats.CollectionsToday == 0 {
		stats.CollectionsToday = s.cfg.CollectionsTodayFallback
	}

	for _, report := range reports {
		if report.Status == models.ReportStatusPending {
			stats.PendingReports++
		}
	}

	return stats, nil
}

// sameCalendarDay compares calendar dates, ignoring time of day.
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
