package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menro-ph/waste-api/internal/models"
	"github.com/menro-ph/waste-api/internal/store"
)

func TestStoreSharedIDCounterAcrossCollections(t *testing.T) {
	s := New()
	ctx := context.Background()

	resident := &models.Resident{Name: "A", Email: "a@b.c", Location: "Barangay 1", Status: "active"}
	require.NoError(t, s.Residents().Create(ctx, resident))

	report := &models.WasteReport{Title: "T", Description: "D", Type: "other", Location: "L", Status: "pending"}
	require.NoError(t, s.WasteReports().Create(ctx, report))

	route := &models.Route{Name: "Route A", Distance: "1km", EstimatedTime: "5 min", CollectionsCount: 1, TruckID: "WM-001", Status: "scheduled"}
	require.NoError(t, s.Routes().Create(ctx, route))

	assert.Equal(t, int64(1), resident.ID)
	assert.Equal(t, int64(2), report.ID)
	assert.Equal(t, int64(3), route.ID)
}

func TestStoreConcurrentCreatesNeverReuseIDs(t *testing.T) {
	s := New()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	wg.Add(2 * n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_ = s.Residents().Create(ctx, &models.Resident{Name: "R", Email: "r@x", Location: "L", Status: "active"})
		}()
		go func() {
			defer wg.Done()
			_ = s.Notifications().Create(ctx, &models.Notification{Subject: "S", Message: "M", Type: "announcement", RecipientGroup: "all", Channels: `["email"]`})
		}()
	}
	wg.Wait()

	seen := map[int64]bool{}
	residents, err := s.Residents().List(ctx)
	require.NoError(t, err)
	notifications, err := s.Notifications().List(ctx)
	require.NoError(t, err)
	for _, r := range residents {
		assert.False(t, seen[r.ID], "duplicate id %d", r.ID)
		seen[r.ID] = true
	}
	for _, n := range notifications {
		assert.False(t, seen[n.ID], "duplicate id %d", n.ID)
		seen[n.ID] = true
	}
	assert.Len(t, seen, 2*n)
}

func TestSeededStoreDataset(t *testing.T) {
	s := NewSeeded()
	ctx := context.Background()

	residents, err := s.Residents().List(ctx)
	require.NoError(t, err)
	assert.Len(t, residents, 3)

	reports, err := s.WasteReports().List(ctx)
	require.NoError(t, err)
	assert.Len(t, reports, 3)

	schedules, err := s.Schedules().List(ctx)
	require.NoError(t, err)
	assert.Len(t, schedules, 3)

	routes, err := s.Routes().List(ctx)
	require.NoError(t, err)
	assert.Len(t, routes, 3)

	contents, err := s.Education().List(ctx)
	require.NoError(t, err)
	assert.Len(t, contents, 3)

	admin, err := s.Users().GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	// New ids continue above every seeded value.
	created := &models.Resident{Name: "New", Email: "new@x", Location: "L", Status: "active"}
	require.NoError(t, s.Residents().Create(ctx, created))
	for _, r := range residents {
		assert.Greater(t, created.ID, r.ID)
	}
	for _, c := range contents {
		assert.Greater(t, created.ID, c.ID)
	}
}

func TestResidentUpdateMergesOnlyPatchedFields(t *testing.T) {
	s := New()
	ctx := context.Background()

	resident := &models.Resident{Name: "Maria", Email: "maria@x", Location: "Barangay 1", Status: "pending"}
	require.NoError(t, s.Residents().Create(ctx, resident))

	status := "active"
	updated, err := s.Residents().Update(ctx, resident.ID, models.ResidentPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "active", updated.Status)
	assert.Equal(t, "Maria", updated.Name)
	assert.Equal(t, "Barangay 1", updated.Location)
	assert.Equal(t, resident.RegisteredDate, updated.RegisteredDate)
}

func TestUpdateMissingIDReturnsNotFound(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.Residents().Update(ctx, 99, models.ResidentPatch{})
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.WasteReports().Update(ctx, 99, models.WasteReportPatch{})
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.WasteReports().Get(ctx, 99)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// No implicit creation happened.
	reports, err := s.WasteReports().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestWasteReportReadAfterWrite(t *testing.T) {
	s := New()
	ctx := context.Background()

	coords := `{"lat":14.5995,"lng":120.9842}`
	report := &models.WasteReport{
		Title:       "Overflow",
		Description: "Bin overflowing",
		Type:        models.ReportTypeBrokenBin,
		Location:    "Main Plaza",
		Coordinates: &coords,
		Status:      models.ReportStatusPending,
	}
	require.NoError(t, s.WasteReports().Create(ctx, report))

	got, err := s.WasteReports().Get(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, report, got)
}

func TestWasteReportSnapshotsAreIsolated(t *testing.T) {
	s := New()
	ctx := context.Background()

	coords := `{"lat":1,"lng":2}`
	report := &models.WasteReport{Title: "A", Description: "D", Type: "other", Location: "L", Coordinates: &coords, Status: "pending"}
	require.NoError(t, s.WasteReports().Create(ctx, report))

	got, err := s.WasteReports().Get(ctx, report.ID)
	require.NoError(t, err)
	got.Title = "mutated"
	*got.Coordinates = "mutated"

	fresh, err := s.WasteReports().Get(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", fresh.Title)
	assert.Equal(t, `{"lat":1,"lng":2}`, *fresh.Coordinates)
}

func TestListKeepsInsertionOrder(t *testing.T) {
	s := New()
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, s.Routes().Create(ctx, &models.Route{Name: name, Distance: "1km", EstimatedTime: "5 min", TruckID: "WM-001", Status: "scheduled"}))
	}

	routes, err := s.Routes().List(ctx)
	require.NoError(t, err)
	require.Len(t, routes, 3)
	assert.Equal(t, "first", routes[0].Name)
	assert.Equal(t, "second", routes[1].Name)
	assert.Equal(t, "third", routes[2].Name)
}

func TestEducationUpdateAlwaysRefreshesUpdatedAt(t *testing.T) {
	s := New()
	ctx := context.Background()

	current := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return current }

	content := &models.EducationalContent{Title: "Guide", Description: "D", Type: "guide", Content: "C"}
	require.NoError(t, s.Education().Create(ctx, content))
	assert.Equal(t, current, content.UpdatedAt)

	current = current.Add(time.Hour)
	first, err := s.Education().Update(ctx, content.ID, models.EducationalContentPatch{})
	require.NoError(t, err)
	assert.True(t, first.UpdatedAt.After(content.UpdatedAt))

	current = current.Add(time.Hour)
	second, err := s.Education().Update(ctx, content.ID, models.EducationalContentPatch{})
	require.NoError(t, err)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
	assert.Equal(t, content.CreatedAt, second.CreatedAt)
}

func TestNotificationCreateStampsSentAt(t *testing.T) {
	s := New()
	ctx := context.Background()

	fixed := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	n := &models.Notification{Subject: "Pickup moved", Message: "Zone A moved to 9AM", Type: "schedule_change", RecipientGroup: "Barangay 1", Channels: `["email","sms"]`}
	require.NoError(t, s.Notifications().Create(ctx, n))
	assert.Equal(t, fixed, n.SentAt)
}

func TestUserGetByUsername(t *testing.T) {
	s := New()
	ctx := context.Background()

	user := &models.User{Username: "menro", Password: "pw", Role: models.RoleAdmin, Name: "Admin", Email: "a@b.c", NotificationPreferences: `["email"]`}
	require.NoError(t, s.Users().Create(ctx, user))

	got, err := s.Users().GetByUsername(ctx, "menro")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = s.Users().GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
