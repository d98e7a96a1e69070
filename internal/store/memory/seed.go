package memory

import "github.com/menro-ph/waste-api/internal/models"

func strPtr(v string) *string { return &v }

func int64Ptr(v int64) *int64 { return &v }

// seed loads the fixed bootstrap dataset. The ids it produces are stable
// because the shared counter starts at zero and every record goes through it.
func (s *Store) seed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()

	seedUsers := []models.User{
		{
			Username:                "admin",
			Password:                "admin123",
			Role:                    models.RoleAdmin,
			Name:                    "MENRO Administrator",
			Email:                   "admin@city.gov.ph",
			NotificationPreferences: `["email"]`,
		},
		{
			Username:                "citizen",
			Password:                "citizen123",
			Role:                    models.RoleResident,
			Name:                    "Maria Santos",
			Email:                   "maria.santos@email.com",
			Barangay:                strPtr("Barangay 1"),
			NotificationPreferences: `["email", "sms"]`,
		},
	}
	for _, u := range seedUsers {
		u.ID = s.allocateID()
		s.users[u.ID] = u
		s.userOrder = append(s.userOrder, u.ID)
	}

	seedResidents := []models.Resident{
		{Name: "Maria Santos", Email: "maria.santos@email.com", Location: "Barangay 1", Status: "active"},
		{Name: "Juan Dela Cruz", Email: "juan.delacruz@email.com", Location: "Barangay 5", Status: "active"},
		{Name: "Ana Reyes", Email: "ana.reyes@email.com", Location: "Barangay 3", Status: "pending"},
	}
	for _, r := range seedResidents {
		r.ID = s.allocateID()
		r.RegisteredDate = now
		s.residents[r.ID] = r
		s.residentOrder = append(s.residentOrder, r.ID)
	}

	seedReports := []models.WasteReport{
		{
			Title:       "Garbage not collected for 3 days",
			Description: "Large pile of household waste has been sitting on Rizal Street corner for several days.",
			Type:        models.ReportTypeUncollected,
			Location:    "Rizal St., Barangay 2",
			Status:      models.ReportStatusPending,
			ReportedBy:  int64Ptr(2),
		},
		{
			Title:       "Illegal waste disposal in vacant lot",
			Description: "Construction debris and household waste dumped illegally in empty lot.",
			Type:        models.ReportTypeIllegalDumping,
			Location:    "Vacant Lot, Barangay 7",
			Status:      models.ReportStatusInProgress,
			ReportedBy:  int64Ptr(3),
		},
		{
			Title:       "Damaged waste bin needs replacement",
			Description: "Public waste bin has broken lid and is overflowing onto sidewalk.",
			Type:        models.ReportTypeBrokenBin,
			Location:    "Main Plaza, Barangay 1",
			Status:      models.ReportStatusPending,
			ReportedBy:  int64Ptr(1),
		},
	}
	for _, w := range seedReports {
		w.ID = s.allocateID()
		w.CreatedAt = now
		s.reports[w.ID] = w
		s.reportOrder = append(s.reportOrder, w.ID)
	}

	seedSchedules := []models.CollectionSchedule{
		{Zone: "Zone A", Barangay: "Barangay 1", ScheduledDate: now, ScheduledTime: "08:00 AM", Status: models.ScheduleStatusCompleted, TruckID: strPtr("WM-001")},
		{Zone: "Zone B", Barangay: "Barangay 5", ScheduledDate: now, ScheduledTime: "10:30 AM", Status: models.ScheduleStatusInProgress, TruckID: strPtr("WM-002")},
		{Zone: "Zone C", Barangay: "Barangay 3", ScheduledDate: now, ScheduledTime: "02:00 PM", Status: models.ScheduleStatusScheduled, TruckID: strPtr("WM-003")},
	}
	for _, c := range seedSchedules {
		c.ID = s.allocateID()
		s.schedules[c.ID] = c
		s.scheduleOrder = append(s.scheduleOrder, c.ID)
	}

	seedRoutes := []models.Route{
		{Name: "Route A", Distance: "5.2km", EstimatedTime: "45 min", CollectionsCount: 15, TruckID: "WM-001", Status: models.RouteStatusActive},
		{Name: "Route B", Distance: "4.8km", EstimatedTime: "38 min", CollectionsCount: 12, TruckID: "WM-002", Status: models.RouteStatusScheduled},
		{Name: "Route C", Distance: "6.1km", EstimatedTime: "52 min", CollectionsCount: 18, TruckID: "WM-003", Status: models.RouteStatusScheduled},
	}
	for _, r := range seedRoutes {
		r.ID = s.allocateID()
		s.routes[r.ID] = r
		s.routeOrder = append(s.routeOrder, r.ID)
	}

	seedContent := []models.EducationalContent{
		{
			Title:       "Proper Waste Segregation Guide",
			Description: "Learn how to properly separate biodegradable and non-biodegradable waste.",
			Type:        models.ContentTypeGuide,
			Content:     "Content for waste segregation guide...",
			Views:       1247,
		},
		{
			Title:       "Home Composting Tutorial",
			Description: "Step-by-step guide to creating compost from organic kitchen waste.",
			Type:        models.ContentTypeVideo,
			Content:     "Video content for composting tutorial...",
			Views:       856,
		},
		{
			Title:       "Recycling Knowledge Quiz",
			Description: "Test your knowledge about recyclable materials and proper disposal.",
			Type:        models.ContentTypeQuiz,
			Content:     "Quiz questions and answers...",
			Views:       432,
		},
	}
	for _, c := range seedContent {
		c.ID = s.allocateID()
		c.CreatedAt = now
		c.UpdatedAt = now
		s.contents[c.ID] = c
		s.contentOrder = append(s.contentOrder, c.ID)
	}
}
