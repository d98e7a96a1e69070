package memory

import (
	"context"

	"github.com/menro-ph/waste-api/internal/models"
	"github.com/menro-ph/waste-api/internal/store"
)

// ScheduleStore exposes the collection schedule collection.
type ScheduleStore struct{ s *Store }

// Schedules returns the collection schedule view.
func (s *Store) Schedules() *ScheduleStore { return &ScheduleStore{s: s} }

func cloneSchedule(c models.CollectionSchedule) models.CollectionSchedule {
	c.TruckID = cloneString(c.TruckID)
	return c
}

// List returns all schedules in insertion order.
func (c *ScheduleStore) List(ctx context.Context) ([]models.CollectionSchedule, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	out := make([]models.CollectionSchedule, 0, len(c.s.scheduleOrder))
	for _, id := range c.s.scheduleOrder {
		out = append(out, cloneSchedule(c.s.schedules[id]))
	}
	return out, nil
}

// Get returns the schedule by id.
func (c *ScheduleStore) Get(ctx context.Context, id int64) (*models.CollectionSchedule, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	rec, ok := c.s.schedules[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := cloneSchedule(rec)
	return &out, nil
}

// Create assigns an id and stores the record.
func (c *ScheduleStore) Create(ctx context.Context, schedule *models.CollectionSchedule) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	schedule.ID = c.s.allocateID()
	c.s.schedules[schedule.ID] = cloneSchedule(*schedule)
	c.s.scheduleOrder = append(c.s.scheduleOrder, schedule.ID)
	return nil
}

// Update merges the patch onto the stored record under the store lock.
func (c *ScheduleStore) Update(ctx context.Context, id int64, patch models.CollectionSchedulePatch) (*models.CollectionSchedule, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	rec, ok := c.s.schedules[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if patch.Zone != nil {
		rec.Zone = *patch.Zone
	}
	if patch.Barangay != nil {
		rec.Barangay = *patch.Barangay
	}
	if patch.ScheduledDate != nil {
		rec.ScheduledDate = *patch.ScheduledDate
	}
	if patch.ScheduledTime != nil {
		rec.ScheduledTime = *patch.ScheduledTime
	}
	if patch.Status != nil {
		rec.Status = *patch.Status
	}
	if patch.TruckID != nil {
		rec.TruckID = cloneString(patch.TruckID)
	}
	c.s.schedules[id] = rec
	out := cloneSchedule(rec)
	return &out, nil
}
