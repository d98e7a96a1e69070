package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/menro-ph/waste-api/internal/models"
)

const scheduleColumns = "id, zone, barangay, scheduled_date, scheduled_time, status, truck_id"

// ScheduleRepository handles persistence for collection schedules.
type ScheduleRepository struct {
	db *sqlx.DB
}

// NewScheduleRepository instantiates a schedule repository.
func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// List returns all schedules in insertion order.
func (r *ScheduleRepository) List(ctx context.Context) ([]models.CollectionSchedule, error) {
	query := fmt.Sprintf("SELECT %s FROM collection_schedules ORDER BY id", scheduleColumns)
	schedules := make([]models.CollectionSchedule, 0)
	if err := r.db.SelectContext(ctx, &schedules, query); err != nil {
		return nil, fmt.Errorf("list collection schedules: %w", err)
	}
	return schedules, nil
}

// Get loads a schedule by id.
func (r *ScheduleRepository) Get(ctx context.Context, id int64) (*models.CollectionSchedule, error) {
	query := fmt.Sprintf("SELECT %s FROM collection_schedules WHERE id = $1", scheduleColumns)
	var schedule models.CollectionSchedule
	if err := r.db.GetContext(ctx, &schedule, query, id); err != nil {
		return nil, notFound(err)
	}
	return &schedule, nil
}

// Create inserts a new schedule drawing its id from the shared sequence.
// No uniqueness constraint applies across zone and date; duplicates are fine.
func (r *ScheduleRepository) Create(ctx context.Context, schedule *models.CollectionSchedule) error {
	const query = `INSERT INTO collection_schedules (id, zone, barangay, scheduled_date, scheduled_time, status, truck_id)
		VALUES (nextval('entity_ids'), $1, $2, $3, $4, $5, $6) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query,
		schedule.Zone, schedule.Barangay, schedule.ScheduledDate, schedule.ScheduledTime, schedule.Status, schedule.TruckID,
	).Scan(&schedule.ID); err != nil {
		return fmt.Errorf("create collection schedule: %w", err)
	}
	return nil
}

// Update applies the patch in a single statement and returns the new row.
func (r *ScheduleRepository) Update(ctx context.Context, id int64, patch models.CollectionSchedulePatch) (*models.CollectionSchedule, error) {
	var sets []string
	var args []interface{}
	if patch.Zone != nil {
		sets = append(sets, fmt.Sprintf("zone = $%d", len(args)+1))
		args = append(args, *patch.Zone)
	}
	if patch.Barangay != nil {
		sets = append(sets, fmt.Sprintf("barangay = $%d", len(args)+1))
		args = append(args, *patch.Barangay)
	}
	if patch.ScheduledDate != nil {
		sets = append(sets, fmt.Sprintf("scheduled_date = $%d", len(args)+1))
		args = append(args, *patch.ScheduledDate)
	}
	if patch.ScheduledTime != nil {
		sets = append(sets, fmt.Sprintf("scheduled_time = $%d", len(args)+1))
		args = append(args, *patch.ScheduledTime)
	}
	if patch.Status != nil {
		sets = append(sets, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, *patch.Status)
	}
	if patch.TruckID != nil {
		sets = append(sets, fmt.Sprintf("truck_id = $%d", len(args)+1))
		args = append(args, *patch.TruckID)
	}
	if len(sets) == 0 {
		return r.Get(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf("UPDATE collection_schedules SET %s WHERE id = $%d RETURNING %s", strings.Join(sets, ", "), len(args), scheduleColumns)
	var schedule models.CollectionSchedule
	if err := r.db.GetContext(ctx, &schedule, query, args...); err != nil {
		return nil, notFound(err)
	}
	return &schedule, nil
}
