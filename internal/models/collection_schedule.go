package models

import "time"

// Collection schedule statuses.
const (
	ScheduleStatusScheduled  = "scheduled"
	ScheduleStatusInProgress = "in_progress"
	ScheduleStatusCompleted  = "completed"
)

// CollectionSchedule is a planned pickup for a zone and barangay. Duplicates
// across zone+date are permitted.
type CollectionSchedule struct {
	ID            int64     `db:"id" json:"id"`
	Zone          string    `db:"zone" json:"zone"`
	Barangay      string    `db:"barangay" json:"barangay"`
	ScheduledDate time.Time `db:"scheduled_date" json:"scheduledDate"`
	ScheduledTime string    `db:"scheduled_time" json:"scheduledTime"`
	Status        string    `db:"status" json:"status"`
	TruckID       *string   `db:"truck_id" json:"truckId"`
}

// CollectionSchedulePatch carries fields of a partial update.
type CollectionSchedulePatch struct {
	Zone          *string    `json:"zone"`
	Barangay      *string    `json:"barangay"`
	ScheduledDate *time.Time `json:"scheduledDate"`
	ScheduledTime *string    `json:"scheduledTime"`
	Status        *string    `json:"status"`
	TruckID       *string    `json:"truckId"`
}
