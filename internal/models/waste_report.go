package models

import "time"

// Waste report types as used by the client. Any string is accepted.
const (
	ReportTypeUncollected    = "uncollected"
	ReportTypeIllegalDumping = "illegal_dumping"
	ReportTypeBrokenBin      = "broken_bin"
	ReportTypeOther          = "other"
)

// Waste report statuses. Transitions are not enforced as a state machine;
// any value may be written through a partial update.
const (
	ReportStatusPending    = "pending"
	ReportStatusInProgress = "in_progress"
	ReportStatusResolved   = "resolved"
)

// WasteReport is a resident-filed complaint about waste collection.
// ReportedBy is a soft reference to a Resident id: it is never validated and
// may dangle.
type WasteReport struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Type        string    `db:"type" json:"type"`
	Location    string    `db:"location" json:"location"`
	Coordinates *string   `db:"coordinates" json:"coordinates"`
	ImageURL    *string   `db:"image_url" json:"imageUrl"`
	Status      string    `db:"status" json:"status"`
	ReportedBy  *int64    `db:"reported_by" json:"reportedBy"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// WasteReportPatch carries fields of a partial update; nil means untouched.
type WasteReportPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Type        *string `json:"type"`
	Location    *string `json:"location"`
	Coordinates *string `json:"coordinates"`
	ImageURL    *string `json:"imageUrl"`
	Status      *string `json:"status"`
	ReportedBy  *int64  `json:"reportedBy"`
}
