package models

import "time"

// ResidentStatus enumerates known registration states. The store accepts any
// string; these constants document the values the client uses.
type ResidentStatus string

const (
	ResidentStatusActive   ResidentStatus = "active"
	ResidentStatusPending  ResidentStatus = "pending"
	ResidentStatusInactive ResidentStatus = "inactive"
)

// Resident is a citizen registration record, distinct from a User login.
type Resident struct {
	ID             int64     `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Email          string    `db:"email" json:"email"`
	Location       string    `db:"location" json:"location"`
	RegisteredDate time.Time `db:"registered_date" json:"registeredDate"`
	Status         string    `db:"status" json:"status"`
}

// ResidentPatch carries the fields of a partial update. Nil means the field
// was absent from the patch and must be left untouched.
type ResidentPatch struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Location *string `json:"location"`
	Status   *string `json:"status"`
}
