package models

// UserRole distinguishes the two client profiles.
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleResident UserRole = "resident"
)

// User represents an application login profile. Role only gates client UI;
// no server-side session or token validation exists.
type User struct {
	ID       int64    `db:"id" json:"id"`
	Username string   `db:"username" json:"username"`
	Password string   `db:"password" json:"password"`
	Role     UserRole `db:"role" json:"role"`
	Name     string   `db:"name" json:"name"`
	Email    string   `db:"email" json:"email"`
	Barangay *string  `db:"barangay" json:"barangay"`
	// NotificationPreferences is a serialized JSON array of channel names.
	NotificationPreferences string `db:"notification_preferences" json:"notificationPreferences"`
}
