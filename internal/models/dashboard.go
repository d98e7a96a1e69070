package models

// DashboardStats is the read-side projection served to the admin dashboard.
type DashboardStats struct {
	ActiveTrucks     int `json:"activeTrucks"`
	CollectionsToday int `json:"collectionsToday"`
	PendingReports   int `json:"pendingReports"`
	RegisteredUsers  int `json:"registeredUsers"`
}
