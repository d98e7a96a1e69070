package models

// Route statuses.
const (
	RouteStatusScheduled = "scheduled"
	RouteStatusActive    = "active"
	RouteStatusCompleted = "completed"
)

// Route is a truck collection route. Distance and EstimatedTime are free
// text as entered by dispatchers ("5.2km", "45 min"), not typed numerics.
type Route struct {
	ID               int64   `db:"id" json:"id"`
	Name             string  `db:"name" json:"name"`
	Distance         string  `db:"distance" json:"distance"`
	EstimatedTime    string  `db:"estimated_time" json:"estimatedTime"`
	CollectionsCount int     `db:"collections_count" json:"collectionsCount"`
	TruckID          string  `db:"truck_id" json:"truckId"`
	Status           string  `db:"status" json:"status"`
	Coordinates      *string `db:"coordinates" json:"coordinates"`
}

// RoutePatch carries fields of a partial update.
type RoutePatch struct {
	Name             *string `json:"name"`
	Distance         *string `json:"distance"`
	EstimatedTime    *string `json:"estimatedTime"`
	CollectionsCount *int    `json:"collectionsCount"`
	TruckID          *string `json:"truckId"`
	Status           *string `json:"status"`
	Coordinates      *string `json:"coordinates"`
}
