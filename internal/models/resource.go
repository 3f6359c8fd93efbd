package models

// ResourceKind classifies a bookable resource.
type ResourceKind string

const (
	KindPerson  ResourceKind = "person"
	KindVehicle ResourceKind = "vehicle"
)

// Resource is one row on the resource axis of the board.
type Resource struct {
	ID                  int          `json:"id"`
	Name                string       `json:"name"`
	Kind                ResourceKind `json:"kind"`
	AvailabilityPercent int          `json:"availability_percent"`
	Tags                []string     `json:"tags"`
	LastUsedDate        string       `json:"last_used_date"`
	PlannedHours        float64      `json:"planned_hours"`
	Email               string       `json:"email"`
	Phone               string       `json:"phone"`
	Active              bool         `json:"active"`
	Color               string       `json:"color"`
}

// ResourceStats summarizes the resource pool for the overview page.
type ResourceStats struct {
	Total            int     `json:"total"`
	People           int     `json:"people"`
	Vehicles         int     `json:"vehicles"`
	MeanAvailability float64 `json:"mean_availability"`
}
