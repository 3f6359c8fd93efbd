package models

// Priority ranks a project for planning purposes.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Status is the lifecycle state of a project.
type Status string

const (
	StatusActive    Status = "active"
	StatusOnHold    Status = "on_hold"
	StatusCompleted Status = "completed"
)

// Project is one row on the project axis of the board. StartDate and EndDate
// are inclusive calendar dates in ISO form (YYYY-MM-DD); StartDate <= EndDate.
type Project struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Color     string   `json:"color"`
	Priority  Priority `json:"priority"`
	Status    Status   `json:"status"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
}

// Axis selects which entity type labels the board rows. It determines which
// foreign key of an assignment is matched or mutated by a board operation.
type Axis string

const (
	AxisProject  Axis = "project"
	AxisResource Axis = "resource"
)

// Valid reports whether the axis is one of the two recognized values.
func (a Axis) Valid() bool {
	return a == AxisProject || a == AxisResource
}
