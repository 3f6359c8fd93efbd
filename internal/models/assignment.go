package models

import "time"

// AssignmentType is a closed enumeration of booking kinds. Each recognized
// value maps to a display color; anything else renders with the fallback.
type AssignmentType string

const (
	TypeTravel      AssignmentType = "travel"
	TypeMaintenance AssignmentType = "maintenance"
	TypeVacation    AssignmentType = "vacation"
	TypeIdle        AssignmentType = "idle"
	TypeNote        AssignmentType = "note"
)

const fallbackTypeColor = "#9CA3AF"

var typeColors = map[AssignmentType]string{
	TypeTravel:      "#FCD34D",
	TypeMaintenance: "#F87171",
	TypeVacation:    "#FCA5A5",
	TypeIdle:        "#D1D5DB",
	TypeNote:        "#E5E7EB",
}

// Color returns the display color for the type, falling back for
// unrecognized values.
func (t AssignmentType) Color() string {
	if c, ok := typeColors[t]; ok {
		return c
	}
	return fallbackTypeColor
}

// HistoryEntry records one mutation of an assignment. The history sequence is
// append-only: entries are never rewritten or truncated.
type HistoryEntry struct {
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	Actor     string    `json:"actor"`
}

// Assignment books a resource onto a project for a single calendar day.
// Multi-day commitments are represented as one record per day sharing
// resource, project and type. Date is an ISO calendar date (YYYY-MM-DD).
type Assignment struct {
	ID            int            `json:"id"`
	ResourceID    int            `json:"resource_id"`
	ProjectID     int            `json:"project_id"`
	Date          string         `json:"date"`
	Type          AssignmentType `json:"type"`
	DurationHours float64        `json:"duration_hours"`
	Note          string         `json:"note,omitempty"`
	History       []HistoryEntry `json:"history"`
}

// EntityID returns the foreign key matching the given axis.
func (a Assignment) EntityID(axis Axis) int {
	if axis == AxisProject {
		return a.ProjectID
	}
	return a.ResourceID
}

// Clone returns a deep copy, so mutations of the copy's history never alias
// the original record.
func (a Assignment) Clone() Assignment {
	out := a
	out.History = make([]HistoryEntry, len(a.History))
	copy(out.History, a.History)
	return out
}
