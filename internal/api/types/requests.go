package types

import "github.com/planline/planboard/internal/board"

type ProjectCreateRequest struct {
	Name string `json:"name"`
}

type ResourceCreateRequest struct {
	Name                string  `json:"name" validate:"required"`
	Kind                string  `json:"kind" validate:"required,oneof=person vehicle"`
	AvailabilityPercent int     `json:"availability_percent" validate:"gte=0,lte=100"`
	Tags                string  `json:"tags"`
	Email               string  `json:"email"`
	Phone               string  `json:"phone"`
	PlannedHours        float64 `json:"planned_hours" validate:"gte=0"`
	Active              bool    `json:"active"`
	Color               string  `json:"color" validate:"omitempty,hexcolor"`
}

type ResourceFieldUpdateRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

type ResourceTagsUpdateRequest struct {
	Tags string `json:"tags"`
}

type ColorUpdateRequest struct {
	Color string `json:"color" validate:"required,hexcolor"`
}

type AssignmentCreateRequest struct {
	ResourceID    int     `json:"resource_id" validate:"required"`
	ProjectID     int     `json:"project_id" validate:"required"`
	Date          string  `json:"date" validate:"required,datetime=2006-01-02"`
	Type          string  `json:"type"`
	DurationHours float64 `json:"duration_hours" validate:"gte=0"`
	Note          string  `json:"note"`
}

type AssignmentMoveRequest struct {
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	EntityID int    `json:"entity_id" validate:"required"`
	Axis     string `json:"axis" validate:"required,oneof=project resource"`
}

type SelectRequest struct {
	Selection []string `json:"selection"`
	CellID    string   `json:"cell_id" validate:"required"`
	Modifier  string   `json:"modifier" validate:"omitempty,oneof=toggle additive"`
}

type CopyRequest struct {
	Selection []string `json:"selection" validate:"required,min=1"`
	Axis      string   `json:"axis" validate:"required,oneof=project resource"`
}

type CopyProjectRequest struct {
	ProjectID int `json:"project_id" validate:"required"`
}

// PasteRequest hands the previously copied clipboard payload back to the
// engine together with the target selection. The payload round-trips through
// the client untouched.
type PasteRequest struct {
	Selection []string              `json:"selection" validate:"required,min=1"`
	Clipboard []board.ClipboardCell `json:"clipboard" validate:"required,min=1"`
	Axis      string                `json:"axis" validate:"required,oneof=project resource"`
}

type DeleteCellsRequest struct {
	Selection []string `json:"selection" validate:"required,min=1"`
	Axis      string   `json:"axis" validate:"required,oneof=project resource"`
	// Confirm carries the confirmation step through the API boundary;
	// an unconfirmed request leaves state untouched.
	Confirm bool `json:"confirm"`
}

type DropRequest struct {
	AssignmentID   int    `json:"assignment_id" validate:"required"`
	TargetEntityID int    `json:"target_entity_id" validate:"required"`
	TargetDate     string `json:"target_date" validate:"required,datetime=2006-01-02"`
	Axis           string `json:"axis" validate:"required,oneof=project resource"`
	Span           bool   `json:"span"`
}

type ExportRequest struct {
	Anchor string `json:"anchor" validate:"omitempty,datetime=2006-01-02"`
	Preset string `json:"preset" validate:"required,oneof=week two_weeks month two_months"`
	Axis   string `json:"axis" validate:"required,oneof=project resource"`
}
