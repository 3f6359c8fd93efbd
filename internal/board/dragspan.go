package board

import "github.com/planline/planboard/internal/models"

// DropKind discriminates the two drop behaviors plus cancellation.
type DropKind int

const (
	// DropCancel applies no mutation (drop outside a valid target).
	DropCancel DropKind = iota
	// DropMove relocates the dragged assignment to the target cell.
	DropMove
	// DropSpan expands the dragged assignment into one record per day
	// between its source date and the target date, inclusive.
	DropSpan
)

// DropPlan is the resolved outcome of a drop gesture, computed from the
// dragged record and applied atomically by the store.
type DropPlan struct {
	Kind DropKind

	// Move fields.
	Date     string
	EntityID int
	Axis     models.Axis

	// Span fields. Both foreign keys are fully resolved: on the project
	// axis the project comes from the drop target and the resource is
	// inherited from the dragged item; on the resource axis vice versa.
	ResourceID     int
	ProjectID      int
	Start, End     string
	RemoveOriginal bool
}

// PlanDrop resolves a drop gesture against the dragged assignment. span
// reflects the modifier held during the drop. The source and target dates
// may arrive in either order for a span; they are min/max resolved. The
// original record is superseded when its date falls inside the created
// range, so no duplicate survives on the overlapping day.
func PlanDrop(dragged models.Assignment, targetEntityID int, targetDate string, axis models.Axis, span bool) DropPlan {
	if !axis.Valid() || targetDate == "" {
		return DropPlan{Kind: DropCancel}
	}

	if !span {
		return DropPlan{Kind: DropMove, Date: targetDate, EntityID: targetEntityID, Axis: axis}
	}

	start, end := dragged.Date, targetDate
	if end < start {
		start, end = end, start
	}

	resourceID := dragged.ResourceID
	projectID := dragged.ProjectID
	if axis == models.AxisProject {
		projectID = targetEntityID
	} else {
		resourceID = targetEntityID
	}

	return DropPlan{
		Kind:           DropSpan,
		ResourceID:     resourceID,
		ProjectID:      projectID,
		Start:          start,
		End:            end,
		RemoveOriginal: start <= dragged.Date && dragged.Date <= end,
	}
}
