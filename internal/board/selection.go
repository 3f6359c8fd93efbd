package board

import (
	"strconv"
	"time"

	"github.com/planline/planboard/internal/models"
)

// Modifier qualifies a cell click.
type Modifier string

const (
	// ModifierNone replaces the selection with the clicked cell.
	ModifierNone Modifier = ""
	// ModifierToggle (ctrl/cmd) flips the clicked cell's membership.
	ModifierToggle Modifier = "toggle"
	// ModifierAdditive (shift) adds the clicked cell to a non-empty selection.
	// This is a plain union, not a rectangular range.
	ModifierAdditive Modifier = "additive"
)

// Selection is an ordered set of cell ids. Order is preserved so that paste
// fan-out is deterministic.
type Selection []string

func (sel Selection) contains(cellID string) bool {
	for _, c := range sel {
		if c == cellID {
			return true
		}
	}
	return false
}

// Cell is the parsed form of a cell id.
type Cell struct {
	EntityID int    `json:"entity_id"`
	Date     string `json:"date"`
}

// Cells parses every id in the selection, skipping malformed ones.
func (sel Selection) Cells() []Cell {
	out := make([]Cell, 0, len(sel))
	for _, id := range sel {
		if entityID, date, ok := ParseCellID(id); ok {
			out = append(out, Cell{EntityID: entityID, Date: date})
		}
	}
	return out
}

// ApplySelect returns the selection after a click on cellID with the given
// modifier. The input selection is never mutated.
func ApplySelect(sel Selection, cellID string, mod Modifier) Selection {
	switch mod {
	case ModifierToggle:
		out := make(Selection, 0, len(sel)+1)
		found := false
		for _, c := range sel {
			if c == cellID {
				found = true
				continue
			}
			out = append(out, c)
		}
		if !found {
			out = append(out, cellID)
		}
		return out
	case ModifierAdditive:
		if len(sel) == 0 {
			return Selection{cellID}
		}
		if sel.contains(cellID) {
			return append(Selection(nil), sel...)
		}
		return append(append(Selection(nil), sel...), cellID)
	default:
		return Selection{cellID}
	}
}

// ClipboardCell is one entry of the clipboard payload: the source cell and a
// snapshot of the assignments that occupied it at copy time.
type ClipboardCell struct {
	CellID      string              `json:"cell_id"`
	Assignments []models.Assignment `json:"assignments"`
}

// Copy snapshots the assignments occupying every selected cell on the given
// axis. The result is a complete clipboard payload; the previous payload is
// the caller's to discard (single slot, last copy wins).
func Copy(assignments []models.Assignment, sel Selection, axis models.Axis) []ClipboardCell {
	out := make([]ClipboardCell, 0, len(sel))
	for _, cellID := range sel {
		entityID, date, ok := ParseCellID(cellID)
		if !ok {
			continue
		}
		snap := make([]models.Assignment, 0)
		for _, a := range CellAssignments(assignments, entityID, date, axis) {
			snap = append(snap, a.Clone())
		}
		out = append(out, ClipboardCell{CellID: cellID, Assignments: snap})
	}
	return out
}

// CopyProject snapshots every assignment belonging to one project as a
// single clipboard entry, keyed by a synthetic cell id.
func CopyProject(assignments []models.Assignment, projectID int) []ClipboardCell {
	snap := make([]models.Assignment, 0)
	for _, a := range assignments {
		if a.ProjectID == projectID {
			snap = append(snap, a.Clone())
		}
	}
	return []ClipboardCell{{CellID: "project-" + strconv.Itoa(projectID), Assignments: snap}}
}

// PasteClones expands the full cross-product of clipboard entries over the
// target selection: for every target cell, every clipboard entry, and every
// assignment within it, one clone dated at the target cell with its
// axis-appropriate foreign key rebound to the target entity. The other
// foreign key is retained from the source. Each clone carries the stamped
// Pasted history entry and a zero id; the store assigns fresh ids on insert.
func PasteClones(clipboard []ClipboardCell, sel Selection, axis models.Axis, stamp models.HistoryEntry) []models.Assignment {
	clones := make([]models.Assignment, 0)
	for _, cellID := range sel {
		entityID, date, ok := ParseCellID(cellID)
		if !ok {
			continue
		}
		for _, entry := range clipboard {
			for _, src := range entry.Assignments {
				c := src.Clone()
				c.ID = 0
				c.Date = date
				if axis == models.AxisProject {
					c.ProjectID = entityID
				} else {
					c.ResourceID = entityID
				}
				c.History = append(c.History, stamp)
				clones = append(clones, c)
			}
		}
	}
	return clones
}

// PasteStamp builds the history entry appended to every pasted clone.
func PasteStamp(at time.Time, actor string) models.HistoryEntry {
	return models.HistoryEntry{Action: "Pasted", Timestamp: at, Actor: actor}
}
