package board

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/planline/planboard/internal/models"
)

func TestApplySelectPlainClickReplaces(t *testing.T) {
	sel := Selection{"1::2025-10-08", "2::2025-10-08"}
	got := ApplySelect(sel, "3::2025-10-09", ModifierNone)
	require.Equal(t, Selection{"3::2025-10-09"}, got)
}

func TestApplySelectToggle(t *testing.T) {
	sel := Selection{"1::2025-10-08"}

	added := ApplySelect(sel, "2::2025-10-08", ModifierToggle)
	require.Equal(t, Selection{"1::2025-10-08", "2::2025-10-08"}, added)

	removed := ApplySelect(added, "1::2025-10-08", ModifierToggle)
	require.Equal(t, Selection{"2::2025-10-08"}, removed)
}

func TestApplySelectAdditiveUnion(t *testing.T) {
	sel := ApplySelect(nil, "1::2025-10-08", ModifierAdditive)
	require.Equal(t, Selection{"1::2025-10-08"}, sel)

	sel = ApplySelect(sel, "1::2025-10-10", ModifierAdditive)
	require.Equal(t, Selection{"1::2025-10-08", "1::2025-10-10"}, sel)

	// Re-adding a member leaves the selection unchanged.
	sel = ApplySelect(sel, "1::2025-10-08", ModifierAdditive)
	require.Len(t, sel, 2)
}

func TestApplySelectNeverMutatesInput(t *testing.T) {
	sel := Selection{"1::2025-10-08"}
	ApplySelect(sel, "2::2025-10-08", ModifierToggle)
	ApplySelect(sel, "2::2025-10-08", ModifierAdditive)
	require.Equal(t, Selection{"1::2025-10-08"}, sel)
}

func TestCopySnapshotsCells(t *testing.T) {
	assignments := []models.Assignment{
		{ID: 1, ResourceID: 1, ProjectID: 10, Date: "2025-10-08", History: []models.HistoryEntry{{Action: "Created"}}},
		{ID: 2, ResourceID: 1, ProjectID: 20, Date: "2025-10-08"},
		{ID: 3, ResourceID: 2, ProjectID: 10, Date: "2025-10-08"},
	}
	sel := Selection{"1::2025-10-08", "2::2025-10-08", "bogus"}

	cells := Copy(assignments, sel, models.AxisResource)
	require.Len(t, cells, 2)
	require.Len(t, cells[0].Assignments, 2)
	require.Len(t, cells[1].Assignments, 1)

	// Snapshot is independent of the source records.
	cells[0].Assignments[0].History[0].Action = "mutated"
	require.Equal(t, "Created", assignments[0].History[0].Action)
}

func TestCopyEmptyCellKept(t *testing.T) {
	cells := Copy(nil, Selection{"1::2025-10-08"}, models.AxisResource)
	require.Len(t, cells, 1)
	require.Empty(t, cells[0].Assignments)
}

func TestCopyProject(t *testing.T) {
	assignments := []models.Assignment{
		{ID: 1, ProjectID: 10, Date: "2025-10-08"},
		{ID: 2, ProjectID: 20, Date: "2025-10-08"},
		{ID: 3, ProjectID: 10, Date: "2025-10-12"},
	}
	cells := CopyProject(assignments, 10)
	require.Len(t, cells, 1)
	require.Equal(t, "project-10", cells[0].CellID)
	require.Len(t, cells[0].Assignments, 2)
}

func TestPasteClonesCrossProduct(t *testing.T) {
	clipboard := []ClipboardCell{
		{CellID: "1::2025-10-08", Assignments: []models.Assignment{
			{ID: 1, ResourceID: 1, ProjectID: 10, Date: "2025-10-08", Type: models.TypeTravel},
		}},
		{CellID: "2::2025-10-08", Assignments: []models.Assignment{
			{ID: 2, ResourceID: 2, ProjectID: 10, Date: "2025-10-08", Type: models.TypeMaintenance},
			{ID: 3, ResourceID: 2, ProjectID: 20, Date: "2025-10-08", Type: models.TypeNote},
		}},
	}
	sel := Selection{"5::2025-11-01", "6::2025-11-02"}
	stamp := PasteStamp(time.Date(2025, 10, 9, 12, 0, 0, 0, time.UTC), "Current User")

	clones := PasteClones(clipboard, sel, models.AxisResource, stamp)

	// 2 targets x (1 + 2) source assignments.
	require.Len(t, clones, 6)

	for _, c := range clones {
		require.Zero(t, c.ID)
		last := c.History[len(c.History)-1]
		require.Equal(t, "Pasted", last.Action)
		require.Equal(t, "Current User", last.Actor)
	}

	// First target takes all three sources at its own date and resource.
	require.Equal(t, 5, clones[0].ResourceID)
	require.Equal(t, "2025-11-01", clones[0].Date)
	require.Equal(t, 10, clones[0].ProjectID) // other key retained
	require.Equal(t, models.TypeNote, clones[2].Type)

	require.Equal(t, 6, clones[3].ResourceID)
	require.Equal(t, "2025-11-02", clones[3].Date)
}

func TestPasteClonesProjectAxisRebindsProject(t *testing.T) {
	clipboard := []ClipboardCell{
		{CellID: "10::2025-10-08", Assignments: []models.Assignment{
			{ID: 1, ResourceID: 3, ProjectID: 10, Date: "2025-10-08"},
		}},
	}
	clones := PasteClones(clipboard, Selection{"20::2025-11-01"}, models.AxisProject, PasteStamp(time.Now(), "x"))
	require.Len(t, clones, 1)
	require.Equal(t, 20, clones[0].ProjectID)
	require.Equal(t, 3, clones[0].ResourceID)
}
