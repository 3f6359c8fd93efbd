package services

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/planline/planboard/internal/board"
	"github.com/planline/planboard/internal/models"
	"github.com/planline/planboard/internal/store"
	appErr "github.com/planline/planboard/pkg/errors"
	"github.com/planline/planboard/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests (required by the service)
	_, err := logger.Init("info", "json")
	if err != nil {
		panic("failed to init logger: " + err.Error())
	}
	os.Exit(m.Run())
}

type mockEvents struct {
	mock.Mock
}

func (m *mockEvents) Publish(event string, data any) {
	m.Called(event, data)
}

func fixedClock() func() time.Time {
	at := time.Date(2025, 10, 8, 9, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func newFixture(t *testing.T) (*store.Store, *mockEvents, BoardService) {
	t.Helper()
	st := store.New(
		store.WithActor("Current User"),
		store.WithNow(fixedClock()),
		store.WithColorPick(func(n int) int { return 0 }),
	)
	ev := &mockEvents{}
	return st, ev, NewBoardService(st, ev, "Current User")
}

func TestDateWindow(t *testing.T) {
	_, _, svc := newFixture(t)

	days, err := svc.DateWindow("2025-10-06", board.PresetWeek)
	require.NoError(t, err)
	require.Len(t, days, 7)
	require.Equal(t, "2025-10-06", days[0].Date)

	_, err = svc.DateWindow("2025-10-06", board.Preset("bogus"))
	require.True(t, appErr.IsCode(err, appErr.CodeInvalid))

	_, err = svc.DateWindow("06.10.2025", board.PresetWeek)
	require.True(t, appErr.IsCode(err, appErr.CodeInvalid))
}

func TestCreateAssignmentValidatesForeignKeys(t *testing.T) {
	st, ev, svc := newFixture(t)
	ev.On("Publish", mock.Anything, mock.Anything).Return()

	p := svc.CreateProject("Warehouse Build")
	r := svc.CreateResource(models.Resource{Name: "Alice", Kind: models.KindPerson})

	_, err := svc.CreateAssignment(models.Assignment{ResourceID: 99, ProjectID: p.ID, Date: "2025-10-08"})
	require.True(t, appErr.IsCode(err, appErr.CodeInvalid))

	_, err = svc.CreateAssignment(models.Assignment{ResourceID: r.ID, ProjectID: 99, Date: "2025-10-08"})
	require.True(t, appErr.IsCode(err, appErr.CodeInvalid))

	created, err := svc.CreateAssignment(models.Assignment{ResourceID: r.ID, ProjectID: p.ID, Date: "2025-10-08"})
	require.NoError(t, err)
	require.Equal(t, 1, created.ID)
	require.Len(t, st.Assignments(), 1)

	ev.AssertCalled(t, "Publish", "assignment.created", mock.Anything)
}

func TestPasteCrossProduct(t *testing.T) {
	_, ev, svc := newFixture(t)
	ev.On("Publish", mock.Anything, mock.Anything).Return()

	p := svc.CreateProject("Warehouse Build")
	r1 := svc.CreateResource(models.Resource{Name: "Alice", Kind: models.KindPerson})
	r2 := svc.CreateResource(models.Resource{Name: "Bob", Kind: models.KindPerson})

	// Cell one holds a single assignment, cell two holds two.
	_, err := svc.CreateAssignment(models.Assignment{ResourceID: r1.ID, ProjectID: p.ID, Date: "2025-10-08", Type: models.TypeTravel})
	require.NoError(t, err)
	_, err = svc.CreateAssignment(models.Assignment{ResourceID: r2.ID, ProjectID: p.ID, Date: "2025-10-08", Type: models.TypeMaintenance})
	require.NoError(t, err)
	_, err = svc.CreateAssignment(models.Assignment{ResourceID: r2.ID, ProjectID: p.ID, Date: "2025-10-08", Type: models.TypeNote})
	require.NoError(t, err)

	sel := board.Selection{
		board.CellID(r1.ID, "2025-10-08"),
		board.CellID(r2.ID, "2025-10-08"),
	}
	clipboard := svc.CopySelection(sel, models.AxisResource)
	require.Len(t, clipboard, 2)

	targets := board.Selection{
		board.CellID(r1.ID, "2025-11-01"),
		board.CellID(r2.ID, "2025-11-02"),
	}
	created, err := svc.Paste(targets, clipboard, models.AxisResource)
	require.NoError(t, err)

	// 2 targets x (1 + 2) copied assignments.
	require.Len(t, created, 6)
	for _, c := range created {
		require.Equal(t, "Pasted", c.History[len(c.History)-1].Action)
	}
	ev.AssertCalled(t, "Publish", "assignment.pasted", mock.Anything)
}

func TestPasteRejectsEmptyInputs(t *testing.T) {
	_, _, svc := newFixture(t)

	_, err := svc.Paste(board.Selection{"1::2025-10-08"}, nil, models.AxisResource)
	require.True(t, appErr.IsCode(err, appErr.CodeInvalid))

	_, err = svc.Paste(nil, []board.ClipboardCell{{CellID: "1::2025-10-08"}}, models.AxisResource)
	require.True(t, appErr.IsCode(err, appErr.CodeInvalid))
}

func TestDropSpanThroughService(t *testing.T) {
	st, ev, svc := newFixture(t)
	ev.On("Publish", mock.Anything, mock.Anything).Return()

	p := svc.CreateProject("Warehouse Build")
	r := svc.CreateResource(models.Resource{Name: "Alice", Kind: models.KindPerson})
	a, err := svc.CreateAssignment(models.Assignment{ResourceID: r.ID, ProjectID: p.ID, Date: "2025-10-08"})
	require.NoError(t, err)

	created, err := svc.Drop(a.ID, r.ID, "2025-10-11", models.AxisResource, true)
	require.NoError(t, err)
	require.Len(t, created, 4)
	require.Len(t, st.Assignments(), 4)
	ev.AssertCalled(t, "Publish", "assignment.spanned", mock.Anything)
}

func TestDropUnknownIDIsSilent(t *testing.T) {
	_, ev, svc := newFixture(t)

	affected, err := svc.Drop(99, 1, "2025-10-11", models.AxisResource, false)
	require.NoError(t, err)
	require.Nil(t, affected)
	ev.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestDropInvalidAxis(t *testing.T) {
	_, _, svc := newFixture(t)
	_, err := svc.Drop(1, 1, "2025-10-11", models.Axis("bogus"), false)
	require.True(t, appErr.IsCode(err, appErr.CodeInvalid))
}

func TestResourceStats(t *testing.T) {
	_, ev, svc := newFixture(t)
	ev.On("Publish", mock.Anything, mock.Anything).Return()

	svc.CreateResource(models.Resource{Name: "Alice", Kind: models.KindPerson, AvailabilityPercent: 80})
	svc.CreateResource(models.Resource{Name: "Bob", Kind: models.KindPerson, AvailabilityPercent: 60})
	svc.CreateResource(models.Resource{Name: "Crane", Kind: models.KindVehicle, AvailabilityPercent: 100})

	stats := svc.ResourceStats()
	require.Equal(t, 3, stats.Total)
	require.Equal(t, 2, stats.People)
	require.Equal(t, 1, stats.Vehicles)
	require.InDelta(t, 80.0, stats.MeanAvailability, 0.001)
}

func TestSummary(t *testing.T) {
	_, ev, svc := newFixture(t)
	ev.On("Publish", mock.Anything, mock.Anything).Return()

	p := svc.CreateProject("a")
	r := svc.CreateResource(models.Resource{Name: "Alice", Kind: models.KindPerson})
	_, err := svc.CreateAssignment(models.Assignment{ResourceID: r.ID, ProjectID: p.ID, Date: "2025-10-08"})
	require.NoError(t, err)

	sum := svc.Summary()
	require.Equal(t, Summary{Resources: 1, Projects: 1, Assignments: 1}, sum)
}

func TestCopyProjectAssignments(t *testing.T) {
	_, ev, svc := newFixture(t)
	ev.On("Publish", mock.Anything, mock.Anything).Return()

	p := svc.CreateProject("a")
	other := svc.CreateProject("b")
	r := svc.CreateResource(models.Resource{Name: "Alice", Kind: models.KindPerson})
	_, err := svc.CreateAssignment(models.Assignment{ResourceID: r.ID, ProjectID: p.ID, Date: "2025-10-08"})
	require.NoError(t, err)
	_, err = svc.CreateAssignment(models.Assignment{ResourceID: r.ID, ProjectID: other.ID, Date: "2025-10-08"})
	require.NoError(t, err)

	cells := svc.CopyProjectAssignments(p.ID)
	require.Len(t, cells, 1)
	require.Len(t, cells[0].Assignments, 1)
}

func TestDeleteCellsCount(t *testing.T) {
	_, ev, svc := newFixture(t)
	ev.On("Publish", mock.Anything, mock.Anything).Return()

	p := svc.CreateProject("a")
	r := svc.CreateResource(models.Resource{Name: "Alice", Kind: models.KindPerson})
	_, err := svc.CreateAssignment(models.Assignment{ResourceID: r.ID, ProjectID: p.ID, Date: "2025-10-08"})
	require.NoError(t, err)
	_, err = svc.CreateAssignment(models.Assignment{ResourceID: r.ID, ProjectID: p.ID, Date: "2025-10-08"})
	require.NoError(t, err)

	removed := svc.DeleteCells(board.Selection{board.CellID(r.ID, "2025-10-08")}, models.AxisResource)
	require.Equal(t, 2, removed)
	ev.AssertCalled(t, "Publish", "cells.deleted", mock.Anything)
}
