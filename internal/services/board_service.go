package services

import (
	"time"

	"go.uber.org/zap"

	"github.com/planline/planboard/internal/board"
	"github.com/planline/planboard/internal/models"
	"github.com/planline/planboard/internal/store"
	appErr "github.com/planline/planboard/pkg/errors"
	"github.com/planline/planboard/pkg/logger"
)

// Events receives board mutation notifications for fan-out to connected
// clients. Implementations must never call back into the service.
type Events interface {
	Publish(event string, data any)
}

type noopEvents struct{}

func (noopEvents) Publish(string, any) {}

// BoardService is the command/query surface the HTTP layer talks to. All
// inputs and outputs are plain data records.
type BoardService interface {
	// Queries
	DateWindow(anchor string, preset board.Preset) ([]board.Day, error)
	CellAssignments(axis models.Axis, entityID int, date string) []models.Assignment
	VisibleProjects(search string, spec board.SortSpec) []models.Project
	ProjectsInWindow(search string, spec board.SortSpec, anchor string, preset board.Preset) ([]models.Project, error)
	VisibleResources(search string, activeOnly bool, spec board.SortSpec) []models.Resource
	ResourceStats() models.ResourceStats
	Summary() Summary

	// Entity commands
	CreateProject(name string) models.Project
	CreateResource(r models.Resource) models.Resource
	UpdateResourceField(id int, field, value string) (models.Resource, bool)
	UpdateResourceTags(id int, tags string) (models.Resource, bool)
	ToggleResourceActive(id int) (models.Resource, bool)
	SetColor(axis models.Axis, id int, color string) bool

	// Assignment commands
	CreateAssignment(a models.Assignment) (models.Assignment, error)
	DeleteAssignment(id int) bool
	MoveAssignment(id int, date string, entityID int, axis models.Axis) (models.Assignment, bool)
	Drop(draggedID, targetEntityID int, targetDate string, axis models.Axis, span bool) ([]models.Assignment, error)

	// Selection & clipboard commands
	Select(sel board.Selection, cellID string, mod board.Modifier) board.Selection
	CopySelection(sel board.Selection, axis models.Axis) []board.ClipboardCell
	CopyProjectAssignments(projectID int) []board.ClipboardCell
	Paste(sel board.Selection, clipboard []board.ClipboardCell, axis models.Axis) ([]models.Assignment, error)
	DeleteCells(sel board.Selection, axis models.Axis) int
}

// Summary carries the board footer counts.
type Summary struct {
	Resources   int `json:"resources"`
	Projects    int `json:"projects"`
	Assignments int `json:"assignments"`
}

type boardService struct {
	store  *store.Store
	events Events
	actor  string
	now    func() time.Time
}

// NewBoardService wires the entity store to the engine. events may be nil.
func NewBoardService(st *store.Store, events Events, actor string) BoardService {
	if events == nil {
		events = noopEvents{}
	}
	return &boardService{store: st, events: events, actor: actor, now: time.Now}
}

var _ BoardService = (*boardService)(nil)

func (s *boardService) DateWindow(anchor string, preset board.Preset) ([]board.Day, error) {
	if preset.Days() == 0 {
		return nil, appErr.New(appErr.CodeInvalid, "unknown view preset").WithMeta("preset", string(preset))
	}
	start := s.now()
	if anchor != "" {
		t, err := time.Parse(board.DateLayout, anchor)
		if err != nil {
			return nil, appErr.Wrap(err, appErr.CodeInvalid, "invalid anchor date")
		}
		start = t
	}
	return board.Window(start, preset, s.now().Format(board.DateLayout)), nil
}

func (s *boardService) CellAssignments(axis models.Axis, entityID int, date string) []models.Assignment {
	return board.CellAssignments(s.store.Assignments(), entityID, date, axis)
}

func (s *boardService) VisibleProjects(search string, spec board.SortSpec) []models.Project {
	return board.VisibleProjects(s.store.Projects(), search, spec)
}

func (s *boardService) ProjectsInWindow(search string, spec board.SortSpec, anchor string, preset board.Preset) ([]models.Project, error) {
	window, err := s.DateWindow(anchor, preset)
	if err != nil {
		return nil, err
	}
	return board.ProjectsInWindow(s.VisibleProjects(search, spec), window), nil
}

func (s *boardService) VisibleResources(search string, activeOnly bool, spec board.SortSpec) []models.Resource {
	return board.VisibleResources(s.store.Resources(), search, activeOnly, spec)
}

func (s *boardService) ResourceStats() models.ResourceStats {
	resources := s.store.Resources()
	stats := models.ResourceStats{Total: len(resources)}
	sum := 0
	for _, r := range resources {
		switch r.Kind {
		case models.KindPerson:
			stats.People++
		case models.KindVehicle:
			stats.Vehicles++
		}
		sum += r.AvailabilityPercent
	}
	if stats.Total > 0 {
		stats.MeanAvailability = float64(sum) / float64(stats.Total)
	}
	return stats
}

func (s *boardService) Summary() Summary {
	projects, resources, assignments := s.store.Snapshot()
	return Summary{Resources: len(resources), Projects: len(projects), Assignments: len(assignments)}
}

func (s *boardService) CreateProject(name string) models.Project {
	p := s.store.AddProject(name)
	logger.L().Info("project created", zap.Int("project_id", p.ID), zap.String("name", p.Name))
	s.events.Publish("project.created", p)
	return p
}

func (s *boardService) CreateResource(r models.Resource) models.Resource {
	created := s.store.AddResource(r)
	logger.L().Info("resource created", zap.Int("resource_id", created.ID), zap.String("name", created.Name))
	s.events.Publish("resource.created", created)
	return created
}

func (s *boardService) UpdateResourceField(id int, field, value string) (models.Resource, bool) {
	r, ok := s.store.UpdateResourceField(id, field, value)
	if ok {
		s.events.Publish("resource.updated", r)
	}
	return r, ok
}

func (s *boardService) UpdateResourceTags(id int, tags string) (models.Resource, bool) {
	r, ok := s.store.UpdateResourceTags(id, tags)
	if ok {
		s.events.Publish("resource.updated", r)
	}
	return r, ok
}

func (s *boardService) ToggleResourceActive(id int) (models.Resource, bool) {
	r, ok := s.store.ToggleResourceActive(id)
	if ok {
		s.events.Publish("resource.updated", r)
	}
	return r, ok
}

func (s *boardService) SetColor(axis models.Axis, id int, color string) bool {
	if axis == models.AxisProject {
		return s.store.SetProjectColor(id, color)
	}
	return s.store.SetResourceColor(id, color)
}

// CreateAssignment checks both foreign keys against the live collections
// before handing the record to the store, which itself only requires a date.
func (s *boardService) CreateAssignment(a models.Assignment) (models.Assignment, error) {
	if !s.store.HasResource(a.ResourceID) {
		return models.Assignment{}, appErr.New(appErr.CodeInvalid, "unknown resource").WithMeta("resource_id", a.ResourceID)
	}
	if !s.store.HasProject(a.ProjectID) {
		return models.Assignment{}, appErr.New(appErr.CodeInvalid, "unknown project").WithMeta("project_id", a.ProjectID)
	}
	created, err := s.store.AddAssignment(a)
	if err != nil {
		return models.Assignment{}, err
	}
	logger.L().Info("assignment created",
		zap.Int("assignment_id", created.ID),
		zap.Int("resource_id", created.ResourceID),
		zap.Int("project_id", created.ProjectID),
		zap.String("date", created.Date),
	)
	s.events.Publish("assignment.created", created)
	return created, nil
}

func (s *boardService) DeleteAssignment(id int) bool {
	ok := s.store.DeleteAssignment(id)
	if ok {
		logger.L().Info("assignment deleted", zap.Int("assignment_id", id))
		s.events.Publish("assignment.deleted", map[string]int{"id": id})
	}
	return ok
}

func (s *boardService) MoveAssignment(id int, date string, entityID int, axis models.Axis) (models.Assignment, bool) {
	moved, ok := s.store.MoveAssignment(id, date, entityID, axis)
	if ok {
		logger.L().Info("assignment moved", zap.Int("assignment_id", id), zap.String("date", date))
		s.events.Publish("assignment.moved", moved)
	}
	return moved, ok
}

func (s *boardService) Drop(draggedID, targetEntityID int, targetDate string, axis models.Axis, span bool) ([]models.Assignment, error) {
	if !axis.Valid() {
		return nil, appErr.New(appErr.CodeInvalid, "unknown axis")
	}
	affected, found := s.store.Drop(draggedID, func(dragged models.Assignment) board.DropPlan {
		return board.PlanDrop(dragged, targetEntityID, targetDate, axis, span)
	})
	if !found {
		// Unknown dragged id is a silent no-op, mirroring a drop that
		// lands after its source was removed.
		return nil, nil
	}
	if span {
		logger.L().Info("assignment spanned", zap.Int("assignment_id", draggedID), zap.Int("created", len(affected)))
		s.events.Publish("assignment.spanned", affected)
	} else {
		logger.L().Info("assignment dropped", zap.Int("assignment_id", draggedID), zap.String("date", targetDate))
		s.events.Publish("assignment.moved", affected)
	}
	return affected, nil
}

func (s *boardService) Select(sel board.Selection, cellID string, mod board.Modifier) board.Selection {
	return board.ApplySelect(sel, cellID, mod)
}

func (s *boardService) CopySelection(sel board.Selection, axis models.Axis) []board.ClipboardCell {
	// One snapshot of the collection before iterating the selection.
	return board.Copy(s.store.Assignments(), sel, axis)
}

func (s *boardService) CopyProjectAssignments(projectID int) []board.ClipboardCell {
	return board.CopyProject(s.store.Assignments(), projectID)
}

func (s *boardService) Paste(sel board.Selection, clipboard []board.ClipboardCell, axis models.Axis) ([]models.Assignment, error) {
	if len(clipboard) == 0 {
		return nil, appErr.New(appErr.CodeInvalid, "clipboard is empty")
	}
	if len(sel) == 0 {
		return nil, appErr.New(appErr.CodeInvalid, "selection is empty")
	}
	clones := board.PasteClones(clipboard, sel, axis, board.PasteStamp(s.now(), s.actor))
	created := s.store.InsertAssignments(clones)
	logger.L().Info("pasted assignments",
		zap.Int("targets", len(sel)),
		zap.Int("created", len(created)),
	)
	if len(created) > 0 {
		s.events.Publish("assignment.pasted", created)
	}
	return created, nil
}

func (s *boardService) DeleteCells(sel board.Selection, axis models.Axis) int {
	removed := s.store.DeleteCells(sel.Cells(), axis)
	logger.L().Info("cells cleared", zap.Int("cells", len(sel)), zap.Int("removed", removed))
	if removed > 0 {
		s.events.Publish("cells.deleted", map[string]int{"removed": removed})
	}
	return removed
}
