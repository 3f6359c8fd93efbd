// Package store holds the three in-memory board collections and every
// mutation applied to them. All state is volatile; there is no persistence
// behind it. Operations referencing an unknown id are silent no-ops.
package store

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/planline/planboard/internal/board"
	"github.com/planline/planboard/internal/models"
	appErr "github.com/planline/planboard/pkg/errors"
)

var defaultPalette = []string{
	"#8B5CF6", "#3B82F6", "#10B981", "#F59E0B", "#EF4444", "#EC4899", "#06B6D4",
	"#F97316", "#7C3AED", "#0EA5A4",
}

// allocator hands out entity ids. The default keeps the max(existing)+1
// scheme, so deleting the highest record makes its id reusable.
type allocator interface {
	Next(existing []int) int
}

type maxPlusOne struct{}

func (maxPlusOne) Next(existing []int) int {
	max := 0
	for _, id := range existing {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// Store is the entity store. A single mutex covers all three collections;
// every operation is synchronous and completes before the next one starts.
type Store struct {
	mu          sync.Mutex
	projects    []models.Project
	resources   []models.Resource
	assignments []models.Assignment

	ids   allocator
	actor string
	now   func() time.Time
	pick  func(n int) int
}

// Option configures a Store.
type Option func(*Store)

// WithActor sets the actor label stamped into history entries.
func WithActor(actor string) Option { return func(s *Store) { s.actor = actor } }

// WithNow injects the clock, for deterministic tests.
func WithNow(now func() time.Time) Option { return func(s *Store) { s.now = now } }

// WithColorPick injects the palette index picker, for deterministic tests.
func WithColorPick(pick func(n int) int) Option { return func(s *Store) { s.pick = pick } }

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		ids:   maxPlusOne{},
		actor: "Current User",
		now:   time.Now,
		pick:  rand.Intn,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) stamp(action string) models.HistoryEntry {
	return models.HistoryEntry{Action: action, Timestamp: s.now(), Actor: s.actor}
}

func (s *Store) today() string { return s.now().Format(board.DateLayout) }

// Projects returns a copy of the project collection.
func (s *Store) Projects() []models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// Resources returns a copy of the resource collection.
func (s *Store) Resources() []models.Resource {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Resource, len(s.resources))
	copy(out, s.resources)
	return out
}

// Assignments returns a deep copy of the assignment collection in insertion order.
func (s *Store) Assignments() []models.Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.assignments)
}

// Snapshot returns consistent copies of all three collections under one lock.
func (s *Store) Snapshot() ([]models.Project, []models.Resource, []models.Assignment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	projects := make([]models.Project, len(s.projects))
	copy(projects, s.projects)
	resources := make([]models.Resource, len(s.resources))
	copy(resources, s.resources)
	return projects, resources, cloneAll(s.assignments)
}

func cloneAll(assignments []models.Assignment) []models.Assignment {
	out := make([]models.Assignment, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, a.Clone())
	}
	return out
}

func projectIDs(projects []models.Project) []int {
	ids := make([]int, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	return ids
}

func resourceIDs(resources []models.Resource) []int {
	ids := make([]int, len(resources))
	for i, r := range resources {
		ids[i] = r.ID
	}
	return ids
}

func assignmentIDs(assignments []models.Assignment) []int {
	ids := make([]int, len(assignments))
	for i, a := range assignments {
		ids[i] = a.ID
	}
	return ids
}

// HasProject reports whether a project with the id exists.
func (s *Store) HasProject(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.projects {
		if p.ID == id {
			return true
		}
	}
	return false
}

// HasResource reports whether a resource with the id exists.
func (s *Store) HasResource(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.resources {
		if r.ID == id {
			return true
		}
	}
	return false
}

// AddProject creates a project with a palette color, medium priority, active
// status, and today's date for both bounds. An empty name gets a placeholder
// derived from the new id.
func (s *Store) AddProject(name string) models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.ids.Next(projectIDs(s.projects))
	if name == "" {
		name = "New Project " + strconv.Itoa(id)
	}
	p := models.Project{
		ID:        id,
		Name:      name,
		Color:     defaultPalette[s.pick(len(defaultPalette))],
		Priority:  models.PriorityMedium,
		Status:    models.StatusActive,
		StartDate: s.today(),
		EndDate:   s.today(),
	}
	s.projects = append(s.projects, p)
	return p
}

// AddResource assigns the next id and appends the resource. Zero-value color
// gets a palette pick; LastUsedDate defaults to today.
func (s *Store) AddResource(r models.Resource) models.Resource {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.ids.Next(resourceIDs(s.resources))
	if r.Color == "" {
		r.Color = defaultPalette[s.pick(len(defaultPalette))]
	}
	if r.LastUsedDate == "" {
		r.LastUsedDate = s.today()
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}
	s.resources = append(s.resources, r)
	return r
}

// UpdateResourceField sets one scalar field of a resource by name. Unknown
// ids and unknown fields leave the store untouched.
func (s *Store) UpdateResourceField(id int, field, value string) (models.Resource, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.resources {
		if s.resources[i].ID != id {
			continue
		}
		r := &s.resources[i]
		switch field {
		case "name":
			r.Name = value
		case "email":
			r.Email = value
		case "phone":
			r.Phone = value
		case "last_used_date":
			r.LastUsedDate = value
		case "availability_percent":
			if n, err := strconv.Atoi(value); err == nil && n >= 0 && n <= 100 {
				r.AvailabilityPercent = n
			}
		case "planned_hours":
			if h, err := strconv.ParseFloat(value, 64); err == nil && h >= 0 {
				r.PlannedHours = h
			}
		}
		return *r, true
	}
	return models.Resource{}, false
}

// ParseTags splits a comma-separated tag string, trims whitespace, and drops
// empty tokens. Duplicates are preserved.
func ParseTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// UpdateResourceTags replaces the resource's tag set wholesale.
func (s *Store) UpdateResourceTags(id int, raw string) (models.Resource, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.resources {
		if s.resources[i].ID == id {
			s.resources[i].Tags = ParseTags(raw)
			return s.resources[i], true
		}
	}
	return models.Resource{}, false
}

// ToggleResourceActive flips the active flag.
func (s *Store) ToggleResourceActive(id int) (models.Resource, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.resources {
		if s.resources[i].ID == id {
			s.resources[i].Active = !s.resources[i].Active
			return s.resources[i], true
		}
	}
	return models.Resource{}, false
}

// SetProjectColor updates the project's display color.
func (s *Store) SetProjectColor(id int, color string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects[i].Color = color
			return true
		}
	}
	return false
}

// SetResourceColor updates the resource's display color.
func (s *Store) SetResourceColor(id int, color string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.resources {
		if s.resources[i].ID == id {
			s.resources[i].Color = color
			return true
		}
	}
	return false
}

// AddAssignment assigns the next id, stamps a Created history entry, and
// appends the record. The date is the only required field.
func (s *Store) AddAssignment(a models.Assignment) (models.Assignment, error) {
	if a.Date == "" {
		return models.Assignment{}, appErr.New(appErr.CodeInvalid, "assignment date is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.ids.Next(assignmentIDs(s.assignments))
	a.History = append(a.History, s.stamp("Created"))
	s.assignments = append(s.assignments, a)
	return a.Clone(), nil
}

// DeleteAssignment removes by id, unconditionally. Confirmation is the
// caller's concern.
func (s *Store) DeleteAssignment(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.assignments {
		if s.assignments[i].ID == id {
			s.assignments = append(s.assignments[:i], s.assignments[i+1:]...)
			return true
		}
	}
	return false
}

// MoveAssignment relocates an assignment to a new date and, depending on the
// axis that initiated the move, rebinds either the project or the resource.
// The other foreign key is left unchanged.
func (s *Store) MoveAssignment(id int, newDate string, newEntityID int, axis models.Axis) (models.Assignment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.assignments {
		if s.assignments[i].ID != id {
			continue
		}
		a := &s.assignments[i]
		a.Date = newDate
		if axis == models.AxisProject {
			a.ProjectID = newEntityID
		} else {
			a.ResourceID = newEntityID
		}
		a.History = append(a.History, s.stamp(fmt.Sprintf("Moved to %s", newDate)))
		return a.Clone(), true
	}
	return models.Assignment{}, false
}

// InsertAssignments appends each clone with a fresh id, in order. Used by
// paste; the clones carry their history already stamped.
func (s *Store) InsertAssignments(clones []models.Assignment) []models.Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(clones)
}

func (s *Store) insertLocked(clones []models.Assignment) []models.Assignment {
	out := make([]models.Assignment, 0, len(clones))
	for _, c := range clones {
		c.ID = s.ids.Next(assignmentIDs(s.assignments))
		s.assignments = append(s.assignments, c)
		out = append(out, c.Clone())
	}
	return out
}

// SpanAssignments creates one assignment per day in [startDate, endDate]
// ascending, cloned from the template's type, duration and note, each with a
// fresh id and the template's history plus a span entry. The template record
// itself is not touched.
func (s *Store) SpanAssignments(template models.Assignment, resourceID, projectID int, startDate, endDate string) []models.Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spanLocked(template, resourceID, projectID, startDate, endDate)
}

func (s *Store) spanLocked(template models.Assignment, resourceID, projectID int, startDate, endDate string) []models.Assignment {
	entry := s.stamp(fmt.Sprintf("Created by span %s->%s", startDate, endDate))
	clones := make([]models.Assignment, 0)
	for _, date := range board.DaysBetween(startDate, endDate) {
		c := template.Clone()
		c.ResourceID = resourceID
		c.ProjectID = projectID
		c.Date = date
		c.History = append(c.History, entry)
		clones = append(clones, c)
	}
	return s.insertLocked(clones)
}

// Drop finds the dragged assignment, asks decide for the drop plan, and
// applies it atomically. Returns the records created or moved by the drop.
// Unknown ids and cancelled drops mutate nothing.
func (s *Store) Drop(draggedID int, decide func(models.Assignment) board.DropPlan) ([]models.Assignment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.assignments {
		if s.assignments[i].ID == draggedID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, false
	}

	plan := decide(s.assignments[idx].Clone())
	switch plan.Kind {
	case board.DropMove:
		a := &s.assignments[idx]
		a.Date = plan.Date
		if plan.Axis == models.AxisProject {
			a.ProjectID = plan.EntityID
		} else {
			a.ResourceID = plan.EntityID
		}
		a.History = append(a.History, s.stamp(fmt.Sprintf("Moved to %s", plan.Date)))
		return []models.Assignment{a.Clone()}, true
	case board.DropSpan:
		template := s.assignments[idx].Clone()
		created := s.spanLocked(template, plan.ResourceID, plan.ProjectID, plan.Start, plan.End)
		if plan.RemoveOriginal {
			for i := range s.assignments {
				if s.assignments[i].ID == draggedID {
					s.assignments = append(s.assignments[:i], s.assignments[i+1:]...)
					break
				}
			}
		}
		return created, true
	default:
		return nil, true
	}
}

// DeleteCells removes every assignment whose (axis foreign key, date) matches
// one of the given cells. Returns the number removed.
func (s *Store) DeleteCells(cells []board.Cell, axis models.Axis) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.assignments[:0]
	removed := 0
	for _, a := range s.assignments {
		matched := false
		for _, c := range cells {
			if a.Date == c.Date && a.EntityID(axis) == c.EntityID {
				matched = true
				break
			}
		}
		if matched {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	s.assignments = kept
	return removed
}
