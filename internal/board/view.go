package board

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/planline/planboard/internal/models"
)

// SortSpec names the field and direction for a derived-list sort.
type SortSpec struct {
	Key string `json:"key"`
	Dir string `json:"dir"` // asc or desc
}

// resourceSortKey extracts the comparable value for a resource field.
// Unknown keys and empty fields compare as the empty string, matching the
// nil-sorts-first behavior of the board's table views.
func resourceSortKey(r models.Resource, key string) string {
	switch key {
	case "name":
		return strings.ToLower(r.Name)
	case "kind":
		return strings.ToLower(string(r.Kind))
	case "availability":
		return fmt.Sprintf("%03d", r.AvailabilityPercent)
	case "last_used":
		return r.LastUsedDate
	default:
		return ""
	}
}

func projectSortKey(p models.Project, key string) string {
	switch key {
	case "name":
		return strings.ToLower(p.Name)
	case "priority":
		return strings.ToLower(string(p.Priority))
	case "status":
		return strings.ToLower(string(p.Status))
	case "start_date":
		return p.StartDate
	case "end_date":
		return p.EndDate
	default:
		return ""
	}
}

// VisibleResources filters resources by a case-insensitive name substring,
// optionally keeps only active ones, then stable-sorts by the sort spec.
func VisibleResources(resources []models.Resource, searchTerm string, activeOnly bool, spec SortSpec) []models.Resource {
	term := strings.ToLower(searchTerm)
	out := make([]models.Resource, 0, len(resources))
	for _, r := range resources {
		if term != "" && !strings.Contains(strings.ToLower(r.Name), term) {
			continue
		}
		if activeOnly && !r.Active {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := resourceSortKey(out[i], spec.Key), resourceSortKey(out[j], spec.Key)
		if spec.Dir == "desc" {
			return a > b
		}
		return a < b
	})
	return out
}

// VisibleProjects filters projects by name substring and stable-sorts them.
// Projects carry no active flag; status is a plain field and not filtered here.
func VisibleProjects(projects []models.Project, searchTerm string, spec SortSpec) []models.Project {
	term := strings.ToLower(searchTerm)
	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if term != "" && !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := projectSortKey(out[i], spec.Key), projectSortKey(out[j], spec.Key)
		if spec.Dir == "desc" {
			return a > b
		}
		return a < b
	})
	return out
}

// ProjectsInWindow keeps the projects whose [StartDate, EndDate] interval
// overlaps the visible window.
func ProjectsInWindow(projects []models.Project, window []Day) []models.Project {
	if len(window) == 0 {
		return nil
	}
	windowStart := window[0].Date
	windowEnd := window[len(window)-1].Date
	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if p.StartDate <= windowEnd && p.EndDate >= windowStart {
			out = append(out, p)
		}
	}
	return out
}

// CellAssignments returns, in insertion order, the assignments occupying the
// cell (entityID, date) on the given axis.
func CellAssignments(assignments []models.Assignment, entityID int, date string, axis models.Axis) []models.Assignment {
	var out []models.Assignment
	for _, a := range assignments {
		if a.Date == date && a.EntityID(axis) == entityID {
			out = append(out, a)
		}
	}
	return out
}

// CellID builds the stable composite key for a cell.
func CellID(entityID int, date string) string {
	return fmt.Sprintf("%d::%s", entityID, date)
}

// ParseCellID splits a cell id back into its entity and date parts.
func ParseCellID(cellID string) (entityID int, date string, ok bool) {
	idStr, date, found := strings.Cut(cellID, "::")
	if !found {
		return 0, "", false
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, "", false
	}
	return id, date, true
}
