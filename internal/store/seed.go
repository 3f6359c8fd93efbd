package store

import (
	"time"

	"github.com/planline/planboard/internal/models"
)

// SeedDemo loads the demo board used in development environments.
func (s *Store) SeedDemo() {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := func(ts string) []models.HistoryEntry {
		t, _ := time.Parse(time.RFC3339, ts)
		return []models.HistoryEntry{{Action: "Created", Timestamp: t, Actor: "Admin"}}
	}

	s.projects = []models.Project{
		{ID: 1, Name: "Rivest Planning", Color: "#8B5CF6", Priority: models.PriorityHigh, Status: models.StatusActive, StartDate: "2025-10-06", EndDate: "2025-10-31"},
		{ID: 2, Name: "Transport Management", Color: "#3B82F6", Priority: models.PriorityMedium, Status: models.StatusActive, StartDate: "2025-10-08", EndDate: "2025-10-28"},
		{ID: 3, Name: "Maintenance Planning", Color: "#10B981", Priority: models.PriorityLow, Status: models.StatusOnHold, StartDate: "2025-10-15", EndDate: "2025-11-05"},
		{ID: 4, Name: "Equipment Inspection", Color: "#F59E0B", Priority: models.PriorityHigh, Status: models.StatusActive, StartDate: "2025-10-10", EndDate: "2025-10-25"},
	}

	s.resources = []models.Resource{
		{ID: 1, Name: "Ain Saalong", Kind: models.KindPerson, AvailabilityPercent: 85, Tags: []string{"driver", "transport"}, LastUsedDate: "2025-10-07", PlannedHours: 120, Email: "ain@company.example", Phone: "+372 5555 1234", Active: true, Color: "#F97316"},
		{ID: 2, Name: "Artur Magiliin", Kind: models.KindPerson, AvailabilityPercent: 60, Tags: []string{"technician"}, LastUsedDate: "2025-10-06", PlannedHours: 80, Email: "artur@company.example", Phone: "+372 5555 2345", Active: true, Color: "#06B6D4"},
		{ID: 3, Name: "Bohdan Kaplotshnyi", Kind: models.KindPerson, AvailabilityPercent: 90, Tags: []string{"planning"}, LastUsedDate: "2025-10-08", PlannedHours: 140, Email: "bohdan@company.example", Phone: "+372 5555 3456", Active: true, Color: "#7C3AED"},
		{ID: 4, Name: "Dmytro Smyrnov", Kind: models.KindPerson, AvailabilityPercent: 75, Tags: []string{"transport", "maintenance"}, LastUsedDate: "2025-10-05", PlannedHours: 100, Email: "dmytro@company.example", Phone: "+372 5555 4567", Active: false, Color: "#10B981"},
		{ID: 5, Name: "1992DBG Volkswagen", Kind: models.KindVehicle, AvailabilityPercent: 100, Tags: []string{"transport"}, LastUsedDate: "2025-10-07", PlannedHours: 60, Email: "-", Phone: "-", Active: true, Color: "#8B5CF6"},
		{ID: 6, Name: "443PXH Toyota", Kind: models.KindVehicle, AvailabilityPercent: 80, Tags: []string{"transport"}, LastUsedDate: "2025-10-06", PlannedHours: 55, Email: "-", Phone: "-", Active: true, Color: "#EF4444"},
	}

	s.assignments = []models.Assignment{
		{ID: 1, ResourceID: 1, ProjectID: 1, Date: "2025-10-08", Type: models.TypeTravel, DurationHours: 8, Note: "Important client meeting", History: created("2025-10-07T10:00:00Z")},
		{ID: 2, ResourceID: 1, ProjectID: 2, Date: "2025-10-09", Type: models.TypeTravel, DurationHours: 8, History: created("2025-10-07T11:00:00Z")},
		{ID: 3, ResourceID: 1, ProjectID: 1, Date: "2025-10-10", Type: models.TypeTravel, DurationHours: 6, Note: "Ends early", History: []models.HistoryEntry{}},
		{ID: 4, ResourceID: 2, ProjectID: 3, Date: "2025-10-08", Type: models.TypeMaintenance, DurationHours: 4, History: []models.HistoryEntry{}},
		{ID: 5, ResourceID: 2, ProjectID: 3, Date: "2025-10-09", Type: models.TypeMaintenance, DurationHours: 8, History: []models.HistoryEntry{}},
		{ID: 6, ResourceID: 3, ProjectID: 1, Date: "2025-10-08", Type: models.TypeTravel, DurationHours: 8, History: []models.HistoryEntry{}},
		{ID: 7, ResourceID: 3, ProjectID: 4, Date: "2025-10-11", Type: models.TypeVacation, DurationHours: 8, Note: "Vacation", History: []models.HistoryEntry{}},
		{ID: 8, ResourceID: 4, ProjectID: 2, Date: "2025-10-08", Type: models.TypeTravel, DurationHours: 8, History: []models.HistoryEntry{}},
	}
}
