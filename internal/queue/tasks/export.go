// Package tasks holds the asynq task handlers for background board jobs.
package tasks

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/planline/planboard/internal/board"
	"github.com/planline/planboard/internal/models"
	appErr "github.com/planline/planboard/pkg/errors"
	"github.com/planline/planboard/pkg/logger"
)

// TypeBoardExport is the task type for rendering a board window to a file.
const TypeBoardExport = "board:export"

// ExportPayload describes one export job. The job reads a snapshot of the
// board and never mutates it.
type ExportPayload struct {
	JobID  string       `json:"job_id"`
	Anchor string       `json:"anchor"`
	Preset board.Preset `json:"preset"`
	Axis   models.Axis  `json:"axis"`
}

// NewExportTask builds the asynq task for an export job.
func NewExportTask(p ExportPayload) (*asynq.Task, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "marshal export payload failed")
	}
	return asynq.NewTask(TypeBoardExport, b), nil
}

// BoardReader is the read-only slice of the board the export needs.
type BoardReader interface {
	Snapshot() ([]models.Project, []models.Resource, []models.Assignment)
}

// ExportTaskHandler renders board windows into CSV artifacts.
type ExportTaskHandler struct {
	reader    BoardReader
	exportDir string
	now       func() time.Time
}

// NewExportTaskHandler returns a handler writing artifacts under exportDir.
func NewExportTaskHandler(reader BoardReader, exportDir string) *ExportTaskHandler {
	return &ExportTaskHandler{reader: reader, exportDir: exportDir, now: time.Now}
}

// HandleExport renders the requested window to <exportDir>/board-<job>.csv.
// Rows are the axis entities, columns the window days, cells the occupying
// assignments.
func (h *ExportTaskHandler) HandleExport(ctx context.Context, t *asynq.Task) error {
	var p ExportPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		logger.L().Error("invalid export task payload", zap.Error(err))
		return err
	}
	if !p.Axis.Valid() {
		return appErr.New(appErr.CodeInvalid, "unknown export axis")
	}

	anchor := h.now()
	if p.Anchor != "" {
		parsed, err := time.Parse(board.DateLayout, p.Anchor)
		if err != nil {
			return appErr.Wrap(err, appErr.CodeInvalid, "invalid export anchor")
		}
		anchor = parsed
	}
	window := board.Window(anchor, p.Preset, h.now().Format(board.DateLayout))
	if len(window) == 0 {
		return appErr.New(appErr.CodeInvalid, "unknown export preset")
	}

	logger.L().Info("handling export task", zap.String("job_id", p.JobID), zap.String("axis", string(p.Axis)))

	projects, resources, assignments := h.reader.Snapshot()

	records := [][]string{exportHeader(window)}
	if p.Axis == models.AxisProject {
		for _, proj := range board.ProjectsInWindow(projects, window) {
			records = append(records, exportRow(proj.Name, proj.ID, window, assignments, p.Axis))
		}
	} else {
		for _, res := range resources {
			records = append(records, exportRow(res.Name, res.ID, window, assignments, p.Axis))
		}
	}

	path := filepath.Join(h.exportDir, fmt.Sprintf("board-%s.csv", p.JobID))
	f, err := os.Create(path)
	if err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "create export file failed")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return appErr.Wrap(err, appErr.CodeInternal, "write export file failed")
	}

	logger.L().Info("export written", zap.String("job_id", p.JobID), zap.String("path", path))
	return nil
}

func exportHeader(window []board.Day) []string {
	header := make([]string, 0, len(window)+1)
	header = append(header, "entity")
	for _, d := range window {
		header = append(header, d.Date)
	}
	return header
}

func exportRow(name string, entityID int, window []board.Day, assignments []models.Assignment, axis models.Axis) []string {
	row := make([]string, 0, len(window)+1)
	row = append(row, name)
	for _, d := range window {
		cells := board.CellAssignments(assignments, entityID, d.Date, axis)
		labels := make([]string, 0, len(cells))
		for _, a := range cells {
			labels = append(labels, fmt.Sprintf("%s (%.0fh)", a.Type, a.DurationHours))
		}
		row = append(row, strings.Join(labels, "; "))
	}
	return row
}
