package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/planline/planboard/internal/api/types"
	"github.com/planline/planboard/internal/api/validators"
	"github.com/planline/planboard/internal/board"
	"github.com/planline/planboard/internal/models"
	"github.com/planline/planboard/internal/queue/tasks"
	"github.com/planline/planboard/pkg/logger"
)

// ExportHandler enqueues background export jobs.
type ExportHandler struct {
	client *asynq.Client
}

func NewExportHandler(client *asynq.Client) *ExportHandler {
	return &ExportHandler{client: client}
}

// Enqueue queues a board export and returns the job id the artifact will be
// named after.
func (h *ExportHandler) Enqueue(w http.ResponseWriter, r *http.Request) {
	var req types.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}

	jobID := uuid.NewString()
	task, err := tasks.NewExportTask(tasks.ExportPayload{
		JobID:  jobID,
		Anchor: req.Anchor,
		Preset: board.Preset(req.Preset),
		Axis:   models.Axis(req.Axis),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	info, err := h.client.EnqueueContext(r.Context(), task)
	if err != nil {
		logger.L().Error("enqueue export failed", zap.Error(err))
		writeErrorStr(w, http.StatusServiceUnavailable, "export queue unavailable")
		return
	}
	logger.L().Info("export enqueued", zap.String("job_id", jobID), zap.String("task_id", info.ID))
	writeJSON(w, http.StatusAccepted, types.APIResponse{Success: true, Data: map[string]string{"job_id": jobID}})
}
