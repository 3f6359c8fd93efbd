package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/planline/planboard/internal/api/types"
	"github.com/planline/planboard/internal/api/validators"
	"github.com/planline/planboard/internal/models"
	"github.com/planline/planboard/internal/services"
)

type AssignmentsHandler struct {
	svc services.BoardService
}

func NewAssignmentsHandler(svc services.BoardService) *AssignmentsHandler {
	return &AssignmentsHandler{svc: svc}
}

func (h *AssignmentsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.AssignmentCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}
	kind := models.AssignmentType(req.Type)
	if kind == "" {
		kind = models.TypeTravel
	}
	duration := req.DurationHours
	if duration == 0 {
		duration = 8
	}
	created, err := h.svc.CreateAssignment(models.Assignment{
		ResourceID:    req.ResourceID,
		ProjectID:     req.ProjectID,
		Date:          req.Date,
		Type:          kind,
		DurationHours: duration,
		Note:          req.Note,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: created})
}

// Delete removes a single assignment. The confirmation dialog lives in the
// client; the operation here is unconditional, and an unknown id is still
// acknowledged.
func (h *AssignmentsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid assignment id")
		return
	}
	deleted := h.svc.DeleteAssignment(id)
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: map[string]bool{"deleted": deleted}})
}

func (h *AssignmentsHandler) Move(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid assignment id")
		return
	}
	var req types.AssignmentMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}
	moved, found := h.svc.MoveAssignment(id, req.Date, req.EntityID, models.Axis(req.Axis))
	resp := types.APIResponse{Success: true}
	if found {
		resp.Data = moved
	}
	writeJSON(w, http.StatusOK, resp)
}
