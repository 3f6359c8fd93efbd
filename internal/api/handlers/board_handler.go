package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/planline/planboard/internal/api/types"
	"github.com/planline/planboard/internal/api/validators"
	"github.com/planline/planboard/internal/board"
	"github.com/planline/planboard/internal/models"
	"github.com/planline/planboard/internal/services"
)

// BoardHandler serves the grid itself: the date window, cell contents, and
// the selection, clipboard and drag operations.
type BoardHandler struct {
	svc services.BoardService
}

func NewBoardHandler(svc services.BoardService) *BoardHandler {
	return &BoardHandler{svc: svc}
}

// Window returns the day columns for an anchor date and preset. Preset
// defaults to week, anchor to today.
func (h *BoardHandler) Window(w http.ResponseWriter, r *http.Request) {
	preset := board.Preset(r.URL.Query().Get("preset"))
	if preset == "" {
		preset = board.PresetWeek
	}
	days, err := h.svc.DateWindow(r.URL.Query().Get("anchor"), preset)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: days, Meta: &types.Meta{Count: len(days)}})
}

// Cells returns the assignments occupying one cell.
func (h *BoardHandler) Cells(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	axis := models.Axis(q.Get("axis"))
	if !axis.Valid() {
		writeErrorStr(w, http.StatusBadRequest, "unknown axis")
		return
	}
	entityID, err := strconv.Atoi(q.Get("entity_id"))
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid entity id")
		return
	}
	date := q.Get("date")
	if date == "" {
		writeErrorStr(w, http.StatusBadRequest, "date is required")
		return
	}
	items := h.svc.CellAssignments(axis, entityID, date)
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: items, Meta: &types.Meta{Count: len(items)}})
}

func (h *BoardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: h.svc.Summary()})
}

func (h *BoardHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req types.SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}
	sel := h.svc.Select(board.Selection(req.Selection), req.CellID, board.Modifier(req.Modifier))
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: sel, Meta: &types.Meta{Count: len(sel)}})
}

// Copy snapshots the selected cells into a clipboard payload the client holds
// on to and sends back with a later paste.
func (h *BoardHandler) Copy(w http.ResponseWriter, r *http.Request) {
	var req types.CopyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}
	cells := h.svc.CopySelection(board.Selection(req.Selection), models.Axis(req.Axis))
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: cells, Meta: &types.Meta{Count: len(cells)}})
}

func (h *BoardHandler) CopyProject(w http.ResponseWriter, r *http.Request) {
	var req types.CopyProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}
	cells := h.svc.CopyProjectAssignments(req.ProjectID)
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: cells, Meta: &types.Meta{Count: len(cells)}})
}

func (h *BoardHandler) Paste(w http.ResponseWriter, r *http.Request) {
	var req types.PasteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := h.svc.Paste(board.Selection(req.Selection), req.Clipboard, models.Axis(req.Axis))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: created, Meta: &types.Meta{Count: len(created)}})
}

// DeleteCells clears every assignment in the selected cells. The request must
// carry confirm=true; an unconfirmed request is rejected without mutating.
func (h *BoardHandler) DeleteCells(w http.ResponseWriter, r *http.Request) {
	var req types.DeleteCellsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}
	if !req.Confirm {
		writeErrorStr(w, http.StatusBadRequest, "bulk delete requires confirmation")
		return
	}
	removed := h.svc.DeleteCells(board.Selection(req.Selection), models.Axis(req.Axis))
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: map[string]int{"removed": removed}})
}

// Drop resolves a drag release. Without span it is a plain move; with span it
// fills every day between the source and target dates.
func (h *BoardHandler) Drop(w http.ResponseWriter, r *http.Request) {
	var req types.DropRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}
	affected, err := h.svc.Drop(req.AssignmentID, req.TargetEntityID, req.TargetDate, models.Axis(req.Axis), req.Span)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: affected, Meta: &types.Meta{Count: len(affected)}})
}

// Save acknowledges a save request. Board state lives in memory only, so
// there is nothing to flush; the endpoint exists for client symmetry.
func (h *BoardHandler) Save(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: map[string]string{"status": "saved"}})
}
