package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/planline/planboard/internal/api/types"
	"github.com/planline/planboard/internal/api/validators"
	"github.com/planline/planboard/internal/board"
	"github.com/planline/planboard/internal/models"
	"github.com/planline/planboard/internal/services"
)

type ProjectsHandler struct {
	svc services.BoardService
}

func NewProjectsHandler(svc services.BoardService) *ProjectsHandler {
	return &ProjectsHandler{svc: svc}
}

func sortSpecFromQuery(r *http.Request) board.SortSpec {
	spec := board.SortSpec{Key: r.URL.Query().Get("sort"), Dir: r.URL.Query().Get("dir")}
	if spec.Key == "" {
		spec.Key = "name"
	}
	if spec.Dir == "" {
		spec.Dir = "asc"
	}
	return spec
}

// List returns the filtered, sorted projects. When a preset is supplied the
// list is additionally narrowed to projects overlapping that window.
func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	spec := sortSpecFromQuery(r)

	if preset := r.URL.Query().Get("preset"); preset != "" {
		items, err := h.svc.ProjectsInWindow(search, spec, r.URL.Query().Get("anchor"), board.Preset(preset))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: items, Meta: &types.Meta{Count: len(items)}})
		return
	}

	items := h.svc.VisibleProjects(search, spec)
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: items, Meta: &types.Meta{Count: len(items)}})
}

func (h *ProjectsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.ProjectCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	p := h.svc.CreateProject(req.Name)
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: p})
}

// SetColor updates the project's display hint. An unknown id is a no-op and
// still acknowledged.
func (h *ProjectsHandler) SetColor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid project id")
		return
	}
	var req types.ColorUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}
	h.svc.SetColor(models.AxisProject, id, req.Color)
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true})
}
