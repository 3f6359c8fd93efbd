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
	"github.com/planline/planboard/internal/store"
)

type ResourcesHandler struct {
	svc services.BoardService
}

func NewResourcesHandler(svc services.BoardService) *ResourcesHandler {
	return &ResourcesHandler{svc: svc}
}

func (h *ResourcesHandler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"
	items := h.svc.VisibleResources(r.URL.Query().Get("search"), activeOnly, sortSpecFromQuery(r))
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: items, Meta: &types.Meta{Count: len(items)}})
}

func (h *ResourcesHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: h.svc.ResourceStats()})
}

func (h *ResourcesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.ResourceCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}
	created := h.svc.CreateResource(models.Resource{
		Name:                req.Name,
		Kind:                models.ResourceKind(req.Kind),
		AvailabilityPercent: req.AvailabilityPercent,
		Tags:                store.ParseTags(req.Tags),
		Email:               req.Email,
		Phone:               req.Phone,
		PlannedHours:        req.PlannedHours,
		Active:              req.Active,
		Color:               req.Color,
	})
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: created})
}

func resourceID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil
}

// UpdateField sets one scalar field. Unknown ids are acknowledged without a
// mutation, mirroring the board's silent no-op rule.
func (h *ResourcesHandler) UpdateField(w http.ResponseWriter, r *http.Request) {
	id, ok := resourceID(r)
	if !ok {
		writeErrorStr(w, http.StatusBadRequest, "invalid resource id")
		return
	}
	var req types.ResourceFieldUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}
	updated, found := h.svc.UpdateResourceField(id, req.Field, req.Value)
	resp := types.APIResponse{Success: true}
	if found {
		resp.Data = updated
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ResourcesHandler) UpdateTags(w http.ResponseWriter, r *http.Request) {
	id, ok := resourceID(r)
	if !ok {
		writeErrorStr(w, http.StatusBadRequest, "invalid resource id")
		return
	}
	var req types.ResourceTagsUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	updated, found := h.svc.UpdateResourceTags(id, req.Tags)
	resp := types.APIResponse{Success: true}
	if found {
		resp.Data = updated
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ResourcesHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	id, ok := resourceID(r)
	if !ok {
		writeErrorStr(w, http.StatusBadRequest, "invalid resource id")
		return
	}
	updated, found := h.svc.ToggleResourceActive(id)
	resp := types.APIResponse{Success: true}
	if found {
		resp.Data = updated
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ResourcesHandler) SetColor(w http.ResponseWriter, r *http.Request) {
	id, ok := resourceID(r)
	if !ok {
		writeErrorStr(w, http.StatusBadRequest, "invalid resource id")
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
	h.svc.SetColor(models.AxisResource, id, req.Color)
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true})
}
