package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/planline/planboard/internal/api/types"
	"github.com/planline/planboard/internal/board"
	"github.com/planline/planboard/internal/models"
	"github.com/planline/planboard/internal/services"
	"github.com/planline/planboard/internal/store"
)

func testService(t *testing.T) (services.BoardService, *store.Store) {
	t.Helper()
	st := store.New(
		store.WithActor("Current User"),
		store.WithNow(func() time.Time { return time.Date(2025, 10, 8, 9, 0, 0, 0, time.UTC) }),
		store.WithColorPick(func(n int) int { return 0 }),
	)
	return services.NewBoardService(st, nil, "Current User"), st
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) types.APIResponse {
	t.Helper()
	var resp types.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp
}

func TestWindowDefaultsToWeek(t *testing.T) {
	svc, _ := testService(t)
	h := NewBoardHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/board/window?anchor=2025-10-06", nil)
	rr := httptest.NewRecorder()
	h.Window(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeResponse(t, rr)
	require.True(t, resp.Success)
	require.Equal(t, 7, resp.Meta.Count)
}

func TestWindowRejectsUnknownPreset(t *testing.T) {
	svc, _ := testService(t)
	h := NewBoardHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/board/window?preset=quarter", nil)
	rr := httptest.NewRecorder()
	h.Window(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSelectEndpoint(t *testing.T) {
	svc, _ := testService(t)
	h := NewBoardHandler(svc)

	rr := postJSON(t, h.Select, "/api/v1/board/select", types.SelectRequest{
		Selection: []string{"1::2025-10-08"},
		CellID:    "2::2025-10-08",
		Modifier:  "additive",
	})
	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeResponse(t, rr)
	require.Equal(t, 2, resp.Meta.Count)
}

func TestCopyPasteRoundTrip(t *testing.T) {
	svc, _ := testService(t)
	h := NewBoardHandler(svc)

	p := svc.CreateProject("Warehouse Build")
	r1 := svc.CreateResource(models.Resource{Name: "Alice", Kind: models.KindPerson})
	_, err := svc.CreateAssignment(models.Assignment{ResourceID: r1.ID, ProjectID: p.ID, Date: "2025-10-08", Type: models.TypeTravel})
	require.NoError(t, err)

	rr := postJSON(t, h.Copy, "/api/v1/board/copy", types.CopyRequest{
		Selection: []string{board.CellID(r1.ID, "2025-10-08")},
		Axis:      "resource",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var copyResp struct {
		Data []board.ClipboardCell `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&copyResp))
	require.Len(t, copyResp.Data, 1)

	rr = postJSON(t, h.Paste, "/api/v1/board/paste", types.PasteRequest{
		Selection: []string{board.CellID(r1.ID, "2025-11-01"), board.CellID(r1.ID, "2025-11-02")},
		Clipboard: copyResp.Data,
		Axis:      "resource",
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	resp := decodeResponse(t, rr)
	require.Equal(t, 2, resp.Meta.Count)
}

func TestPasteEmptyClipboardIsBadRequest(t *testing.T) {
	svc, _ := testService(t)
	h := NewBoardHandler(svc)

	rr := postJSON(t, h.Paste, "/api/v1/board/paste", map[string]any{
		"selection": []string{"1::2025-10-08"},
		"clipboard": []any{},
		"axis":      "resource",
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDeleteCellsRequiresConfirm(t *testing.T) {
	svc, st := testService(t)
	h := NewBoardHandler(svc)

	p := svc.CreateProject("a")
	r := svc.CreateResource(models.Resource{Name: "Alice", Kind: models.KindPerson})
	_, err := svc.CreateAssignment(models.Assignment{ResourceID: r.ID, ProjectID: p.ID, Date: "2025-10-08"})
	require.NoError(t, err)

	sel := []string{board.CellID(r.ID, "2025-10-08")}

	rr := postJSON(t, h.DeleteCells, "/api/v1/board/delete", types.DeleteCellsRequest{
		Selection: sel, Axis: "resource", Confirm: false,
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Len(t, st.Assignments(), 1)

	rr = postJSON(t, h.DeleteCells, "/api/v1/board/delete", types.DeleteCellsRequest{
		Selection: sel, Axis: "resource", Confirm: true,
	})
	require.Equal(t, http.StatusOK, rr.Code)
	require.Empty(t, st.Assignments())
}

func TestDropSpanEndpoint(t *testing.T) {
	svc, st := testService(t)
	h := NewBoardHandler(svc)

	p := svc.CreateProject("a")
	r := svc.CreateResource(models.Resource{Name: "Alice", Kind: models.KindPerson})
	a, err := svc.CreateAssignment(models.Assignment{ResourceID: r.ID, ProjectID: p.ID, Date: "2025-10-08"})
	require.NoError(t, err)

	rr := postJSON(t, h.Drop, "/api/v1/board/drop", types.DropRequest{
		AssignmentID:   a.ID,
		TargetEntityID: r.ID,
		TargetDate:     "2025-10-11",
		Axis:           "resource",
		Span:           true,
	})
	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeResponse(t, rr)
	require.Equal(t, 4, resp.Meta.Count)
	require.Len(t, st.Assignments(), 4)
}

func TestSaveAcknowledges(t *testing.T) {
	svc, _ := testService(t)
	h := NewBoardHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/save", nil)
	rr := httptest.NewRecorder()
	h.Save(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
}
