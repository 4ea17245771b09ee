package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"elevator_tracker/internal/models"
	"elevator_tracker/internal/service"
)

func TestStatsHandler_DayScopeAndOptions(t *testing.T) {
	st := &mockStats{stats: models.UsageStats{
		Totals:       []models.ElevatorTotal{{Elevator: "A", Count: 2}},
		TopElevators: []models.ElevatorTotal{{Elevator: "A", Count: 2}},
	}}
	s := &service.Service{Stats: st}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats?day=2026-08-30&full=true&limit=5", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("stats status=%d, body=%s", w.Code, w.Body.String())
	}
	if st.lastOpts.Scope.All || st.lastOpts.Scope.Day != "2026-08-30" {
		t.Fatalf("wrong scope: %+v", st.lastOpts.Scope)
	}
	if !st.lastOpts.FullLabels || st.lastOpts.RouteLimit != 5 {
		t.Fatalf("options not forwarded: %+v", st.lastOpts)
	}

	var got models.UsageStats
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal stats: %v", err)
	}
	if len(got.Totals) != 1 || got.Totals[0].Elevator != "A" {
		t.Fatalf("unexpected stats body: %s", w.Body.String())
	}
}

func TestStatsHandler_AllTimeScope(t *testing.T) {
	st := &mockStats{}
	s := &service.Service{Stats: st}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats?day=all", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("stats status=%d", w.Code)
	}
	if !st.lastOpts.Scope.All {
		t.Fatalf("expected all-time scope, got %+v", st.lastOpts.Scope)
	}
}

func TestStatsHandler_FullFlagVariants(t *testing.T) {
	st := &mockStats{}
	s := &service.Service{Stats: st}
	r := newTestRouter(s)

	// ParseBool spellings all work
	for _, q := range []string{"full=1", "full=True", "full=true"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/stats?"+q, nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: status=%d", q, w.Code)
		}
		if !st.lastOpts.FullLabels {
			t.Fatalf("%s: full flag not honored", q)
		}
	}

	// garbage is a client error, not silently false
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats?full=yes-please", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on bad full flag, got %d", w.Code)
	}
}

func TestStatsHandler_MalformedDayIs400(t *testing.T) {
	st := &mockStats{}
	s := &service.Service{Stats: st}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats?day=not-a-day", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestStatsHandler_ServiceErrorIs500(t *testing.T) {
	st := &mockStats{err: errors.New("db down")}
	s := &service.Service{Stats: st}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestExportHandler_Success(t *testing.T) {
	ex := &mockExport{body: "id,occurred_at,day,elevator,from_floor,to_floor\n1,2026-08-30T09:00:00Z,2026-08-30,A,0,7\n"}
	s := &service.Service{Export: ex}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/export.csv?day=2026-08-30", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("export status=%d, body=%s", w.Code, w.Body.String())
	}
	if ex.lastScope.All || ex.lastScope.Day != "2026-08-30" {
		t.Fatalf("wrong scope: %+v", ex.lastScope)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "elevators_2026-08-30.csv") {
		t.Fatalf("unexpected disposition %q", cd)
	}
	if !strings.HasPrefix(w.Body.String(), "id,occurred_at,day") {
		t.Fatalf("body missing header row: %q", w.Body.String())
	}
}

func TestExportHandler_AllTimeFilename(t *testing.T) {
	ex := &mockExport{body: "id,occurred_at,day,elevator,from_floor,to_floor\n"}
	s := &service.Service{Export: ex}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/export.csv?day=all", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("export status=%d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "elevators_all.csv") {
		t.Fatalf("unexpected disposition %q", cd)
	}
}

func TestExportHandler_StorageFailureIs500(t *testing.T) {
	ex := &mockExport{err: errors.New("disk gone")}
	s := &service.Service{Export: ex}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/export.csv", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d body=%s", w.Code, w.Body.String())
	}
}
