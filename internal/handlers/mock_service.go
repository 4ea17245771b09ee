package handlers

import (
	"context"
	"io"

	"elevator_tracker/internal/models"
	"elevator_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockTripLog struct {
	logRec   models.TripRecord
	logErr   error
	lastLog  service.LogParams
	logCalls int

	undoOK   bool
	undoErr  error
	lastUndo int64

	recent    []models.TripRecord
	recentErr error
	lastLimit int
}

func (m *mockTripLog) Log(ctx context.Context, p service.LogParams) (models.TripRecord, error) {
	m.logCalls++
	m.lastLog = p
	return m.logRec, m.logErr
}

func (m *mockTripLog) Undo(ctx context.Context, id int64) (bool, error) {
	m.lastUndo = id
	return m.undoOK, m.undoErr
}

func (m *mockTripLog) Recent(ctx context.Context, limit int) ([]models.TripRecord, error) {
	m.lastLimit = limit
	return m.recent, m.recentErr
}

type mockStats struct {
	stats    models.UsageStats
	err      error
	lastOpts service.StatsOptions
}

func (m *mockStats) Usage(ctx context.Context, opts service.StatsOptions) (models.UsageStats, error) {
	m.lastOpts = opts
	return m.stats, m.err
}

type mockExport struct {
	body      string
	err       error
	lastScope service.DayScope
}

func (m *mockExport) WriteCSV(ctx context.Context, scope service.DayScope, w io.Writer) error {
	m.lastScope = scope
	if m.err != nil {
		return m.err
	}
	_, werr := io.WriteString(w, m.body)
	return werr
}

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
