package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"elevator_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	// allScopeValue in the day query selects the all-time scope.
	allScopeValue = "all"

	errGetStats  = "failed to compute stats"
	errExportCSV = "failed to export trips"

	csvContentType = "text/csv; charset=utf-8"
)

// scopeFromQuery resolves the optional day query parameter: absent means
// today, "all" means all time, anything else must be a YYYY-MM-DD date.
func scopeFromQuery(raw string) (service.DayScope, error) {
	if raw == allScopeValue {
		return service.AllTime(), nil
	}
	day, err := service.ResolveDay(raw)
	if err != nil {
		return service.DayScope{}, err
	}
	return service.ForDay(day), nil
}

// @Summary      Usage statistics
// @Description  Totals per elevator, most-used ranking and top routes with per-route elevator distribution
// @Tags         stats
// @Produce      json
// @Param        day    query  string  false  "Day (YYYY-MM-DD), 'all' for all time; default today"  example(2026-08-30)
// @Param        full   query  bool    false  "Zero-fill totals over the full configured elevator set"
// @Param        limit  query  int     false  "Top-routes cutoff (default 8)"
// @Success      200  {object}  models.UsageStats
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	scope, err := scopeFromQuery(c.Query("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit := 0
	if qs := c.Query("limit"); qs != "" {
		n, err := strconv.Atoi(qs)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	full := false
	if qs := c.Query("full"); qs != "" {
		b, err := strconv.ParseBool(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid full flag"})
			return
		}
		full = b
	}

	ctx := c.Request.Context()
	stats, err := h.services.Stats.Usage(ctx, service.StatsOptions{
		Scope:      scope,
		FullLabels: full,
		RouteLimit: limit,
	})
	if err != nil {
		h.respondServiceError(c, errGetStats, "stats_failed", err, "day", c.Query("day"))
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary      Export trips as CSV
// @Tags         stats
// @Produce      text/csv
// @Param        day  query  string  false  "Day (YYYY-MM-DD), 'all' for all time; default today"
// @Success      200  {string}  string  "CSV document"
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/export.csv [get]
func (h *Handler) exportCSV(c *gin.Context) {
	scope, err := scopeFromQuery(c.Query("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Buffer the document so a storage failure can still produce a 500
	// instead of a truncated body.
	var buf bytes.Buffer
	ctx := c.Request.Context()
	if err := h.services.Export.WriteCSV(ctx, scope, &buf); err != nil {
		h.respondServiceError(c, errExportCSV, "export_failed", err, "day", c.Query("day"))
		return
	}

	name := allScopeValue
	if !scope.All {
		name = scope.Day
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "elevators_"+name+".csv"))
	c.Data(http.StatusOK, csvContentType, buf.Bytes())
}
