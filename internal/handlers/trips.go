package handlers

import (
	"net/http"
	"strconv"

	"elevator_tracker/internal/models"
	"elevator_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK = "ok"

	errLogTrip     = "failed to log trip"
	errUndoTrip    = "failed to delete trip"
	errRecentTrips = "failed to load recent trips"
	errInvalidID   = "invalid trip id"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// respondServiceError maps validation failures to 400 with the human-readable
// reason; anything else is a server-side failure.
func (h *Handler) respondServiceError(c *gin.Context, userMsg, logKey string, err error, kv ...interface{}) {
	if models.IsValidation(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.logAndJSONError(c, http.StatusInternalServerError, userMsg, logKey, err, kv...)
}

// Request DTO for logging a trip.
type tripRequest struct {
	Elevator  string `json:"elevator" binding:"required"`
	FromFloor int    `json:"from_floor"`
	ToFloor   int    `json:"to_floor"`
	Day       string `json:"day,omitempty"` // optional backdate, "YYYY-MM-DD"
}

// LogTripRequest is an exported model for Swagger docs of the logTrip payload.
type LogTripRequest struct {
	// Elevator label, one of the configured set
	Elevator string `json:"elevator" example:"A"`
	// Origin floor
	FromFloor int `json:"from_floor" example:"0"`
	// Destination floor
	ToFloor int `json:"to_floor" example:"7"`
	// Optional backdate in YYYY-MM-DD; defaults to today (UTC)
	Day string `json:"day,omitempty" example:"2026-08-30"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Log a trip
// @Description  Records one elevator trip; day defaults to today (UTC)
// @Tags         trips
// @Accept       json
// @Produce      json
// @Param        body  body   LogTripRequest  true  "Trip payload"
// @Success      201   {object}  models.TripRecord
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/trips [post]
func (h *Handler) logTrip(c *gin.Context) {
	var req tripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: " + err.Error()})
		return
	}
	ctx := c.Request.Context()
	rec, err := h.services.TripLog.Log(ctx, service.LogParams{
		Elevator:  req.Elevator,
		FromFloor: req.FromFloor,
		ToFloor:   req.ToFloor,
		Day:       req.Day,
	})
	if err != nil {
		h.respondServiceError(c, errLogTrip, "trip_log_failed", err, "elevator", req.Elevator)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// @Summary      Undo a trip
// @Description  Deletes one trip by id; deleting an absent id is not an error
// @Tags         trips
// @Produce      json
// @Param        id  path  int  true  "Trip id"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/trips/{id} [delete]
func (h *Handler) undoTrip(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidID})
		return
	}
	ctx := c.Request.Context()
	deleted, err := h.services.TripLog.Undo(ctx, id)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errUndoTrip, "trip_undo_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// @Summary      Recent trips
// @Tags         trips
// @Produce      json
// @Param        limit  query  int  false  "Max records to return (default 20)"
// @Success      200  {object}  map[string]interface{}  "count, trips"
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/trips/recent [get]
func (h *Handler) recentTrips(c *gin.Context) {
	limit := 0
	if qs := c.Query("limit"); qs != "" {
		n, err := strconv.Atoi(qs)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}
	ctx := c.Request.Context()
	trips, err := h.services.TripLog.Recent(ctx, limit)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errRecentTrips, "trips_recent_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(trips),
		"trips": trips,
	})
}
