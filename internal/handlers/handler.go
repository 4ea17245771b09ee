package handlers

import (
	"elevator_tracker/internal/logger"
	"elevator_tracker/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Versioned API endpoints
	h.registerAPIRoutes(router)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		h.registerTripRoutes(api)
		h.registerStatsRoutes(api)
	}
}

func (h *Handler) registerTripRoutes(api *gin.RouterGroup) {
	trips := api.Group("/trips")
	{
		trips.POST("", h.logTrip)
		trips.DELETE("/:id", h.undoTrip)
		trips.GET("/recent", h.recentTrips)
	}
}

func (h *Handler) registerStatsRoutes(api *gin.RouterGroup) {
	api.GET("/stats", h.getStats)
	api.GET("/export.csv", h.exportCSV)
}
