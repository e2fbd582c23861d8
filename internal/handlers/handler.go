package handlers

import (
	"net/http"

	"controlling_heating/internal/logger"
	"controlling_heating/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	metrics  http.Handler
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log, metrics: promhttp.Handler()}
}

// WithMetrics replaces the handler serving /metrics.
func (h *Handler) WithMetrics(m http.Handler) *Handler {
	h.metrics = m
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)
	router.GET("/metrics", gin.WrapH(h.metrics))

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.identityMiddleware)
	{
		h.registerHeatingRoutes(api)
		api.GET("/logs", h.getLogs)
		// Status stream (HTTP upgrade) on the same port
		api.GET("/ws", h.wsConnect)
	}
}

func (h *Handler) registerHeatingRoutes(api *gin.RouterGroup) {
	heating := api.Group("/heating")
	{
		heating.GET("", h.statusAll)

		systems := heating.Group("/systems")
		systems.GET("", h.listSystems)
		systems.POST("", h.createSystem)
		systems.PUT("/:id", h.updateSystem)
		systems.POST("/:id/start", h.startSystem)
		systems.POST("/:id/stop", h.stopSystem)
		systems.GET("/:id/status", h.systemStatus)
		// ?on=true|false sets the program; without it the program is toggled
		systems.POST("/:id/program", h.setProgram)
		systems.POST("/:id/advance", h.startAdvance)
		systems.DELETE("/:id/advance", h.cancelAdvance)

		periods := heating.Group("/periods")
		periods.GET("", h.listPeriods)
		periods.POST("", h.createPeriod)
		periods.PUT("/:id", h.updatePeriod)
		periods.DELETE("/:id", h.deletePeriod)
	}
}
