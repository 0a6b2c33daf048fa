package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"saunactl/internal/logger"
	"saunactl/internal/service"
)

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	metrics  http.Handler // prometheus scrape endpoint, optional
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, metrics http.Handler) *Handler {
	return &Handler{services: services, log: log, metrics: metrics}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Legacy device surface: the contracts the original firmware exposed,
	// consumed by the embedded web page. Commands are GETs on purpose.
	router.GET("/", h.index)
	router.GET("/on", h.turnOn)
	router.GET("/off", h.turnOff)
	router.GET("/addtime", h.addTime)
	router.GET("/status", h.status)

	// Versioned API endpoints
	h.registerAPIRoutes(router)

	// Snapshot stream (HTTP upgrade) — same port
	router.GET("/ws", h.wsConnect)

	if h.metrics != nil {
		router.GET("/metrics", gin.WrapH(h.metrics))
	}

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		sauna := api.Group("/sauna")
		{
			sauna.GET("/state", h.getState)
		}
		logs := api.Group("/logs")
		{
			logs.GET("/", h.getLogs)
		}
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
