package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.Use(RequestIDMiddleware())
	adminOnly := APIKeyAuthMiddleware(h.cfg, h.logger)

	api.POST("/tracking/login", h.login)

	tourists := api.Group("/tourists")
	{
		tourists.POST("", adminOnly, h.createTourist)
		tourists.GET("/locations", h.listLocations)
		tourists.GET("/by-username", h.getTouristByUsername)
		tourists.PUT("/:id/location", h.updateLocation)
	}

	alerts := api.Group("/alerts")
	{
		alerts.POST("", h.submitAlert)
		alerts.GET("", h.listAlerts)
	}

	incidents := api.Group("/incidents")
	{
		incidents.POST("", adminOnly, h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
