package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check без аутентификации
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))

	// Диалог с компаньоном
	protected.POST("/companion/chat", h.companionChat)

	// Безопасные зоны
	protected.GET("/safe-zones", h.listSafeZones)

	// Экстренные события
	protected.POST("/emergency", h.triggerEmergency)
	emergencies := protected.Group("/emergencies")
	{
		emergencies.GET("/:id", h.getEmergency)
		emergencies.PATCH("/:id/resolve", h.resolveEmergency)
	}

	// Обновление местоположения
	protected.POST("/location/update", h.updateLocation)

	// Профили безопасности (онбординг)
	profiles := protected.Group("/profiles")
	{
		profiles.POST("", h.createProfile)
		profiles.GET("/:id", h.getProfile)
	}
}
