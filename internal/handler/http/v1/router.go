package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты для работы с инцидентами
	incidents := api.Group("/incidents")
	{
		incidents.POST("", h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.POST("/:id/upvote", h.upvoteIncident)
		incidents.POST("/:id/comments", h.createComment)
		incidents.GET("/:id/comments", h.listComments)
	}

	// Заявки о пропавших детях
	api.POST("/police-alerts", h.createPoliceAlert)

	// Анализ маршрутов
	api.POST("/routes/analyze", h.analyzeRoute)

	// Поиск и выбор адресов
	places := api.Group("/places")
	{
		places.GET("/autocomplete", h.placesAutocomplete)
		places.GET("/:place_id", h.placeDetails)
	}

	// Живой поиск инцидентов
	api.POST("/live/search", h.liveSearch)

	// Аналитика
	api.GET("/analytics/trends", h.analyzeTrends)

	// Синтез речи
	api.POST("/speech", h.speak)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
