package handler

import (
	"storefront/internal/app/metrics"
	"storefront/internal/app/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes регистрирует JSON API и служебные маршруты
func (h *Handler) RegisterAPIRoutes(router *gin.Engine) {
	api := router.Group("/api")

	// ============ Состояние просмотра (нужна cookie сессии) ============
	state := api.Group("")
	state.Use(middleware.SessionMiddleware(h.Config.Session))
	{
		state.GET("/state", h.GetState)      // GET снимок состояния
		state.POST("/actions", h.PostAction) // POST действие пользователя
	}

	// ============ Контент (публичный, без сессии) ============
	contentGroup := api.Group("/content")
	{
		contentGroup.GET("/features", h.GetFeatures)
		contentGroup.GET("/audiences", h.GetAudiences)
		contentGroup.GET("/tiers", h.GetTiers)
		contentGroup.GET("/security", h.GetSecurity)
	}

	// Расчет стоимости без сессии
	api.GET("/quote", h.GetQuote)

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
	router.GET("/metrics", gin.WrapH(metrics.GetPrometheusHandler()))
}
