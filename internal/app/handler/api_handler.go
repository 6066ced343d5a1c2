package handler

import (
	"errors"
	"net/http"

	"storefront/internal/app/content"
	"storefront/internal/app/dto"
	"storefront/internal/app/metrics"

	"github.com/gin-gonic/gin"
)

// ============ Вспомогательные функции ============

func (h *Handler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func (h *Handler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

// ============ Состояние просмотра ============

// GetState возвращает снимок состояния сессии
// @Summary Текущее состояние просмотра
// @Tags View
// @Produce json
// @Success 200 {object} dto.StateResponse
// @Router /api/state [get]
func (h *Handler) GetState(c *gin.Context) {
	s, err := h.loadState(c)
	if err != nil {
		h.errorHandler(c, statusFor(err), err)
		return
	}

	locale := h.Locales.Match(c.GetHeader("Accept-Language"))
	c.JSON(http.StatusOK, dto.StateResponse{
		Applied:  false,
		Snapshot: h.Controller.Snapshot(s, locale),
	})
}

// PostAction применяет действие пользователя
// @Summary Применение действия
// @Description navigate, set_license_count или toggle_mobile_menu
// @Tags View
// @Accept json
// @Produce json
// @Param action body dto.ActionRequest true "Действие"
// @Success 200 {object} dto.StateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/actions [post]
func (h *Handler) PostAction(c *gin.Context) {
	var req dto.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid action: "+err.Error())
		return
	}

	next, applied, err := h.applyAction(c, req.Action())
	if err != nil {
		h.errorHandler(c, statusFor(err), err)
		return
	}

	locale := h.Locales.Match(c.GetHeader("Accept-Language"))
	c.JSON(http.StatusOK, dto.StateResponse{
		Applied:  applied,
		Snapshot: h.Controller.Snapshot(next, locale),
	})
}

// ============ Контент ============

// @Summary Список возможностей
// @Tags Content
// @Produce json
// @Success 200 {object} dto.FeaturesResponse
// @Router /api/content/features [get]
func (h *Handler) GetFeatures(c *gin.Context) {
	features := h.Controller.Content().Features()
	c.JSON(http.StatusOK, dto.FeaturesResponse{Features: features, Total: len(features)})
}

// @Summary Целевые аудитории
// @Tags Content
// @Produce json
// @Success 200 {object} dto.AudiencesResponse
// @Router /api/content/audiences [get]
func (h *Handler) GetAudiences(c *gin.Context) {
	list := h.Controller.Content().TargetAudiences()
	c.JSON(http.StatusOK, dto.AudiencesResponse{Audiences: list, Total: len(list)})
}

// @Summary Тарифы
// @Tags Content
// @Produce json
// @Success 200 {object} dto.TiersResponse
// @Router /api/content/tiers [get]
func (h *Handler) GetTiers(c *gin.Context) {
	tiers := h.Controller.Content().PricingTiers()
	c.JSON(http.StatusOK, dto.TiersResponse{Tiers: tiers, Total: len(tiers)})
}

// @Summary Материалы страницы безопасности
// @Tags Content
// @Produce json
// @Success 200 {object} dto.SecurityResponse
// @Router /api/content/security [get]
func (h *Handler) GetSecurity(c *gin.Context) {
	store := h.Controller.Content()
	c.JSON(http.StatusOK, dto.SecurityResponse{
		Highlights:      store.SecurityHighlights(),
		Policies:        store.SecurityPolicies(),
		PasswordTips:    store.PasswordTips(),
		LoginSafeguards: store.LoginSafeguards(),
		TeamTips:        store.TeamTips(),
		Contact:         store.Contact(),
	})
}

// ============ Расчет стоимости ============

// GetQuote считает стоимость тарифа без участия сессии
// @Summary Расчет стоимости
// @Tags Pricing
// @Produce json
// @Param tier query string true "Название тарифа"
// @Param licenses query int false "Число лицензий"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/quote [get]
func (h *Handler) GetQuote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid quote request: "+err.Error())
		return
	}
	if c.Query("licenses") == "" {
		req.Licenses = int(h.Controller.Initial().Licenses)
	}

	locale := h.Locales.Match(c.GetHeader("Accept-Language"))
	quote, err := h.Controller.Quote(req.Tier, req.Licenses, locale)
	if errors.Is(err, content.ErrTierNotFound) {
		h.errorResponse(c, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		h.errorHandler(c, http.StatusInternalServerError, err)
		return
	}
	metrics.RecordQuote(quote.Tier)

	h.successResponse(c, http.StatusOK, "", dto.QuoteResponse{
		Quote:     quote,
		Requested: req.Licenses,
		Clamped:   int(quote.Licenses) != req.Licenses,
	})
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *Handler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}
