package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"storefront/internal/app/config"
	"storefront/internal/app/metrics"
	"storefront/internal/app/middleware"
	"storefront/internal/app/session"
	"storefront/internal/app/storage"
	"storefront/internal/app/view"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Controller *view.Controller
	Sessions   session.Store
	Assets     storage.Assets
	Config     *config.Config
	Locales    *Locales
}

func NewHandler(c *view.Controller, s session.Store, a storage.Assets, cfg *config.Config) *Handler {
	return &Handler{
		Controller: c,
		Sessions:   s,
		Assets:     a,
		Config:     cfg,
		Locales:    NewLocales(cfg.Site.Locales),
	}
}

// Регистрация маршрутов страницы
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	site := router.Group("")
	site.Use(middleware.SessionMiddleware(h.Config.Session))
	{
		// GET маршруты
		site.GET("/", h.GetPage)

		// POST маршруты, по одному на действие пользователя
		site.POST("/navigate", h.PostNavigate)
		site.POST("/menu", h.PostMenu)
		site.POST("/licenses", h.PostLicenses)
	}
}

// Централизованная обработка ошибок
func (h *Handler) errorHandler(ctx *gin.Context, errorStatusCode int, err error) {
	middleware.Logger(ctx).Error(err.Error())
	ctx.JSON(errorStatusCode, gin.H{
		"status":      "error",
		"description": err.Error(),
	})
}

// loadState возвращает состояние сессии; новая сессия начинается с начального состояния
func (h *Handler) loadState(ctx *gin.Context) (view.State, error) {
	id := middleware.GetSessionID(ctx)
	s, err := h.Sessions.Get(ctx.Request.Context(), id)
	if errors.Is(err, session.ErrNotFound) {
		return h.Controller.Initial(), nil
	}
	if err != nil {
		return view.State{}, fmt.Errorf("load session %s: %w", id, err)
	}
	return h.Controller.Normalize(s), nil
}

// applyAction применяет действие к состоянию сессии и учитывает его в метриках
func (h *Handler) applyAction(ctx *gin.Context, a view.Action) (view.State, bool, error) {
	id := middleware.GetSessionID(ctx)

	applied := false
	next, err := h.Sessions.Update(ctx.Request.Context(), id, h.Controller.Initial(), func(s *view.State) {
		var st view.State
		st, applied = h.Controller.Apply(h.Controller.Normalize(*s), a)
		*s = st
	})
	if err != nil {
		return view.State{}, false, fmt.Errorf("update session %s: %w", id, err)
	}

	switch a.Type {
	case view.ActionNavigate:
		metrics.RecordNavigation(a.Page, applied)
	case view.ActionSetLicenseCount:
		metrics.RecordLicenseUpdate(a.Licenses, int(next.Licenses))
	case view.ActionToggleMobileMenu:
		metrics.RecordMenuToggle()
	}

	middleware.Logger(ctx).WithFields(logrus.Fields{
		"action":  a.Type,
		"applied": applied,
		"page":    next.Nav.Current,
		"menu":    next.Nav.MenuOpen,
	}).Debug("view action")

	return next, applied, nil
}

func (h *Handler) assetURL(ctx context.Context, name string) string {
	return h.Assets.URL(ctx, name)
}

func statusFor(err error) int {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
