package handler

import (
	"net/http"
	"strconv"
	"time"

	"storefront/internal/app/middleware"
	"storefront/internal/app/navigation"
	"storefront/internal/app/storage"
	"storefront/internal/app/view"
	"storefront/internal/app/views"

	"github.com/gin-gonic/gin"
)

// GetPage отрисовывает текущую страницу сессии
func (h *Handler) GetPage(ctx *gin.Context) {
	s, err := h.loadState(ctx)
	if err != nil {
		h.errorHandler(ctx, statusFor(err), err)
		return
	}

	locale := h.Locales.Match(ctx.GetHeader("Accept-Language"))
	reqCtx := ctx.Request.Context()

	ctx.Render(http.StatusOK, views.HTML{Node: views.Page(views.PageData{
		Snapshot:     h.Controller.Snapshot(s, locale),
		Content:      h.Controller.Content(),
		LoginURL:     h.Config.Site.LoginURL,
		ContactEmail: h.Config.Site.ContactEmail,
		LogoURL:      h.assetURL(reqCtx, storage.AssetLogo),
		TeamHeroURL:  h.assetURL(reqCtx, storage.AssetTeamHero),
		Year:         time.Now().Year(),
	})})
}

// PostNavigate - действие navigate(page) из формы
func (h *Handler) PostNavigate(ctx *gin.Context) {
	h.postAction(ctx, view.Navigate(navigation.Page(ctx.PostForm("page"))))
}

// PostMenu - действие toggleMobileMenu()
func (h *Handler) PostMenu(ctx *gin.Context) {
	h.postAction(ctx, view.ToggleMobileMenu())
}

// PostLicenses - действие setLicenseCount(n). Нечисловое значение игнорируется
func (h *Handler) PostLicenses(ctx *gin.Context) {
	raw := ctx.PostForm("licenses")
	n, err := strconv.Atoi(raw)
	if err != nil {
		middleware.Logger(ctx).Warnf("ignoring license count %q: %v", raw, err)
		ctx.Redirect(http.StatusSeeOther, "/")
		return
	}
	h.postAction(ctx, view.SetLicenseCount(n))
}

func (h *Handler) postAction(ctx *gin.Context, a view.Action) {
	if _, _, err := h.applyAction(ctx, a); err != nil {
		h.errorHandler(ctx, statusFor(err), err)
		return
	}
	ctx.Redirect(http.StatusSeeOther, "/")
}
