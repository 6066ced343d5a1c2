package dto

import (
	"storefront/internal/app/ds"
	"storefront/internal/app/pricing"
	"storefront/internal/app/view"
)

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Состояние просмотра ============

// ActionRequest - действие пользователя, присланное через API
type ActionRequest struct {
	Type     string `json:"type" binding:"required,oneof=navigate set_license_count toggle_mobile_menu"`
	Page     string `json:"page"`
	Licenses *int   `json:"licenses" binding:"required_if=Type set_license_count"`
}

func (r ActionRequest) Action() view.Action {
	a := view.Action{
		Type: view.ActionType(r.Type),
		Page: r.Page,
	}
	if r.Licenses != nil {
		a.Licenses = *r.Licenses
	}
	return a
}

type StateResponse struct {
	Applied  bool          `json:"applied"`
	Snapshot view.Snapshot `json:"snapshot"`
}

// ============ Контент ============

type FeaturesResponse struct {
	Features []ds.FeatureEntry `json:"features"`
	Total    int               `json:"total"`
}

type AudiencesResponse struct {
	Audiences []ds.TargetAudience `json:"audiences"`
	Total     int                 `json:"total"`
}

type TiersResponse struct {
	Tiers []ds.PricingTier `json:"tiers"`
	Total int              `json:"total"`
}

type SecurityResponse struct {
	Highlights      []ds.SecurityHighlight `json:"highlights"`
	Policies        []ds.SecurityPolicy    `json:"policies"`
	PasswordTips    []string               `json:"password_tips"`
	LoginSafeguards []string               `json:"login_safeguards"`
	TeamTips        []ds.TeamTip           `json:"team_tips"`
	Contact         ds.ContactInfo         `json:"contact"`
}

// ============ Расчет стоимости ============

type QuoteRequest struct {
	Tier     string `form:"tier" binding:"required"`
	Licenses int    `form:"licenses"`
}

type QuoteResponse struct {
	Quote     pricing.Quote `json:"quote"`
	Requested int           `json:"requested"`
	Clamped   bool          `json:"clamped"`
}
