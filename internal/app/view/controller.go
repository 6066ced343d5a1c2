package view

import (
	"fmt"

	"storefront/internal/app/content"
	"storefront/internal/app/navigation"
	"storefront/internal/app/pricing"

	"golang.org/x/text/language"
)

// State - явное состояние одной сессии просмотра: навигация и число лицензий
type State struct {
	Nav      navigation.State     `json:"nav"`
	Licenses pricing.LicenseCount `json:"licenses"`
}

// ActionType - вид действия пользователя
type ActionType string

const (
	ActionNavigate         ActionType = "navigate"
	ActionSetLicenseCount  ActionType = "set_license_count"
	ActionToggleMobileMenu ActionType = "toggle_mobile_menu"
)

// Action - дискретное действие пользователя из слоя представления
type Action struct {
	Type     ActionType `json:"type"`
	Page     string     `json:"page,omitempty"`
	Licenses int        `json:"licenses,omitempty"`
}

func Navigate(page navigation.Page) Action {
	return Action{Type: ActionNavigate, Page: string(page)}
}

func SetLicenseCount(n int) Action {
	return Action{Type: ActionSetLicenseCount, Licenses: n}
}

func ToggleMobileMenu() Action {
	return Action{Type: ActionToggleMobileMenu}
}

// Snapshot - все, что слой представления получает после пересчета
type Snapshot struct {
	Page         navigation.Page      `json:"page"`
	MenuOpen     bool                 `json:"menu_open"`
	LicenseCount pricing.LicenseCount `json:"license_count"`
	TotalPrice   int                  `json:"total_price"` // итог популярного тарифа (или первого)
	Quotes       []pricing.Quote      `json:"quotes"`
	Pages        []navigation.Page    `json:"pages"`
}

// Controller применяет действия к состоянию и выводит из него отображаемые данные.
// Не хранит состояние сессий: им владеет вызывающий код.
type Controller struct {
	machine  *navigation.Machine
	content  *content.Store
	calc     *pricing.Calculator
	licenses pricing.LicenseCount
}

func NewController(m *navigation.Machine, store *content.Store, calc *pricing.Calculator, defaultLicenses int) *Controller {
	return &Controller{
		machine:  m,
		content:  store,
		calc:     calc,
		licenses: pricing.ClampLicenses(defaultLicenses),
	}
}

func (c *Controller) Machine() *navigation.Machine {
	return c.machine
}

func (c *Controller) Content() *content.Store {
	return c.content
}

// Initial - состояние новой сессии
func (c *Controller) Initial() State {
	return State{
		Nav:      c.machine.Initial(),
		Licenses: c.licenses,
	}
}

// Normalize чинит состояние, пришедшее из хранилища
func (c *Controller) Normalize(s State) State {
	s.Nav = c.machine.Normalize(s.Nav)
	if !s.Licenses.Valid() {
		s.Licenses = pricing.ClampLicenses(int(s.Licenses))
	}
	return s
}

// Apply применяет действие. applied == false, если состояние не изменилось
// из-за неизвестной страницы или неизвестного типа действия; это не ошибка.
func (c *Controller) Apply(s State, a Action) (State, bool) {
	switch a.Type {
	case ActionNavigate:
		nav, ok := c.machine.Navigate(s.Nav, navigation.Page(a.Page))
		s.Nav = nav
		return s, ok
	case ActionSetLicenseCount:
		s.Licenses = pricing.ClampLicenses(a.Licenses)
		return s, true
	case ActionToggleMobileMenu:
		s.Nav = c.machine.ToggleMenu(s.Nav)
		return s, true
	}
	return s, false
}

// Snapshot выводит отображаемые данные из состояния и контента
func (c *Controller) Snapshot(s State, locale language.Tag) Snapshot {
	s = c.Normalize(s)
	quotes := c.calc.QuoteAll(c.content.PricingTiers(), s.Licenses, locale)

	total := 0
	if len(quotes) > 0 {
		total = quotes[0].Total
	}
	for _, q := range quotes {
		if q.Popular {
			total = q.Total
			break
		}
	}

	return Snapshot{
		Page:         s.Nav.Current,
		MenuOpen:     s.Nav.MenuOpen,
		LicenseCount: s.Licenses,
		TotalPrice:   total,
		Quotes:       quotes,
		Pages:        c.machine.Pages(),
	}
}

// Quote считает один тариф по имени без участия сессии
func (c *Controller) Quote(tierName string, licenses int, locale language.Tag) (pricing.Quote, error) {
	tier, err := c.content.Tier(tierName)
	if err != nil {
		return pricing.Quote{}, fmt.Errorf("quote: %w", err)
	}
	return c.calc.Quote(tier, pricing.ClampLicenses(licenses), locale), nil
}
