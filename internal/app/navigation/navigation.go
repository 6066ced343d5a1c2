package navigation

import (
	"errors"
	"fmt"
	"strings"
)

// Page - идентификатор страницы сайта
type Page string

const (
	PageHome     Page = "home"
	PageFeatures Page = "features"
	PagePricing  Page = "pricing"
	PageSecurity Page = "security"
	PageAbout    Page = "about"
)

// Landing - начальная страница любой сессии
const Landing = PageHome

// KnownPages - все страницы, для которых есть разметка
var KnownPages = []Page{PageHome, PageFeatures, PagePricing, PageSecurity, PageAbout}

// DefaultPages - канонический набор страниц
var DefaultPages = []Page{PageHome, PageFeatures, PagePricing, PageSecurity}

var (
	ErrNoPages       = errors.New("page set is empty")
	ErrNoLanding     = fmt.Errorf("page set must contain %q", Landing)
	ErrUnknownPage   = errors.New("unknown page")
	ErrDuplicatePage = errors.New("duplicate page")
)

var labels = map[Page]string{
	PageHome:     "Home",
	PageFeatures: "Features",
	PagePricing:  "Pricing",
	PageSecurity: "Security",
	PageAbout:    "About",
}

// Label - подпись страницы в меню
func (p Page) Label() string {
	if l, ok := labels[p]; ok {
		return l
	}
	return string(p)
}

// State - состояние навигации одной сессии просмотра
type State struct {
	Current  Page `json:"current"`
	MenuOpen bool `json:"menu_open"`
}

// Machine - конечный автомат навигации над закрытым набором страниц.
// Переход возможен из любой страницы в любую.
type Machine struct {
	pages []Page
	index map[Page]struct{}
}

// NewMachine проверяет набор страниц: он непустой, без повторов,
// содержит только известные страницы и обязательно home
func NewMachine(pages []Page) (*Machine, error) {
	if len(pages) == 0 {
		return nil, ErrNoPages
	}

	index := make(map[Page]struct{}, len(pages))
	for _, p := range pages {
		if _, ok := labels[p]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPage, p)
		}
		if _, dup := index[p]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePage, p)
		}
		index[p] = struct{}{}
	}
	if _, ok := index[Landing]; !ok {
		return nil, ErrNoLanding
	}

	return &Machine{
		pages: append([]Page(nil), pages...),
		index: index,
	}, nil
}

// ParsePages разбирает идентификаторы страниц из конфигурации
func ParsePages(ids []string) []Page {
	pages := make([]Page, 0, len(ids))
	for _, id := range ids {
		pages = append(pages, Page(strings.ToLower(strings.TrimSpace(id))))
	}
	return pages
}

// Pages возвращает копию набора страниц в порядке меню
func (m *Machine) Pages() []Page {
	return append([]Page(nil), m.pages...)
}

func (m *Machine) Contains(p Page) bool {
	_, ok := m.index[p]
	return ok
}

// Initial - состояние новой сессии
func (m *Machine) Initial() State {
	return State{Current: Landing}
}

// Navigate переключает страницу и всегда закрывает мобильное меню.
// Неизвестная страница игнорируется: состояние не меняется, ok == false.
func (m *Machine) Navigate(s State, p Page) (State, bool) {
	if !m.Contains(p) {
		return s, false
	}
	return State{Current: p, MenuOpen: false}, true
}

// ToggleMenu переключает мобильное меню, не трогая страницу
func (m *Machine) ToggleMenu(s State) State {
	s.MenuOpen = !s.MenuOpen
	return s
}

// Normalize возвращает корректное состояние: страница вне набора сбрасывается на Landing.
// Нужно для состояний, восстановленных из хранилища сессий после смены конфигурации.
func (m *Machine) Normalize(s State) State {
	if !m.Contains(s.Current) {
		s.Current = Landing
	}
	return s
}
