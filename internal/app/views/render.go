package views

import (
	"net/http"
	"time"

	"storefront/internal/app/content"
	"storefront/internal/app/navigation"
	"storefront/internal/app/view"

	g "maragu.dev/gomponents"
)

// PageData - все, что нужно для отрисовки страницы
type PageData struct {
	Snapshot     view.Snapshot
	Content      *content.Store
	LoginURL     string
	ContactEmail string
	LogoURL      string
	TeamHeroURL  string
	Year         int
}

// HTML реализует render.Render из gin для дерева gomponents
type HTML struct {
	Node g.Node
}

var htmlContentType = []string{"text/html; charset=utf-8"}

func (r HTML) Render(w http.ResponseWriter) error {
	r.WriteContentType(w)
	return r.Node.Render(w)
}

func (r HTML) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = htmlContentType
	}
}

// Page собирает полный документ для текущей страницы сессии
func Page(d PageData) g.Node {
	if d.Year == 0 {
		d.Year = time.Now().Year()
	}
	return Layout(d, body(d))
}

func body(d PageData) g.Node {
	switch d.Snapshot.Page {
	case navigation.PageFeatures:
		return Features(d)
	case navigation.PagePricing:
		return Pricing(d)
	case navigation.PageSecurity:
		return Security(d)
	case navigation.PageAbout:
		return About(d)
	}
	return Home(d)
}

// enabled сообщает, включена ли страница в текущем наборе
func (d PageData) enabled(p navigation.Page) bool {
	for _, page := range d.Snapshot.Pages {
		if page == p {
			return true
		}
	}
	return false
}

func (d PageData) mailto() string {
	return "mailto:" + d.ContactEmail
}
