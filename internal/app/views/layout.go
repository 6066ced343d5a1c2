package views

import (
	"storefront/internal/app/navigation"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func Layout(d PageData, content g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			g.Attr("lang", "en"),
			h.Head(
				h.Meta(g.Attr("charset", "utf-8")),
				h.Meta(h.Name("viewport"), g.Attr("content", "width=device-width, initial-scale=1")),
				g.El("title", g.Text("Legistant - Legal Practice Management")),
				h.Script(h.Src("https://cdn.tailwindcss.com")),
				h.Script(h.Src("https://unpkg.com/lucide@latest")),
			),
			h.Body(
				h.Class("min-h-screen bg-white"),
				NavBar(d),
				h.Main(content),
				Footer(d),
				h.Script(g.Raw("lucide.createIcons();")),
			),
		),
	)
}

func icon(name, size string) g.Node {
	return g.El("i", g.Attr("data-lucide", name), h.Class(size))
}

func span(children ...g.Node) g.Node {
	return g.El("span", children...)
}

// postForm - форма действия пользователя, отправляемая POST запросом
func postForm(action string, children ...g.Node) g.Node {
	return g.El("form",
		g.Attr("method", "post"),
		g.Attr("action", action),
		g.Group(children),
	)
}

// navButton - кнопка навигации; на сервере это действие navigate(page)
func navButton(page navigation.Page, label, class string) g.Node {
	return postForm("/navigate",
		h.Input(h.Type("hidden"), h.Name("page"), h.Value(string(page))),
		h.Button(h.Type("submit"), h.Class(class), g.Text(label)),
	)
}

func menuItemClass(d PageData, p navigation.Page, base string) string {
	if d.Snapshot.Page == p {
		return base + " text-yellow-400"
	}
	return base
}

func NavBar(d PageData) g.Node {
	desktop := make([]g.Node, 0, len(d.Snapshot.Pages)+1)
	mobile := make([]g.Node, 0, len(d.Snapshot.Pages)+1)
	for _, p := range d.Snapshot.Pages {
		desktop = append(desktop, navButton(p, p.Label(), menuItemClass(d, p, "hover:text-yellow-400 transition-colors")))
		mobile = append(mobile, navButton(p, p.Label(), menuItemClass(d, p, "text-left hover:text-yellow-400 transition-colors")))
	}
	login := func() g.Node {
		return h.A(h.Href(d.LoginURL), h.Class("bg-yellow-400 hover:bg-yellow-300 text-black font-semibold px-6 py-2 rounded-lg transition-colors"), g.Text("Login"))
	}

	toggleIcon := "menu"
	if d.Snapshot.MenuOpen {
		toggleIcon = "x"
	}

	return h.Nav(
		h.Class("bg-black text-white sticky top-0 z-50"),
		h.Div(
			h.Class("container mx-auto px-6 py-4"),
			h.Div(
				h.Class("flex items-center justify-between"),
				h.Img(h.Src(d.LogoURL), h.Alt("Legistant"), h.Class("h-10 w-auto")),
				h.Div(h.ID("desktop-nav"), h.Class("hidden md:flex items-center space-x-8"), g.Group(desktop), login()),
				h.Div(
					h.Class("md:hidden"),
					postForm("/menu",
						h.Button(h.Type("submit"), h.ID("menu-toggle"), g.Attr("aria-expanded", boolAttr(d.Snapshot.MenuOpen)), icon(toggleIcon, "w-6 h-6")),
					),
				),
			),
			g.If(d.Snapshot.MenuOpen,
				h.Div(
					h.ID("mobile-nav"),
					h.Class("md:hidden mt-4 pb-4 border-t border-gray-800"),
					h.Div(h.Class("flex flex-col space-y-4 pt-4"), g.Group(mobile), login()),
				),
			),
		),
	)
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func Footer(d PageData) g.Node {
	var product []g.Node
	for _, p := range []navigation.Page{navigation.PageFeatures, navigation.PagePricing, navigation.PageSecurity, navigation.PageAbout} {
		if d.enabled(p) {
			product = append(product, h.Li(navButton(p, p.Label(), "hover:text-yellow-400 transition-colors")))
		}
	}
	product = append(product, h.Li(h.A(h.Href(d.LoginURL), h.Class("hover:text-yellow-400 transition-colors"), g.Text("Login"))))

	return h.Footer(
		h.Class("bg-black text-white py-12"),
		h.Div(
			h.Class("container mx-auto px-6"),
			h.Div(
				h.Class("grid md:grid-cols-4 gap-8"),
				h.Div(
					h.Class("md:col-span-2"),
					h.Img(h.Src(d.LogoURL), h.Alt("Legistant"), h.Class("h-10 w-auto mb-4")),
					h.P(h.Class("text-gray-400 max-w-md"), g.Text("Streamline your legal practice with our comprehensive case management and law firm collaboration solution.")),
				),
				h.Div(
					h.H4(h.Class("font-semibold mb-4"), g.Text("Product")),
					h.Ul(h.Class("space-y-2 text-gray-400"), g.Group(product)),
				),
				h.Div(
					h.H4(h.Class("font-semibold mb-4"), g.Text("Support")),
					h.Ul(
						h.Class("space-y-2 text-gray-400"),
						h.Li(h.A(h.Href("#"), h.Class("hover:text-yellow-400 transition-colors"), g.Text("Documentation"))),
						h.Li(h.A(h.Href(d.mailto()), h.Class("hover:text-yellow-400 transition-colors"), g.Text("Contact Us"))),
						h.Li(h.A(h.Href("#"), h.Class("hover:text-yellow-400 transition-colors"), g.Text("Status"))),
					),
				),
			),
			h.Div(
				h.Class("border-t border-gray-800 mt-8 pt-8 text-center text-gray-400"),
				h.P(g.Textf("© %d Legistant. All rights reserved.", d.Year)),
			),
		),
	)
}
