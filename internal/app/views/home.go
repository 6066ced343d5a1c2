package views

import (
	"storefront/internal/app/ds"
	"storefront/internal/app/navigation"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func sectionHeading(title, subtitle string) g.Node {
	return h.Div(
		h.Class("text-center mb-16"),
		h.H2(h.Class("text-4xl lg:text-5xl font-bold text-black mb-6"), g.Text(title)),
		h.P(h.Class("text-xl text-gray-600 max-w-3xl mx-auto"), g.Text(subtitle)),
	)
}

func Home(d PageData) g.Node {
	return g.Group{
		hero(d),
		featureGrid(d.Content.Features()),
		audiences(d.Content.TargetAudiences()),
		callToAction(d),
	}
}

func hero(d PageData) g.Node {
	return h.Section(
		h.ID("hero"),
		h.Class("relative bg-gradient-to-br from-black via-gray-900 to-black text-white"),
		h.Div(h.Class("absolute inset-0 bg-black opacity-50")),
		h.Div(
			h.Class("relative container mx-auto px-6 py-24 lg:py-32"),
			h.Div(
				h.Class("max-w-4xl mx-auto text-center"),
				h.Img(h.Src(d.LogoURL), h.Alt("Legistant Logo"), h.Class("h-16 w-auto mx-auto mb-8")),
				h.H1(
					h.Class("text-5xl lg:text-7xl font-bold mb-6"),
					g.Text("Streamline Your Legal"),
					span(h.Class("text-yellow-400 block"), g.Text("Practice")),
				),
				h.P(h.Class("text-xl lg:text-2xl text-gray-300 mb-12 leading-relaxed"),
					g.Text("Complete legal case management and law firm collaboration solution with attorney-grade security")),
				h.Div(
					h.Class("flex flex-col sm:flex-row gap-6 justify-center"),
					h.A(h.Href(d.LoginURL), h.Class("bg-yellow-400 hover:bg-yellow-300 text-black font-semibold px-8 py-4 rounded-xl shadow-lg"), g.Text("Get Started Now")),
					g.If(d.enabled(navigation.PageFeatures),
						navButton(navigation.PageFeatures, "View Features", "border-2 border-yellow-400 text-yellow-400 hover:bg-yellow-400 hover:text-black font-semibold px-8 py-4 rounded-xl"),
					),
				),
			),
		),
	)
}

func featureGrid(features []ds.FeatureEntry) g.Node {
	return h.Section(
		h.ID("features"),
		h.Class("py-20 bg-white"),
		h.Div(
			h.Class("container mx-auto px-6"),
			sectionHeading("Powerful Features", "Everything you need to manage cases, clients, and law firm operations in one comprehensive legal platform"),
			h.Div(
				h.Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Map(features, func(f ds.FeatureEntry) g.Node {
					return h.Div(
						h.Class("bg-white border border-gray-200 rounded-2xl p-8 hover:shadow-xl group"),
						h.Div(h.Class("text-yellow-500 mb-6"), icon(f.Icon, "w-8 h-8")),
						h.H3(h.Class("text-xl font-bold text-black mb-4"), g.Text(f.Title)),
						h.P(h.Class("text-gray-600 mb-4"), g.Text(f.Description)),
						h.P(h.Class("text-sm text-gray-500"), g.Text(f.Details)),
					)
				}),
			),
		),
	)
}

func audiences(list []ds.TargetAudience) g.Node {
	return h.Section(
		h.ID("audiences"),
		h.Class("py-20 bg-gray-50"),
		h.Div(
			h.Class("container mx-auto px-6"),
			sectionHeading("Built For Legal Professionals", "Designed to meet the unique needs of different legal practices and law firm structures"),
			h.Div(
				h.Class("grid md:grid-cols-2 gap-8"),
				g.Map(list, func(a ds.TargetAudience) g.Node {
					return h.Div(
						h.Class("bg-white rounded-2xl p-8 shadow-lg"),
						h.Div(h.Class("text-yellow-500 mb-6"), icon(a.Icon, "w-8 h-8")),
						h.H3(h.Class("text-xl font-bold text-black mb-4"), g.Text(a.Title)),
						h.P(h.Class("text-gray-600"), g.Text(a.Description)),
					)
				}),
			),
		),
	)
}

func callToAction(d PageData) g.Node {
	return h.Section(
		h.ID("cta"),
		h.Class("py-20 bg-gradient-to-r from-black to-gray-900 text-white"),
		h.Div(
			h.Class("container mx-auto px-6 text-center"),
			h.H2(h.Class("text-4xl lg:text-5xl font-bold mb-6"), g.Text("Ready to Get Started?")),
			h.P(h.Class("text-xl text-gray-300 mb-12 max-w-2xl mx-auto"), g.Text("Join thousands of businesses already using Legistant to streamline their operations")),
			h.Div(
				h.Class("flex flex-col sm:flex-row gap-6 justify-center"),
				h.A(h.Href(d.LoginURL), h.Class("bg-yellow-400 hover:bg-yellow-300 text-black font-semibold px-8 py-4 rounded-xl"), g.Text("Start Free Trial")),
				g.If(d.enabled(navigation.PagePricing),
					navButton(navigation.PagePricing, "View Pricing", "border-2 border-white text-white hover:bg-white hover:text-black font-semibold px-8 py-4 rounded-xl"),
				),
				g.If(d.enabled(navigation.PageSecurity),
					navButton(navigation.PageSecurity, "Security Overview", "border-2 border-yellow-400 text-yellow-400 hover:bg-yellow-400 hover:text-black font-semibold px-8 py-4 rounded-xl"),
				),
			),
		),
	)
}
