package views

import (
	"fmt"

	"storefront/internal/app/ds"
	"storefront/internal/app/pricing"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func Pricing(d PageData) g.Node {
	tiers := d.Content.PricingTiers()
	cards := make([]g.Node, 0, len(tiers))
	for i, tier := range tiers {
		if i < len(d.Snapshot.Quotes) {
			cards = append(cards, tierCard(d, tier, d.Snapshot.Quotes[i]))
		}
	}

	return h.Section(
		h.ID("pricing"),
		h.Class("py-20 bg-gray-50 min-h-screen"),
		h.Div(
			h.Class("container mx-auto px-6"),
			sectionHeading("Flexible Pricing Plans", "Choose the perfect plan for your team size and requirements"),
			calculator(d.Snapshot.LicenseCount),
			h.Div(h.Class("grid md:grid-cols-3 gap-8 max-w-6xl mx-auto"), g.Group(cards)),
		),
	)
}

// calculator - ползунок числа лицензий; на сервер уходит действие setLicenseCount(n)
func calculator(n pricing.LicenseCount) g.Node {
	fill := pricing.SliderFill(n)
	style := fmt.Sprintf("background: linear-gradient(to right, #FFC107 0%%, #FFC107 %.2f%%, #e5e7eb %.2f%%, #e5e7eb 100%%)", fill, fill)

	return h.Div(
		h.ID("calculator"),
		h.Class("max-w-2xl mx-auto mb-16 bg-white rounded-2xl p-8 shadow-lg"),
		h.H3(h.Class("text-2xl font-bold text-black mb-6 text-center"), g.Text("Calculate Your Cost")),
		postForm("/licenses",
			h.Div(
				h.Class("mb-6"),
				g.El("label",
					g.Attr("for", "licenses"),
					h.Class("block text-lg font-semibold text-gray-700 mb-4"),
					g.Textf("Number of User Licenses: %d", int(n)),
				),
				h.Input(
					h.ID("licenses"),
					h.Type("range"),
					h.Name("licenses"),
					g.Attr("min", fmt.Sprint(int(pricing.MinLicenses))),
					g.Attr("max", fmt.Sprint(int(pricing.MaxLicenses))),
					h.Value(fmt.Sprint(int(n))),
					g.Attr("onchange", "this.form.submit()"),
					g.Attr("style", style),
					h.Class("w-full h-3 rounded-lg appearance-none cursor-pointer"),
				),
				h.Div(
					h.Class("flex justify-between text-sm text-gray-500 mt-2"),
					span(g.Textf("%d", int(pricing.MinLicenses))),
					span(g.Textf("%d", int(pricing.MaxLicenses))),
				),
			),
			g.El("noscript",
				h.Button(h.Type("submit"), h.Class("w-full bg-black text-white font-semibold px-6 py-3 rounded-xl"), g.Text("Update")),
			),
		),
	)
}

func tierCard(d PageData, tier ds.PricingTier, q pricing.Quote) g.Node {
	cardClass := "bg-white rounded-2xl p-8 shadow-lg relative"
	buttonClass := "block w-full text-center font-semibold px-6 py-3 rounded-xl bg-black hover:bg-gray-800 text-white"
	if tier.Popular {
		cardClass += " ring-4 ring-yellow-400 transform scale-105"
		buttonClass = "block w-full text-center font-semibold px-6 py-3 rounded-xl bg-yellow-400 hover:bg-yellow-300 text-black"
	}

	return h.Div(
		h.Class(cardClass),
		g.Attr("data-tier", tier.Name),
		g.If(tier.Popular,
			h.Div(
				h.Class("absolute -top-4 left-1/2 transform -translate-x-1/2"),
				span(h.Class("bg-yellow-400 text-black px-6 py-2 rounded-full text-sm font-semibold"), g.Text("Most Popular")),
			),
		),
		h.Div(
			h.Class("text-center mb-8"),
			h.H3(h.Class("text-2xl font-bold text-black mb-4"), g.Text(tier.Name)),
			h.Div(h.Class("text-4xl font-bold text-black mb-2 tier-total"), g.Text("$"+q.TotalDisplay)),
			h.P(h.Class("text-gray-600 tier-breakdown"), g.Text("$"+q.Breakdown)),
		),
		h.Ul(
			h.Class("space-y-4 mb-8"),
			g.Map(tier.Features, func(f string) g.Node {
				return h.Li(
					h.Class("flex items-center"),
					icon("check", "w-5 h-5 text-yellow-500 mr-3 flex-shrink-0"),
					span(h.Class("text-gray-700"), g.Text(f)),
				)
			}),
		),
		h.A(h.Href(d.LoginURL), h.Class(buttonClass), g.Text("Get Started")),
	)
}
