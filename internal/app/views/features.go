package views

import (
	"storefront/internal/app/ds"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Features - подробная страница возможностей; четные строки зеркально отражены
func Features(d PageData) g.Node {
	features := d.Content.Features()
	rows := make([]g.Node, 0, len(features))
	for i, f := range features {
		rows = append(rows, featureRow(i, f))
	}

	return h.Section(
		h.ID("features-page"),
		h.Class("py-20 bg-white min-h-screen"),
		h.Div(
			h.Class("container mx-auto px-6"),
			sectionHeading("Complete Legal Management Features", "Comprehensive legal practice management tools designed for modern law firms"),
			h.Div(h.Class("space-y-12"), g.Group(rows)),
		),
	)
}

func featureRow(i int, f ds.FeatureEntry) g.Node {
	class := "flex flex-col lg:flex-row items-center gap-12"
	if i%2 == 1 {
		class += " lg:flex-row-reverse"
	}
	return h.Div(
		h.Class(class),
		h.Div(
			h.Class("lg:w-1/2"),
			h.Div(
				h.Class("bg-gradient-to-br from-yellow-50 to-yellow-100 rounded-2xl p-12 text-center"),
				h.Div(h.Class("text-yellow-500 mb-6 flex justify-center"), icon(f.Icon, "w-16 h-16")),
			),
		),
		h.Div(
			h.Class("lg:w-1/2"),
			h.H3(h.Class("text-3xl font-bold text-black mb-6"), g.Text(f.Title)),
			h.P(h.Class("text-lg text-gray-600 mb-6"), g.Text(f.Description)),
			h.P(h.Class("text-gray-500 leading-relaxed"), g.Text(f.Details)),
		),
	)
}
