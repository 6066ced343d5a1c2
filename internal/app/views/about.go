package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func About(d PageData) g.Node {
	return h.Section(
		h.ID("about"),
		h.Class("py-20 bg-white min-h-screen"),
		h.Div(
			h.Class("container mx-auto px-6"),
			sectionHeading("About Legistant", "Built by people who understand how law firms work"),
			h.Div(
				h.Class("max-w-3xl mx-auto space-y-6 text-lg text-gray-700"),
				h.P(g.Text("Legistant brings case management, client records, scheduling and document workflows together in one secure platform so that legal teams can spend less time on administration and more time on their clients.")),
				h.P(g.Text("We work closely with solo practitioners, growing firms and corporate legal departments to keep the product simple, reliable and safe.")),
			),
			h.Div(h.Class("bg-black rounded-2xl p-10 mt-16 text-white text-center"), contactBlock(d.Content.Contact())),
		),
	)
}
