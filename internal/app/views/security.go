package views

import (
	"fmt"

	"storefront/internal/app/ds"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func Security(d PageData) g.Node {
	return g.Group{
		securityHero(d),
		securityHighlights(d.Content.SecurityHighlights()),
		securityPolicies(d.Content.SecurityPolicies()),
		accountProtection(d.Content.PasswordTips(), d.Content.LoginSafeguards()),
		teamTips(d.Content.TeamTips()),
		securityCommitment(d),
	}
}

func securityHero(d PageData) g.Node {
	return h.Section(
		h.ID("security-hero"),
		h.Class("relative text-white bg-cover bg-center"),
		g.Attr("style", fmt.Sprintf("background-image: url('%s')", d.TeamHeroURL)),
		h.Div(h.Class("absolute inset-0 bg-black opacity-70")),
		h.Div(
			h.Class("relative container mx-auto px-6 py-24 text-center"),
			h.Div(h.Class("text-yellow-400 mb-6 flex justify-center"), icon("shield", "w-16 h-16")),
			h.H1(h.Class("text-5xl lg:text-6xl font-bold mb-6"), g.Text("Our Security Promise")),
			h.P(h.Class("text-xl text-gray-300 max-w-3xl mx-auto"),
				g.Text("Your data security is our top priority. We implement attorney-grade security measures to protect your sensitive legal information and client data.")),
		),
	)
}

func securityHighlights(list []ds.SecurityHighlight) g.Node {
	return h.Section(
		h.ID("security-highlights"),
		h.Class("py-20 bg-white"),
		h.Div(
			h.Class("container mx-auto px-6"),
			sectionHeading("Enterprise-Grade Protection", "Multiple layers of security keep your firm's data safe"),
			h.Div(
				h.Class("grid md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Map(list, func(s ds.SecurityHighlight) g.Node {
					return h.Div(
						h.Class("bg-gray-50 rounded-2xl p-8"),
						h.Div(h.Class("text-yellow-500 mb-4"), icon(s.Icon, "w-8 h-8")),
						h.H3(h.Class("text-xl font-bold text-black mb-3"), g.Text(s.Title)),
						h.P(h.Class("text-gray-600"), g.Text(s.Description)),
					)
				}),
			),
		),
	)
}

func securityPolicies(list []ds.SecurityPolicy) g.Node {
	return h.Section(
		h.ID("security-policies"),
		h.Class("py-20 bg-gray-50"),
		h.Div(
			h.Class("container mx-auto px-6"),
			sectionHeading("Security Policies", "How we keep your account and your clients' information protected"),
			h.Div(
				h.Class("grid md:grid-cols-2 gap-8"),
				g.Map(list, func(p ds.SecurityPolicy) g.Node {
					return h.Div(
						h.Class("bg-white rounded-2xl p-8 shadow-lg"),
						h.H3(h.Class("text-xl font-bold text-black mb-3"), g.Text(p.Title)),
						h.P(h.Class("text-gray-700 mb-3"), g.Text(p.Description)),
						h.P(h.Class("text-sm text-gray-500"), g.Text(p.Details)),
					)
				}),
			),
		),
	)
}

func bulletList(items []string, iconName string) g.Node {
	return h.Ul(
		h.Class("space-y-3"),
		g.Map(items, func(s string) g.Node {
			return h.Li(
				h.Class("flex items-start"),
				icon(iconName, "w-5 h-5 text-yellow-500 mr-3 mt-1 flex-shrink-0"),
				span(h.Class("text-gray-700"), g.Text(s)),
			)
		}),
	)
}

func accountProtection(passwordTips, safeguards []string) g.Node {
	return h.Section(
		h.ID("account-protection"),
		h.Class("py-20 bg-white"),
		h.Div(
			h.Class("container mx-auto px-6 grid lg:grid-cols-2 gap-12"),
			h.Div(
				h.ID("password-tips"),
				h.H3(h.Class("text-2xl font-bold text-black mb-6"), g.Text("Creating Strong Passwords")),
				bulletList(passwordTips, "key"),
			),
			h.Div(
				h.ID("login-safeguards"),
				h.H3(h.Class("text-2xl font-bold text-black mb-6"), g.Text("Login Safeguards")),
				bulletList(safeguards, "lock"),
			),
		),
	)
}

func teamTips(list []ds.TeamTip) g.Node {
	return h.Section(
		h.ID("team-tips"),
		h.Class("py-20 bg-gray-50"),
		h.Div(
			h.Class("container mx-auto px-6"),
			sectionHeading("Security Tips for Your Team", "Simple habits that keep everyone at your firm safe"),
			h.Div(
				h.Class("grid md:grid-cols-2 gap-8"),
				g.Map(list, func(t ds.TeamTip) g.Node {
					return h.Div(
						h.Class("bg-white rounded-2xl p-6 shadow"),
						h.H4(h.Class("text-lg font-semibold text-black mb-2"), g.Text(t.Title)),
						h.P(h.Class("text-gray-600"), g.Text(t.Text)),
					)
				}),
			),
		),
	)
}

func securityCommitment(d PageData) g.Node {
	return h.Section(
		h.ID("security-commitment"),
		h.Class("py-20 bg-black text-white"),
		h.Div(
			h.Class("container mx-auto px-6 text-center"),
			h.H2(h.Class("text-4xl font-bold mb-6"), g.Text("Our Commitment to You")),
			h.P(h.Class("text-xl text-gray-300 max-w-3xl mx-auto mb-10"),
				g.Text("We continuously monitor, test and improve our security practices. If you ever notice anything suspicious, let us know right away.")),
			h.A(
				h.Href(d.mailto()),
				h.Class("inline-block bg-yellow-400 hover:bg-yellow-300 text-black font-semibold px-8 py-4 rounded-xl"),
				g.Text("Report a Security Concern"),
			),
			contactBlock(d.Content.Contact()),
		),
	)
}

func contactBlock(c ds.ContactInfo) g.Node {
	return h.Div(
		h.ID("contact"),
		h.Class("mt-12 grid md:grid-cols-4 gap-6 text-gray-300"),
		h.Div(icon("map-pin", "w-5 h-5 mx-auto mb-2 text-yellow-400"), h.P(g.Text(c.Address))),
		h.Div(icon("mail", "w-5 h-5 mx-auto mb-2 text-yellow-400"), h.A(h.Href("mailto:"+c.Email), g.Text(c.Email))),
		h.Div(
			icon("phone", "w-5 h-5 mx-auto mb-2 text-yellow-400"),
			g.Map(c.Phones, func(p string) g.Node { return h.P(g.Text(p)) }),
		),
		h.Div(icon("globe", "w-5 h-5 mx-auto mb-2 text-yellow-400"), h.P(g.Text(c.Website))),
	)
}
