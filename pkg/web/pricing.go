package web

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/medireon/site/pkg/pricing"
)

func Pricing(v *HomeView) g.Node {
	q := v.Quote

	return Div(
		ID("pricing"),
		Class("py-16 px-6 bg-gray-50"),
		H2(Class("text-3xl font-bold text-center mb-4"), g.Text("Simple, Transparent Pricing")),
		currencySelector(v),
		Div(
			Class("max-w-7xl mx-auto grid md:grid-cols-3 gap-6 mt-10"),
			g.Group(g.Map(q.Plans, func(p pricing.PlanQuote) g.Node { return planCard(v, p) })),
		),
		Div(
			Class("max-w-7xl mx-auto grid md:grid-cols-2 gap-6 mt-12"),
			costTable("additional-costs", "Additional Costs", q.AdditionalCosts),
			costTable("add-ons", "Add-ons", q.AddOns),
		),
		Div(
			ID("custom-plan"),
			Class("max-w-3xl mx-auto text-center mt-12 bg-white rounded-xl p-8 shadow-sm"),
			H3(Class("text-xl font-semibold mb-2"), g.Text("Need a Custom Plan?")),
			P(Class("text-gray-600 mb-4"), g.Text("Tell us about your facility and we'll tailor "+AppName+" to fit.")),
			A(
				Href(PageLink("/", v.Query, QueryModal, ModalPlan, QueryPlan, pricing.CustomPlanName)),
				Class("btn btn-primary"),
				g.Text("Request Custom Plan"),
			),
		),
	)
}

func currencySelector(v *HomeView) g.Node {
	return Div(
		ID("currency-selector"),
		Class("flex justify-center gap-2"),
		g.Attr("role", "group"),
		g.Attr("aria-label", "Currency"),
		g.Group(g.Map(v.Quote.Currencies, func(c pricing.CurrencyOption) g.Node {
			classes := "btn btn-sm btn-outline"
			if c.Selected {
				classes = "btn btn-sm btn-primary"
			}
			return A(
				Href(PageLink("/", v.Query, QueryCurrency, string(c.Code))+"#pricing"),
				Class(classes),
				g.Attr("aria-pressed", boolAttr(c.Selected)),
				g.Attr("data-currency", string(c.Code)),
				g.Textf("%s %s", c.Symbol, c.Code),
			)
		})),
	)
}

func planCard(v *HomeView, p pricing.PlanQuote) g.Node {
	classes := "bg-white rounded-2xl shadow p-8 flex flex-col"
	if p.IsPopular {
		classes += " ring-2 ring-blue-600"
	}

	return Div(
		Class(classes),
		g.Attr("data-plan", p.Name),
		g.If(p.IsPopular, Span(Class("badge badge-primary mb-2 self-start"), g.Text("Most Popular"))),
		H3(Class("text-2xl font-bold"), g.Text(p.Name)),
		P(
			Class("mt-2"),
			Span(Class("text-4xl font-bold"), g.Attr("data-price", p.Name), g.Text(p.Price)),
			Span(Class("text-gray-500"), g.Text(" /month")),
		),
		P(Class("text-sm text-gray-600 mt-2"), g.Text(p.Description)),
		Ul(
			Class("mt-6 space-y-2 flex-1"),
			g.Group(g.Map(p.Features, func(f pricing.FeatureQuote) g.Node {
				mark, tone := "✓", "text-gray-700"
				if !f.Included {
					mark, tone = "✗", "text-gray-400 line-through"
				}
				return Li(Class(tone), Span(Class("mr-2"), g.Text(mark)), g.Text(f.Label))
			})),
		),
		A(
			Href(PageLink("/", v.Query, QueryModal, ModalPlan, QueryPlan, p.Name)),
			Class("btn btn-primary mt-8"),
			g.Text("Get Started"),
		),
	)
}

func costTable(id, heading string, costs []pricing.CostQuote) g.Node {
	return Div(
		ID(id),
		Class("bg-white rounded-xl p-6 shadow-sm"),
		H3(Class("text-lg font-semibold mb-4"), g.Text(heading)),
		Ul(
			Class("divide-y divide-gray-100"),
			g.Group(g.Map(costs, func(c pricing.CostQuote) g.Node {
				return Li(
					Class("flex justify-between py-3"),
					Div(
						P(Class("font-medium"), g.Text(c.Title)),
						g.If(c.Subtitle != "", P(Class("text-xs text-gray-500"), g.Text(c.Subtitle))),
					),
					Span(Class("font-semibold"), g.Text(c.Price)),
				)
			})),
		),
	)
}
