package web

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// HomePage assembles the marketing sections in order, plus whichever modal
// the query asked for.
func HomePage(v *HomeView) g.Node {
	return Layout(
		PageConfig{},
		Toast(v.Notice),
		Hero(v),
		About(),
		Features(v),
		WhyChoose(),
		Benefits(),
		Pricing(v),
		FAQ(v),
		CTA(v),
		Newsletter(v),
		g.Iff(v.Privacy, func() g.Node { return PrivacyPolicy(v) }),
		g.Iff(v.Modal == ModalDemo, func() g.Node { return DemoModal(v) }),
		g.Iff(v.Modal == ModalPlan && v.SelectedPlan != nil, func() g.Node { return PlanModal(v) }),
	)
}

func Hero(v *HomeView) g.Node {
	return Div(
		ID("home"),
		Class("bg-gradient-to-br from-blue-700 to-cyan-600 text-white pt-32 pb-20"),
		Div(
			Class("max-w-7xl mx-auto px-6"),
			H1(
				Class("text-4xl md:text-5xl lg:text-6xl font-bold leading-tight mb-6"),
				g.Text("Streamline Your Hospital Operations with "),
				Span(Class("text-cyan-300"), g.Text(AppName)),
			),
			P(
				Class("text-lg text-blue-100 mb-8 max-w-lg"),
				g.Text("Revolutionize your healthcare facility with an all-in-one hospital management SaaS. Experience seamless coordination between patients, doctors, and staff."),
			),
			A(
				Href(PageLink("/", v.Query, QueryModal, ModalDemo)),
				Class("btn btn-outline text-white border-cyan-300"),
				g.Text("Schedule a Personalized Demo"),
			),
		),
	)
}

func About() g.Node {
	points := []titled{
		{"Tailored for Every Role", "Customized modules for patients, doctors, receptionists, pharmacists, lab technicians, and administrators."},
		{"Security First", "Advanced data protection and HIPAA-compliant infrastructure for complete peace of mind."},
		{"Better Patient Care", "Streamlined operations lead to reduced wait times and improved healthcare delivery."},
	}

	return Div(
		ID("about"),
		Class("py-16 px-6 max-w-7xl mx-auto"),
		H2(Class("text-3xl font-bold mb-5"), g.Text("Your Hospital's "), Span(Class("text-blue-600"), g.Text("Digital Brain"))),
		P(
			Class("text-gray-600 mb-6 text-lg"),
			g.Text(AppName+" is a comprehensive SaaS solution built to simplify and digitize healthcare administration. Whether you manage a clinic, nursing home, or multi-specialty hospital, our platform ensures efficient workflows, data security, and better patient care outcomes."),
		),
		Ul(
			Class("space-y-5"),
			g.Group(g.Map(points, func(p titled) g.Node {
				return Li(
					Class("p-4 bg-blue-50/50 rounded-xl border border-blue-100"),
					P(Class("font-bold"), g.Text(p.Title)),
					P(Class("text-sm text-gray-500 mt-1"), g.Text(p.Body)),
				)
			})),
		),
		A(Href("#features"), Class("btn btn-primary mt-8"), g.Text("Explore Our Features")),
	)
}

// Features is the role carousel. Prev/next wrap around and the tabs jump
// straight to a role.
func Features(v *HomeView) g.Node {
	current := roles[v.Roles.Index()]
	slide := "slide-none"
	switch v.Roles.Direction() {
	case 1:
		slide = "slide-forward"
	case -1:
		slide = "slide-back"
	}

	tabs := make([]g.Node, 0, len(roles))
	for i, r := range roles {
		classes := "tab"
		if i == v.Roles.Index() {
			classes = "tab tab-active"
		}
		tabs = append(tabs, A(
			Href(PageLink("/", v.Query, QueryRole, strconv.Itoa(i))+"#features"),
			Class(classes),
			g.Attr("role", "tab"),
			g.Attr("aria-selected", strconv.FormatBool(i == v.Roles.Index())),
			g.Text(r.Title),
		))
	}

	return Div(
		ID("features"),
		Class("py-16 px-6 bg-gray-50"),
		H2(Class("text-3xl font-bold text-center mb-8"), g.Text("Powerful Features for Every Role")),
		Div(Class("tabs tabs-boxed justify-center flex-wrap mb-8"), g.Attr("role", "tablist"), g.Group(tabs)),
		Div(
			ID("role-slide"),
			Class("max-w-5xl mx-auto grid md:grid-cols-2 gap-8 items-center "+slide),
			g.Attr("data-index", strconv.Itoa(v.Roles.Index())),
			Img(Src(current.Image), Alt(current.Title), Class("rounded-2xl shadow-lg")),
			Div(
				H3(Class("text-2xl font-bold mb-4"), g.Text(current.Title)),
				Ul(
					Class("space-y-2"),
					g.Group(g.Map(current.Points, func(p string) g.Node {
						return Li(Class("flex gap-2"), Span(Class("text-blue-600"), g.Text("✓")), g.Text(p))
					})),
				),
			),
		),
		Div(
			Class("flex justify-center gap-4 mt-8"),
			A(Href(PageLink("/", v.Query, QueryRole, strconv.Itoa(v.Roles.PrevIndex()))+"#features"), Class("btn btn-circle"), g.Attr("aria-label", "Previous role"), g.Text("‹")),
			A(Href(PageLink("/", v.Query, QueryRole, strconv.Itoa(v.Roles.NextIndex()))+"#features"), Class("btn btn-circle"), g.Attr("aria-label", "Next role"), g.Text("›")),
		),
	)
}

func WhyChoose() g.Node {
	return Div(
		ID("why-choose"),
		Class("py-16 px-6 max-w-7xl mx-auto"),
		H2(Class("text-3xl font-bold text-center mb-10"), g.Text("Why Choose "+AppName+"?")),
		Div(
			Class("grid sm:grid-cols-2 lg:grid-cols-4 gap-6"),
			g.Group(g.Map(reasons, card)),
		),
	)
}

func Benefits() g.Node {
	return Div(
		ID("benefits"),
		Class("py-16 px-6 bg-blue-50"),
		H2(Class("text-3xl font-bold text-center mb-10"), g.Text("Benefits That Matter")),
		Div(
			Class("max-w-7xl mx-auto grid md:grid-cols-3 gap-6"),
			g.Group(g.Map(benefits, card)),
		),
	)
}

func card(t titled) g.Node {
	return Div(
		Class("bg-white rounded-xl shadow-sm p-6"),
		H3(Class("font-semibold text-lg mb-2"), g.Text(t.Title)),
		P(Class("text-sm text-gray-600"), g.Text(t.Body)),
	)
}

// FAQ is a single-open accordion.
func FAQ(v *HomeView) g.Node {
	items := make([]g.Node, 0, len(faqs))
	for i, f := range faqs {
		open := v.FAQ.IsOpen(i)
		sign := "+"
		if open {
			sign = "−"
		}
		items = append(items, Div(
			Class("border-b border-gray-200"),
			A(
				ID(fmt.Sprintf("faq-%d", i)),
				Href(PageLink("/", v.Query, QueryFAQ, indexParam(v.FAQ.ToggleTarget(i)))+"#faq"),
				Class("flex justify-between py-4 font-medium"),
				g.Attr("aria-expanded", strconv.FormatBool(open)),
				g.Text(f.Title),
				Span(g.Text(sign)),
			),
			g.If(open, P(Class("pb-4 text-gray-600"), g.Attr("data-open", "true"), g.Text(f.Body))),
		))
	}

	return Div(
		ID("faq"),
		Class("py-16 px-6 max-w-3xl mx-auto"),
		H2(Class("text-3xl font-bold text-center mb-8"), g.Text("Frequently Asked Questions")),
		g.Group(items),
	)
}

func CTA(v *HomeView) g.Node {
	return Div(
		ID("cta"),
		Class("py-16 px-6"),
		Div(
			Class("max-w-7xl mx-auto rounded-2xl p-8 md:p-12 bg-[#1976D2] text-white"),
			H2(Class("text-3xl md:text-4xl font-bold mb-4"), g.Text("Scale Your Healthcare Productivity")),
			P(
				Class("text-white/90 mb-6"),
				g.Text("Choose "+AppName+", the smarter way to manage healthcare. Streamline operations, improve patient satisfaction, and empower your staff with our comprehensive solution."),
			),
			Ul(
				Class("space-y-3 mb-8"),
				Li(g.Text("HIPAA-compliant secure platform")),
				Li(g.Text("Easy to monitor")),
				Li(g.Text("Dedicated onboarding & 24/7 support")),
			),
			A(Href(PageLink("/", v.Query, QueryModal, ModalDemo)), Class("btn btn-outline text-white"), g.Text("Schedule a Personalized Demo")),
		),
	)
}

// Newsletter shows the signup form, or a thank-you once the visitor has
// subscribed.
func Newsletter(v *HomeView) g.Node {
	body := g.Node(emailForm("newsletter", "Subscribe", v.Newsletter))
	if v.Subscribed {
		body = P(ID("newsletter-thanks"), Class("mt-4 text-sm text-green-600 font-medium"), g.Text("Thanks for subscribing to our newsletter!"))
	}

	return Div(
		ID("contact"),
		Class("py-16 px-4"),
		Div(
			Class("max-w-4xl mx-auto rounded-xl border border-gray-200 p-8 text-center shadow-sm"),
			H2(Class("text-2xl font-semibold mb-2"), g.Text("Stay Updated with "+AppName)),
			P(Class("text-gray-500 mb-6"), g.Text("Subscribe to our newsletter for the latest features, industry insights, and healthcare management tips.")),
			body,
			P(
				Class("mt-4 text-xs text-gray-600"),
				g.Text("By subscribing, you agree to our "),
				A(Href(PageLink("/", v.Query, QueryPrivacy, "1")), Class("underline"), g.Text("Privacy Policy")),
				g.Text(" and consent to receive updates."),
			),
		),
	)
}
