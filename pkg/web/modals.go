package web

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func modal(id, heading, closeHref string, body ...g.Node) g.Node {
	return Div(
		ID(id),
		Class("fixed inset-0 z-50 flex items-center justify-center bg-black/50 p-4"),
		g.Attr("role", "dialog"),
		g.Attr("aria-modal", "true"),
		g.Attr("aria-labelledby", id+"-title"),
		Div(
			Class("bg-white rounded-2xl shadow-xl w-full max-w-lg max-h-[90vh] overflow-y-auto p-6"),
			Div(
				Class("flex justify-between items-center mb-4"),
				H2(ID(id+"-title"), Class("text-xl font-semibold"), g.Text(heading)),
				A(Href(closeHref), Class("btn btn-ghost btn-sm"), g.Attr("aria-label", "Close"), g.Text("✕")),
			),
			g.Group(body),
		),
	)
}

// PrivacyPolicy is the policy modal; its sections form a single-open
// accordion.
func PrivacyPolicy(v *HomeView) g.Node {
	closeHref := PageLink("/", v.Query, QueryPrivacy, "", QueryPolicy, "")

	items := make([]g.Node, 0, len(policySections))
	for i, s := range policySections {
		open := v.Policy.IsOpen(i)
		items = append(items, Div(
			Class("border-b border-gray-200"),
			A(
				ID(fmt.Sprintf("policy-%d", i)),
				Href(PageLink("/", v.Query, QueryPolicy, indexParam(v.Policy.ToggleTarget(i)))),
				Class("flex justify-between py-3 font-medium"),
				g.Attr("aria-expanded", strconv.FormatBool(open)),
				g.Textf("%d. %s", i+1, s.Title),
			),
			g.If(open, policyBody(s)),
		))
	}

	return modal("privacy-policy", "Privacy Policy", closeHref,
		P(Class("text-sm text-gray-600 mb-4"), g.Text("Your privacy matters to us. This policy explains how "+AppName+" collects, uses, and protects your information.")),
		g.Group(items),
	)
}

func policyBody(s policySection) g.Node {
	return Div(
		Class("pb-4 text-sm text-gray-600 space-y-2"),
		g.Attr("data-open", "true"),
		P(g.Text(s.Intro)),
		g.If(len(s.Points) > 0, Ul(
			Class("list-disc pl-5"),
			g.Group(g.Map(s.Points, func(p string) g.Node { return Li(g.Text(p)) })),
		)),
		g.If(s.Outro != "", P(g.Text(s.Outro))),
	)
}

// DemoModal is the demo scheduler. The date input starts tomorrow and the
// time is one of the offered hourly slots.
func DemoModal(v *HomeView) g.Node {
	closeHref := PageLink("/", v.Query, QueryModal, "")

	return modal("demo-modal", "Schedule a Demo", closeHref,
		FormEl(
			Method("post"),
			Action(formTarget("demo")),
			g.Attr("novalidate"),
			inputField("demo", "name", "Full Name", "text", "Your name", v.Demo),
			inputField("demo", "email", "Email", "email", "you@hospital.com", v.Demo),
			inputField("demo", "date", "Preferred Date", "date", "", v.Demo,
				g.If(v.DemoMinDate != "", g.Attr("min", v.DemoMinDate)),
			),
			selectField("demo", "time", "Preferred Time", v.DemoSlots, v.Demo),
			Button(Type("submit"), Class("btn btn-primary w-full mt-2"), g.Text("Schedule Demo")),
		),
	)
}

// PlanModal collects an inquiry for the selected plan. The plan travels as a
// hidden field; its price is looked up again on submit.
func PlanModal(v *HomeView) g.Node {
	p := v.SelectedPlan
	closeHref := PageLink("/", v.Query, QueryModal, "", QueryPlan, "")

	return modal("plan-modal", "Get Started with "+p.Name, closeHref,
		P(
			Class("text-sm text-gray-600 mb-4"),
			g.Text("Selected plan: "),
			Strong(g.Text(p.Name)),
			g.Text(" at "),
			Strong(ID("plan-modal-price"), g.Text(p.Price)),
		),
		FormEl(
			Method("post"),
			Action(formTarget("plan")),
			g.Attr("novalidate"),
			Input(Type("hidden"), Name("plan"), Value(p.Name)),
			Input(Type("hidden"), Name("currency"), Value(string(v.Quote.Currency))),
			inputField("plan", "name", "Full Name", "text", "Your name", v.PlanForm),
			inputField("plan", "email", "Email", "email", "you@hospital.com", v.PlanForm),
			inputField("plan", "phone", "Phone", "tel", "+91 98765 43210", v.PlanForm),
			inputField("plan", "address", "Address", "text", "Hospital or clinic address", v.PlanForm),
			textareaField("plan", "purpose", "Purpose", "Tell us what you need", v.PlanForm),
			Button(Type("submit"), Class("btn btn-primary w-full mt-2"), g.Text("Submit")),
		),
	)
}
